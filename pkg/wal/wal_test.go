package wal

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Seq    uint64 `json:"seq"`
	Amount string `json:"amount"`
}

func TestWALWriteAndReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	w, err := NewWAL(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(testRecord{Seq: 1, Amount: "100"}))
	require.NoError(t, w.Write(testRecord{Seq: 2, Amount: "200"}))
	require.NoError(t, w.Flush())
	require.NoError(t, w.Close())

	// 重新開啟後能讀回全部紀錄，順序一致
	reopened, err := NewWAL(path)
	require.NoError(t, err)
	defer reopened.Close()

	var records []testRecord
	err = reopened.ReadAll(func(raw []byte) error {
		var rec testRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uint64(1), records[0].Seq)
	assert.Equal(t, "200", records[1].Amount)
}

func TestWALReadAllEmptyFile(t *testing.T) {
	w, err := NewWAL(filepath.Join(t.TempDir(), "wal.log"))
	require.NoError(t, err)
	defer w.Close()

	calls := 0
	require.NoError(t, w.ReadAll(func([]byte) error {
		calls++
		return nil
	}))
	assert.Zero(t, calls)
}

func TestWALReadAllPropagatesCallbackError(t *testing.T) {
	w, err := NewWAL(filepath.Join(t.TempDir(), "wal.log"))
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Write(testRecord{Seq: 1}))

	sentinel := errors.New("stop")
	assert.ErrorIs(t, w.ReadAll(func([]byte) error { return sentinel }), sentinel)
}

func TestWALAppendsAfterReadAll(t *testing.T) {
	w, err := NewWAL(filepath.Join(t.TempDir(), "wal.log"))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Write(testRecord{Seq: 1}))
	require.NoError(t, w.ReadAll(func([]byte) error { return nil }))

	// ReadAll 把讀取位置移到開頭，O_APPEND 保證後續寫入仍然接在尾端
	require.NoError(t, w.Write(testRecord{Seq: 2}))
	count := 0
	require.NoError(t, w.ReadAll(func([]byte) error {
		count++
		return nil
	}))
	assert.Equal(t, 2, count)
}
