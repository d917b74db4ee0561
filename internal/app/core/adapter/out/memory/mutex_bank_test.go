package memory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/pkg/wal"
)

const operator = domain.Address("operator")

func newTestWAL(t *testing.T, dir string) *wal.WAL {
	t.Helper()
	w, err := wal.NewWAL(filepath.Join(dir, "wal.log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func createAccountCmd(first, last, number string) *domain.Command {
	return &domain.Command{
		RefID:         uuid.New(),
		Caller:        operator,
		FirstName:     first,
		LastName:      last,
		AccountNumber: number,
		Type:          domain.CommandTypeCreateAccount,
	}
}

func TestMutexBankPostCommand(t *testing.T) {
	engine, err := NewMutexBank(domain.NewBank(operator), 0, nil)
	require.NoError(t, err)
	ctx := context.Background()

	result, err := engine.PostCommand(ctx, createAccountCmd("Alice", "Chen", "A-0001"))
	require.NoError(t, err)
	require.NotEmpty(t, result.Address)

	balance, err := engine.GetAccountBalance(ctx, result.Address)
	require.NoError(t, err)
	assert.Equal(t, domain.Units(1000), balance)

	// 業務錯誤會往上傳，但指令已消耗一個順序號
	_, err = engine.PostCommand(ctx, createAccountCmd("Alice", "Chen", "A-0001"))
	var exists *domain.AccountAlreadyExistsError
	require.ErrorAs(t, err, &exists)

	snap, err := engine.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), snap.LastSequence)
}

func TestMutexBankIdempotency(t *testing.T) {
	engine, err := NewMutexBank(domain.NewBank(operator), 0, nil)
	require.NoError(t, err)
	ctx := context.Background()

	alice, err := engine.PostCommand(ctx, createAccountCmd("Alice", "Chen", "A-0001"))
	require.NoError(t, err)
	bob, err := engine.PostCommand(ctx, createAccountCmd("Bob", "Lin", "B-0001"))
	require.NoError(t, err)

	transfer := &domain.Command{
		RefID:  uuid.New(),
		Caller: operator,
		From:   alice.Address,
		To:     bob.Address,
		Amount: domain.Units(100).String(),
		Type:   domain.CommandTypeTransfer,
	}
	_, err = engine.PostCommand(ctx, transfer)
	require.NoError(t, err)

	// 同一個 RefID 重送不會再執行一次
	_, err = engine.PostCommand(ctx, transfer)
	require.NoError(t, err)

	balance, err := engine.GetAccountBalance(ctx, alice.Address)
	require.NoError(t, err)
	assert.Equal(t, domain.Units(900), balance)
}

func TestMutexBankRecoversFromWAL(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	var aliceKey domain.Address
	{
		engine, err := NewMutexBank(domain.NewBank(operator), 0, newTestWAL(t, dir))
		require.NoError(t, err)

		alice, err := engine.PostCommand(ctx, createAccountCmd("Alice", "Chen", "A-0001"))
		require.NoError(t, err)
		aliceKey = alice.Address

		// 失敗的指令也會落在 WAL 裡，重放時一樣失敗
		_, err = engine.PostCommand(ctx, createAccountCmd("Alice", "Chen", "A-0001"))
		require.Error(t, err)

		_, err = engine.PostCommand(ctx, &domain.Command{
			RefID:  uuid.New(),
			Caller: operator,
			From:   aliceKey,
			To:     "sink",
			Amount: domain.Units(30).String(),
			Type:   domain.CommandTypeTransfer,
		})
		require.NoError(t, err)
	}

	// 模擬重啟：同一份 WAL 從頭重放
	restarted, err := NewMutexBank(domain.NewBank(operator), 0, newTestWAL(t, dir))
	require.NoError(t, err)

	balance, err := restarted.GetAccountBalance(ctx, aliceKey)
	require.NoError(t, err)
	assert.Equal(t, domain.Units(970), balance)

	// 順序號接續 WAL 的最後一筆
	snap, err := restarted.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), snap.LastSequence)
}

func TestMutexBankReplayPreservesInterest(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	var aliceKey domain.Address
	{
		engine, err := NewMutexBank(domain.NewBank(operator), 0, newTestWAL(t, dir))
		require.NoError(t, err)

		alice, err := engine.PostCommand(ctx, createAccountCmd("Alice", "Chen", "A-0001"))
		require.NoError(t, err)
		aliceKey = alice.Address
		bob, err := engine.PostCommand(ctx, createAccountCmd("Bob", "Lin", "B-0001"))
		require.NoError(t, err)

		pool, err := engine.PostCommand(ctx, &domain.Command{
			RefID:  uuid.New(),
			Caller: operator,
			Name:   "euro-pool",
			Rate:   5,
			Type:   domain.CommandTypeCreateStaking,
		})
		require.NoError(t, err)

		// 先補池子流動性，利息才付得出來
		_, err = engine.PostCommand(ctx, &domain.Command{
			RefID:  uuid.New(),
			Caller: operator,
			From:   bob.Address,
			To:     pool.Address,
			Amount: domain.Units(100).String(),
			Type:   domain.CommandTypeTransfer,
		})
		require.NoError(t, err)

		// 指令帶明確的 UnixTime，重放時沿用同一個時間
		_, err = engine.PostCommand(ctx, &domain.Command{
			RefID:    uuid.New(),
			Caller:   operator,
			UnixTime: 1000,
			Name:     "euro-pool",
			From:     aliceKey,
			Amount:   domain.Units(1000).String(),
			Type:     domain.CommandTypeStake,
		})
		require.NoError(t, err)
	}

	restarted, err := NewMutexBank(domain.NewBank(operator), 0, newTestWAL(t, dir))
	require.NoError(t, err)

	// 重放後的計息窗口起點與當初完全一致
	_, err = restarted.PostCommand(ctx, &domain.Command{
		RefID:    uuid.New(),
		Caller:   operator,
		UnixTime: 1000 + domain.SecondsPerYear,
		Name:     "euro-pool",
		To:       aliceKey,
		Type:     domain.CommandTypeWithdrawAll,
	})
	require.NoError(t, err)

	balance, err := restarted.GetAccountBalance(ctx, aliceKey)
	require.NoError(t, err)
	assert.Equal(t, domain.Units(1050), balance)
}

func TestMutexBankSkipsCommandsCoveredBySnapshot(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	var aliceKey domain.Address
	var snap *domain.Snapshot
	{
		engine, err := NewMutexBank(domain.NewBank(operator), 0, newTestWAL(t, dir))
		require.NoError(t, err)

		alice, err := engine.PostCommand(ctx, createAccountCmd("Alice", "Chen", "A-0001"))
		require.NoError(t, err)
		aliceKey = alice.Address

		// 快照涵蓋到這裡 (sequence 1)
		snap, err = engine.Snapshot(ctx)
		require.NoError(t, err)
		require.Equal(t, uint64(1), snap.LastSequence)

		// 快照之後又有一筆轉帳
		_, err = engine.PostCommand(ctx, &domain.Command{
			RefID:  uuid.New(),
			Caller: operator,
			From:   aliceKey,
			To:     "sink",
			Amount: domain.Units(10).String(),
			Type:   domain.CommandTypeTransfer,
		})
		require.NoError(t, err)
	}

	// 從快照還原 + 只重放快照之後的指令
	restored, err := domain.RestoreBank(snap)
	require.NoError(t, err)
	restarted, err := NewMutexBank(restored, snap.LastSequence, newTestWAL(t, dir))
	require.NoError(t, err)

	balance, err := restarted.GetAccountBalance(ctx, aliceKey)
	require.NoError(t, err)
	// 開戶那筆已含在快照裡，不會重放兩次；轉帳那筆有重放
	assert.Equal(t, domain.Units(990), balance)
}

func TestMutexBankResendReplaysOriginalOutcome(t *testing.T) {
	engine, err := NewMutexBank(domain.NewBank(operator), 0, nil)
	require.NoError(t, err)
	ctx := context.Background()

	first := createAccountCmd("Alice", "Chen", "A-0001")
	created, err := engine.PostCommand(ctx, first)
	require.NoError(t, err)

	// 成功指令重送拿回第一次的結果
	resent, err := engine.PostCommand(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, created.Address, resent.Address)

	dup := createAccountCmd("Alice", "Chen", "A-0001")
	_, err = engine.PostCommand(ctx, dup)
	var exists *domain.AccountAlreadyExistsError
	require.ErrorAs(t, err, &exists)

	// 失敗指令重送看到的是第一次的錯誤，不是空的成功
	_, err = engine.PostCommand(ctx, dup)
	require.ErrorAs(t, err, &exists)

	// 重送不消耗新的順序號
	snap, err := engine.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), snap.LastSequence)
}
