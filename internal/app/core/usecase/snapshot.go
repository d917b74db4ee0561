package usecase

import (
	"context"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// SnapshotStore 快照儲存介面
// 開機時 Load 還原狀態、關機時 Save 落盤；Load 找不到快照時回傳 ok=false
type SnapshotStore interface {
	Save(ctx context.Context, snap *domain.Snapshot) error
	Load(ctx context.Context) (snap *domain.Snapshot, ok bool, err error)
}
