package memory

import (
	"context"
	"encoding/json"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/pkg/exporter"
	"github.com/JoeShih716/go-mem-bank/pkg/wal"
)

// MutexBank 是用單一 RWMutex 序列化的銀行引擎
//
// 每筆異動指令都是一個原子單位：
// 冪等檢查 -> 寫 WAL (Critical Path) -> 套用狀態 -> 記錄已處理
// 讀取走 RLock，絕對不會看到套用到一半的寫入
//
// 結構:
//
//	bank: 純單執行緒的 Bank 狀態機
//	mu: RWMutex 用於保護狀態機
//	processedCommands: 已處理過的指令 Map (RefID 冪等)
//	wal: Write-Ahead Log 實例
type MutexBank struct {
	bank *domain.Bank
	mu   sync.RWMutex
	// 已處理過的指令與其最終結果
	processedCommands map[uuid.UUID]commandOutcome
	// Write-Ahead Logging
	wal *wal.WAL
	// 全局順序號，從快照的 LastSequence 接續
	sequence uint64
}

// NewMutexBank 建立一個新的 MutexBank 實例
//
// 參數:
//
//	bank: 初始狀態機 (全新或從快照還原)
//	lastSequence: 快照涵蓋到的順序號，重放時跳過 <= 此值的指令
//	wal: Write-Ahead Log 實例 (可為 nil，純記憶體模式)
//
// 回傳:
//
//	*MutexBank: MutexBank 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewMutexBank(bank *domain.Bank, lastSequence uint64, w *wal.WAL) (*MutexBank, error) {
	engine := &MutexBank{
		bank:              bank,
		mu:                sync.RWMutex{},
		processedCommands: make(map[uuid.UUID]commandOutcome),
		wal:               w,
		sequence:          lastSequence,
	}
	if err := engine.recoverFromWAL(lastSequence); err != nil {
		return nil, err
	}
	return engine, nil
}

// recoverFromWAL 從 WAL 檔案恢復狀態
// 只有 NewMutexBank 呼叫，無需 Lock (單執行緒)
func (m *MutexBank) recoverFromWAL(lastSequence uint64) error {
	if m.wal == nil {
		return nil
	}
	history := make([]domain.Command, 0)

	err := m.wal.ReadAll(func(jsonRaw []byte) error {
		var cmd domain.Command
		if err := json.Unmarshal(jsonRaw, &cmd); err != nil {
			return err
		}
		history = append(history, cmd)
		return nil
	})
	if err != nil {
		return err
	}

	for i := range history {
		cmd := &history[i]
		// 已含在快照裡的指令不重放
		if cmd.Sequence <= lastSequence {
			continue
		}
		// 重放時業務錯誤照常吞掉：當初就失敗的指令現在也會失敗
		result, err := applyCommand(m.bank, cmd)
		if cmd.Sequence > m.sequence {
			m.sequence = cmd.Sequence
		}
		m.processedCommands[cmd.RefID] = commandOutcome{result: result, err: err}
	}
	return nil
}

// PostCommand 處理一筆異動指令 (Level 1: Mutex Lock)
//
// 參數:
//
//	ctx: 上下文
//	cmd: 指令物件 (RefID 必填；Sequence/UnixTime 由引擎補上)
//
// 回傳:
//
//	*domain.CommandResult: 執行結果
//	error: 處理錯誤
func (m *MutexBank) PostCommand(ctx context.Context, cmd *domain.Command) (*domain.CommandResult, error) {
	start := time.Now()
	result, err := m.postCommandInternal(cmd)
	exporter.ObserveCommand(cmd.Type.String(), time.Since(start), err)
	return result, err
}

// postCommandInternal 執行指令核心邏輯 (內部方法)
func (m *MutexBank) postCommandInternal(cmd *domain.Command) (*domain.CommandResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 0. Idempotency Check：重送的 RefID 重放第一次的結果 (包含錯誤)
	if out, ok := m.processedCommands[cmd.RefID]; ok {
		return out.result, out.err
	}

	// 1. 補上順序號與接受時間 (重放時沿用，計息結果才會一致)
	m.sequence++
	cmd.Sequence = m.sequence
	if cmd.UnixTime == 0 {
		cmd.UnixTime = time.Now().Unix()
	}

	// 2. 寫入 WAL (Critical Path)
	if m.wal != nil {
		// 寫入記憶體
		if err := m.wal.Write(cmd); err != nil {
			return nil, err
		}
		// 刷入硬碟
		if err := m.wal.Flush(); err != nil {
			return nil, err
		}
	}

	// 3. 套用狀態
	result, err := applyCommand(m.bank, cmd)

	// 4. 更新 Idempotency (失敗的指令也記，重送同一個 RefID 不會再跑一次)
	m.processedCommands[cmd.RefID] = commandOutcome{result: result, err: err}
	return result, err
}

// GetAccountBalance 取得指定帳戶的當前餘額
func (m *MutexBank) GetAccountBalance(ctx context.Context, key domain.Address) (*big.Int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bank.AccountBalance(key)
}

// GetShare 取得股票摘要
func (m *MutexBank) GetShare(ctx context.Context, name, symbol string) (*domain.ShareInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	share, err := m.bank.Share(name, symbol)
	if err != nil {
		return nil, err
	}
	return share.Info(), nil
}

// GetOrder 取得單筆訂單
func (m *MutexBank) GetOrder(ctx context.Context, name, symbol string, orderID uint64) (domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bank.OrderOnShare(name, symbol, orderID)
}

// ListOrders 取得股票的全部訂單 (最早的在前，純快照)
func (m *MutexBank) ListOrders(ctx context.Context, name, symbol string) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bank.OrdersOnShare(name, symbol)
}

// Snapshot 匯出當前完整狀態
func (m *MutexBank) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bank.Snapshot(m.sequence), nil
}

var _ usecase.Bank = (*MutexBank)(nil)
