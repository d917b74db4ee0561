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

// commandRequest 指令請求包裝 channel，讓 PostCommand 可以等待結果
type commandRequest struct {
	Cmd    *domain.Command
	Result chan commandResponse // 讓 PostCommand 等這個 channel
}

type commandResponse struct {
	result *domain.CommandResult
	err    error
}

// SerialBank 是單一寫入執行緒 (actor) 的銀行引擎
// 所有指令與讀取都經過同一條輸送帶，狀態機本身完全不需要鎖
type SerialBank struct {
	bank *domain.Bank
	// 已處理過的指令與其最終結果
	processedCommands map[uuid.UUID]commandOutcome
	// Write-Ahead Logging
	wal *wal.WAL
	// 輸送帶 負責接收指令
	commandChan chan *commandRequest
	// 讀取請求也走同一條 Loop，天然的 snapshot isolation
	readChan chan func()
	// Pool 減少 GC 壓力
	requestPool sync.Pool
	// 全局順序號
	sequence uint64
}

// NewSerialBank 建立一個新的 SerialBank 實例
//
// 參數:
//
//	bank: 初始狀態機 (全新或從快照還原)
//	lastSequence: 快照涵蓋到的順序號
//	wal: Write-Ahead Log 實例 (可為 nil)
//
// 回傳:
//
//	*SerialBank: SerialBank 實例
//	error: 初始化錯誤
func NewSerialBank(bank *domain.Bank, lastSequence uint64, w *wal.WAL) (*SerialBank, error) {
	engine := &SerialBank{
		bank:              bank,
		processedCommands: make(map[uuid.UUID]commandOutcome),
		wal:               w,
		commandChan:       make(chan *commandRequest, 1000), // Buffer 1000
		readChan:          make(chan func(), 1000),
		requestPool: sync.Pool{
			New: func() interface{} {
				return &commandRequest{
					Result: make(chan commandResponse, 1),
				}
			},
		},
		sequence: lastSequence,
	}

	// 在啟動前先恢復資料
	if err := engine.recoverFromWAL(lastSequence); err != nil {
		return nil, err
	}
	return engine, nil
}

// recoverFromWAL 從 WAL 檔案恢復狀態 (不寫 WAL，不透過 Channel)
func (s *SerialBank) recoverFromWAL(lastSequence uint64) error {
	if s.wal == nil {
		return nil
	}
	history := make([]domain.Command, 0)

	err := s.wal.ReadAll(func(jsonRaw []byte) error {
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
		if cmd.Sequence <= lastSequence {
			continue
		}
		result, err := applyCommand(s.bank, cmd)
		if cmd.Sequence > s.sequence {
			s.sequence = cmd.Sequence
		}
		s.processedCommands[cmd.RefID] = commandOutcome{result: result, err: err}
	}
	return nil
}

// Start 啟動核心引擎 (非同步)
func (s *SerialBank) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *SerialBank) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			// 收到關閉信號，把剩下的指令處理完
			s.drain()
			return
		case req := <-s.commandChan:
			s.processCommand(req)
		case read := <-s.readChan:
			read()
		}
	}
}

func (s *SerialBank) drain() {
	for {
		select {
		case req := <-s.commandChan:
			s.processCommand(req)
		case read := <-s.readChan:
			read()
		default:
			return
		}
	}
}

// PostCommand 接收指令請求
//
// PostCommand(等待) -> Channel -> Run Loop (核心) -> WAL -> 狀態更新 -> Result Channel -> PostCommand(收到結果)
func (s *SerialBank) PostCommand(ctx context.Context, cmd *domain.Command) (*domain.CommandResult, error) {
	start := time.Now()

	// 放入輸送帶 (使用 sync.Pool 減少 GC)
	req := s.requestPool.Get().(*commandRequest)
	req.Cmd = cmd
	// 清空 Channel (雖然理論上應該是空的，但保險起見)
	select {
	case <-req.Result:
	default:
	}

	s.commandChan <- req
	resp := <-req.Result
	s.requestPool.Put(req)

	exporter.ObserveCommand(cmd.Type.String(), time.Since(start), resp.err)
	return resp.result, resp.err
}

// processCommand 處理單筆指令並回傳結果 (只在 Run Loop 內執行)
func (s *SerialBank) processCommand(req *commandRequest) {
	cmd := req.Cmd

	// 0. Idempotency Check (Thread Safe in Loop)：重送的 RefID 重放第一次的結果
	if out, ok := s.processedCommands[cmd.RefID]; ok {
		req.Result <- commandResponse{result: out.result, err: out.err}
		return
	}

	// 1. 補上順序號與接受時間
	s.sequence++
	cmd.Sequence = s.sequence
	if cmd.UnixTime == 0 {
		cmd.UnixTime = time.Now().Unix()
	}

	// 2. 寫入 WAL (Critical Path)
	if s.wal != nil {
		if err := s.wal.Write(cmd); err != nil {
			req.Result <- commandResponse{err: err}
			return
		}
		if err := s.wal.Flush(); err != nil {
			req.Result <- commandResponse{err: err}
			return
		}
	}

	// 3. 套用狀態 + 更新 Idempotency (失敗的指令也記)
	result, err := applyCommand(s.bank, cmd)
	s.processedCommands[cmd.RefID] = commandOutcome{result: result, err: err}

	// 4. 回傳結果
	req.Result <- commandResponse{result: result, err: err}
}

// read 把唯讀操作丟進 Run Loop 執行並等它完成
func (s *SerialBank) read(fn func()) {
	done := make(chan struct{})
	s.readChan <- func() {
		fn()
		close(done)
	}
	<-done
}

// GetAccountBalance 取得指定帳戶的當前餘額
func (s *SerialBank) GetAccountBalance(ctx context.Context, key domain.Address) (balance *big.Int, err error) {
	s.read(func() { balance, err = s.bank.AccountBalance(key) })
	return balance, err
}

// GetShare 取得股票摘要
func (s *SerialBank) GetShare(ctx context.Context, name, symbol string) (info *domain.ShareInfo, err error) {
	s.read(func() {
		var share *domain.Share
		share, err = s.bank.Share(name, symbol)
		if err == nil {
			info = share.Info()
		}
	})
	return info, err
}

// GetOrder 取得單筆訂單
func (s *SerialBank) GetOrder(ctx context.Context, name, symbol string, orderID uint64) (order domain.Order, err error) {
	s.read(func() { order, err = s.bank.OrderOnShare(name, symbol, orderID) })
	return order, err
}

// ListOrders 取得股票的全部訂單
func (s *SerialBank) ListOrders(ctx context.Context, name, symbol string) (orders []domain.Order, err error) {
	s.read(func() { orders, err = s.bank.OrdersOnShare(name, symbol) })
	return orders, err
}

// Snapshot 匯出當前完整狀態
func (s *SerialBank) Snapshot(ctx context.Context) (snap *domain.Snapshot, err error) {
	s.read(func() { snap = s.bank.Snapshot(s.sequence) })
	return snap, err
}

var _ usecase.Bank = (*SerialBank)(nil)
