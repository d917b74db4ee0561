package usecase

import (
	"context"
	"math/big"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// Bank 是銀行核心引擎的介面
// 異動操作不再一個方法一個方法列，統一走 PostCommand，看 cmd.Type 決定
type Bank interface {
	// PostCommand 執行一筆異動指令 (開戶/轉帳/買賣/掛單/質押...)
	PostCommand(ctx context.Context, cmd *domain.Command) (*domain.CommandResult, error)
	// GetAccountBalance 取得帳戶餘額
	GetAccountBalance(ctx context.Context, key domain.Address) (*big.Int, error)
	// GetShare 取得股票摘要
	GetShare(ctx context.Context, name, symbol string) (*domain.ShareInfo, error)
	// GetOrder 取得單筆訂單
	GetOrder(ctx context.Context, name, symbol string, orderID uint64) (domain.Order, error)
	// ListOrders 取得股票的全部訂單 (最早的在前)
	ListOrders(ctx context.Context, name, symbol string) ([]domain.Order, error)
	// Snapshot 匯出當前完整狀態 (關機時交給快照儲存)
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}

// BankUseCase 是核心業務邏輯層
type BankUseCase struct {
	bank Bank
}

func NewBankUseCase(bank Bank) *BankUseCase {
	return &BankUseCase{
		bank: bank,
	}
}

// PostCommand 處理異動指令
func (u *BankUseCase) PostCommand(ctx context.Context, cmd *domain.Command) (*domain.CommandResult, error) {
	return u.bank.PostCommand(ctx, cmd)
}

// GetAccountBalance 取得帳戶餘額
func (u *BankUseCase) GetAccountBalance(ctx context.Context, key domain.Address) (*big.Int, error) {
	return u.bank.GetAccountBalance(ctx, key)
}

// GetShare 取得股票摘要
func (u *BankUseCase) GetShare(ctx context.Context, name, symbol string) (*domain.ShareInfo, error) {
	return u.bank.GetShare(ctx, name, symbol)
}

// GetOrder 取得單筆訂單
func (u *BankUseCase) GetOrder(ctx context.Context, name, symbol string, orderID uint64) (domain.Order, error) {
	return u.bank.GetOrder(ctx, name, symbol, orderID)
}

// ListOrders 取得股票的全部訂單
func (u *BankUseCase) ListOrders(ctx context.Context, name, symbol string) ([]domain.Order, error) {
	return u.bank.ListOrders(ctx, name, symbol)
}

// Snapshot 匯出當前完整狀態
func (u *BankUseCase) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	return u.bank.Snapshot(ctx)
}
