package domain

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrAmountMustBePositive 金額必須為正數
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrNotOwner 呼叫者不是元件的擁有者 (只有 Bank 能操作它建立的元件)
	ErrNotOwner = errors.New("caller is not the owner")
)

// AccountAlreadyExistsError 帳戶已存在 (目錄 key 碰撞)
type AccountAlreadyExistsError struct {
	Key Address
}

func (e *AccountAlreadyExistsError) Error() string {
	return fmt.Sprintf("account already exists: %s", e.Key)
}

// AccountDoesNotExistError 找不到帳戶
type AccountDoesNotExistError struct {
	Key Address
}

func (e *AccountDoesNotExistError) Error() string {
	return fmt.Sprintf("account does not exist: %s", e.Key)
}

// ShareAlreadyExistsError 股票已存在 (name+symbol 重複)
type ShareAlreadyExistsError struct {
	Name   string
	Symbol string
}

func (e *ShareAlreadyExistsError) Error() string {
	return fmt.Sprintf("share already exists: %s (%s)", e.Name, e.Symbol)
}

// ShareDoesNotExistError 找不到股票
type ShareDoesNotExistError struct {
	Name   string
	Symbol string
}

func (e *ShareDoesNotExistError) Error() string {
	return fmt.Sprintf("share does not exist: %s (%s)", e.Name, e.Symbol)
}

// StakingAlreadyExistsError 質押池已存在
type StakingAlreadyExistsError struct {
	Name string
}

func (e *StakingAlreadyExistsError) Error() string {
	return fmt.Sprintf("staking pool already exists: %s", e.Name)
}

// StakingDoesNotExistError 找不到質押池
type StakingDoesNotExistError struct {
	Name string
}

func (e *StakingDoesNotExistError) Error() string {
	return fmt.Sprintf("staking pool does not exist: %s", e.Name)
}

// DepositDoesNotExistError 該存款人在池中沒有未結清的存款
type DepositDoesNotExistError struct {
	Pool      string
	Depositor Address
}

func (e *DepositDoesNotExistError) Error() string {
	return fmt.Sprintf("no open deposit in pool %s for %s", e.Pool, e.Depositor)
}

// OrderDoesNotExistError 訂單編號超出範圍 (id >= 訂單總數)
type OrderDoesNotExistError struct {
	OrderID uint64
}

func (e *OrderDoesNotExistError) Error() string {
	return fmt.Sprintf("order does not exist: %d", e.OrderID)
}

// PriceMismatchError 成交價必須與下單時的限價完全相等
type PriceMismatchError struct {
	Expected *big.Int
	Actual   *big.Int
}

func (e *PriceMismatchError) Error() string {
	return fmt.Sprintf("price mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// InsufficientSupplyError 買賣數量超過股票當下可交易的額度
type InsufficientSupplyError struct {
	Requested *big.Int
	Available *big.Int
}

func (e *InsufficientSupplyError) Error() string {
	return fmt.Sprintf("insufficient supply: requested %s, available %s", e.Requested, e.Available)
}

// InsufficientBalanceError 餘額不足
type InsufficientBalanceError struct {
	Account Address
	Needed  *big.Int
	Balance *big.Int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: account %s needs %s, has %s", e.Account, e.Needed, e.Balance)
}

// InsufficientAllowanceError spender 被核准的額度不足
type InsufficientAllowanceError struct {
	Owner     Address
	Spender   Address
	Needed    *big.Int
	Allowance *big.Int
}

func (e *InsufficientAllowanceError) Error() string {
	return fmt.Sprintf("insufficient allowance: spender %s of %s needs %s, approved %s",
		e.Spender, e.Owner, e.Needed, e.Allowance)
}
