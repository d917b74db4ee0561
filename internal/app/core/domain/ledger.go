package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

// Address 是 Ledger 上的身份識別 (帳戶/股票/質押池共用同一個地址空間)
type Address string

// AddressOf 用穩定雜湊 (SHA-256) 從業務身份欄位導出地址
// 同樣的欄位必定得到同樣的地址，供目錄做 create-once 檢查
func AddressOf(parts ...string) Address {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0}) // 欄位分隔，避免 ("ab","c") 與 ("a","bc") 碰撞
	}
	return Address(hex.EncodeToString(h.Sum(nil)))
}

// Ledger 是底層的同質化代幣帳本
//
// 不變量: 所有地址餘額總和 == totalSupply (鑄造總量)
// 轉帳在餘額不足時直接失敗，不會出現負餘額
type Ledger struct {
	balances    map[Address]*big.Int
	allowances  map[Address]map[Address]*big.Int // owner -> spender -> 額度
	totalSupply *big.Int
}

func NewLedger() *Ledger {
	return &Ledger{
		balances:    make(map[Address]*big.Int),
		allowances:  make(map[Address]map[Address]*big.Int),
		totalSupply: new(big.Int),
	}
}

// Mint 鑄造金額到指定地址，並同步增加總供給
func (l *Ledger) Mint(to Address, amount *big.Int) error {
	if !isPositive(amount) {
		return ErrAmountMustBePositive
	}
	l.credit(to, amount)
	l.totalSupply.Add(l.totalSupply, amount)
	return nil
}

// Transfer 從 from 轉帳到 to
// 先檢查再異動，失敗時不會留下任何半套狀態
func (l *Ledger) Transfer(from, to Address, amount *big.Int) error {
	if !isPositive(amount) {
		return ErrAmountMustBePositive
	}
	balance := l.BalanceOf(from)
	if balance.Cmp(amount) < 0 {
		return &InsufficientBalanceError{Account: from, Needed: amount, Balance: balance}
	}
	l.balances[from] = balance.Sub(balance, amount)
	l.credit(to, amount)
	return nil
}

// Approve 設定 spender 可以動用 owner 多少額度 (覆蓋，不累加)
func (l *Ledger) Approve(owner, spender Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrAmountMustBePositive
	}
	m, ok := l.allowances[owner]
	if !ok {
		m = make(map[Address]*big.Int)
		l.allowances[owner] = m
	}
	m[spender] = new(big.Int).Set(amount)
	return nil
}

// TransferFrom spender 動用 owner 的額度，把金額轉給 to
// 額度不足回傳 InsufficientAllowance，成功後額度要同步扣減
func (l *Ledger) TransferFrom(spender, owner, to Address, amount *big.Int) error {
	if !isPositive(amount) {
		return ErrAmountMustBePositive
	}
	allowance := l.Allowance(owner, spender)
	if allowance.Cmp(amount) < 0 {
		return &InsufficientAllowanceError{Owner: owner, Spender: spender, Needed: amount, Allowance: allowance}
	}
	if err := l.Transfer(owner, to, amount); err != nil {
		return err
	}
	l.allowances[owner][spender] = allowance.Sub(allowance, amount)
	return nil
}

// BalanceOf 回傳地址餘額 (copy，外部改不到內部狀態)
func (l *Ledger) BalanceOf(id Address) *big.Int {
	if b, ok := l.balances[id]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

// Allowance 回傳 spender 目前可動用 owner 的額度
func (l *Ledger) Allowance(owner, spender Address) *big.Int {
	if m, ok := l.allowances[owner]; ok {
		if a, ok := m[spender]; ok {
			return new(big.Int).Set(a)
		}
	}
	return new(big.Int)
}

// TotalSupply 回傳鑄造總量
func (l *Ledger) TotalSupply() *big.Int {
	return new(big.Int).Set(l.totalSupply)
}

func (l *Ledger) credit(to Address, amount *big.Int) {
	if b, ok := l.balances[to]; ok {
		b.Add(b, amount)
		return
	}
	l.balances[to] = new(big.Int).Set(amount)
}
