package domain

import "math/big"

// Account 是掛在 Ledger 上、由 Bank 獨佔持有的帳戶包裝
// 建立後永不銷毀，餘額一律存放在 Ledger 的自身地址底下
type Account struct {
	Owner   Address // 唯一有權呼叫異動操作的身份 (即 Bank)
	Address Address

	FirstName     string
	LastName      string
	AccountNumber string

	ledger *Ledger
}

func NewAccount(owner Address, firstName, lastName, accountNumber string, ledger *Ledger) *Account {
	return &Account{
		Owner:         owner,
		Address:       AddressOf(firstName, lastName, accountNumber),
		FirstName:     firstName,
		LastName:      lastName,
		AccountNumber: accountNumber,
		ledger:        ledger,
	}
}

// Transfer 從本帳戶轉出金額，只有 Owner (Bank) 能呼叫
// 餘額不足時直接把 Ledger 的錯誤往上傳，不做任何轉譯
func (a *Account) Transfer(caller, to Address, amount *big.Int) error {
	if caller != a.Owner {
		return ErrNotOwner
	}
	return a.ledger.Transfer(a.Address, to, amount)
}

// Balance 回傳帳戶當前餘額 (唯讀，必定成功)
func (a *Account) Balance() *big.Int {
	return a.ledger.BalanceOf(a.Address)
}
