package domain

import "math/big"

// shareKey 股票目錄的 key：name+symbol 在同一個 Bank 內唯一
func shareKey(name, symbol string) string {
	return name + "\x00" + symbol
}

// AccountKey 帳戶目錄的 key：三個業務欄位的穩定雜湊
func AccountKey(firstName, lastName, accountNumber string) Address {
	return AddressOf(firstName, lastName, accountNumber)
}

// Bank 中央註冊處：獨佔持有 Ledger 與所有目錄，是系統唯一的進入點
//
// 所有跨元件操作 (買賣、轉帳、質押) 都由 Bank 先完成 allowance+transfer
// 的 escrow 編排，再轉交給目標元件；元件永遠不會反向呼叫 Bank
//
// 這個結構是純粹的單執行緒狀態機，序列化交給外層引擎
// (adapter/out/memory) 負責
type Bank struct {
	owner   Address // 唯一有權下達異動指令的外部身份 (建構時設定)
	address Address // Bank 自身的 Ledger 地址，作為元件擁有者與 escrow spender

	ledger   *Ledger
	accounts map[Address]*Account
	shares   map[string]*Share
	stakings map[string]*Staking
}

func NewBank(owner Address) *Bank {
	return &Bank{
		owner:    owner,
		address:  AddressOf("bank", string(owner)),
		ledger:   NewLedger(),
		accounts: make(map[Address]*Account),
		shares:   make(map[string]*Share),
		stakings: make(map[string]*Staking),
	}
}

// Owner 回傳建構時設定的特權呼叫者身份
func (b *Bank) Owner() Address { return b.owner }

// Address 回傳 Bank 自身的 Ledger 地址
func (b *Bank) Address() Address { return b.address }

// Ledger 回傳底層帳本 (唯讀用途：餘額查詢、守恆檢查)
func (b *Bank) Ledger() *Ledger { return b.ledger }

func (b *Bank) gate(caller Address) error {
	if caller != b.owner {
		return ErrNotOwner
	}
	return nil
}

// escrow 以 approve + transferFrom 把 owner 的金額搬到 to
// transferFrom 失敗時把剛設定的額度歸零，不留下可觀察的中間狀態
func (b *Bank) escrow(owner, to Address, amount *big.Int) error {
	if err := b.ledger.Approve(owner, b.address, amount); err != nil {
		return err
	}
	if err := b.ledger.TransferFrom(b.address, owner, to, amount); err != nil {
		_ = b.ledger.Approve(owner, b.address, new(big.Int))
		return err
	}
	return nil
}

// ---- 帳戶 ----

// CreateAccount 開戶：目錄 key 已被占用時失敗，
// 成功時從 Ledger 鑄造固定的初始金額給新帳戶
func (b *Bank) CreateAccount(caller Address, firstName, lastName, accountNumber string) (Address, error) {
	if err := b.gate(caller); err != nil {
		return "", err
	}
	key := AccountKey(firstName, lastName, accountNumber)
	if _, ok := b.accounts[key]; ok {
		return "", &AccountAlreadyExistsError{Key: key}
	}
	account := NewAccount(b.address, firstName, lastName, accountNumber, b.ledger)
	if err := b.ledger.Mint(account.Address, InitialGrant); err != nil {
		return "", err
	}
	b.accounts[key] = account
	return account.Address, nil
}

// Account 依目錄 key 取得帳戶
func (b *Bank) Account(key Address) (*Account, error) {
	account, ok := b.accounts[key]
	if !ok {
		return nil, &AccountDoesNotExistError{Key: key}
	}
	return account, nil
}

// AccountBalance 查詢帳戶餘額，帳戶不存在時失敗
func (b *Bank) AccountBalance(key Address) (*big.Int, error) {
	account, err := b.Account(key)
	if err != nil {
		return nil, err
	}
	return account.Balance(), nil
}

// Transfer 帳戶轉帳：轉出方必須是已註冊帳戶，收款方可以是任意地址
// (例如直接打到質押池地址的流動性補水)
func (b *Bank) Transfer(caller, from, to Address, amount *big.Int) error {
	if err := b.gate(caller); err != nil {
		return err
	}
	account, err := b.Account(from)
	if err != nil {
		return err
	}
	return account.Transfer(b.address, to, amount)
}

// ---- 股票 ----

// CreateShare 建立股票，(name, symbol) 重複時失敗
func (b *Bank) CreateShare(caller Address, name, symbol string, maxSupply, price *big.Int) (Address, error) {
	if err := b.gate(caller); err != nil {
		return "", err
	}
	key := shareKey(name, symbol)
	if _, ok := b.shares[key]; ok {
		return "", &ShareAlreadyExistsError{Name: name, Symbol: symbol}
	}
	if !isPositive(maxSupply) || !isPositive(price) {
		return "", ErrAmountMustBePositive
	}
	share := NewShare(b.address, name, symbol, maxSupply, price, b.ledger)
	b.shares[key] = share
	return share.Address, nil
}

// Share 依 (name, symbol) 取得股票
func (b *Bank) Share(name, symbol string) (*Share, error) {
	share, ok := b.shares[shareKey(name, symbol)]
	if !ok {
		return nil, &ShareDoesNotExistError{Name: name, Symbol: symbol}
	}
	return share, nil
}

// ShareAddress 查詢股票地址
func (b *Bank) ShareAddress(name, symbol string) (Address, error) {
	share, err := b.Share(name, symbol)
	if err != nil {
		return "", err
	}
	return share.Address, nil
}

// BuyShare 向庫存買股
//
// 編排順序：先驗庫存容量，再做 approve + transferFrom 把
// totalCost = amount * price / 10^18 從買方 escrow 進股票庫存，
// 最後轉交 Share.Buy 搬資產單位
// 任何一步失敗都發生在餘額異動前，不會留下半套狀態
func (b *Bank) BuyShare(caller Address, name, symbol string, amount *big.Int, to Address, now int64) error {
	if err := b.gate(caller); err != nil {
		return err
	}
	share, err := b.Share(name, symbol)
	if err != nil {
		return err
	}
	if !isPositive(amount) {
		return ErrAmountMustBePositive
	}
	if reserve := share.AvailableSupply(); amount.Cmp(reserve) > 0 {
		return &InsufficientSupplyError{Requested: amount, Available: reserve}
	}

	totalCost := TotalCost(amount, share.Price)
	if totalCost.Sign() > 0 {
		if err := b.escrow(to, share.Address, totalCost); err != nil {
			return err
		}
	}
	return share.Buy(b.address, amount, to, now)
}

// SellShare 把股賣回庫存：現金腿由股票自己預先累積的歐元庫存支付
// 全部檢查都在 Share.Sell 內先做完，失敗時餘額不變
func (b *Bank) SellShare(caller Address, name, symbol string, amount *big.Int, from Address, now int64) error {
	if err := b.gate(caller); err != nil {
		return err
	}
	share, err := b.Share(name, symbol)
	if err != nil {
		return err
	}
	if !isPositive(amount) {
		return ErrAmountMustBePositive
	}
	totalCost := TotalCost(amount, share.Price)
	return share.Sell(b.address, amount, from, totalCost, now)
}

// PlaceOrderOnShare 掛單，回傳新訂單編號
func (b *Bank) PlaceOrderOnShare(caller Address, name, symbol string, amount, limitPrice *big.Int, side OrderSide, submitter Address, now int64) (uint64, error) {
	if err := b.gate(caller); err != nil {
		return 0, err
	}
	share, err := b.Share(name, symbol)
	if err != nil {
		return 0, err
	}
	return share.PlaceOrder(b.address, amount, limitPrice, side, submitter, now)
}

// ExecuteOrderOnShare 執行訂單 (嚴格等值的價格閘門在 Share 內)
func (b *Bank) ExecuteOrderOnShare(caller Address, name, symbol string, orderID uint64, currentPrice *big.Int, now int64) error {
	if err := b.gate(caller); err != nil {
		return err
	}
	share, err := b.Share(name, symbol)
	if err != nil {
		return err
	}
	return share.ExecuteOrder(b.address, orderID, currentPrice, now)
}

// OrderOnShare 查詢單筆訂單
func (b *Bank) OrderOnShare(name, symbol string, orderID uint64) (Order, error) {
	share, err := b.Share(name, symbol)
	if err != nil {
		return Order{}, err
	}
	return share.Order(orderID)
}

// OrdersOnShare 查詢全部訂單 (最早的在前)
func (b *Bank) OrdersOnShare(name, symbol string) ([]Order, error) {
	share, err := b.Share(name, symbol)
	if err != nil {
		return nil, err
	}
	return share.Orders(), nil
}

// ---- 質押 ----

// CreateStaking 建立質押池，池名重複時失敗
func (b *Bank) CreateStaking(caller Address, name string, rate uint64) (Address, error) {
	if err := b.gate(caller); err != nil {
		return "", err
	}
	if _, ok := b.stakings[name]; ok {
		return "", &StakingAlreadyExistsError{Name: name}
	}
	pool := NewStaking(b.address, name, rate, b.ledger)
	b.stakings[name] = pool
	return pool.Address, nil
}

// Staking 依池名取得質押池
func (b *Bank) Staking(name string) (*Staking, error) {
	pool, ok := b.stakings[name]
	if !ok {
		return nil, &StakingDoesNotExistError{Name: name}
	}
	return pool, nil
}

// DepositToStaking 質押入金：approve + transferFrom 把本金 escrow
// 進池子地址，再更新存款狀態 (escrow 成功後狀態更新不會失敗)
func (b *Bank) DepositToStaking(caller Address, name string, from Address, amount *big.Int, now int64) error {
	if err := b.gate(caller); err != nil {
		return err
	}
	pool, err := b.Staking(name)
	if err != nil {
		return err
	}
	if !isPositive(amount) {
		return ErrAmountMustBePositive
	}
	if err := b.escrow(from, pool.Address, amount); err != nil {
		return err
	}
	return pool.Deposit(b.address, from, amount, now)
}

// WithdrawAllFromStaking 全額提領 (本金+全部利息)，存款整筆刪除
func (b *Bank) WithdrawAllFromStaking(caller Address, name string, to Address, now int64) (*big.Int, error) {
	if err := b.gate(caller); err != nil {
		return nil, err
	}
	pool, err := b.Staking(name)
	if err != nil {
		return nil, err
	}
	return pool.WithdrawAll(b.address, to, now)
}

// WithdrawRewardFromStaking 只領利息，本金與存款保持開啟
func (b *Bank) WithdrawRewardFromStaking(caller Address, name string, to Address, now int64) (*big.Int, error) {
	if err := b.gate(caller); err != nil {
		return nil, err
	}
	pool, err := b.Staking(name)
	if err != nil {
		return nil, err
	}
	return pool.WithdrawReward(b.address, to, now)
}

// ChangeStakingRate 調整池利率，立即生效於之後的計息
func (b *Bank) ChangeStakingRate(caller Address, name string, rate uint64) error {
	if err := b.gate(caller); err != nil {
		return err
	}
	pool, err := b.Staking(name)
	if err != nil {
		return err
	}
	return pool.ChangeInterestRate(b.address, rate)
}
