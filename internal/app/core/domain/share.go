package domain

import "math/big"

// OrderSide 訂單方向
type OrderSide uint8

const (
	OrderSideBuy  OrderSide = 1
	OrderSideSell OrderSide = 2
)

// Order 一筆不可變的買賣意向，下單後永不修改、永不刪除
// 編號從 0 開始單調遞增，由訂單簿長度決定下一個 id
type Order struct {
	ID        uint64
	Amount    *big.Int
	Price     *big.Int // 限價 (10^18 縮放)
	CreatedAt int64    // Unix 秒
	Submitter Address
	Side      OrderSide
}

// IsBuy 是否為買單
func (o Order) IsBuy() bool { return o.Side == OrderSideBuy }

// Trade 成交事件：Buy/Sell 實際搬動單位時記錄一筆
type Trade struct {
	Side         OrderSide
	Amount       *big.Int
	Price        *big.Int // 成交當下的報價
	Counterparty Address
	Time         int64
}

// Share 可交易資產：固定最大供給量 + 自持庫存 + 訂單簿 + 報價
//
// 資產單位記在 Share 自己的 holdings map (與 Ledger 的歐元餘額是兩回事)，
// 庫存 reserve = holdings[自身地址]；現金腿走共用 Ledger
type Share struct {
	Owner   Address // 唯一有權呼叫異動操作的身份 (即 Bank)
	Address Address

	Name      string
	Symbol    string
	MaxSupply *big.Int // 建立後不可變
	Price     *big.Int // 當前報價

	bestBid *big.Int // 目前為止「最低」的買單限價 (依來源的字面行為追蹤極值)
	bestAsk *big.Int // 目前為止「最高」的賣單限價

	holdings map[Address]*big.Int // 各持有人的資產單位
	orders   []Order              // append-only 訂單簿
	trades   []Trade

	ledger *Ledger
}

// NewShare 建立股票，整個 maxSupply 直接鑄進自持庫存
func NewShare(owner Address, name, symbol string, maxSupply, price *big.Int, ledger *Ledger) *Share {
	s := &Share{
		Owner:     owner,
		Address:   AddressOf("share", name, symbol),
		Name:      name,
		Symbol:    symbol,
		MaxSupply: new(big.Int).Set(maxSupply),
		Price:     new(big.Int).Set(price),
		holdings:  make(map[Address]*big.Int),
		ledger:    ledger,
	}
	s.holdings[s.Address] = new(big.Int).Set(maxSupply)
	return s
}

// AvailableSupply 自持庫存 (還沒賣出去的單位)
func (s *Share) AvailableSupply() *big.Int {
	return s.HoldingOf(s.Address)
}

// TotalSupply 已流通在外的單位 = maxSupply - 庫存
// (注意：不是理論最大供給量)
func (s *Share) TotalSupply() *big.Int {
	return new(big.Int).Sub(s.MaxSupply, s.AvailableSupply())
}

// HoldingOf 回傳某地址持有的資產單位
func (s *Share) HoldingOf(id Address) *big.Int {
	if h, ok := s.holdings[id]; ok {
		return new(big.Int).Set(h)
	}
	return new(big.Int)
}

// Buy 從庫存搬 amount 個單位給 to，只有 Owner (Bank) 能呼叫
// 現金腿由 Bank 在呼叫前先完成 escrow，這裡只動資產單位
func (s *Share) Buy(caller Address, amount *big.Int, to Address, now int64) error {
	if caller != s.Owner {
		return ErrNotOwner
	}
	if !isPositive(amount) {
		return ErrAmountMustBePositive
	}
	reserve := s.AvailableSupply()
	if amount.Cmp(reserve) > 0 {
		return &InsufficientSupplyError{Requested: amount, Available: reserve}
	}
	s.moveUnits(s.Address, to, amount)
	s.trades = append(s.trades, Trade{
		Side:         OrderSideBuy,
		Amount:       new(big.Int).Set(amount),
		Price:        new(big.Int).Set(s.Price),
		Counterparty: to,
		Time:         now,
	})
	return nil
}

// Sell from 把 amount 個單位賣回庫存，Share 從自己的歐元庫存付出 totalCost
// 現金來源是先前買盤預先注入的庫存 (escrow)
//
// 先做完全部檢查才開始異動：容量、賣方單位、庫存現金
// 任一項不足都會在沒有任何狀態變化的情況下失敗
func (s *Share) Sell(caller Address, amount *big.Int, from Address, totalCost *big.Int, now int64) error {
	if caller != s.Owner {
		return ErrNotOwner
	}
	if !isPositive(amount) {
		return ErrAmountMustBePositive
	}
	outstanding := s.TotalSupply()
	if amount.Cmp(outstanding) > 0 {
		return &InsufficientSupplyError{Requested: amount, Available: outstanding}
	}
	held := s.HoldingOf(from)
	if held.Cmp(amount) < 0 {
		return &InsufficientBalanceError{Account: from, Needed: amount, Balance: held}
	}
	cash := s.ledger.BalanceOf(s.Address)
	if cash.Cmp(totalCost) < 0 {
		return &InsufficientBalanceError{Account: s.Address, Needed: totalCost, Balance: cash}
	}

	// 現金腿 (檢查都過了，這裡不會失敗)
	if totalCost.Sign() > 0 {
		if err := s.ledger.Transfer(s.Address, from, totalCost); err != nil {
			return err
		}
	}
	s.moveUnits(from, s.Address, amount)
	s.trades = append(s.trades, Trade{
		Side:         OrderSideSell,
		Amount:       new(big.Int).Set(amount),
		Price:        new(big.Int).Set(s.Price),
		Counterparty: from,
		Time:         now,
	})
	return nil
}

// PlaceOrder 掛一張新訂單，回傳訂單編號 (從 0 起算，永不重用)
//
// 最佳買賣價追蹤採來源的字面行為：
// 賣單限價比目前 bestAsk 高就取代、買單限價比目前 bestBid 低就取代，
// 之後若買賣兩側都有值，報價改為兩者中點
func (s *Share) PlaceOrder(caller Address, amount, limitPrice *big.Int, side OrderSide, submitter Address, now int64) (uint64, error) {
	if caller != s.Owner {
		return 0, ErrNotOwner
	}
	if !isPositive(amount) || !isPositive(limitPrice) {
		return 0, ErrAmountMustBePositive
	}

	id := uint64(len(s.orders))
	s.orders = append(s.orders, Order{
		ID:        id,
		Amount:    new(big.Int).Set(amount),
		Price:     new(big.Int).Set(limitPrice),
		CreatedAt: now,
		Submitter: submitter,
		Side:      side,
	})

	switch side {
	case OrderSideSell:
		if s.bestAsk == nil || limitPrice.Cmp(s.bestAsk) > 0 {
			s.bestAsk = new(big.Int).Set(limitPrice)
		}
	case OrderSideBuy:
		if s.bestBid == nil || limitPrice.Cmp(s.bestBid) < 0 {
			s.bestBid = new(big.Int).Set(limitPrice)
		}
	}
	s.requote()

	return id, nil
}

// requote 用 bestBid/bestAsk 的中點更新報價，單邊掛單時維持原價
func (s *Share) requote() {
	if s.bestBid == nil || s.bestAsk == nil {
		return
	}
	mid := new(big.Int).Add(s.bestBid, s.bestAsk)
	s.Price = mid.Quo(mid, big.NewInt(2))
}

// ExecuteOrder 執行訂單，currentPrice 必須與下單限價完全相等 (嚴格等值，無容差)
// 先把報價更新為 currentPrice 再依訂單方向轉發給 Buy/Sell，
// 轉發失敗時把報價還原，失敗的執行不能留下任何狀態變化
func (s *Share) ExecuteOrder(caller Address, orderID uint64, currentPrice *big.Int, now int64) error {
	if caller != s.Owner {
		return ErrNotOwner
	}
	if orderID >= uint64(len(s.orders)) {
		return &OrderDoesNotExistError{OrderID: orderID}
	}
	order := s.orders[orderID]
	if currentPrice == nil || order.Price.Cmp(currentPrice) != 0 {
		return &PriceMismatchError{Expected: new(big.Int).Set(order.Price), Actual: currentPrice}
	}

	// 成交事件記錄的是成交當下的報價，所以要先換價再轉發
	previous := s.Price
	s.Price = new(big.Int).Set(currentPrice)

	var err error
	if order.IsBuy() {
		err = s.Buy(caller, order.Amount, order.Submitter, now)
	} else {
		err = s.Sell(caller, order.Amount, order.Submitter, TotalCost(order.Amount, currentPrice), now)
	}
	if err != nil {
		s.Price = previous
		return err
	}
	return nil
}

// Order 讀取單筆訂單 (copy)，超出範圍回傳 OrderDoesNotExist
func (s *Share) Order(orderID uint64) (Order, error) {
	if orderID >= uint64(len(s.orders)) {
		return Order{}, &OrderDoesNotExistError{OrderID: orderID}
	}
	return cloneOrder(s.orders[orderID]), nil
}

// Orders 回傳所有訂單的快照，最早的在前，不影響內部狀態
func (s *Share) Orders() []Order {
	out := make([]Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

// cloneOrder 連同 big.Int 欄位一起複製，避免呼叫端改到訂單簿
func cloneOrder(o Order) Order {
	o.Amount = new(big.Int).Set(o.Amount)
	o.Price = new(big.Int).Set(o.Price)
	return o
}

// OrdersCount 訂單總數 (下一個訂單編號)
func (s *Share) OrdersCount() uint64 {
	return uint64(len(s.orders))
}

// Trades 回傳成交事件快照
func (s *Share) Trades() []Trade {
	out := make([]Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

// BestBid 目前追蹤到的買單極值 (可能為 nil)
func (s *Share) BestBid() *big.Int {
	if s.bestBid == nil {
		return nil
	}
	return new(big.Int).Set(s.bestBid)
}

// BestAsk 目前追蹤到的賣單極值 (可能為 nil)
func (s *Share) BestAsk() *big.Int {
	if s.bestAsk == nil {
		return nil
	}
	return new(big.Int).Set(s.bestAsk)
}

// ShareInfo 股票的唯讀摘要 (查詢 API 用)
type ShareInfo struct {
	Name            string
	Symbol          string
	Address         Address
	MaxSupply       *big.Int
	Price           *big.Int
	AvailableSupply *big.Int
	TotalSupply     *big.Int
	OrdersCount     uint64
}

// Info 回傳股票摘要快照
func (s *Share) Info() *ShareInfo {
	return &ShareInfo{
		Name:            s.Name,
		Symbol:          s.Symbol,
		Address:         s.Address,
		MaxSupply:       new(big.Int).Set(s.MaxSupply),
		Price:           new(big.Int).Set(s.Price),
		AvailableSupply: s.AvailableSupply(),
		TotalSupply:     s.TotalSupply(),
		OrdersCount:     s.OrdersCount(),
	}
}

func (s *Share) moveUnits(from, to Address, amount *big.Int) {
	h := s.holdings[from]
	h.Sub(h, amount)
	if t, ok := s.holdings[to]; ok {
		t.Add(t, amount)
	} else {
		s.holdings[to] = new(big.Int).Set(amount)
	}
}
