package domain

import (
	"fmt"
	"math/big"
	"sort"
)

// Snapshot 是 Bank 完整狀態的可序列化快照
// 大數一律以十進位字串存放；配合 WAL 的 Sequence 可以做增量恢復：
// 重放時跳過 Sequence <= LastSequence 的指令
type Snapshot struct {
	LastSequence uint64
	Owner        Address

	TotalSupply string
	Balances    []BalanceRecord
	Allowances  []AllowanceRecord

	Accounts []AccountRecord
	Shares   []ShareRecord
	Stakings []StakingRecord
}

type BalanceRecord struct {
	Address Address
	Amount  string
}

type AllowanceRecord struct {
	Owner   Address
	Spender Address
	Amount  string
}

type AccountRecord struct {
	FirstName     string
	LastName      string
	AccountNumber string
}

type ShareRecord struct {
	Name      string
	Symbol    string
	MaxSupply string
	Price     string
	BestBid   string // 空字串代表尚無買單
	BestAsk   string
	Holdings  []BalanceRecord
	Orders    []OrderRecord
	Trades    []TradeRecord
}

type OrderRecord struct {
	ID        uint64
	Amount    string
	Price     string
	CreatedAt int64
	Submitter Address
	Side      uint8
}

type TradeRecord struct {
	Side         uint8
	Amount       string
	Price        string
	Counterparty Address
	Time         int64
}

type StakingRecord struct {
	Name     string
	Rate     uint64
	Deposits []DepositRecord
}

type DepositRecord struct {
	Depositor     Address
	Principal     string
	LastTimestamp int64
	BankedReward  string
}

// Snapshot 匯出 Bank 的完整狀態
// 所有切片都排序過，同一個狀態永遠產生同一份快照
func (b *Bank) Snapshot(lastSequence uint64) *Snapshot {
	snap := &Snapshot{
		LastSequence: lastSequence,
		Owner:        b.owner,
		TotalSupply:  b.ledger.totalSupply.String(),
	}

	for addr, bal := range b.ledger.balances {
		snap.Balances = append(snap.Balances, BalanceRecord{Address: addr, Amount: bal.String()})
	}
	sort.Slice(snap.Balances, func(i, j int) bool { return snap.Balances[i].Address < snap.Balances[j].Address })

	for owner, m := range b.ledger.allowances {
		for spender, a := range m {
			if a.Sign() == 0 {
				continue
			}
			snap.Allowances = append(snap.Allowances, AllowanceRecord{Owner: owner, Spender: spender, Amount: a.String()})
		}
	}
	sort.Slice(snap.Allowances, func(i, j int) bool {
		if snap.Allowances[i].Owner != snap.Allowances[j].Owner {
			return snap.Allowances[i].Owner < snap.Allowances[j].Owner
		}
		return snap.Allowances[i].Spender < snap.Allowances[j].Spender
	})

	for _, account := range b.accounts {
		snap.Accounts = append(snap.Accounts, AccountRecord{
			FirstName:     account.FirstName,
			LastName:      account.LastName,
			AccountNumber: account.AccountNumber,
		})
	}
	sort.Slice(snap.Accounts, func(i, j int) bool {
		return AccountKey(snap.Accounts[i].FirstName, snap.Accounts[i].LastName, snap.Accounts[i].AccountNumber) <
			AccountKey(snap.Accounts[j].FirstName, snap.Accounts[j].LastName, snap.Accounts[j].AccountNumber)
	})

	for _, share := range b.shares {
		rec := ShareRecord{
			Name:      share.Name,
			Symbol:    share.Symbol,
			MaxSupply: share.MaxSupply.String(),
			Price:     share.Price.String(),
		}
		if share.bestBid != nil {
			rec.BestBid = share.bestBid.String()
		}
		if share.bestAsk != nil {
			rec.BestAsk = share.bestAsk.String()
		}
		for addr, h := range share.holdings {
			if h.Sign() == 0 {
				continue
			}
			rec.Holdings = append(rec.Holdings, BalanceRecord{Address: addr, Amount: h.String()})
		}
		sort.Slice(rec.Holdings, func(i, j int) bool { return rec.Holdings[i].Address < rec.Holdings[j].Address })
		for _, o := range share.orders {
			rec.Orders = append(rec.Orders, OrderRecord{
				ID:        o.ID,
				Amount:    o.Amount.String(),
				Price:     o.Price.String(),
				CreatedAt: o.CreatedAt,
				Submitter: o.Submitter,
				Side:      uint8(o.Side),
			})
		}
		for _, t := range share.trades {
			rec.Trades = append(rec.Trades, TradeRecord{
				Side:         uint8(t.Side),
				Amount:       t.Amount.String(),
				Price:        t.Price.String(),
				Counterparty: t.Counterparty,
				Time:         t.Time,
			})
		}
		snap.Shares = append(snap.Shares, rec)
	}
	sort.Slice(snap.Shares, func(i, j int) bool {
		return shareKey(snap.Shares[i].Name, snap.Shares[i].Symbol) < shareKey(snap.Shares[j].Name, snap.Shares[j].Symbol)
	})

	for _, pool := range b.stakings {
		rec := StakingRecord{Name: pool.Name, Rate: pool.InterestRate}
		for depositor, d := range pool.deposits {
			rec.Deposits = append(rec.Deposits, DepositRecord{
				Depositor:     depositor,
				Principal:     d.Principal.String(),
				LastTimestamp: d.LastTimestamp,
				BankedReward:  d.BankedReward.String(),
			})
		}
		sort.Slice(rec.Deposits, func(i, j int) bool { return rec.Deposits[i].Depositor < rec.Deposits[j].Depositor })
		snap.Stakings = append(snap.Stakings, rec)
	}
	sort.Slice(snap.Stakings, func(i, j int) bool { return snap.Stakings[i].Name < snap.Stakings[j].Name })

	return snap
}

// RestoreBank 從快照重建 Bank
func RestoreBank(snap *Snapshot) (*Bank, error) {
	b := NewBank(snap.Owner)

	total, err := parseAmount(snap.TotalSupply)
	if err != nil {
		return nil, err
	}
	b.ledger.totalSupply = total

	for _, rec := range snap.Balances {
		bal, err := parseAmount(rec.Amount)
		if err != nil {
			return nil, err
		}
		b.ledger.balances[rec.Address] = bal
	}
	for _, rec := range snap.Allowances {
		a, err := parseAmount(rec.Amount)
		if err != nil {
			return nil, err
		}
		m, ok := b.ledger.allowances[rec.Owner]
		if !ok {
			m = make(map[Address]*big.Int)
			b.ledger.allowances[rec.Owner] = m
		}
		m[rec.Spender] = a
	}

	for _, rec := range snap.Accounts {
		account := NewAccount(b.address, rec.FirstName, rec.LastName, rec.AccountNumber, b.ledger)
		b.accounts[AccountKey(rec.FirstName, rec.LastName, rec.AccountNumber)] = account
	}

	for _, rec := range snap.Shares {
		maxSupply, err := parseAmount(rec.MaxSupply)
		if err != nil {
			return nil, err
		}
		price, err := parseAmount(rec.Price)
		if err != nil {
			return nil, err
		}
		share := NewShare(b.address, rec.Name, rec.Symbol, maxSupply, price, b.ledger)
		// NewShare 會把整個 maxSupply 塞進庫存，這裡要用快照的實際持倉覆蓋
		share.holdings = make(map[Address]*big.Int)
		for _, h := range rec.Holdings {
			amount, err := parseAmount(h.Amount)
			if err != nil {
				return nil, err
			}
			share.holdings[h.Address] = amount
		}
		if rec.BestBid != "" {
			if share.bestBid, err = parseAmount(rec.BestBid); err != nil {
				return nil, err
			}
		}
		if rec.BestAsk != "" {
			if share.bestAsk, err = parseAmount(rec.BestAsk); err != nil {
				return nil, err
			}
		}
		for _, o := range rec.Orders {
			amount, err := parseAmount(o.Amount)
			if err != nil {
				return nil, err
			}
			limit, err := parseAmount(o.Price)
			if err != nil {
				return nil, err
			}
			share.orders = append(share.orders, Order{
				ID:        o.ID,
				Amount:    amount,
				Price:     limit,
				CreatedAt: o.CreatedAt,
				Submitter: o.Submitter,
				Side:      OrderSide(o.Side),
			})
		}
		for _, t := range rec.Trades {
			amount, err := parseAmount(t.Amount)
			if err != nil {
				return nil, err
			}
			price, err := parseAmount(t.Price)
			if err != nil {
				return nil, err
			}
			share.trades = append(share.trades, Trade{
				Side:         OrderSide(t.Side),
				Amount:       amount,
				Price:        price,
				Counterparty: t.Counterparty,
				Time:         t.Time,
			})
		}
		b.shares[shareKey(rec.Name, rec.Symbol)] = share
	}

	for _, rec := range snap.Stakings {
		pool := NewStaking(b.address, rec.Name, rec.Rate, b.ledger)
		for _, d := range rec.Deposits {
			principal, err := parseAmount(d.Principal)
			if err != nil {
				return nil, err
			}
			banked, err := parseAmount(d.BankedReward)
			if err != nil {
				return nil, err
			}
			pool.deposits[d.Depositor] = &StakeDeposit{
				Principal:     principal,
				LastTimestamp: d.LastTimestamp,
				BankedReward:  banked,
			}
		}
		b.stakings[rec.Name] = pool
	}

	return b, nil
}

// parseAmount 解析十進位字串金額，空字串視為 0
func parseAmount(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}
