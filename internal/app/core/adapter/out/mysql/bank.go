package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/pkg/mysql"
)

// sqlMeta 快照層級的中繼資料 (固定一列 id=1)
type sqlMeta struct {
	ID           int64  `gorm:"primaryKey"`
	LastSequence uint64 `gorm:"column:last_sequence"`
	Owner        string
	TotalSupply  string `gorm:"type:varchar(80)"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli"` // 自動更新時間
}

func (*sqlMeta) TableName() string {
	return "bank_meta"
}

// sqlBalance 對應 Ledger 的餘額表
type sqlBalance struct {
	Address string `gorm:"primaryKey;type:varchar(64)"`
	Amount  string `gorm:"type:varchar(80)"`
}

func (*sqlBalance) TableName() string {
	return "balances"
}

// sqlAllowance 對應 Ledger 的額度表
type sqlAllowance struct {
	Owner   string `gorm:"primaryKey;type:varchar(64)"`
	Spender string `gorm:"primaryKey;type:varchar(64)"`
	Amount  string `gorm:"type:varchar(80)"`
}

func (*sqlAllowance) TableName() string {
	return "allowances"
}

// sqlAccount 對應帳戶目錄
type sqlAccount struct {
	Key           string `gorm:"primaryKey;type:varchar(64)"`
	FirstName     string
	LastName      string
	AccountNumber string
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

// sqlShare 對應股票目錄
type sqlShare struct {
	Name      string `gorm:"primaryKey;type:varchar(64)"`
	Symbol    string `gorm:"primaryKey;type:varchar(16)"`
	MaxSupply string `gorm:"type:varchar(80)"`
	Price     string `gorm:"type:varchar(80)"`
	BestBid   string `gorm:"type:varchar(80)"` // 空字串代表尚無買單
	BestAsk   string `gorm:"type:varchar(80)"`
}

func (*sqlShare) TableName() string {
	return "shares"
}

// sqlHolding 各地址持有的股票單位
type sqlHolding struct {
	ShareName   string `gorm:"primaryKey;type:varchar(64)"`
	ShareSymbol string `gorm:"primaryKey;type:varchar(16)"`
	Address     string `gorm:"primaryKey;type:varchar(64)"`
	Amount      string `gorm:"type:varchar(80)"`
}

func (*sqlHolding) TableName() string {
	return "share_holdings"
}

// sqlOrder append-only 訂單簿
type sqlOrder struct {
	ShareName   string `gorm:"primaryKey;type:varchar(64)"`
	ShareSymbol string `gorm:"primaryKey;type:varchar(16)"`
	OrderID     uint64 `gorm:"primaryKey;autoIncrement:false"`
	Amount      string `gorm:"type:varchar(80)"`
	Price       string `gorm:"type:varchar(80)"`
	CreatedAt   int64
	Submitter   string `gorm:"type:varchar(64)"`
	Side        uint8
}

func (*sqlOrder) TableName() string {
	return "share_orders"
}

// sqlTrade 成交事件
type sqlTrade struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	ShareName    string `gorm:"index;type:varchar(64)"`
	ShareSymbol  string `gorm:"index;type:varchar(16)"`
	Side         uint8
	Amount       string `gorm:"type:varchar(80)"`
	Price        string `gorm:"type:varchar(80)"`
	Counterparty string `gorm:"type:varchar(64)"`
	Time         int64
}

func (*sqlTrade) TableName() string {
	return "share_trades"
}

// sqlStaking 質押池目錄
type sqlStaking struct {
	Name string `gorm:"primaryKey;type:varchar(64)"`
	Rate uint64
}

func (*sqlStaking) TableName() string {
	return "stakings"
}

// sqlDeposit 各存款人的質押狀態
type sqlDeposit struct {
	PoolName      string `gorm:"primaryKey;type:varchar(64)"`
	Depositor     string `gorm:"primaryKey;type:varchar(64)"`
	Principal     string `gorm:"type:varchar(80)"`
	LastTimestamp int64
	BankedReward  string `gorm:"type:varchar(80)"`
}

func (*sqlDeposit) TableName() string {
	return "stake_deposits"
}

// SnapshotStore 用 MySQL 保存 Bank 的完整狀態快照
// 開機 Load、關機 Save；兩者都在單一資料庫交易內完成
type SnapshotStore struct {
	client *mysql.Client
}

func NewSnapshotStore(client *mysql.Client) *SnapshotStore {
	return &SnapshotStore{
		client: client,
	}
}

// Migrate 建立或更新所有快照表
func (s *SnapshotStore) Migrate() error {
	return s.client.DB().AutoMigrate(
		&sqlMeta{}, &sqlBalance{}, &sqlAllowance{}, &sqlAccount{},
		&sqlShare{}, &sqlHolding{}, &sqlOrder{}, &sqlTrade{},
		&sqlStaking{}, &sqlDeposit{},
	)
}

// Save 覆寫式保存快照：先清掉舊資料再整批寫入，整個包在一筆交易裡
func (s *SnapshotStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	return s.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tables := []interface{}{
			&sqlMeta{}, &sqlBalance{}, &sqlAllowance{}, &sqlAccount{},
			&sqlShare{}, &sqlHolding{}, &sqlOrder{}, &sqlTrade{},
			&sqlStaking{}, &sqlDeposit{},
		}
		for _, table := range tables {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
				return err
			}
		}

		meta := sqlMeta{
			ID:           1,
			LastSequence: snap.LastSequence,
			Owner:        string(snap.Owner),
			TotalSupply:  snap.TotalSupply,
		}
		if err := tx.Create(&meta).Error; err != nil {
			return err
		}

		for _, rec := range snap.Balances {
			row := sqlBalance{Address: string(rec.Address), Amount: rec.Amount}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, rec := range snap.Allowances {
			row := sqlAllowance{Owner: string(rec.Owner), Spender: string(rec.Spender), Amount: rec.Amount}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, rec := range snap.Accounts {
			row := sqlAccount{
				Key:           string(domain.AccountKey(rec.FirstName, rec.LastName, rec.AccountNumber)),
				FirstName:     rec.FirstName,
				LastName:      rec.LastName,
				AccountNumber: rec.AccountNumber,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, rec := range snap.Shares {
			row := sqlShare{
				Name:      rec.Name,
				Symbol:    rec.Symbol,
				MaxSupply: rec.MaxSupply,
				Price:     rec.Price,
				BestBid:   rec.BestBid,
				BestAsk:   rec.BestAsk,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			for _, h := range rec.Holdings {
				hrow := sqlHolding{ShareName: rec.Name, ShareSymbol: rec.Symbol, Address: string(h.Address), Amount: h.Amount}
				if err := tx.Create(&hrow).Error; err != nil {
					return err
				}
			}
			for _, o := range rec.Orders {
				orow := sqlOrder{
					ShareName:   rec.Name,
					ShareSymbol: rec.Symbol,
					OrderID:     o.ID,
					Amount:      o.Amount,
					Price:       o.Price,
					CreatedAt:   o.CreatedAt,
					Submitter:   string(o.Submitter),
					Side:        o.Side,
				}
				if err := tx.Create(&orow).Error; err != nil {
					return err
				}
			}
			for _, t := range rec.Trades {
				trow := sqlTrade{
					ShareName:    rec.Name,
					ShareSymbol:  rec.Symbol,
					Side:         t.Side,
					Amount:       t.Amount,
					Price:        t.Price,
					Counterparty: string(t.Counterparty),
					Time:         t.Time,
				}
				if err := tx.Create(&trow).Error; err != nil {
					return err
				}
			}
		}
		for _, rec := range snap.Stakings {
			row := sqlStaking{Name: rec.Name, Rate: rec.Rate}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			for _, d := range rec.Deposits {
				drow := sqlDeposit{
					PoolName:      rec.Name,
					Depositor:     string(d.Depositor),
					Principal:     d.Principal,
					LastTimestamp: d.LastTimestamp,
					BankedReward:  d.BankedReward,
				}
				if err := tx.Create(&drow).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Load 讀回最後一份快照；資料庫是空的就回傳 ok=false
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, bool, error) {
	db := s.client.DB().WithContext(ctx)

	var meta sqlMeta
	if err := db.First(&meta, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	snap := &domain.Snapshot{
		LastSequence: meta.LastSequence,
		Owner:        domain.Address(meta.Owner),
		TotalSupply:  meta.TotalSupply,
	}

	var balances []sqlBalance
	if err := db.Order("address").Find(&balances).Error; err != nil {
		return nil, false, err
	}
	for _, row := range balances {
		snap.Balances = append(snap.Balances, domain.BalanceRecord{Address: domain.Address(row.Address), Amount: row.Amount})
	}

	var allowances []sqlAllowance
	if err := db.Order("owner, spender").Find(&allowances).Error; err != nil {
		return nil, false, err
	}
	for _, row := range allowances {
		snap.Allowances = append(snap.Allowances, domain.AllowanceRecord{
			Owner:   domain.Address(row.Owner),
			Spender: domain.Address(row.Spender),
			Amount:  row.Amount,
		})
	}

	var accounts []sqlAccount
	if err := db.Order("`key`").Find(&accounts).Error; err != nil {
		return nil, false, err
	}
	for _, row := range accounts {
		snap.Accounts = append(snap.Accounts, domain.AccountRecord{
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			AccountNumber: row.AccountNumber,
		})
	}

	var shares []sqlShare
	if err := db.Order("name, symbol").Find(&shares).Error; err != nil {
		return nil, false, err
	}
	for _, row := range shares {
		rec := domain.ShareRecord{
			Name:      row.Name,
			Symbol:    row.Symbol,
			MaxSupply: row.MaxSupply,
			Price:     row.Price,
			BestBid:   row.BestBid,
			BestAsk:   row.BestAsk,
		}

		var holdings []sqlHolding
		if err := db.Where("share_name = ? AND share_symbol = ?", row.Name, row.Symbol).
			Order("address").Find(&holdings).Error; err != nil {
			return nil, false, err
		}
		for _, h := range holdings {
			rec.Holdings = append(rec.Holdings, domain.BalanceRecord{Address: domain.Address(h.Address), Amount: h.Amount})
		}

		var orders []sqlOrder
		if err := db.Where("share_name = ? AND share_symbol = ?", row.Name, row.Symbol).
			Order("order_id").Find(&orders).Error; err != nil {
			return nil, false, err
		}
		for _, o := range orders {
			rec.Orders = append(rec.Orders, domain.OrderRecord{
				ID:        o.OrderID,
				Amount:    o.Amount,
				Price:     o.Price,
				CreatedAt: o.CreatedAt,
				Submitter: domain.Address(o.Submitter),
				Side:      o.Side,
			})
		}

		var trades []sqlTrade
		if err := db.Where("share_name = ? AND share_symbol = ?", row.Name, row.Symbol).
			Order("id").Find(&trades).Error; err != nil {
			return nil, false, err
		}
		for _, t := range trades {
			rec.Trades = append(rec.Trades, domain.TradeRecord{
				Side:         t.Side,
				Amount:       t.Amount,
				Price:        t.Price,
				Counterparty: domain.Address(t.Counterparty),
				Time:         t.Time,
			})
		}

		snap.Shares = append(snap.Shares, rec)
	}

	var stakings []sqlStaking
	if err := db.Order("name").Find(&stakings).Error; err != nil {
		return nil, false, err
	}
	for _, row := range stakings {
		rec := domain.StakingRecord{Name: row.Name, Rate: row.Rate}

		var deposits []sqlDeposit
		if err := db.Where("pool_name = ?", row.Name).Order("depositor").Find(&deposits).Error; err != nil {
			return nil, false, err
		}
		for _, d := range deposits {
			rec.Deposits = append(rec.Deposits, domain.DepositRecord{
				Depositor:     domain.Address(d.Depositor),
				Principal:     d.Principal,
				LastTimestamp: d.LastTimestamp,
				BankedReward:  d.BankedReward,
			})
		}
		snap.Stakings = append(snap.Stakings, rec)
	}

	return snap, true, nil
}

var _ usecase.SnapshotStore = (*SnapshotStore)(nil)
