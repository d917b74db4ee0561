package domain

import "github.com/google/uuid"

// CommandType 指令類型
// 為了極致節省記憶體，使用 uint8
type CommandType uint8

const (
	// 開戶
	CommandTypeCreateAccount CommandType = 1
	// 帳戶間轉帳
	CommandTypeTransfer CommandType = 2
	// 建立股票
	CommandTypeCreateShare CommandType = 3
	// 直接向庫存買股
	CommandTypeBuyShare CommandType = 4
	// 把股賣回庫存
	CommandTypeSellShare CommandType = 5
	// 掛單
	CommandTypePlaceOrder CommandType = 6
	// 執行訂單
	CommandTypeExecuteOrder CommandType = 7
	// 建立質押池
	CommandTypeCreateStaking CommandType = 8
	// 質押入金
	CommandTypeStake CommandType = 9
	// 全額提領 (本金+利息)
	CommandTypeWithdrawAll CommandType = 10
	// 只領利息
	CommandTypeWithdrawReward CommandType = 11
	// 調整池利率
	CommandTypeChangeRate CommandType = 12
)

var commandTypeNames = map[CommandType]string{
	CommandTypeCreateAccount:  "create_account",
	CommandTypeTransfer:       "transfer",
	CommandTypeCreateShare:    "create_share",
	CommandTypeBuyShare:       "buy_share",
	CommandTypeSellShare:      "sell_share",
	CommandTypePlaceOrder:     "place_order",
	CommandTypeExecuteOrder:   "execute_order",
	CommandTypeCreateStaking:  "create_staking",
	CommandTypeStake:          "stake",
	CommandTypeWithdrawAll:    "withdraw_all",
	CommandTypeWithdrawReward: "withdraw_reward",
	CommandTypeChangeRate:     "change_rate",
}

func (t CommandType) String() string {
	if name, ok := commandTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Command 所有會異動狀態的操作都走同一種指令紀錄
// 寫入 WAL 的就是這個結構，重放時依 UnixTime 還原計息結果
//
// 大金額欄位 (Amount/Price) 以十進位字串存放，JSON 不會掉精度
type Command struct {
	// Sequence: 全局唯一的順序號 (由核心引擎分配，1, 2, 3...)
	// 用於 WAL 重放確保順序一致，也用來跳過已入快照的指令
	Sequence uint64 `json:"seq"`
	// RefID: 外部追蹤號 (UUID)，同一個 RefID 只會被執行一次
	RefID uuid.UUID `json:"ref_id"`
	// UnixTime: 指令首次被接受的時間 (秒)，重放時沿用
	UnixTime int64 `json:"ts"`
	// Caller: 下達指令的身份，必須等於 Bank 建構時設定的擁有者
	Caller Address `json:"caller"`

	// 各指令依需要填的參數
	FirstName     string  `json:"first_name,omitempty"`
	LastName      string  `json:"last_name,omitempty"`
	AccountNumber string  `json:"account_number,omitempty"`
	From          Address `json:"from,omitempty"`
	To            Address `json:"to,omitempty"`
	Name          string  `json:"name,omitempty"`
	Symbol        string  `json:"symbol,omitempty"`
	Amount        string  `json:"amount,omitempty"`
	Price         string  `json:"price,omitempty"`
	IsBuy         bool    `json:"is_buy,omitempty"`
	OrderID       uint64  `json:"order_id,omitempty"`
	Rate          uint64  `json:"rate,omitempty"`

	// Type: 放到最後面，利用 Padding 空間
	Type CommandType `json:"type"`
}

// CommandResult 指令執行結果 (建立類指令回傳新地址、掛單回傳訂單編號)
type CommandResult struct {
	Address Address
	OrderID uint64
}
