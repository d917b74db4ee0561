package memory

import (
	"fmt"
	"math/big"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// commandOutcome 已處理指令的最終結果
// 同一個 RefID 重送時原樣重放，失敗的指令重送後看到的仍是當初的錯誤
type commandOutcome struct {
	result *domain.CommandResult
	err    error
}

// applyCommand 把一筆指令套用到 Bank 狀態機
// MutexBank / SerialBank 以及 WAL 重放共用同一份分發邏輯，
// 行為只由 cmd 內容決定 (時間用 cmd.UnixTime，不看牆鐘)
func applyCommand(bank *domain.Bank, cmd *domain.Command) (*domain.CommandResult, error) {
	switch cmd.Type {
	case domain.CommandTypeCreateAccount:
		addr, err := bank.CreateAccount(cmd.Caller, cmd.FirstName, cmd.LastName, cmd.AccountNumber)
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{Address: addr}, nil

	case domain.CommandTypeTransfer:
		amount, err := commandAmount(cmd.Amount)
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{}, bank.Transfer(cmd.Caller, cmd.From, cmd.To, amount)

	case domain.CommandTypeCreateShare:
		maxSupply, err := commandAmount(cmd.Amount)
		if err != nil {
			return nil, err
		}
		price, err := commandAmount(cmd.Price)
		if err != nil {
			return nil, err
		}
		addr, err := bank.CreateShare(cmd.Caller, cmd.Name, cmd.Symbol, maxSupply, price)
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{Address: addr}, nil

	case domain.CommandTypeBuyShare:
		amount, err := commandAmount(cmd.Amount)
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{}, bank.BuyShare(cmd.Caller, cmd.Name, cmd.Symbol, amount, cmd.To, cmd.UnixTime)

	case domain.CommandTypeSellShare:
		amount, err := commandAmount(cmd.Amount)
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{}, bank.SellShare(cmd.Caller, cmd.Name, cmd.Symbol, amount, cmd.From, cmd.UnixTime)

	case domain.CommandTypePlaceOrder:
		amount, err := commandAmount(cmd.Amount)
		if err != nil {
			return nil, err
		}
		price, err := commandAmount(cmd.Price)
		if err != nil {
			return nil, err
		}
		side := domain.OrderSideSell
		if cmd.IsBuy {
			side = domain.OrderSideBuy
		}
		orderID, err := bank.PlaceOrderOnShare(cmd.Caller, cmd.Name, cmd.Symbol, amount, price, side, cmd.From, cmd.UnixTime)
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{OrderID: orderID}, nil

	case domain.CommandTypeExecuteOrder:
		price, err := commandAmount(cmd.Price)
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{}, bank.ExecuteOrderOnShare(cmd.Caller, cmd.Name, cmd.Symbol, cmd.OrderID, price, cmd.UnixTime)

	case domain.CommandTypeCreateStaking:
		addr, err := bank.CreateStaking(cmd.Caller, cmd.Name, cmd.Rate)
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{Address: addr}, nil

	case domain.CommandTypeStake:
		amount, err := commandAmount(cmd.Amount)
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{}, bank.DepositToStaking(cmd.Caller, cmd.Name, cmd.From, amount, cmd.UnixTime)

	case domain.CommandTypeWithdrawAll:
		_, err := bank.WithdrawAllFromStaking(cmd.Caller, cmd.Name, cmd.To, cmd.UnixTime)
		return &domain.CommandResult{}, err

	case domain.CommandTypeWithdrawReward:
		_, err := bank.WithdrawRewardFromStaking(cmd.Caller, cmd.Name, cmd.To, cmd.UnixTime)
		return &domain.CommandResult{}, err

	case domain.CommandTypeChangeRate:
		return &domain.CommandResult{}, bank.ChangeStakingRate(cmd.Caller, cmd.Name, cmd.Rate)

	default:
		return nil, fmt.Errorf("unknown command type: %d", cmd.Type)
	}
}

// commandAmount 指令內的金額欄位一律是十進位字串，不可為空
func commandAmount(s string) (*big.Int, error) {
	if s == "" {
		return nil, domain.ErrAmountMustBePositive
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}
