package domain

import "math/big"

// SecondsPerYear 計息用的年秒數 (365 天)
const SecondsPerYear = 31536000

// StakeDeposit 單一存款人的質押狀態
// 全額提領時整筆刪除，不留殘餘狀態
type StakeDeposit struct {
	Principal     *big.Int
	LastTimestamp int64    // 上次計息窗口的起點 (Unix 秒)
	BankedReward  *big.Int // 已結算入帳、尚未提領的利息
}

// Staking 固定利率的質押池
//
// 計息公式: principal * rate * elapsed / (100 * SecondsPerYear)，整數向下取整
// 未滿一單位的零頭直接捨棄 (有損設計)；單利，不在窗口內複利
//
// 池子地址可以接受來路不明的轉帳 (流動性補水)，不會影響任何存款狀態
type Staking struct {
	Owner   Address // 唯一有權呼叫異動操作的身份 (即 Bank)
	Address Address

	Name         string
	InterestRate uint64 // 年利率百分比

	deposits map[Address]*StakeDeposit
	ledger   *Ledger
}

func NewStaking(owner Address, name string, rate uint64, ledger *Ledger) *Staking {
	return &Staking{
		Owner:        owner,
		Address:      AddressOf("staking", name),
		Name:         name,
		InterestRate: rate,
		deposits:     make(map[Address]*StakeDeposit),
		ledger:       ledger,
	}
}

// accrued 計算從 since 到 now 之間 principal 產生的利息 (floor)
func (p *Staking) accrued(principal *big.Int, since, now int64) *big.Int {
	elapsed := now - since
	if elapsed <= 0 || principal.Sign() <= 0 {
		return new(big.Int)
	}
	r := new(big.Int).Mul(principal, new(big.Int).SetUint64(p.InterestRate))
	r.Mul(r, big.NewInt(elapsed))
	return r.Quo(r, big.NewInt(100*SecondsPerYear))
}

// Deposit 記錄一筆入金，只有 Owner (Bank) 能呼叫
// 資金本身由 Bank 先用 escrow 轉進池子地址，這裡只更新存款狀態
//
// 已有存款時：先把舊本金到現在的利息結算進 BankedReward，
// 再累加本金並重設計息窗口 (新本金不回溯吃這段利息)
func (p *Staking) Deposit(caller, from Address, amount *big.Int, now int64) error {
	if caller != p.Owner {
		return ErrNotOwner
	}
	if !isPositive(amount) {
		return ErrAmountMustBePositive
	}

	d, ok := p.deposits[from]
	if !ok {
		p.deposits[from] = &StakeDeposit{
			Principal:     new(big.Int).Set(amount),
			LastTimestamp: now,
			BankedReward:  new(big.Int),
		}
		return nil
	}

	d.BankedReward.Add(d.BankedReward, p.accrued(d.Principal, d.LastTimestamp, now))
	d.Principal.Add(d.Principal, amount)
	d.LastTimestamp = now
	return nil
}

// WithdrawAll 一次付清 本金 + 已入帳利息 + 最後一段利息，並整筆刪除存款
// 池子餘額不夠付時失敗，存款紀錄保持原樣
func (p *Staking) WithdrawAll(caller, to Address, now int64) (*big.Int, error) {
	if caller != p.Owner {
		return nil, ErrNotOwner
	}
	d, ok := p.deposits[to]
	if !ok {
		return nil, &DepositDoesNotExistError{Pool: p.Name, Depositor: to}
	}

	total := new(big.Int).Set(d.Principal)
	total.Add(total, d.BankedReward)
	total.Add(total, p.accrued(d.Principal, d.LastTimestamp, now))

	if err := p.ledger.Transfer(p.Address, to, total); err != nil {
		return nil, err
	}
	delete(p.deposits, to)
	return total, nil
}

// WithdrawReward 只領利息 (已入帳 + 當前窗口)，本金留著、存款保持開啟
// 成功後 BankedReward 歸零、計息窗口重設為 now
func (p *Staking) WithdrawReward(caller, to Address, now int64) (*big.Int, error) {
	if caller != p.Owner {
		return nil, ErrNotOwner
	}
	d, ok := p.deposits[to]
	if !ok {
		return nil, &DepositDoesNotExistError{Pool: p.Name, Depositor: to}
	}

	reward := new(big.Int).Add(d.BankedReward, p.accrued(d.Principal, d.LastTimestamp, now))
	if reward.Sign() > 0 {
		if err := p.ledger.Transfer(p.Address, to, reward); err != nil {
			return nil, err
		}
	}
	d.BankedReward = new(big.Int)
	d.LastTimestamp = now
	return reward, nil
}

// ChangeInterestRate 調整利率，已入帳的利息不重算
// 尚未結算的計息窗口整段改用新利率計
func (p *Staking) ChangeInterestRate(caller Address, newRate uint64) error {
	if caller != p.Owner {
		return ErrNotOwner
	}
	p.InterestRate = newRate
	return nil
}

// DepositOf 讀取某存款人的質押狀態 (copy)，沒有存款回傳 false
func (p *Staking) DepositOf(id Address) (StakeDeposit, bool) {
	d, ok := p.deposits[id]
	if !ok {
		return StakeDeposit{}, false
	}
	return StakeDeposit{
		Principal:     new(big.Int).Set(d.Principal),
		LastTimestamp: d.LastTimestamp,
		BankedReward:  new(big.Int).Set(d.BankedReward),
	}, true
}

// Depositors 回傳所有存款人地址 (快照，順序不保證)
func (p *Staking) Depositors() []Address {
	out := make([]Address, 0, len(p.deposits))
	for id := range p.deposits {
		out = append(out, id)
	}
	return out
}
