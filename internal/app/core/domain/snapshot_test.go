package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 建一個有帳戶、股票、訂單與質押的 Bank，快照後重建，行為必須完全一致
func TestSnapshotRoundTrip(t *testing.T) {
	bank := NewBank(operator)

	alice, err := bank.CreateAccount(operator, "Alice", "Chen", "A-0001")
	require.NoError(t, err)
	bob, err := bank.CreateAccount(operator, "Bob", "Lin", "B-0001")
	require.NoError(t, err)
	require.NoError(t, bank.Transfer(operator, alice, bob, Units(100)))

	_, err = bank.CreateShare(operator, "MicroSoftHard", "MSH", Units(1000000), Units(1))
	require.NoError(t, err)
	require.NoError(t, bank.BuyShare(operator, "MicroSoftHard", "MSH", Units(10), alice, 5))
	_, err = bank.PlaceOrderOnShare(operator, "MicroSoftHard", "MSH", Units(2), Units(3), OrderSideSell, alice, 6)
	require.NoError(t, err)

	poolAddr, err := bank.CreateStaking(operator, "euro-pool", 5)
	require.NoError(t, err)
	require.NoError(t, bank.Transfer(operator, bob, poolAddr, Units(200)))
	require.NoError(t, bank.DepositToStaking(operator, "euro-pool", bob, Units(500), 0))

	snap := bank.Snapshot(42)
	assert.Equal(t, uint64(42), snap.LastSequence)

	restored, err := RestoreBank(snap)
	require.NoError(t, err)

	// 重建出來的快照與原快照完全相同 (確定性)
	assert.Equal(t, snap, restored.Snapshot(42))

	// Ledger 層
	assert.Equal(t, bank.Ledger().TotalSupply(), restored.Ledger().TotalSupply())
	aliceBalance, err := restored.AccountBalance(alice)
	require.NoError(t, err)
	assert.Equal(t, Units(890), aliceBalance)

	// 股票層：持倉、報價、訂單簿與成交紀錄都要回來
	share, err := restored.Share("MicroSoftHard", "MSH")
	require.NoError(t, err)
	assert.Equal(t, Units(10), share.HoldingOf(alice))
	assert.Equal(t, Units(999990), share.AvailableSupply())
	assert.Equal(t, Units(3), share.BestAsk())
	assert.Nil(t, share.BestBid())
	require.Equal(t, uint64(1), share.OrdersCount())
	order, err := share.Order(0)
	require.NoError(t, err)
	assert.Equal(t, alice, order.Submitter)
	assert.Equal(t, int64(6), order.CreatedAt)
	require.Len(t, share.Trades(), 1)

	// 質押層：本金與計息窗口要回來，之後計息接續原狀態
	pool, err := restored.Staking("euro-pool")
	require.NoError(t, err)
	d, ok := pool.DepositOf(bob)
	require.True(t, ok)
	assert.Equal(t, Units(500), d.Principal)
	assert.Equal(t, int64(0), d.LastTimestamp)

	reward, err := restored.WithdrawRewardFromStaking(operator, "euro-pool", bob, SecondsPerYear)
	require.NoError(t, err)
	assert.Equal(t, Units(25), reward)
}

func TestSnapshotDeterministicOrdering(t *testing.T) {
	bank := NewBank(operator)
	_, err := bank.CreateAccount(operator, "Zed", "Wu", "Z-0001")
	require.NoError(t, err)
	_, err = bank.CreateAccount(operator, "Amy", "Wu", "A-0001")
	require.NoError(t, err)

	a := bank.Snapshot(1)
	b := bank.Snapshot(1)
	assert.Equal(t, a, b)
	require.Len(t, a.Accounts, 2)
}
