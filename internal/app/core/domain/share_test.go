package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShare(t *testing.T) (*Share, *Ledger) {
	t.Helper()
	ledger := NewLedger()
	share := NewShare("bank", "MicroSoftHard", "MSH", Units(1000000), Units(1), ledger)
	return share, ledger
}

func TestNewShareMintsFullSupplyIntoReserve(t *testing.T) {
	share, _ := newTestShare(t)
	assert.Equal(t, Units(1000000), share.AvailableSupply())
	// 還沒賣出任何單位，流通量為 0
	assert.Zero(t, share.TotalSupply().Sign())
}

func TestShareBuyMovesUnitsFromReserve(t *testing.T) {
	share, _ := newTestShare(t)
	alice := Address("alice")

	require.NoError(t, share.Buy("bank", Units(10), alice, 100))

	assert.Equal(t, Units(10), share.HoldingOf(alice))
	assert.Equal(t, Units(999990), share.AvailableSupply())
	assert.Equal(t, Units(10), share.TotalSupply())

	trades := share.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, OrderSideBuy, trades[0].Side)
	assert.Equal(t, alice, trades[0].Counterparty)
	assert.Equal(t, int64(100), trades[0].Time)
}

func TestShareBuyExceedingReserve(t *testing.T) {
	share, _ := newTestShare(t)
	err := share.Buy("bank", Units(1000001), "alice", 0)
	var insufficient *InsufficientSupplyError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, Units(1000000), insufficient.Available)
}

func TestShareBuyRejectsNonOwner(t *testing.T) {
	share, _ := newTestShare(t)
	assert.ErrorIs(t, share.Buy("intruder", Units(1), "alice", 0), ErrNotOwner)
	assert.ErrorIs(t, share.Sell("intruder", Units(1), "alice", Units(1), 0), ErrNotOwner)
	_, err := share.PlaceOrder("intruder", Units(1), Units(1), OrderSideBuy, "alice", 0)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.ErrorIs(t, share.ExecuteOrder("intruder", 0, Units(1), 0), ErrNotOwner)
}

func TestShareSellPaysFromShareCash(t *testing.T) {
	share, ledger := newTestShare(t)
	alice := Address("alice")

	// 先買 10 單位，並讓股票地址有對應現金 (模擬買盤 escrow)
	require.NoError(t, share.Buy("bank", Units(10), alice, 0))
	require.NoError(t, ledger.Mint(share.Address, Units(10)))

	require.NoError(t, share.Sell("bank", Units(4), alice, Units(4), 0))

	assert.Equal(t, Units(6), share.HoldingOf(alice))
	assert.Equal(t, Units(999994), share.AvailableSupply())
	assert.Equal(t, Units(4), ledger.BalanceOf(alice))
	assert.Equal(t, Units(6), ledger.BalanceOf(share.Address))
}

func TestShareSellFailsAtomically(t *testing.T) {
	share, ledger := newTestShare(t)
	alice := Address("alice")
	require.NoError(t, share.Buy("bank", Units(10), alice, 0))
	// 股票現金庫存只有 3，付不起 4
	require.NoError(t, ledger.Mint(share.Address, Units(3)))

	err := share.Sell("bank", Units(4), alice, Units(4), 0)
	var insufficient *InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, share.Address, insufficient.Account)

	// 任何一項檢查失敗都不能留下半套狀態
	assert.Equal(t, Units(10), share.HoldingOf(alice))
	assert.Zero(t, ledger.BalanceOf(alice).Sign())
	assert.Equal(t, Units(3), ledger.BalanceOf(share.Address))
}

func TestShareSellMoreThanOutstanding(t *testing.T) {
	share, _ := newTestShare(t)
	alice := Address("alice")
	require.NoError(t, share.Buy("bank", Units(5), alice, 0))

	err := share.Sell("bank", Units(6), alice, Units(6), 0)
	var insufficient *InsufficientSupplyError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, Units(5), insufficient.Available)
}

func TestShareSellWithoutHoldings(t *testing.T) {
	share, _ := newTestShare(t)
	alice := Address("alice")
	bob := Address("bob")
	require.NoError(t, share.Buy("bank", Units(5), alice, 0))

	// bob 沒有持股，流通量雖然夠但持股檢查要擋下來
	err := share.Sell("bank", Units(5), bob, Units(5), 0)
	var insufficient *InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, bob, insufficient.Account)
}

func TestPlaceOrderAssignsMonotonicIDs(t *testing.T) {
	share, _ := newTestShare(t)

	id0, err := share.PlaceOrder("bank", Units(1), Units(2), OrderSideSell, "alice", 10)
	require.NoError(t, err)
	id1, err := share.PlaceOrder("bank", Units(3), Units(1), OrderSideBuy, "bob", 20)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id0)
	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), share.OrdersCount())

	order, err := share.Order(0)
	require.NoError(t, err)
	assert.Equal(t, Units(1), order.Amount)
	assert.Equal(t, Units(2), order.Price)
	assert.Equal(t, int64(10), order.CreatedAt)
	assert.Equal(t, Address("alice"), order.Submitter)
	assert.False(t, order.IsBuy())

	_, err = share.Order(2)
	var missing *OrderDoesNotExistError
	assert.ErrorAs(t, err, &missing)
}

func TestOrderBookIsAppendOnly(t *testing.T) {
	share, _ := newTestShare(t)
	_, err := share.PlaceOrder("bank", Units(1), Units(2), OrderSideSell, "alice", 0)
	require.NoError(t, err)

	// 拿到的是快照，改它不影響簿上的單
	orders := share.Orders()
	orders[0].Submitter = "mallory"
	order, err := share.Order(0)
	require.NoError(t, err)
	assert.Equal(t, Address("alice"), order.Submitter)
}

func TestBestAskTracksHighestSellLimit(t *testing.T) {
	share, _ := newTestShare(t)

	_, err := share.PlaceOrder("bank", Units(1), Units(3), OrderSideSell, "a", 0)
	require.NoError(t, err)
	assert.Equal(t, Units(3), share.BestAsk())

	// 更低的賣單限價不取代
	_, err = share.PlaceOrder("bank", Units(1), Units(2), OrderSideSell, "a", 0)
	require.NoError(t, err)
	assert.Equal(t, Units(3), share.BestAsk())

	// 更高的才取代
	_, err = share.PlaceOrder("bank", Units(1), Units(5), OrderSideSell, "a", 0)
	require.NoError(t, err)
	assert.Equal(t, Units(5), share.BestAsk())
}

func TestBestBidTracksLowestBuyLimit(t *testing.T) {
	share, _ := newTestShare(t)

	_, err := share.PlaceOrder("bank", Units(1), Units(4), OrderSideBuy, "a", 0)
	require.NoError(t, err)
	assert.Equal(t, Units(4), share.BestBid())

	_, err = share.PlaceOrder("bank", Units(1), Units(6), OrderSideBuy, "a", 0)
	require.NoError(t, err)
	assert.Equal(t, Units(4), share.BestBid())

	_, err = share.PlaceOrder("bank", Units(1), Units(2), OrderSideBuy, "a", 0)
	require.NoError(t, err)
	assert.Equal(t, Units(2), share.BestBid())
}

func TestRequoteUsesMidpointWhenBothSidesQuoted(t *testing.T) {
	share, _ := newTestShare(t)

	// 只有單邊掛單時報價不動
	_, err := share.PlaceOrder("bank", Units(1), Units(9), OrderSideSell, "a", 0)
	require.NoError(t, err)
	assert.Equal(t, Units(1), share.Price)

	// 兩側都有值後，報價 = (bestBid + bestAsk) / 2 = (3+9)/2 = 6
	_, err = share.PlaceOrder("bank", Units(1), Units(3), OrderSideBuy, "a", 0)
	require.NoError(t, err)
	assert.Equal(t, Units(6), share.Price)
}

func TestExecuteOrderStrictPriceGate(t *testing.T) {
	share, _ := newTestShare(t)
	id, err := share.PlaceOrder("bank", Units(2), Units(1), OrderSideBuy, "alice", 0)
	require.NoError(t, err)

	err = share.ExecuteOrder("bank", id, Units(2), 0)
	var mismatch *PriceMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, Units(1), mismatch.Expected)
	assert.Equal(t, Units(2), mismatch.Actual)

	// 價格閘門擋下來，單位完全不動
	assert.Zero(t, share.HoldingOf("alice").Sign())

	err = share.ExecuteOrder("bank", 99, Units(1), 0)
	var missing *OrderDoesNotExistError
	assert.ErrorAs(t, err, &missing)
}

func TestExecuteBuyOrderMovesUnits(t *testing.T) {
	share, _ := newTestShare(t)
	id, err := share.PlaceOrder("bank", Units(2), Units(1), OrderSideBuy, "alice", 0)
	require.NoError(t, err)

	require.NoError(t, share.ExecuteOrder("bank", id, Units(1), 50))

	assert.Equal(t, Units(2), share.HoldingOf("alice"))
	assert.Equal(t, Units(1), share.Price)
	// 同一張單可以重複執行，簿上的單永不刪除
	require.NoError(t, share.ExecuteOrder("bank", id, Units(1), 60))
	assert.Equal(t, Units(4), share.HoldingOf("alice"))
}

func TestExecuteSellOrderPaysSeller(t *testing.T) {
	share, ledger := newTestShare(t)
	alice := Address("alice")
	require.NoError(t, share.Buy("bank", Units(5), alice, 0))
	require.NoError(t, ledger.Mint(share.Address, Units(5)))

	id, err := share.PlaceOrder("bank", Units(3), Units(1), OrderSideSell, alice, 0)
	require.NoError(t, err)
	require.NoError(t, share.ExecuteOrder("bank", id, Units(1), 0))

	assert.Equal(t, Units(2), share.HoldingOf(alice))
	assert.Equal(t, Units(3), ledger.BalanceOf(alice))
}

func TestExecuteOrderFailureLeavesQuoteUnchanged(t *testing.T) {
	ledger := NewLedger()
	share := NewShare("bank", "Tiny", "TNY", Units(5), Units(1), ledger)

	// 買單數量超過庫存；第二張賣單把報價中點推到 2
	id, err := share.PlaceOrder("bank", Units(10), Units(1), OrderSideBuy, "alice", 0)
	require.NoError(t, err)
	_, err = share.PlaceOrder("bank", Units(1), Units(3), OrderSideSell, "bob", 0)
	require.NoError(t, err)
	require.Equal(t, Units(2), share.Price)

	err = share.ExecuteOrder("bank", id, Units(1), 0)
	var insufficient *InsufficientSupplyError
	require.ErrorAs(t, err, &insufficient)

	// 失敗的執行不能動到報價或持股
	assert.Equal(t, Units(2), share.Price)
	assert.Zero(t, share.HoldingOf("alice").Sign())
}

func TestOrderReadsDoNotAliasTheBook(t *testing.T) {
	share, _ := newTestShare(t)
	id, err := share.PlaceOrder("bank", Units(2), Units(1), OrderSideBuy, "alice", 0)
	require.NoError(t, err)

	got, err := share.Order(id)
	require.NoError(t, err)
	got.Amount.SetInt64(0)
	got.Price.SetInt64(0)
	share.Orders()[0].Amount.SetInt64(0)

	// 讀出去的副本被改也影響不到簿上的原單
	again, err := share.Order(id)
	require.NoError(t, err)
	assert.Equal(t, Units(2), again.Amount)
	assert.Equal(t, Units(1), again.Price)
}
