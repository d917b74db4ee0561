package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressOfStable(t *testing.T) {
	a := AddressOf("Alice", "Chen", "A-0001")
	b := AddressOf("Alice", "Chen", "A-0001")
	assert.Equal(t, a, b)

	// 欄位切法不同就是不同地址
	assert.NotEqual(t, AddressOf("ab", "c"), AddressOf("a", "bc"))
}

func TestLedgerMintAndTransfer(t *testing.T) {
	l := NewLedger()
	alice := Address("alice")
	bob := Address("bob")

	require.NoError(t, l.Mint(alice, Units(1000)))
	assert.Equal(t, Units(1000), l.BalanceOf(alice))
	assert.Equal(t, Units(1000), l.TotalSupply())

	require.NoError(t, l.Transfer(alice, bob, Units(400)))
	assert.Equal(t, Units(600), l.BalanceOf(alice))
	assert.Equal(t, Units(400), l.BalanceOf(bob))

	// 轉帳不改變總供給 (守恆)
	assert.Equal(t, Units(1000), l.TotalSupply())
}

func TestLedgerTransferInsufficientBalance(t *testing.T) {
	l := NewLedger()
	alice := Address("alice")
	bob := Address("bob")
	require.NoError(t, l.Mint(alice, Units(10)))

	err := l.Transfer(alice, bob, Units(11))
	var insufficient *InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, alice, insufficient.Account)

	// 失敗時雙方餘額都不動
	assert.Equal(t, Units(10), l.BalanceOf(alice))
	assert.Zero(t, l.BalanceOf(bob).Sign())
}

func TestLedgerRejectsNonPositiveAmounts(t *testing.T) {
	l := NewLedger()
	alice := Address("alice")
	require.NoError(t, l.Mint(alice, Units(10)))

	assert.ErrorIs(t, l.Mint(alice, big.NewInt(0)), ErrAmountMustBePositive)
	assert.ErrorIs(t, l.Mint(alice, big.NewInt(-1)), ErrAmountMustBePositive)
	assert.ErrorIs(t, l.Mint(alice, nil), ErrAmountMustBePositive)
	assert.ErrorIs(t, l.Transfer(alice, "bob", big.NewInt(0)), ErrAmountMustBePositive)
	assert.ErrorIs(t, l.TransferFrom("spender", alice, "bob", big.NewInt(-5)), ErrAmountMustBePositive)
}

func TestLedgerApproveAndTransferFrom(t *testing.T) {
	l := NewLedger()
	alice := Address("alice")
	bank := Address("bank")
	pool := Address("pool")
	require.NoError(t, l.Mint(alice, Units(100)))

	// Approve 是覆蓋語義，不累加
	require.NoError(t, l.Approve(alice, bank, Units(50)))
	require.NoError(t, l.Approve(alice, bank, Units(30)))
	assert.Equal(t, Units(30), l.Allowance(alice, bank))

	require.NoError(t, l.TransferFrom(bank, alice, pool, Units(20)))
	assert.Equal(t, Units(80), l.BalanceOf(alice))
	assert.Equal(t, Units(20), l.BalanceOf(pool))
	// 成功後額度同步扣減
	assert.Equal(t, Units(10), l.Allowance(alice, bank))
}

func TestLedgerTransferFromInsufficientAllowance(t *testing.T) {
	l := NewLedger()
	alice := Address("alice")
	bank := Address("bank")
	require.NoError(t, l.Mint(alice, Units(100)))
	require.NoError(t, l.Approve(alice, bank, Units(5)))

	err := l.TransferFrom(bank, alice, "pool", Units(6))
	var insufficient *InsufficientAllowanceError
	require.ErrorAs(t, err, &insufficient)

	assert.Equal(t, Units(100), l.BalanceOf(alice))
	assert.Equal(t, Units(5), l.Allowance(alice, bank))
}

func TestLedgerBalanceOfReturnsCopy(t *testing.T) {
	l := NewLedger()
	alice := Address("alice")
	require.NoError(t, l.Mint(alice, Units(10)))

	b := l.BalanceOf(alice)
	b.SetInt64(0)
	assert.Equal(t, Units(10), l.BalanceOf(alice))
}

func TestTotalCostScaling(t *testing.T) {
	// 10 單位 * 單價 1 單位 = 10 單位 (兩個輸入都是 10^18 縮放)
	assert.Equal(t, Units(10), TotalCost(Units(10), Units(1)))
	// 3 單位 * 單價 0.5 = 1.5 單位
	half := new(big.Int).Div(Units(1), big.NewInt(2))
	want := new(big.Int).Add(Units(1), half)
	assert.Equal(t, want, TotalCost(Units(3), half))
}
