package domain

import "math/big"

// 金額使用 *big.Int，並定義精度：小數點後 18 位
// (1000 個整數單位 = 10^21，已超過 int64/uint64 上限，必須用大數)
var (
	// CurrencyScale 固定小數位縮放係數 (10^18)
	CurrencyScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	// InitialGrant 開戶時鑄造給新帳戶的初始金額 (1000 個整數單位)
	InitialGrant = Units(1000)
)

// Units 把整數單位轉成 10^18 縮放後的金額
func Units(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), CurrencyScale)
}

// TotalCost 計算總成本: amount * price / 10^18
// 兩個參數都是 10^18 縮放值，相乘後要再除回縮放係數 (向下取整)
func TotalCost(amount, price *big.Int) *big.Int {
	cost := new(big.Int).Mul(amount, price)
	return cost.Quo(cost, CurrencyScale)
}

// isPositive 金額必須為正數 (nil 或 <= 0 都不合法)
func isPositive(amount *big.Int) bool {
	return amount != nil && amount.Sign() > 0
}
