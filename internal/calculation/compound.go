package calculation

import "github.com/shopspring/decimal"

// CompoundBalances returns the year-start balance for every entry of returns.
// balances[0] is start and balances[i+1] = balances[i] * (1 + returns[i]), so
// the final return is never applied: it would describe growth past the last
// reported year start.
func CompoundBalances(start decimal.Decimal, returns []decimal.Decimal) []decimal.Decimal {
	balances := make([]decimal.Decimal, 0, len(returns))
	if len(returns) == 0 {
		return balances
	}
	balance := start
	balances = append(balances, balance)
	for _, r := range returns[:len(returns)-1] {
		balance = balance.Mul(decimal.NewFromInt(1).Add(r))
		balances = append(balances, balance)
	}
	return balances
}
