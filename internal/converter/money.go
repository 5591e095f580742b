package converter

import "github.com/shopspring/decimal"

// money Денежная сумма с округлением до копеек
func money(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// ratio Проценты и множители с округлением до сотых
func ratio(v float64) float64 {
	return money(v)
}
