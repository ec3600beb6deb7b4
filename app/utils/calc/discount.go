package calc

import "github.com/shopspring/decimal"

func CalculateDiscount(baseTotal, discountPercent decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(discountPercent).Div(decimal.NewFromInt(100))
}

func GetMembershipDiscountPercent() decimal.Decimal {
	return decimal.NewFromInt(MembershipDiscountPercent)
}

// MembershipDiscount is the whole-unit elite discount on subtotal, rounded down.
func MembershipDiscount(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}
	return CalculateDiscount(decimal.NewFromInt(subtotal), GetMembershipDiscountPercent()).Floor().IntPart()
}
