package calc

import (
	"strings"

	"github.com/Rakhulsr/cloth-cafe/app/models"
)

const (
	MembershipDiscountPercent = 10
	// PointsPerCurrencyUnit is the fixed redemption rate of reward points.
	PointsPerCurrencyUnit = 100
)

type Quote struct {
	Subtotal            int64 `json:"subtotal"`
	MembershipApplied   bool  `json:"membership_applied"`
	MembershipDiscount  int64 `json:"membership_discount"`
	AvailablePoints     int64 `json:"available_points"`
	MaxRedeemablePoints int64 `json:"max_redeemable_points"`
	PointsApplied       bool  `json:"points_applied"`
	PointsDiscount      int64 `json:"points_discount"`
	PointsRedeemed      int64 `json:"points_redeemed"`
	PointsEarned        int64 `json:"points_earned"`
	FinalTotal          int64 `json:"final_total"`
}

// DiscountTotal is everything taken off the subtotal.
func (q Quote) DiscountTotal() int64 {
	return q.MembershipDiscount + q.PointsDiscount
}

func Subtotal(items []models.CartItem) int64 {
	return models.Cart(items).Subtotal()
}

func EarnedPoints(items []models.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.LinePoints()
	}
	return total
}

// CalculateQuote prices an item set: subtotal, then the membership discount,
// then points redemption capped so the total cannot go below zero.
func CalculateQuote(items []models.CartItem, membershipValidated bool, availablePoints int64, usePoints bool) Quote {
	if availablePoints < 0 {
		availablePoints = 0
	}

	q := Quote{
		Subtotal:          Subtotal(items),
		MembershipApplied: membershipValidated,
		AvailablePoints:   availablePoints,
		PointsApplied:     usePoints,
		PointsEarned:      EarnedPoints(items),
	}

	if membershipValidated {
		q.MembershipDiscount = MembershipDiscount(q.Subtotal)
	}

	afterMembership := q.Subtotal - q.MembershipDiscount
	q.MaxRedeemablePoints = max(0, min(availablePoints, afterMembership*PointsPerCurrencyUnit))

	if usePoints {
		q.PointsDiscount = q.MaxRedeemablePoints / PointsPerCurrencyUnit
		// Only whole currency units are bought with points; the remainder stays
		// on the balance.
		q.PointsRedeemed = q.PointsDiscount * PointsPerCurrencyUnit
	}

	q.FinalTotal = q.Subtotal - q.MembershipDiscount - q.PointsDiscount
	return q
}

// ValidateMembershipCode reports whether code belongs to an active member.
// The comparison ignores case and surrounding spaces.
func ValidateMembershipCode(members []models.Member, code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	for _, m := range members {
		if strings.EqualFold(m.MembershipCode, code) {
			return true
		}
	}
	return false
}
