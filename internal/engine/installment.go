package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/forecast/internal/models"
)

// Installment is one dated share of a scheduled lump sum.
type Installment struct {
	Month       int   `json:"month"`
	Year        int   `json:"year"`
	AmountCents int64 `json:"amount_cents"`
}

// addMonths advances a one-based (month, year) pair, rolling the year on
// overflow.
func addMonths(month, year, delta int) (int, int) {
	m := month - 1 + delta
	return m%12 + 1, year + m/12
}

// Schedule spreads a lump sum over dated installments according to the
// payment plan. Remainders always land on the last installment so the parts
// sum exactly to the total. The scheduler has no notion of "paid"; payment
// status belongs to the caller.
func Schedule(totalCents int64, plan models.PaymentPlanType, startMonth, startYear int) ([]Installment, error) {
	if totalCents < 0 {
		return nil, fmt.Errorf("%w: total %d", ErrInvalidAmount, totalCents)
	}
	if startMonth < 1 || startMonth > 12 {
		return nil, fmt.Errorf("%w: start month %d", ErrInvalidDateRange, startMonth)
	}
	total := decimal.NewFromInt(totalCents)

	switch plan {
	case models.PlanImmediate, models.PlanCustom:
		return []Installment{{Month: startMonth, Year: startYear, AmountCents: totalCents}}, nil

	case models.PlanHalfNowHalf60d:
		first := roundCents(total.Div(decimal.NewFromInt(2)))
		m, y := addMonths(startMonth, startYear, 2)
		return []Installment{
			{Month: startMonth, Year: startYear, AmountCents: first},
			{Month: m, Year: y, AmountCents: totalCents - first},
		}, nil

	case models.PlanThirtySeventy21d:
		// The 21 day tail does not cross a month boundary.
		first := roundCents(percentOf(total, decimal.NewFromInt(30)))
		return []Installment{
			{Month: startMonth, Year: startYear, AmountCents: first},
			{Month: startMonth, Year: startYear, AmountCents: totalCents - first},
		}, nil

	case models.PlanQuarterly4x:
		quarter := roundCents(total.Div(decimal.NewFromInt(4)))
		installments := make([]Installment, 0, 4)
		for i := 0; i < 4; i++ {
			amount := quarter
			if i == 3 {
				amount = totalCents - 3*quarter
			}
			m, y := addMonths(startMonth, startYear, i*3)
			installments = append(installments, Installment{Month: m, Year: y, AmountCents: amount})
		}
		return installments, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPaymentPlan, plan)
	}
}
