package models

import "time"

// DebtInstallmentPlan is a fixed-installment debt repaid monthly from the
// start date.
type DebtInstallmentPlan struct {
	ID                     int64     `json:"id"`
	Creditor               string    `json:"creditor"`
	TotalAmountCents       int64     `json:"total_amount_cents"`
	InstallmentAmountCents int64     `json:"installment_amount_cents"`
	InstallmentCount       int       `json:"installment_count"`
	PaidCount              int       `json:"paid_count"`
	StartDate              time.Time `json:"start_date"`
}

// RemainingBalanceCents returns the unpaid portion of the plan.
func (p DebtInstallmentPlan) RemainingBalanceCents() int64 {
	return p.TotalAmountCents - int64(p.PaidCount)*p.InstallmentAmountCents
}
