package models

// PaymentPlanType determines how a sales commitment's gross amount is spread
// over installments.
type PaymentPlanType string

const (
	PlanImmediate        PaymentPlanType = "immediate"
	PlanHalfNowHalf60d   PaymentPlanType = "half_now_half_60d"
	PlanThirtySeventy21d PaymentPlanType = "thirty_seventy_21d"
	PlanQuarterly4x      PaymentPlanType = "quarterly_4x"
	PlanCustom           PaymentPlanType = "custom"
)

// CommitmentStatus is the pipeline stage of a sales commitment. Lost
// commitments never contribute to projections; only won ones count as
// closed cash.
type CommitmentStatus string

const (
	StatusObjective   CommitmentStatus = "objective"
	StatusOpportunity CommitmentStatus = "opportunity"
	StatusWon         CommitmentStatus = "won"
	StatusLost        CommitmentStatus = "lost"
)

// SalesCommitment is planned or closed revenue scheduled from a target month.
type SalesCommitment struct {
	ID                    int64            `json:"id"`
	GrossAmountCents      int64            `json:"gross_amount_cents"`
	CommissionRatePercent float64          `json:"commission_rate_percent"`
	PaymentPlanType       PaymentPlanType  `json:"payment_plan_type"`
	TargetMonth           int              `json:"target_month"`
	TargetYear            int              `json:"target_year"`
	Status                CommitmentStatus `json:"status"`
}
