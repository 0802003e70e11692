package models

import "time"

// SplitResult breaks a tax-inclusive gross amount into its shares. Each stage
// is rounded independently, so the parts may drift from the gross by a few
// cents.
type SplitResult struct {
	GrossAmountCents     int64   `json:"gross_amount_cents"`
	NetAmountCents       int64   `json:"net_amount_cents"`
	TaxReserveCents      int64   `json:"tax_reserve_cents"`
	CommissionCents      int64   `json:"commission_cents"`
	PartnerSharesCents   []int64 `json:"partner_shares_cents"`
	AvailableAmountCents int64   `json:"available_amount_cents"`
}

// CashPosition is the opening state of a simulation run.
type CashPosition struct {
	StartingBalanceCents int64     `json:"starting_balance_cents"`
	AsOfDate             time.Time `json:"as_of_date"`
}

// SimulationResult reports the first day a simulated horizon goes insolvent,
// if any, and the closing balance after the full horizon.
type SimulationResult struct {
	InsolvencyDayOffset *int       `json:"insolvency_day_offset"`
	InsolvencyDate      *time.Time `json:"insolvency_date"`
	EndingBalanceCents  int64      `json:"ending_balance_cents"`
}

// MonthlyGapSnapshot is the funding picture for one month of a year. The gap
// compares outflows to expected inflows only; sales coverage is reported
// alongside it, not netted into it.
type MonthlyGapSnapshot struct {
	Month                        int   `json:"month"`
	Year                         int   `json:"year"`
	ExpectedOutflowCents         int64 `json:"expected_outflow_cents"`
	ExpectedInflowAvailableCents int64 `json:"expected_inflow_available_cents"`
	DebtInstallmentCents         int64 `json:"debt_installment_cents"`
	GapCents                     int64 `json:"gap_cents"`
	RequiredGrossRevenueCents    int64 `json:"required_gross_revenue_cents"`
	CommittedGrossCents          int64 `json:"committed_gross_cents"`
	CommittedAvailableCents      int64 `json:"committed_available_cents"`
	ClosedAvailableCents         int64 `json:"closed_available_cents"`
	CoveragePercent              int   `json:"coverage_percent"`
}

// YearTotals sums the monthly snapshots; coverage is recomputed from the
// summed gap and committed amounts, not averaged.
type YearTotals struct {
	ExpectedOutflowCents         int64 `json:"expected_outflow_cents"`
	ExpectedInflowAvailableCents int64 `json:"expected_inflow_available_cents"`
	DebtInstallmentCents         int64 `json:"debt_installment_cents"`
	GapCents                     int64 `json:"gap_cents"`
	RequiredGrossRevenueCents    int64 `json:"required_gross_revenue_cents"`
	CommittedGrossCents          int64 `json:"committed_gross_cents"`
	CommittedAvailableCents      int64 `json:"committed_available_cents"`
	ClosedAvailableCents         int64 `json:"closed_available_cents"`
	CoveragePercent              int   `json:"coverage_percent"`
}

// SkippedItem records a record the engine could not process. One bad record
// never aborts a batch.
type SkippedItem struct {
	SourceID   int64  `json:"source_id"`
	SourceKind string `json:"source_kind"`
	Reason     string `json:"reason"`
}

// YearGapReport is the 12 month funding gap report for a year.
type YearGapReport struct {
	Year    int                    `json:"year"`
	Months  [12]MonthlyGapSnapshot `json:"months"`
	Totals  YearTotals             `json:"totals"`
	Skipped []SkippedItem          `json:"skipped,omitempty"`
}
