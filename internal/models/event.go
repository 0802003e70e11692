package models

import "time"

// Source kinds for dated events.
const (
	SourceObligation       = "obligation"
	SourceDebtInstallment  = "debt_installment"
	SourceSalesInstallment = "sales_installment"
)

// DatedEvent is the concrete dated occurrence of an obligation, a debt
// installment or a sales installment. Negative amounts are outflows,
// positive amounts are inflows. Events are produced on demand and carry no
// lifecycle of their own.
type DatedEvent struct {
	Date        time.Time   `json:"date"`
	AmountCents int64       `json:"amount_cents"`
	SourceID    int64       `json:"source_id"`
	SourceKind  string      `json:"source_kind"`
	Tag         string      `json:"tag,omitempty"`
	Paid        bool        `json:"paid"`
	Reliability Reliability `json:"reliability,omitempty"`
}
