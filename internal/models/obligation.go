package models

import "time"

// Frequency determines how often a recurring obligation occurs.
type Frequency string

const (
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiannual Frequency = "semiannual"
	FrequencyAnnual     Frequency = "annual"
	FrequencyOneTime    Frequency = "one_time"
)

// ObligationKind separates cash outflows from expected inflows.
type ObligationKind string

const (
	KindExpense ObligationKind = "expense"
	KindIncome  ObligationKind = "income"
)

// Reliability classifies how certain an expected income is. Only high
// reliability incomes count toward solvency.
type Reliability string

const (
	ReliabilityHigh   Reliability = "high"
	ReliabilityMedium Reliability = "medium"
	ReliabilityLow    Reliability = "low"
)

// Priority classifies an expense by necessity. Display ordering only.
type Priority string

const (
	PriorityEssential  Priority = "essential"
	PriorityImportant  Priority = "important"
	PriorityInvestment Priority = "investment"
	PriorityNormal     Priority = "normal"
)

// RecurringObligation is a recurring expense or expected income template.
// The anchor day is clamped to the last valid day of shorter months.
type RecurringObligation struct {
	ID               int64          `json:"id"`
	Label            string         `json:"label"`
	Kind             ObligationKind `json:"kind"`
	GrossAmountCents int64          `json:"gross_amount_cents"`
	Frequency        Frequency      `json:"frequency"`
	AnchorDay        int            `json:"anchor_day"`
	ValidFrom        time.Time      `json:"valid_from"`
	ValidUntil       *time.Time     `json:"valid_until,omitempty"`
	Tag              string         `json:"tag,omitempty"`
	Priority         Priority       `json:"priority,omitempty"`
	Reliability      Reliability    `json:"reliability,omitempty"`
}
