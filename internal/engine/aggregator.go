package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/forecast/internal/models"
)

// debtInstallmentDue reports whether the plan owes an installment in the
// given month. Installments run monthly from the start date; the first
// PaidCount of them are settled and no longer count.
func debtInstallmentDue(p models.DebtInstallmentPlan, year int, month time.Month) bool {
	k := monthsBetween(p.StartDate.Year(), p.StartDate.Month(), year, month)
	return k >= p.PaidCount && k < p.InstallmentCount
}

// DebtInstallmentDate returns the due date of installment k (zero-based),
// with the start day clamped to the length of the target month.
func DebtInstallmentDate(p models.DebtInstallmentPlan, k int) time.Time {
	m, y := addMonths(int(p.StartDate.Month()), p.StartDate.Year(), k)
	day := p.StartDate.Day()
	if last := daysInMonth(y, time.Month(m)); day > last {
		day = last
	}
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

type scheduledCommitment struct {
	commitment models.SalesCommitment
	parts      []Installment
}

// Aggregate builds the 12 month funding gap report for a year. Expense
// obligations and due debt installments form the expected outflow;
// high reliability income obligations, discounted to their available share,
// form the expected inflow. Sales contributions are reported next to the gap
// rather than netted into it, so callers can show "gap vs. what is already
// pipelined". Records that fail to process are collected into Skipped and
// the rest of the batch continues.
func (c SplitConfig) Aggregate(
	obligations []models.RecurringObligation,
	debtPlans []models.DebtInstallmentPlan,
	commitments []models.SalesCommitment,
	year int,
	commissionRatePercent float64,
) (models.YearGapReport, error) {
	if commissionRatePercent < 0 {
		return models.YearGapReport{}, fmt.Errorf("%w: commission rate %.2f", ErrInvalidAmount, commissionRatePercent)
	}
	if commissionRatePercent >= 100 {
		return models.YearGapReport{}, fmt.Errorf("%w: no available share remains at commission rate %.2f", ErrUnreachableTarget, commissionRatePercent)
	}

	report := models.YearGapReport{Year: year}

	// Schedule every live commitment once up front; its installment grid does
	// not depend on the month being aggregated.
	var sales []scheduledCommitment
	for _, sc := range commitments {
		if sc.Status == models.StatusLost {
			continue
		}
		parts, err := Schedule(sc.GrossAmountCents, sc.PaymentPlanType, sc.TargetMonth, sc.TargetYear)
		if err != nil {
			report.Skipped = append(report.Skipped, models.SkippedItem{
				SourceID:   sc.ID,
				SourceKind: models.SourceSalesInstallment,
				Reason:     err.Error(),
			})
			continue
		}
		sales = append(sales, scheduledCommitment{commitment: sc, parts: parts})
	}

	// Report each bad record once, not once per month or installment.
	skippedObligations := make(map[int64]bool)
	skippedCommitments := make(map[int64]bool)

	for m := 1; m <= 12; m++ {
		month := time.Month(m)
		snap := models.MonthlyGapSnapshot{Month: m, Year: year}

		for _, o := range obligations {
			if skippedObligations[o.ID] {
				continue
			}
			_, ok, err := occurrenceInMonth(o, year, month)
			if err != nil {
				skippedObligations[o.ID] = true
				report.Skipped = append(report.Skipped, models.SkippedItem{
					SourceID:   o.ID,
					SourceKind: models.SourceObligation,
					Reason:     err.Error(),
				})
				continue
			}
			if !ok {
				continue
			}
			switch o.Kind {
			case models.KindExpense:
				snap.ExpectedOutflowCents += o.GrossAmountCents
			case models.KindIncome:
				if o.Reliability != models.ReliabilityHigh {
					continue
				}
				split, err := c.Split(o.GrossAmountCents, 0)
				if err != nil {
					skippedObligations[o.ID] = true
					report.Skipped = append(report.Skipped, models.SkippedItem{
						SourceID:   o.ID,
						SourceKind: models.SourceObligation,
						Reason:     err.Error(),
					})
					continue
				}
				snap.ExpectedInflowAvailableCents += split.AvailableAmountCents
			}
		}

		for _, p := range debtPlans {
			if debtInstallmentDue(p, year, month) {
				snap.DebtInstallmentCents += p.InstallmentAmountCents
			}
		}
		snap.ExpectedOutflowCents += snap.DebtInstallmentCents

		for _, s := range sales {
			for _, part := range s.parts {
				if part.Month != m || part.Year != year {
					continue
				}
				split, err := c.Split(part.AmountCents, s.commitment.CommissionRatePercent)
				if err != nil {
					if !skippedCommitments[s.commitment.ID] {
						skippedCommitments[s.commitment.ID] = true
						report.Skipped = append(report.Skipped, models.SkippedItem{
							SourceID:   s.commitment.ID,
							SourceKind: models.SourceSalesInstallment,
							Reason:     err.Error(),
						})
					}
					continue
				}
				snap.CommittedGrossCents += part.AmountCents
				snap.CommittedAvailableCents += split.AvailableAmountCents
				if s.commitment.Status == models.StatusWon {
					snap.ClosedAvailableCents += split.AvailableAmountCents
				}
			}
		}

		if gap := snap.ExpectedOutflowCents - snap.ExpectedInflowAvailableCents; gap > 0 {
			snap.GapCents = gap
		}
		required, err := c.RequiredGross(snap.GapCents, commissionRatePercent)
		if err != nil {
			return models.YearGapReport{}, fmt.Errorf("required gross for %d-%02d: %w", year, m, err)
		}
		snap.RequiredGrossRevenueCents = required
		snap.CoveragePercent = coveragePercent(snap.GapCents, snap.CommittedAvailableCents)

		report.Months[m-1] = snap
	}

	report.Totals = sumYearTotals(report.Months)
	return report, nil
}

// coveragePercent is how much of the gap the pipelined sales already cover,
// capped at 100. A month without a gap is fully covered.
func coveragePercent(gapCents, committedAvailableCents int64) int {
	if gapCents <= 0 {
		return 100
	}
	pct := roundCents(decimal.NewFromInt(committedAvailableCents).Mul(hundred).Div(decimal.NewFromInt(gapCents)))
	if pct > 100 {
		return 100
	}
	return int(pct)
}

func sumYearTotals(months [12]models.MonthlyGapSnapshot) models.YearTotals {
	var t models.YearTotals
	for _, s := range months {
		t.ExpectedOutflowCents += s.ExpectedOutflowCents
		t.ExpectedInflowAvailableCents += s.ExpectedInflowAvailableCents
		t.DebtInstallmentCents += s.DebtInstallmentCents
		t.GapCents += s.GapCents
		t.RequiredGrossRevenueCents += s.RequiredGrossRevenueCents
		t.CommittedGrossCents += s.CommittedGrossCents
		t.CommittedAvailableCents += s.CommittedAvailableCents
		t.ClosedAvailableCents += s.ClosedAvailableCents
	}
	t.CoveragePercent = coveragePercent(t.GapCents, t.CommittedAvailableCents)
	return t
}
