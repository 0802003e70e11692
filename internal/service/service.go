package service

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ledgerline/forecast/internal/config"
	"github.com/ledgerline/forecast/internal/engine"
	"github.com/ledgerline/forecast/internal/models"
)

// Service handles projection requests from the surrounding CRUD layer. It
// orchestrates the pure engine calls and owns the logging boundary; the
// engine itself never logs.
type Service struct {
	split engine.SplitConfig
	log   *logrus.Logger
	cfg   *config.Config
}

// NewService initializes a new service
func NewService(log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		split: engine.SplitConfig{
			TaxRatePercent:       cfg.TaxRatePercent,
			PartnerSharePercents: cfg.PartnerSharePercents,
		},
		log: log,
		cfg: cfg,
	}
}

// Split exposes the configured gross amount breakdown.
func (s *Service) Split(grossAmountCents int64, commissionRatePercent float64) (models.SplitResult, error) {
	return s.split.Split(grossAmountCents, commissionRatePercent)
}

// RequiredGross exposes the configured inverse split.
func (s *Service) RequiredGross(targetAvailableCents int64, commissionRatePercent float64) (int64, error) {
	return s.split.RequiredGross(targetAvailableCents, commissionRatePercent)
}

// dateOnly drops the time-of-day so window comparisons work on whole days,
// matching how the engine treats dates.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildEventCalendar expands obligations and unpaid debt installments into
// concrete dated events inside the window. Expense events carry negative
// amounts, income events positive ones with their reliability tier attached.
// Obligations that fail to expand are logged and reported as skipped; the
// batch continues. A reversed window is a caller bug and aborts the call.
func (s *Service) BuildEventCalendar(
	obligations []models.RecurringObligation,
	debtPlans []models.DebtInstallmentPlan,
	windowStart, windowEnd time.Time,
) ([]models.DatedEvent, []models.SkippedItem, error) {
	windowStart, windowEnd = dateOnly(windowStart), dateOnly(windowEnd)

	var events []models.DatedEvent
	var skipped []models.SkippedItem

	for _, o := range obligations {
		dates, err := engine.Expand(o, windowStart, windowEnd)
		if err != nil {
			if errors.Is(err, engine.ErrInvalidDateRange) {
				return nil, nil, err
			}
			s.log.Warnf("Skipping obligation %d (%s): %v", o.ID, o.Label, err)
			skipped = append(skipped, models.SkippedItem{
				SourceID:   o.ID,
				SourceKind: models.SourceObligation,
				Reason:     err.Error(),
			})
			continue
		}
		amount := o.GrossAmountCents
		if o.Kind == models.KindExpense {
			amount = -amount
		}
		for _, date := range dates {
			events = append(events, models.DatedEvent{
				Date:        date,
				AmountCents: amount,
				SourceID:    o.ID,
				SourceKind:  models.SourceObligation,
				Tag:         o.Tag,
				Reliability: o.Reliability,
			})
		}
	}

	for _, p := range debtPlans {
		for k := p.PaidCount; k < p.InstallmentCount; k++ {
			date := engine.DebtInstallmentDate(p, k)
			if date.Before(windowStart) || date.After(windowEnd) {
				continue
			}
			events = append(events, models.DatedEvent{
				Date:        date,
				AmountCents: -p.InstallmentAmountCents,
				SourceID:    p.ID,
				SourceKind:  models.SourceDebtInstallment,
				Tag:         p.Creditor,
			})
		}
	}

	return events, skipped, nil
}

// Forecast answers "can the business survive the next N days": it expands the
// records over the horizon and simulates the cash balance day by day from the
// given position.
func (s *Service) Forecast(
	position models.CashPosition,
	obligations []models.RecurringObligation,
	debtPlans []models.DebtInstallmentPlan,
	horizonDays int,
) (models.SimulationResult, []models.SkippedItem, error) {
	if horizonDays <= 0 {
		horizonDays = s.cfg.DefaultHorizonDays
	}
	windowStart := position.AsOfDate
	windowEnd := position.AsOfDate.AddDate(0, 0, horizonDays-1)

	events, skipped, err := s.BuildEventCalendar(obligations, debtPlans, windowStart, windowEnd)
	if err != nil {
		return models.SimulationResult{}, nil, err
	}

	result := s.split.Simulate(position.StartingBalanceCents, events, horizonDays, position.AsOfDate)
	if result.InsolvencyDayOffset != nil {
		s.log.Warnf("Insolvency projected on %s (day %d of %d)",
			result.InsolvencyDate.Format("2006-01-02"), *result.InsolvencyDayOffset, horizonDays)
	} else {
		s.log.Infof("Horizon of %d days clears with ending balance %d cents", horizonDays, result.EndingBalanceCents)
	}
	return result, skipped, nil
}

// AnnualReport answers "is the business on track this year": the 12 month
// funding gap report with sales coverage.
func (s *Service) AnnualReport(
	obligations []models.RecurringObligation,
	debtPlans []models.DebtInstallmentPlan,
	commitments []models.SalesCommitment,
	year int,
	commissionRatePercent float64,
) (models.YearGapReport, error) {
	report, err := s.split.Aggregate(obligations, debtPlans, commitments, year, commissionRatePercent)
	if err != nil {
		return models.YearGapReport{}, err
	}
	for _, item := range report.Skipped {
		s.log.Warnf("Skipped %s %d: %s", item.SourceKind, item.SourceID, item.Reason)
	}
	s.log.Infof("Annual report for %d: total gap %d cents, required gross %d cents",
		year, report.Totals.GapCents, report.Totals.RequiredGrossRevenueCents)
	return report, nil
}
