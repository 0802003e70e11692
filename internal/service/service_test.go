package service

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/forecast/internal/config"
	"github.com/ledgerline/forecast/internal/engine"
	"github.com/ledgerline/forecast/internal/models"
)

func newTestService() *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		LogLevel:             "info",
		TaxRatePercent:       22,
		PartnerSharePercents: []int{10, 20},
		DefaultHorizonDays:   90,
	}
	return NewService(logger, cfg)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildEventCalendar(t *testing.T) {
	svc := newTestService()

	obligations := []models.RecurringObligation{
		{
			ID: 1, Label: "rent", Kind: models.KindExpense,
			GrossAmountCents: 50000, Frequency: models.FrequencyMonthly,
			AnchorDay: 10, ValidFrom: date(2025, time.January, 1),
			Tag: "housing",
		},
		{
			ID: 2, Label: "retainer", Kind: models.KindIncome,
			GrossAmountCents: 90000, Frequency: models.FrequencyMonthly,
			AnchorDay: 20, ValidFrom: date(2025, time.January, 1),
			Reliability: models.ReliabilityHigh,
		},
	}
	debtPlans := []models.DebtInstallmentPlan{
		{
			ID: 10, Creditor: "supplier", TotalAmountCents: 60000,
			InstallmentAmountCents: 20000, InstallmentCount: 3, PaidCount: 1,
			StartDate: date(2025, time.January, 5),
		},
	}

	events, skipped, err := svc.BuildEventCalendar(obligations, debtPlans,
		date(2025, time.January, 1), date(2025, time.March, 31))
	require.NoError(t, err)
	assert.Empty(t, skipped)

	var expenses, incomes, debts int
	for _, e := range events {
		switch e.SourceKind {
		case models.SourceObligation:
			if e.AmountCents < 0 {
				expenses++
				assert.Equal(t, int64(-50000), e.AmountCents)
			} else {
				incomes++
				assert.Equal(t, int64(90000), e.AmountCents)
				assert.Equal(t, models.ReliabilityHigh, e.Reliability)
			}
		case models.SourceDebtInstallment:
			debts++
			assert.Equal(t, int64(-20000), e.AmountCents)
		}
	}
	assert.Equal(t, 3, expenses)
	assert.Equal(t, 3, incomes)
	// The paid first installment is gone; February and March remain.
	assert.Equal(t, 2, debts)
}

// A window carrying a time-of-day (an as-of unmarshalled from an RFC3339
// timestamp) must not drop an installment due on the as-of day itself.
func TestBuildEventCalendarNormalizesWindowTime(t *testing.T) {
	svc := newTestService()

	asOf := time.Date(2025, time.January, 5, 10, 0, 0, 0, time.UTC)
	obligations := []models.RecurringObligation{
		{
			ID: 1, Label: "rent", Kind: models.KindExpense,
			GrossAmountCents: 50000, Frequency: models.FrequencyMonthly,
			AnchorDay: 5, ValidFrom: date(2025, time.January, 1),
		},
	}
	debtPlans := []models.DebtInstallmentPlan{
		{
			ID: 10, Creditor: "supplier", TotalAmountCents: 40000,
			InstallmentAmountCents: 20000, InstallmentCount: 2, PaidCount: 0,
			StartDate: date(2025, time.January, 5),
		},
	}

	events, skipped, err := svc.BuildEventCalendar(obligations, debtPlans,
		asOf, asOf.AddDate(0, 0, 45))
	require.NoError(t, err)
	assert.Empty(t, skipped)

	var debts, expenses int
	for _, e := range events {
		switch e.SourceKind {
		case models.SourceDebtInstallment:
			debts++
		case models.SourceObligation:
			expenses++
		}
	}
	// Both installments survive, including the one due on the as-of day.
	assert.Equal(t, 2, debts)
	assert.Equal(t, 2, expenses)
}

func TestBuildEventCalendarSkipsBadObligation(t *testing.T) {
	svc := newTestService()

	obligations := []models.RecurringObligation{
		{
			ID: 1, Label: "odd", Kind: models.KindExpense,
			GrossAmountCents: 1000, Frequency: "weekly",
			AnchorDay: 1, ValidFrom: date(2025, time.January, 1),
		},
		{
			ID: 2, Label: "rent", Kind: models.KindExpense,
			GrossAmountCents: 50000, Frequency: models.FrequencyMonthly,
			AnchorDay: 1, ValidFrom: date(2025, time.January, 1),
		},
	}

	events, skipped, err := svc.BuildEventCalendar(obligations, nil,
		date(2025, time.January, 1), date(2025, time.January, 31))
	require.NoError(t, err)
	require.Len(t, skipped, 1)
	assert.Equal(t, int64(1), skipped[0].SourceID)
	assert.Equal(t, models.SourceObligation, skipped[0].SourceKind)
	require.Len(t, events, 1)
	assert.Equal(t, int64(2), events[0].SourceID)
}

func TestBuildEventCalendarReversedWindow(t *testing.T) {
	svc := newTestService()

	obligations := []models.RecurringObligation{
		{
			ID: 1, Kind: models.KindExpense, GrossAmountCents: 1000,
			Frequency: models.FrequencyMonthly, AnchorDay: 1,
			ValidFrom: date(2025, time.January, 1),
		},
	}

	_, _, err := svc.BuildEventCalendar(obligations, nil,
		date(2025, time.June, 1), date(2025, time.January, 1))
	require.ErrorIs(t, err, engine.ErrInvalidDateRange)
}

func TestForecastFlagsInsolvency(t *testing.T) {
	svc := newTestService()

	position := models.CashPosition{
		StartingBalanceCents: 100000,
		AsOfDate:             date(2025, time.January, 1),
	}
	obligations := []models.RecurringObligation{
		{
			ID: 1, Label: "payroll", Kind: models.KindExpense,
			GrossAmountCents: 150000, Frequency: models.FrequencyMonthly,
			AnchorDay: 15, ValidFrom: date(2025, time.January, 1),
		},
	}

	result, skipped, err := svc.Forecast(position, obligations, nil, 31)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.NotNil(t, result.InsolvencyDayOffset)
	assert.Equal(t, 14, *result.InsolvencyDayOffset)
	assert.Equal(t, date(2025, time.January, 15), *result.InsolvencyDate)
	assert.Equal(t, int64(-50000), result.EndingBalanceCents)
}

func TestForecastSurvivesWithIncome(t *testing.T) {
	svc := newTestService()

	position := models.CashPosition{
		StartingBalanceCents: 200000,
		AsOfDate:             date(2025, time.March, 1),
	}
	obligations := []models.RecurringObligation{
		{
			ID: 1, Label: "supplier", Kind: models.KindExpense,
			GrossAmountCents: 50000, Frequency: models.FrequencyOneTime,
			AnchorDay: 11, ValidFrom: date(2025, time.March, 1),
			ValidUntil: func() *time.Time { d := date(2025, time.March, 11); return &d }(),
		},
		{
			ID: 2, Label: "invoice", Kind: models.KindIncome,
			GrossAmountCents: 100000, Frequency: models.FrequencyOneTime,
			AnchorDay: 21, ValidFrom: date(2025, time.March, 1),
			ValidUntil:  func() *time.Time { d := date(2025, time.March, 21); return &d }(),
			Reliability: models.ReliabilityHigh,
		},
	}

	result, skipped, err := svc.Forecast(position, obligations, nil, 30)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Nil(t, result.InsolvencyDayOffset)
	assert.Equal(t, int64(207377), result.EndingBalanceCents)
}

func TestForecastDefaultsHorizon(t *testing.T) {
	svc := newTestService()

	position := models.CashPosition{
		StartingBalanceCents: 1000,
		AsOfDate:             date(2025, time.January, 1),
	}

	result, _, err := svc.Forecast(position, nil, nil, 0)
	require.NoError(t, err)
	assert.Nil(t, result.InsolvencyDayOffset)
	assert.Equal(t, int64(1000), result.EndingBalanceCents)
}

func TestAnnualReport(t *testing.T) {
	svc := newTestService()

	obligations := []models.RecurringObligation{
		{
			ID: 1, Label: "rent", Kind: models.KindExpense,
			GrossAmountCents: 100000, Frequency: models.FrequencyMonthly,
			AnchorDay: 1, ValidFrom: date(2025, time.January, 1),
		},
	}
	commitments := []models.SalesCommitment{
		{
			ID: 2, GrossAmountCents: 100000, PaymentPlanType: models.PlanImmediate,
			TargetMonth: 1, TargetYear: 2025, Status: models.StatusWon,
		},
	}

	report, err := svc.AnnualReport(obligations, nil, commitments, 2025, 0)
	require.NoError(t, err)
	assert.Equal(t, 2025, report.Year)
	assert.Equal(t, int64(100000), report.Months[0].ExpectedOutflowCents)
	assert.Equal(t, int64(57377), report.Months[0].CommittedAvailableCents)
	assert.Equal(t, 57, report.Months[0].CoveragePercent)
}

func TestServiceSplitPassthrough(t *testing.T) {
	svc := newTestService()

	result, err := svc.Split(100000, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(57377), result.AvailableAmountCents)

	gross, err := svc.RequiredGross(57377, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), gross)
}
