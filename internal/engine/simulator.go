package engine

import (
	"time"

	"github.com/ledgerline/forecast/internal/models"
)

// Simulate walks the horizon one day at a time from the starting balance.
// Unpaid expenses debit at face value; unpaid high reliability incomes credit
// at their available share only (medium and low reliability incomes never
// count — the projection is deliberately pessimistic). A day's incomes land
// before its expenses, and insolvency is tested once per day after the full
// day's delta has been applied. The first insolvent day wins and is never
// overwritten, but the balance keeps running to the end of the horizon.
func (c SplitConfig) Simulate(startingBalanceCents int64, events []models.DatedEvent, horizonDays int, asOfDate time.Time) models.SimulationResult {
	asOf := dateOnly(asOfDate)

	credits := make(map[int]int64)
	debits := make(map[int]int64)
	for _, e := range events {
		if e.Paid {
			continue
		}
		offset := int(dateOnly(e.Date).Sub(asOf).Hours() / 24)
		if offset < 0 || offset >= horizonDays {
			continue
		}
		switch {
		case e.AmountCents < 0:
			debits[offset] += e.AmountCents
		case e.AmountCents > 0:
			if e.Reliability != models.ReliabilityHigh {
				continue
			}
			split, err := c.Split(e.AmountCents, 0)
			if err != nil {
				continue
			}
			credits[offset] += split.AvailableAmountCents
		}
	}

	balance := startingBalanceCents
	result := models.SimulationResult{}
	for day := 0; day < horizonDays; day++ {
		balance += credits[day]
		balance += debits[day]
		if balance < 0 && result.InsolvencyDayOffset == nil {
			offset := day
			date := asOf.AddDate(0, 0, day)
			result.InsolvencyDayOffset = &offset
			result.InsolvencyDate = &date
		}
	}
	result.EndingBalanceCents = balance
	return result
}
