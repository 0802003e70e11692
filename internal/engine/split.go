package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/forecast/internal/models"
)

var hundred = decimal.NewFromInt(100)

// SplitConfig holds the rates that break a gross amount into its shares.
// Partner shares are percentages of the post-commission net amount.
type SplitConfig struct {
	TaxRatePercent       int
	PartnerSharePercents []int
}

// DefaultSplitConfig returns the reference configuration: 22% tax baked into
// gross amounts, partner shares of 10% and 20%.
func DefaultSplitConfig() SplitConfig {
	return SplitConfig{TaxRatePercent: 22, PartnerSharePercents: []int{10, 20}}
}

// taxFactor is 1 + tax/100, the factor baked into a tax-inclusive gross.
func (c SplitConfig) taxFactor() decimal.Decimal {
	return decimal.NewFromInt(int64(100 + c.TaxRatePercent)).Div(hundred)
}

func (c SplitConfig) partnerShareSumPercent() int {
	sum := 0
	for _, p := range c.PartnerSharePercents {
		sum += p
	}
	return sum
}

// roundCents rounds half-up on the cent boundary. decimal.Round rounds half
// away from zero, which is the same thing for the non-negative magnitudes
// handled here.
func roundCents(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

func percentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred)
}

// Split breaks a tax-inclusive gross amount into net, tax reserve,
// commission, partner shares and the operating-available remainder. Every
// stage rounds independently, so the parts may drift from the gross by a few
// cents; the drift is accepted, not corrected.
func (c SplitConfig) Split(grossAmountCents int64, commissionRatePercent float64) (models.SplitResult, error) {
	if grossAmountCents < 0 {
		return models.SplitResult{}, fmt.Errorf("%w: gross amount %d", ErrInvalidAmount, grossAmountCents)
	}
	if commissionRatePercent < 0 || commissionRatePercent > 100 {
		return models.SplitResult{}, fmt.Errorf("%w: commission rate %.2f", ErrInvalidAmount, commissionRatePercent)
	}

	gross := decimal.NewFromInt(grossAmountCents)
	net := decimal.NewFromInt(roundCents(gross.Div(c.taxFactor())))
	commission := roundCents(percentOf(net, decimal.NewFromFloat(commissionRatePercent)))
	postCommission := net.Sub(decimal.NewFromInt(commission))
	taxReserve := roundCents(percentOf(net, decimal.NewFromInt(int64(c.TaxRatePercent))))

	shares := make([]int64, len(c.PartnerSharePercents))
	var sharesSum int64
	for i, p := range c.PartnerSharePercents {
		shares[i] = roundCents(percentOf(postCommission, decimal.NewFromInt(int64(p))))
		sharesSum += shares[i]
	}

	return models.SplitResult{
		GrossAmountCents:     grossAmountCents,
		NetAmountCents:       net.IntPart(),
		TaxReserveCents:      taxReserve,
		CommissionCents:      commission,
		PartnerSharesCents:   shares,
		AvailableAmountCents: postCommission.IntPart() - sharesSum,
	}, nil
}

// RequiredGross inverts Split: the gross revenue whose available share covers
// the target. Because Split rounds each stage independently the round trip is
// exact only to within a couple of cents.
func (c SplitConfig) RequiredGross(targetAvailableCents int64, commissionRatePercent float64) (int64, error) {
	if targetAvailableCents <= 0 {
		return 0, nil
	}
	if commissionRatePercent < 0 || commissionRatePercent > 100 {
		return 0, fmt.Errorf("%w: commission rate %.2f", ErrInvalidAmount, commissionRatePercent)
	}

	commissionFactor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(commissionRatePercent).Div(hundred))
	shareFactor := decimal.NewFromInt(int64(100 - c.partnerShareSumPercent())).Div(hundred)
	denominator := commissionFactor.Mul(shareFactor)
	if denominator.IsZero() {
		return 0, fmt.Errorf("%w: no available share remains at commission rate %.2f", ErrUnreachableTarget, commissionRatePercent)
	}

	target := decimal.NewFromInt(targetAvailableCents)
	return roundCents(target.Mul(c.taxFactor()).Div(denominator)), nil
}
