package policy

import (
	"fmt"
	"math"
	"time"
)

// Policy is the cancellation policy attached to a room's rate.
type Policy string

const (
	PolicyNonRefundable Policy = "NON_REFUNDABLE"
	PolicyFlexible      Policy = "FLEXIBLE"
	PolicyStrict        Policy = "STRICT"
)

// DefaultPolicy is the fail-safe applied when a room has no rate record:
// the business keeps the money rather than the guest.
const DefaultPolicy = PolicyNonRefundable

// StrictCutoffDays is the minimum number of days before check-in for a
// STRICT rate to still refund in full.
const StrictCutoffDays = 7

// Valid reports whether the policy is one of the known values.
func (p Policy) Valid() bool {
	switch p {
	case PolicyNonRefundable, PolicyFlexible, PolicyStrict:
		return true
	default:
		return false
	}
}

// Parse returns the policy for the given string, falling back to
// DefaultPolicy for unknown or empty input.
func Parse(s string) Policy {
	p := Policy(s)
	if !p.Valid() {
		return DefaultPolicy
	}

	return p
}

// RefundResult is the structured outcome of a refund computation. Reason is
// displayed to the guest verbatim.
type RefundResult struct {
	Refundable       bool    `json:"refundable"`
	RefundAmount     float64 `json:"refund_amount"`
	Policy           string  `json:"policy"`
	DaysUntilCheckIn int     `json:"days_until_check_in,omitempty"`
	UnusedNights     int     `json:"unused_nights,omitempty"`
	Reason           string  `json:"reason"`
}

const hoursPerDay = 24

// DaysBetween returns the number of whole days from a to b, ignoring the
// time of day on either side.
func DaysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	return int(b.Sub(a).Hours() / hoursPerDay)
}

// Nights returns the number of nights in a half-open [start, end) stay.
func Nights(start, end time.Time) int {
	return DaysBetween(start, end)
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// DiscountedRate applies a percentage discount to a nightly rate.
func DiscountedRate(rate, discountPercent float64) float64 {
	if discountPercent <= 0 {
		return roundCents(rate)
	}

	return roundCents(rate - rate*discountPercent/100)
}

// TotalPrice computes the stay total for a nightly rate over the given
// number of nights with an optional percentage discount.
func TotalPrice(rate float64, nights int, discountPercent float64) float64 {
	return roundCents(DiscountedRate(rate, discountPercent) * float64(nights))
}

// CancellationRefund decides whether cancelling a booking refunds the guest,
// and how much. checkIn and today are compared as whole dates.
func CancellationRefund(p Policy, checkIn, today time.Time, originalPrice float64) RefundResult {
	days := DaysBetween(today, checkIn)

	switch p {
	case PolicyFlexible:
		return RefundResult{
			Refundable:       true,
			RefundAmount:     roundCents(originalPrice),
			Policy:           string(p),
			DaysUntilCheckIn: days,
			Reason:           fmt.Sprintf("Flexible rate: full refund of %.2f.", originalPrice),
		}
	case PolicyStrict:
		if days >= StrictCutoffDays {
			return RefundResult{
				Refundable:       true,
				RefundAmount:     roundCents(originalPrice),
				Policy:           string(p),
				DaysUntilCheckIn: days,
				Reason:           fmt.Sprintf("Strict rate cancelled %d days before check-in: full refund of %.2f.", days, originalPrice),
			}
		}

		return RefundResult{
			Refundable:       false,
			RefundAmount:     0,
			Policy:           string(p),
			DaysUntilCheckIn: days,
			Reason:           fmt.Sprintf("Strict rate: cancellations within %d days of check-in are not refunded.", StrictCutoffDays),
		}
	default:
		return RefundResult{
			Refundable:       false,
			RefundAmount:     0,
			Policy:           string(PolicyNonRefundable),
			DaysUntilCheckIn: days,
			Reason:           "This rate is non-refundable.",
		}
	}
}

// EarlyCheckoutRefund prorates the unused nights of a stay when the guest
// leaves before the booked end date. The policy gates whether any refund is
// issued at all, using the same rules as cancellation; when it passes, the
// amount is the unused-night share of the original price rather than the
// full price.
func EarlyCheckoutRefund(p Policy, start, end, actualCheckout, today time.Time, originalPrice float64) RefundResult {
	totalNights := Nights(start, end)
	unusedNights := DaysBetween(actualCheckout, end)

	if totalNights <= 0 || unusedNights <= 0 {
		return RefundResult{
			Refundable:   false,
			RefundAmount: 0,
			Policy:       string(p),
			UnusedNights: 0,
			Reason:       "No unused nights remain; nothing to refund.",
		}
	}

	if unusedNights > totalNights {
		unusedNights = totalNights
	}

	gate := CancellationRefund(p, start, today, originalPrice)
	if !gate.Refundable {
		return RefundResult{
			Refundable:   false,
			RefundAmount: 0,
			Policy:       gate.Policy,
			UnusedNights: unusedNights,
			Reason:       gate.Reason,
		}
	}

	pricePerNight := originalPrice / float64(totalNights)
	amount := roundCents(float64(unusedNights) * pricePerNight)

	return RefundResult{
		Refundable:   true,
		RefundAmount: amount,
		Policy:       gate.Policy,
		UnusedNights: unusedNights,
		Reason:       fmt.Sprintf("%d unused nights refunded at %.2f per night.", unusedNights, roundCents(pricePerNight)),
	}
}
