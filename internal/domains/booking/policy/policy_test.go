package policy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeeper/internal/domains/booking/policy"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "three night stay",
			start: date(2026, time.March, 10),
			end:   date(2026, time.March, 13),
			want:  3,
		},
		{
			name:  "single night",
			start: date(2026, time.March, 10),
			end:   date(2026, time.March, 11),
			want:  1,
		},
		{
			name:  "same day is zero nights",
			start: date(2026, time.March, 10),
			end:   date(2026, time.March, 10),
			want:  0,
		},
		{
			name:  "time of day is ignored",
			start: time.Date(2026, time.March, 10, 23, 0, 0, 0, time.UTC),
			end:   time.Date(2026, time.March, 13, 1, 0, 0, 0, time.UTC),
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Nights(tt.start, tt.end))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name            string
		rate            float64
		nights          int
		discountPercent float64
		want            float64
	}{
		{
			name:            "discounted stay",
			rate:            100,
			nights:          3,
			discountPercent: 10,
			want:            270,
		},
		{
			name:            "no discount",
			rate:            100,
			nights:          3,
			discountPercent: 0,
			want:            300,
		},
		{
			name:            "rounds to cents",
			rate:            99.99,
			nights:          3,
			discountPercent: 15,
			want:            254.97,
		},
		{
			name:            "zero nights",
			rate:            100,
			nights:          0,
			discountPercent: 10,
			want:            0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, policy.TotalPrice(tt.rate, tt.nights, tt.discountPercent), 0.001)
		})
	}
}

func TestDiscountedRate(t *testing.T) {
	assert.InDelta(t, 90.0, policy.DiscountedRate(100, 10), 0.001)
	assert.InDelta(t, 100.0, policy.DiscountedRate(100, 0), 0.001)
	assert.InDelta(t, 100.0, policy.DiscountedRate(100, -5), 0.001)
}

func TestParse(t *testing.T) {
	assert.Equal(t, policy.PolicyStrict, policy.Parse("STRICT"))
	assert.Equal(t, policy.PolicyFlexible, policy.Parse("FLEXIBLE"))
	assert.Equal(t, policy.PolicyNonRefundable, policy.Parse("NON_REFUNDABLE"))

	// Unknown and empty values fall back to the fail-safe.
	assert.Equal(t, policy.PolicyNonRefundable, policy.Parse("GENEROUS"))
	assert.Equal(t, policy.PolicyNonRefundable, policy.Parse(""))
}

func TestCancellationRefund(t *testing.T) {
	today := date(2026, time.March, 1)

	tests := []struct {
		name           string
		policy         policy.Policy
		checkIn        time.Time
		price          float64
		wantRefundable bool
		wantAmount     float64
		wantDays       int
	}{
		{
			name:           "strict ten days out refunds in full",
			policy:         policy.PolicyStrict,
			checkIn:        date(2026, time.March, 11),
			price:          300,
			wantRefundable: true,
			wantAmount:     300,
			wantDays:       10,
		},
		{
			name:           "strict three days out refunds nothing",
			policy:         policy.PolicyStrict,
			checkIn:        date(2026, time.March, 4),
			price:          300,
			wantRefundable: false,
			wantAmount:     0,
			wantDays:       3,
		},
		{
			name:           "strict exactly seven days out refunds in full",
			policy:         policy.PolicyStrict,
			checkIn:        date(2026, time.March, 8),
			price:          300,
			wantRefundable: true,
			wantAmount:     300,
			wantDays:       7,
		},
		{
			name:           "strict six days out refunds nothing",
			policy:         policy.PolicyStrict,
			checkIn:        date(2026, time.March, 7),
			price:          300,
			wantRefundable: false,
			wantAmount:     0,
			wantDays:       6,
		},
		{
			name:           "flexible refunds in full regardless of lead time",
			policy:         policy.PolicyFlexible,
			checkIn:        date(2026, time.March, 2),
			price:          300,
			wantRefundable: true,
			wantAmount:     300,
			wantDays:       1,
		},
		{
			name:           "non-refundable never refunds",
			policy:         policy.PolicyNonRefundable,
			checkIn:        date(2026, time.June, 1),
			price:          300,
			wantRefundable: false,
			wantAmount:     0,
			wantDays:       92,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.CancellationRefund(tt.policy, tt.checkIn, today, tt.price)

			assert.Equal(t, tt.wantRefundable, got.Refundable)
			assert.InDelta(t, tt.wantAmount, got.RefundAmount, 0.001)
			assert.Equal(t, tt.wantDays, got.DaysUntilCheckIn)
			assert.Equal(t, string(tt.policy), got.Policy)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestEarlyCheckoutRefund(t *testing.T) {
	start := date(2026, time.March, 1)
	end := date(2026, time.March, 11) // 10 nights

	tests := []struct {
		name           string
		policy         policy.Policy
		actualCheckout time.Time
		today          time.Time
		price          float64
		wantRefundable bool
		wantAmount     float64
		wantUnused     int
	}{
		{
			name:           "flexible prorates unused nights",
			policy:         policy.PolicyFlexible,
			actualCheckout: date(2026, time.March, 7),
			today:          date(2026, time.March, 7),
			price:          500,
			wantRefundable: true,
			wantAmount:     200, // 4 unused nights at 50 per night
			wantUnused:     4,
		},
		{
			name:           "non-refundable keeps the full amount",
			policy:         policy.PolicyNonRefundable,
			actualCheckout: date(2026, time.March, 7),
			today:          date(2026, time.March, 7),
			price:          500,
			wantRefundable: false,
			wantAmount:     0,
			wantUnused:     4,
		},
		{
			name:           "strict mid-stay is inside the cutoff window",
			policy:         policy.PolicyStrict,
			actualCheckout: date(2026, time.March, 7),
			today:          date(2026, time.March, 7),
			price:          500,
			wantRefundable: false,
			wantAmount:     0,
			wantUnused:     4,
		},
		{
			name:           "checkout on the booked end date refunds nothing",
			policy:         policy.PolicyFlexible,
			actualCheckout: date(2026, time.March, 11),
			today:          date(2026, time.March, 11),
			price:          500,
			wantRefundable: false,
			wantAmount:     0,
			wantUnused:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.EarlyCheckoutRefund(tt.policy, start, end, tt.actualCheckout, tt.today, tt.price)

			assert.Equal(t, tt.wantRefundable, got.Refundable)
			assert.InDelta(t, tt.wantAmount, got.RefundAmount, 0.001)
			assert.Equal(t, tt.wantUnused, got.UnusedNights)
		})
	}
}
