//go:build unit

package booking_test

import (
	"testing"

	"github.com/TOOL2U/LandWise/internal/domain/booking"
	"github.com/TOOL2U/LandWise/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewPending(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, booking.StatusPending, actual.PaymentStatus)
		assert.Equal(t, int64(30000), actual.PricePaid)
		assert.True(t, actual.IsEarlyAccess)
		assert.True(t, actual.CreatedAt.IsZero(), "timestamps are store-assigned")
		assert.Zero(t, actual.ID, "id is store-assigned")
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.CustomerName = "  Somchai Prasert  " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Somchai Prasert", actual.CustomerName)
	})

	t.Run("required field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing package id",
				mutate: func(b *builder.BookingBuilder) { b.PackageID = "" },
				errIs:  booking.ErrMissingPackage,
			},
			{
				name:   "missing customer name",
				mutate: func(b *builder.BookingBuilder) { b.CustomerName = "   " },
				errIs:  booking.ErrMissingCustomerName,
			},
			{
				name:   "missing customer email",
				mutate: func(b *builder.BookingBuilder) { b.CustomerEmail = "" },
				errIs:  booking.ErrMissingEmail,
			},
			{
				name:   "missing booking date",
				mutate: func(b *builder.BookingBuilder) { b.BookingDate = "" },
				errIs:  booking.ErrMissingBookingDate,
			},
			{
				name:   "malformed booking date",
				mutate: func(b *builder.BookingBuilder) { b.BookingDate = "15/09/2026" },
				errIs:  booking.ErrMissingBookingDate,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.BookingBuilder) { b.PricePaid = -1 },
				errIs:  booking.ErrNegativePrice,
			},
			{
				name:   "zero price is allowed",
				mutate: func(b *builder.BookingBuilder) { b.PricePaid = 0 },
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().With(tc.mutate)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
