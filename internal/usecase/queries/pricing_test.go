//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/TOOL2U/LandWise/internal/pkg/errs"
	"github.com/TOOL2U/LandWise/internal/usecase/queries"
	queriesmock "github.com/TOOL2U/LandWise/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestIsEarlyAccessActive(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		limit    int
		paid     int64
		storeErr error
		want     bool
	}{
		{name: "no paid bookings yet", limit: 10, paid: 0, want: true},
		{name: "below the limit", limit: 10, paid: 9, want: true},
		{name: "at the limit", limit: 10, paid: 10, want: false},
		{name: "past the limit", limit: 10, paid: 42, want: false},
		{name: "limit of zero closes immediately", limit: 0, paid: 0, want: false},
		{name: "store error defaults open", limit: 10, paid: 0, storeErr: errs.New("db unreachable"), want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockBookingReadStore(ctrl)
			store.EXPECT().CountByStatus(gomock.Any(), "paid").Return(tc.paid, tc.storeErr)

			pricing := queries.NewPricingQueries(store, tc.limit)
			assert.Equal(t, tc.want, pricing.IsEarlyAccessActive(ctx))
		})
	}
}
