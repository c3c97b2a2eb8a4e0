//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/TOOL2U/LandWise/internal/infra"
	"github.com/TOOL2U/LandWise/internal/pkg/errs"
	"github.com/TOOL2U/LandWise/internal/usecase/queries"
	queriesmock "github.com/TOOL2U/LandWise/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("maps not-found to the domain sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		q := queries.NewBookingQueries(store)
		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("maps unavailable to the store sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("connection refused", nil, infra.KindUnavailable))

		q := queries.NewBookingQueries(store)
		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("passes the view through on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		view := &queries.BookingView{ID: id, PaymentStatus: "paid"}
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), id).Return(view, nil)

		q := queries.NewBookingQueries(store)
		got, err := q.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})
}

func TestIsDateAvailable(t *testing.T) {
	ctx := context.Background()
	const date = "2026-09-15"

	cases := []struct {
		name     string
		paid     []*queries.BookingListItem
		storeErr error
		want     bool
	}{
		{name: "no paid bookings on the date", paid: nil, want: true},
		{name: "a paid booking exists", paid: []*queries.BookingListItem{{}}, want: false},
		{name: "store error defaults to available", storeErr: errs.New("db unreachable"), want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockBookingReadStore(ctrl)
			store.EXPECT().FindPaidByDate(gomock.Any(), date).Return(tc.paid, tc.storeErr)

			q := queries.NewBookingQueries(store)
			assert.Equal(t, tc.want, q.IsDateAvailable(ctx, date))
		})
	}
}
