//go:build unit || e2e

package builder

import (
	"time"

	dombooking "github.com/TOOL2U/LandWise/internal/domain/booking"
	reqdto "github.com/TOOL2U/LandWise/internal/handler/dto/request"
	"github.com/TOOL2U/LandWise/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	PackageID     string
	PackageName   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	LandLocation  string
	BookingDate   string
	PricePaid     int64
	IsEarlyAccess bool
	PaymentStatus dombooking.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:            uuid.New(),
		PackageID:     "visibility",
		PackageName:   "Visibility Package",
		CustomerName:  "Somchai Prasert",
		CustomerEmail: "somchai@example.com",
		CustomerPhone: "+66812345678",
		LandLocation:  "Hang Dong, Chiang Mai",
		BookingDate:   "2026-09-15",
		PricePaid:     30000,
		IsEarlyAccess: true,
		PaymentStatus: dombooking.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewPending(dombooking.Details{
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		LandLocation:  b.LandLocation,
		BookingDate:   b.BookingDate,
	}, b.PackageID, b.PackageName, b.PricePaid, b.IsEarlyAccess)
}

// BuildEntity returns a persisted-looking booking with id and timestamps set.
func (b *BookingBuilder) BuildEntity() *dombooking.Booking {
	return &dombooking.Booking{
		ID:            b.ID,
		PackageID:     b.PackageID,
		PackageName:   b.PackageName,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		LandLocation:  b.LandLocation,
		BookingDate:   b.BookingDate,
		PricePaid:     b.PricePaid,
		IsEarlyAccess: b.IsEarlyAccess,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		PackageID:     b.PackageID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		LandLocation:  b.LandLocation,
		BookingDate:   b.BookingDate,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		PackageID:     b.PackageID,
		PackageName:   b.PackageName,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		LandLocation:  b.LandLocation,
		BookingDate:   b.BookingDate,
		PricePaid:     b.PricePaid,
		IsEarlyAccess: b.IsEarlyAccess,
		PaymentStatus: b.PaymentStatus.String(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            b.ID,
		PackageID:     b.PackageID,
		PackageName:   b.PackageName,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		BookingDate:   b.BookingDate,
		PricePaid:     b.PricePaid,
		IsEarlyAccess: b.IsEarlyAccess,
		PaymentStatus: b.PaymentStatus.String(),
		CreatedAt:     b.CreatedAt,
	}
}
