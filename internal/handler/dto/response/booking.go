package response

import (
	"time"

	"github.com/TOOL2U/LandWise/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	PackageID       string    `json:"packageId"`
	PackageName     string    `json:"packageName"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone,omitempty"`
	LandLocation    string    `json:"landLocation,omitempty"`
	LandLat         *float64  `json:"landLat,omitempty"`
	LandLng         *float64  `json:"landLng,omitempty"`
	ProjectDetails  string    `json:"projectDetails,omitempty"`
	BookingDate     string    `json:"bookingDate"`
	PricePaid       int64     `json:"pricePaid"`
	IsEarlyAccess   bool      `json:"isEarlyAccess"`
	PaymentStatus   string    `json:"paymentStatus"`
	StripePaymentID *string   `json:"stripePaymentId,omitempty"`
	StripeSessionID *string   `json:"stripeSessionId,omitempty"`
	DocumentURLs    []string  `json:"documentUrls,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	PackageID     string    `json:"packageId"`
	PackageName   string    `json:"packageName"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	BookingDate   string    `json:"bookingDate"`
	PricePaid     int64     `json:"pricePaid"`
	IsEarlyAccess bool      `json:"isEarlyAccess"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	// Field names line up one to one with the read model.
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
