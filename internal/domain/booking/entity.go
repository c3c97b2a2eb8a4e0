package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingPackage      = errors.New("package id is required")
	ErrMissingCustomerName = errors.New("customer name is required")
	ErrMissingEmail        = errors.New("customer email is required")
	ErrMissingBookingDate  = errors.New("booking date is required")
	ErrNegativePrice       = errors.New("price cannot be negative")
)

// Coordinates is an optional lat/lng pair picked on the booking form map.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Booking is one customer's request to purchase a service package for a
// specific date. The id is assigned by the record store on insert and is
// immutable afterwards; PricePaid is a snapshot taken at creation and never
// recalculated.
type Booking struct {
	ID              uuid.UUID
	PackageID       string
	PackageName     string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	LandLocation    string
	LandCoordinates *Coordinates
	ProjectDetails  string
	BookingDate     string // ISO date (YYYY-MM-DD)
	PricePaid       int64
	IsEarlyAccess   bool
	PaymentStatus   Status
	StripePaymentID *string
	StripeSessionID *string
	DocumentURLs    []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Details carries the customer-supplied fields of a booking request.
type Details struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	LandLocation    string
	LandCoordinates *Coordinates
	ProjectDetails  string
	BookingDate     string
	DocumentURLs    []string
}

// NewPending builds a pending booking with the resolved price snapshot.
// Identity and timestamps stay zero until the store assigns them.
func NewPending(d Details, packageID, packageName string, pricePaid int64, isEarlyAccess bool) (*Booking, error) {
	if strings.TrimSpace(packageID) == "" {
		return nil, ErrMissingPackage
	}
	if strings.TrimSpace(d.CustomerName) == "" {
		return nil, ErrMissingCustomerName
	}
	if strings.TrimSpace(d.CustomerEmail) == "" {
		return nil, ErrMissingEmail
	}
	if _, err := time.Parse("2006-01-02", d.BookingDate); err != nil {
		return nil, ErrMissingBookingDate
	}
	if pricePaid < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		PackageID:       packageID,
		PackageName:     packageName,
		CustomerName:    strings.TrimSpace(d.CustomerName),
		CustomerEmail:   strings.TrimSpace(d.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(d.CustomerPhone),
		LandLocation:    strings.TrimSpace(d.LandLocation),
		LandCoordinates: d.LandCoordinates,
		ProjectDetails:  strings.TrimSpace(d.ProjectDetails),
		BookingDate:     d.BookingDate,
		PricePaid:       pricePaid,
		IsEarlyAccess:   isEarlyAccess,
		PaymentStatus:   StatusPending,
		DocumentURLs:    d.DocumentURLs,
	}, nil
}
