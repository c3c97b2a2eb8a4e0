package request

import (
	"github.com/TOOL2U/LandWise/internal/domain/booking"
)

type Coordinates struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

// CheckoutRequest mirrors the booking form payload. Field names match the
// frontend contract exactly.
type CheckoutRequest struct {
	PackageID       string       `json:"packageId" binding:"required"`
	CustomerName    string       `json:"customerName" binding:"required"`
	CustomerEmail   string       `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string       `json:"customerPhone"`
	LandLocation    string       `json:"landLocation"`
	LandCoordinates *Coordinates `json:"landCoordinates,omitempty"`
	ProjectDetails  string       `json:"projectDetails"`
	BookingDate     string       `json:"bookingDate" binding:"required"`
	DocumentURLs    []string     `json:"documentUrls,omitempty"`
}

func (r CheckoutRequest) ToDetails() booking.Details {
	var coords *booking.Coordinates
	if r.LandCoordinates != nil {
		coords = &booking.Coordinates{Lat: r.LandCoordinates.Lat, Lng: r.LandCoordinates.Lng}
	}
	return booking.Details{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		LandLocation:    r.LandLocation,
		LandCoordinates: coords,
		ProjectDetails:  r.ProjectDetails,
		BookingDate:     r.BookingDate,
		DocumentURLs:    r.DocumentURLs,
	}
}
