package request

// InquiryRequest is the contact-form payload. Only name and contact are
// mandatory; everything else enriches the operator notification.
type InquiryRequest struct {
	Name         string   `json:"name" binding:"required"`
	Contact      string   `json:"contact" binding:"required"`
	LandLocation string   `json:"landLocation"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	MapsLink     string   `json:"mapsLink"`
	Service      string   `json:"service"`
	Message      string   `json:"message"`
	FormType     string   `json:"formType"`
}
