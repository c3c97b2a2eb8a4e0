package response

// PackageResponse mirrors the pricing cards on the landing page. Both price
// tiers are returned so the frontend can render the strikethrough.
type PackageResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Tagline          string   `json:"tagline"`
	StandardPrice    int64    `json:"standardPrice"`
	EarlyAccessPrice int64    `json:"earlyAccessPrice"`
	CurrentPrice     int64    `json:"currentPrice"`
	Features         []string `json:"features"`
	Popular          bool     `json:"popular"`
}

type EarlyAccessResponse struct {
	Available bool              `json:"available"`
	Packages  []PackageResponse `json:"packages"`
}

type AvailabilityResponse struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}
