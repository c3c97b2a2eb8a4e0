package catalog

// Package is a purchasable service tier. The catalog is static configuration:
// loaded once per process and read-only at request time. Prices are THB in
// major units; conversion to minor units happens only at the payment-provider
// boundary.
type Package struct {
	ID               string
	Name             string
	Tagline          string
	StandardPrice    int64
	EarlyAccessPrice int64
	Features         []string
	Popular          bool
}

// PriceFor resolves the charged amount for the current early-access state.
func (p Package) PriceFor(earlyAccess bool) int64 {
	if earlyAccess {
		return p.EarlyAccessPrice
	}
	return p.StandardPrice
}

var packages = []Package{
	{
		ID:               "snapshot",
		Name:             "LAND SNAPSHOT",
		Tagline:          "See your land clearly.",
		StandardPrice:    15000,
		EarlyAccessPrice: 12000,
		Features: []string{
			"Drone 2D map",
			"3D terrain model",
			"Photorealistic concept images",
			"Short cinematic video",
		},
	},
	{
		ID:               "visibility",
		Name:             "VISIBILITY REPORT",
		Tagline:          "Unlock visibility potential.",
		StandardPrice:    35000,
		EarlyAccessPrice: 30000,
		Features: []string{
			"Everything in Land Snapshot",
			"AI-enhanced photorealistic renders",
			"Legal overview (outsourced)",
			"Full branded PDF report",
		},
		Popular: true,
	},
	{
		ID:               "ready",
		Name:             "LAND READY PACKAGE",
		Tagline:          "From raw to ready.",
		StandardPrice:    90000,
		EarlyAccessPrice: 75000,
		Features: []string{
			"Everything in Visibility Report",
			"Land clearing",
			"Full land survey",
			"Development consultation",
		},
	},
}

// ByID looks up a package; ok is false for unknown ids.
func ByID(id string) (Package, bool) {
	for _, p := range packages {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}

// All returns the catalog in display order.
func All() []Package {
	out := make([]Package, len(packages))
	copy(out, packages)
	return out
}
