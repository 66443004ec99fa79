package models

// UIConfig holds cosmetic preferences of the dashboard.
type UIConfig struct {
	// Theme selects the color scheme ("dark" or "light").
	Theme string `json:"theme"`

	// Locale is the BCP 47 tag used for number and date formatting.
	Locale string `json:"locale"`

	// DateFormat is the reference-time layout for rendered timestamps.
	DateFormat string `json:"dateFormat"`

	// ShowTooltips toggles explanatory hover tooltips.
	ShowTooltips bool `json:"showTooltips"`
}
