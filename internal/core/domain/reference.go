package domain

// CountryCurrencyTable maps ISO-3166 country codes to the currency spent
// there. It is static reference data loaded once at startup; a lookup miss
// resolves to a caller-supplied fallback currency.
type CountryCurrencyTable map[string]string

// Resolve returns the currency for a country, or fallback if unmapped.
func (t CountryCurrencyTable) Resolve(countryCode, fallback string) string {
	if currency, ok := t[countryCode]; ok {
		return currency
	}
	return fallback
}

// TravelGuide holds static spending tips for a destination country.
type TravelGuide struct {
	CountryCode string   `json:"countryCode"`
	Title       string   `json:"title"`
	Tips        []string `json:"tips"`
}
