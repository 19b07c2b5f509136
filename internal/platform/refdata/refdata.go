// Package refdata holds the static reference tables the travel features
// consult: which currency is spent in which country, and per-country
// spending guides. The tables are built once at startup and passed by
// reference to the services that need them.
package refdata

import (
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
)

// CountryCurrencies returns the country to currency mapping.
func CountryCurrencies() domain.CountryCurrencyTable {
	return domain.CountryCurrencyTable{
		"EE": "EUR",
		"HU": "HUF",
		"TR": "TRY",
		"GB": "GBP",
		"US": "USD",
		"PL": "PLN",
		"JP": "JPY",
	}
}

// TravelGuides returns the per-country spending guides.
func TravelGuides() map[string]domain.TravelGuide {
	return map[string]domain.TravelGuide{
		"JP": {
			CountryCode: "JP",
			Title:       "Japan spending guide",
			Tips: []string{
				"Carry some cash - many small places still prefer cash.",
				"Use IC cards (Suica/Pasmo) for metro and buses.",
				"Avoid currency conversion at POS, always pay in JPY.",
			},
		},
		"PL": {
			CountryCode: "PL",
			Title:       "Poland spending guide",
			Tips: []string{
				"Cards widely accepted, but keep small cash for kiosks.",
				"Avoid tourist ATMs, use bank ATMs instead.",
			},
		},
		"HU": {
			CountryCode: "HU",
			Title:       "Hungary spending guide",
			Tips: []string{
				"Most shops in Budapest accept contactless cards, but small kiosks may prefer cash.",
				"Avoid Euronet ATMs in tourist areas; bank-owned ATMs usually have better rates.",
				"Always choose HUF instead of 'pay in your card currency' to avoid bad conversion.",
			},
		},
		"TR": {
			CountryCode: "TR",
			Title:       "Turkey spending guide",
			Tips: []string{
				"Cards are common in big cities, but keep some TRY for taxis and small shops.",
			},
		},
	}
}
