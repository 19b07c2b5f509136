package domain

import (
	"github.com/shopspring/decimal"
)

// FxRate is an operator-supplied conversion rate between two currencies,
// meaning "1 unit of base = Rate units of quote". Entries are stored in one
// direction only; the reverse direction is derived as the reciprocal when no
// separate entry exists.
type FxRate struct {
	RateID        string          `json:"rateID"` // Primary Key (UUID)
	BaseCurrency  string          `json:"baseCurrency"`
	QuoteCurrency string          `json:"quoteCurrency"`
	Rate          decimal.Decimal `json:"rate"` // Always positive, never zero
	AuditFields
}

// RateSource records how a resolved rate was obtained.
type RateSource string

const (
	// RateSourceIdentity means base == quote, rate is exactly 1.
	RateSourceIdentity RateSource = "IDENTITY"
	// RateSourceDirect means a stored entry for (base, quote) was found.
	RateSourceDirect RateSource = "DIRECT"
	// RateSourceReciprocal means the rate was derived as 1 / rate(quote, base).
	RateSourceReciprocal RateSource = "RECIPROCAL"
	// RateSourceFallback means no data was available and the rate degraded
	// to 1. Callers presenting results must treat this as "no real data".
	RateSourceFallback RateSource = "FALLBACK"
)

// RateQuote is the result of resolving a currency pair. Resolution is total:
// there is always a numeric rate, but Source distinguishes a genuine quote
// from the 1:1 fallback.
type RateQuote struct {
	Base   string          `json:"base"`
	Quote  string          `json:"quote"`
	Rate   decimal.Decimal `json:"rate"`
	Source RateSource      `json:"source"`
}

// IsFallback reports whether the quote carries no real market data.
func (q RateQuote) IsFallback() bool {
	return q.Source == RateSourceFallback
}
