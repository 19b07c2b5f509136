package mapping

import (
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	"github.com/voyaplan/travel_wallet_app/internal/models"
)

// ToModelFxRate converts a domain.FxRate to its database model.
func ToModelFxRate(d domain.FxRate) models.FxRate {
	return models.FxRate{
		RateID:        d.RateID,
		BaseCurrency:  d.BaseCurrency,
		QuoteCurrency: d.QuoteCurrency,
		Rate:          d.Rate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFxRate converts a models.FxRate to its domain representation.
func ToDomainFxRate(m models.FxRate) domain.FxRate {
	return domain.FxRate{
		RateID:        m.RateID,
		BaseCurrency:  m.BaseCurrency,
		QuoteCurrency: m.QuoteCurrency,
		Rate:          m.Rate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
