package mapping

import (
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	"github.com/voyaplan/travel_wallet_app/internal/models"
)

// ToModelAccount converts a domain.Account to its database model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		UserID:      d.UserID,
		Currency:    d.Currency,
		Balance:     d.Balance,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a models.Account to its domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		UserID:      m.UserID,
		Currency:    m.Currency,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
