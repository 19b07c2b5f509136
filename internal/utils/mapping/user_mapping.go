package mapping

import (
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	"github.com/voyaplan/travel_wallet_app/internal/models"
)

// ToModelUser converts a domain.User to its database model.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		HomeCurrency: d.HomeCurrency,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a models.User to its domain representation.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		HomeCurrency: m.HomeCurrency,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
