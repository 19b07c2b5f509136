package mapping

import (
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	"github.com/voyaplan/travel_wallet_app/internal/models"
)

// ToModelTravelState converts a domain.TravelState to its database model.
func ToModelTravelState(d domain.TravelState) models.TravelState {
	return models.TravelState{
		UserID:         d.UserID,
		CurrentCountry: d.CurrentCountry,
		LocalCurrency:  d.LocalCurrency,
		LastUpdatedAt:  d.LastUpdatedAt,
	}
}

// ToDomainTravelState converts a models.TravelState to its domain representation.
func ToDomainTravelState(m models.TravelState) domain.TravelState {
	return domain.TravelState{
		UserID:         m.UserID,
		CurrentCountry: m.CurrentCountry,
		LocalCurrency:  m.LocalCurrency,
		LastUpdatedAt:  m.LastUpdatedAt,
	}
}

// ToModelTravelWallet converts a domain.TravelWallet to its database model.
func ToModelTravelWallet(d domain.TravelWallet) models.TravelWallet {
	return models.TravelWallet{
		WalletID:    d.WalletID,
		UserID:      d.UserID,
		Name:        d.Name,
		CountryCode: d.CountryCode,
		Currency:    d.Currency,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		SoftBudget:  d.SoftBudget,
		HardBudget:  d.HardBudget,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTravelWallet converts a models.TravelWallet to its domain representation.
func ToDomainTravelWallet(m models.TravelWallet) domain.TravelWallet {
	return domain.TravelWallet{
		WalletID:    m.WalletID,
		UserID:      m.UserID,
		Name:        m.Name,
		CountryCode: m.CountryCode,
		Currency:    m.Currency,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		SoftBudget:  m.SoftBudget,
		HardBudget:  m.HardBudget,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelWalletTransaction converts a domain.WalletTransaction to its database model.
func ToModelWalletTransaction(d domain.WalletTransaction) models.WalletTransaction {
	return models.WalletTransaction{
		TransactionID: d.TransactionID,
		WalletID:      d.WalletID,
		UserID:        d.UserID,
		Description:   d.Description,
		Category:      d.Category,
		AmountLocal:   d.AmountLocal,
		CurrencyLocal: d.CurrencyLocal,
		AmountHome:    d.AmountHome,
		CurrencyHome:  d.CurrencyHome,
		IsPreTrip:     d.IsPreTrip,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainWalletTransaction converts a models.WalletTransaction to its domain representation.
func ToDomainWalletTransaction(m models.WalletTransaction) domain.WalletTransaction {
	return domain.WalletTransaction{
		TransactionID: m.TransactionID,
		WalletID:      m.WalletID,
		UserID:        m.UserID,
		Description:   m.Description,
		Category:      m.Category,
		AmountLocal:   m.AmountLocal,
		CurrencyLocal: m.CurrencyLocal,
		AmountHome:    m.AmountHome,
		CurrencyHome:  m.CurrencyHome,
		IsPreTrip:     m.IsPreTrip,
		CreatedAt:     m.CreatedAt,
	}
}
