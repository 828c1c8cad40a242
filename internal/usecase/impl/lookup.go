// Package impl contains the implementation of the application's
// business logic.
package impl

import (
	"slices"

	"getlife/internal/domain/entity"
)

// The stores expose whole-collection listings only, so the services
// resolve individual records in memory.

func findAccount(accounts []entity.Account, email string) (entity.Account, bool) {
	for _, account := range accounts {
		if account.Email == email {
			return account, true
		}
	}

	return entity.Account{}, false
}

func findProfile(profiles []entity.Profile, email string) (entity.Profile, bool) {
	for _, profile := range profiles {
		if profile.Email == email {
			return profile, true
		}
	}

	return entity.Profile{}, false
}

func findApplication(applications []entity.PartnerApplication, id string) (entity.PartnerApplication, bool) {
	for _, application := range applications {
		if application.ID == id {
			return application, true
		}
	}

	return entity.PartnerApplication{}, false
}

func findOrder(orders []entity.Order, id string) (entity.Order, bool) {
	for _, order := range orders {
		if order.ID == id {
			return order, true
		}
	}

	return entity.Order{}, false
}

func findTransaction(transactions []entity.Transaction, id string) (entity.Transaction, bool) {
	for _, transaction := range transactions {
		if transaction.ID == id {
			return transaction, true
		}
	}

	return entity.Transaction{}, false
}

func isBlocked(blocked []string, email string) bool {
	return slices.Contains(blocked, email)
}
