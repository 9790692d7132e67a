package service

import (
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Taxonomy    *TaxonomyService
	Transaction *TransactionService
	Analytics   *AnalyticsService
	Ledger      *LedgerService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Taxonomy:    NewTaxonomyService(store),
		Transaction: NewTransactionService(store),
		Analytics:   NewAnalyticsService(store),
		Ledger:      NewLedgerService(store),
	}
}
