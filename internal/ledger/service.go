package ledger

import (
	"gorm.io/gorm" // GORM ORM library
)

// Service bundles the wallet store, the ledger entry store and the
// settlement engine over one database handle.
type Service struct {
	db    *gorm.DB  // Database handle
	locks lockTable // Per-ledger-entry advisory locks for settlement
}

// NewService creates a Service on top of an opened database.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db, locks: newLockTable()}
}

// DB exposes the underlying handle for callers that run their own queries.
func (s *Service) DB() *gorm.DB {
	return s.db
}
