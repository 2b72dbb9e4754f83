package store

import (
	"github.com/cashstate/cashstate-go/pkg/domain"
)

// Store is somewhere transactions fetched from the backend can be
// exported to.
type Store interface {
	Write([]*domain.Transaction) error
}
