// Package customer provides the read-only identity directory used by the
// verification stage and the KYC city heuristics.
package customer

import (
	"context"
	"errors"
)

// ErrNotFound keeps directory-specific misses consistent across the in-memory
// and Postgres implementations.
var ErrNotFound = errors.New("customer not found")

// Customer is one registered identity in the directory.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	Phone string `json:"phone"`
}

// Directory is the identity lookup collaborator. Matching is case-insensitive
// on name and city and digits-only on phone. Implementations are immutable
// after construction; concurrent reads need no synchronization.
type Directory interface {
	FindByIdentity(ctx context.Context, name, city, phone string) (Customer, error)
	FindByID(ctx context.Context, id string) (Customer, error)
	Cities(ctx context.Context) ([]string, error)
}
