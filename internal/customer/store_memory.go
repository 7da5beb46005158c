package customer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// InMemoryDirectory serves lookups from a slice loaded once at startup. It
// favors clarity over performance; directory order is preserved because it
// breaks ties in city matching.
type InMemoryDirectory struct {
	customers []Customer
	cities    []string
}

// NewInMemoryDirectory builds a directory from the given customers.
func NewInMemoryDirectory(customers []Customer) *InMemoryDirectory {
	seen := make(map[string]bool)
	var cities []string
	for _, c := range customers {
		key := strings.ToLower(c.City)
		if c.City == "" || seen[key] {
			continue
		}
		seen[key] = true
		cities = append(cities, c.City)
	}
	return &InMemoryDirectory{customers: customers, cities: cities}
}

// LoadFile reads a JSON array of customers from disk.
func LoadFile(path string) ([]Customer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read customer directory: %w", err)
	}
	var customers []Customer
	if err := json.Unmarshal(raw, &customers); err != nil {
		return nil, fmt.Errorf("parse customer directory: %w", err)
	}
	return customers, nil
}

func (d *InMemoryDirectory) FindByIdentity(_ context.Context, name, city, phone string) (Customer, error) {
	nName := normalize(name)
	nCity := normalize(city)
	nPhone := nonDigitRe.ReplaceAllString(phone, "")
	for _, c := range d.customers {
		if normalize(c.Name) == nName && normalize(c.City) == nCity && nonDigitRe.ReplaceAllString(c.Phone, "") == nPhone {
			return c, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (d *InMemoryDirectory) FindByID(_ context.Context, id string) (Customer, error) {
	for _, c := range d.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (d *InMemoryDirectory) Cities(_ context.Context) ([]string, error) {
	return d.cities, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
