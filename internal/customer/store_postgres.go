package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDirectory serves lookups from a customers table:
//
//	CREATE TABLE customers (
//	    id    TEXT PRIMARY KEY,
//	    name  TEXT NOT NULL,
//	    city  TEXT NOT NULL,
//	    phone TEXT NOT NULL
//	);
type PostgresDirectory struct {
	pool *pgxpool.Pool
}

// NewPostgresDirectory constructs a Postgres-backed directory.
func NewPostgresDirectory(pool *pgxpool.Pool) *PostgresDirectory {
	return &PostgresDirectory{pool: pool}
}

func (d *PostgresDirectory) FindByIdentity(ctx context.Context, name, city, phone string) (Customer, error) {
	var c Customer
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, city, phone FROM customers
		WHERE lower(trim(name)) = lower(trim($1))
		  AND lower(trim(city)) = lower(trim($2))
		  AND regexp_replace(phone, '\D', '', 'g') = regexp_replace($3, '\D', '', 'g')
		LIMIT 1`,
		name, city, phone,
	).Scan(&c.ID, &c.Name, &c.City, &c.Phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		return Customer{}, fmt.Errorf("find customer by identity: %w", err)
	}
	return c, nil
}

func (d *PostgresDirectory) FindByID(ctx context.Context, id string) (Customer, error) {
	var c Customer
	err := d.pool.QueryRow(ctx,
		`SELECT id, name, city, phone FROM customers WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.City, &c.Phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		return Customer{}, fmt.Errorf("find customer by id: %w", err)
	}
	return c, nil
}

// Cities returns the distinct city names in insertion order (the table's id
// order stands in for directory order).
func (d *PostgresDirectory) Cities(ctx context.Context) ([]string, error) {
	rows, err := d.pool.Query(ctx, `SELECT city FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list directory cities: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]bool)
	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("scan directory city: %w", err)
		}
		key := strings.ToLower(city)
		if city == "" || seen[key] {
			continue
		}
		seen[key] = true
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list directory cities: %w", err)
	}
	return cities, nil
}
