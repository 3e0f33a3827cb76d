// Package catalog provides the sqlite-backed product store.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // sqlite driver

	"gostore/models"
)

// ErrNotFound is returned when a product id has no matching row.
var ErrNotFound = errors.New("product not found")

// ValidationError reports a rejected product field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Store holds the product database connection.
type Store struct {
	db *sql.DB
}

// New wraps an existing database handle. Used by tests; normal
// startup goes through Open.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens (creating if necessary) the sqlite database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A sqlite file takes one writer, and an in-memory database is
	// scoped to its connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Store{db: db}, nil
}

// Init creates the products table if it does not exist.
func (s *Store) Init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			price REAL NOT NULL,
			stock INTEGER DEFAULT 0
		)`)
	if err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	return nil
}

// Seed drops and recreates the products table with sample data.
func (s *Store) Seed() error {
	if _, err := s.db.Exec(`DROP TABLE IF EXISTS products`); err != nil {
		return fmt.Errorf("failed to drop products table: %w", err)
	}
	if err := s.Init(); err != nil {
		return err
	}

	samples := []models.ProductInput{
		{Name: "Laptop", Price: 899.99, Stock: 10},
		{Name: "Smartphone", Price: 499.99, Stock: 25},
		{Name: "Headphones", Price: 89.99, Stock: 50},
		{Name: "Office Chair", Price: 149.99, Stock: 8},
	}
	for _, p := range samples {
		if _, err := s.InsertProduct(p.Name, p.Price, p.Stock); err != nil {
			return err
		}
	}
	return nil
}

// ListProducts retrieves all products in storage order.
func (s *Store) ListProducts() ([]models.Product, error) {
	rows, err := s.db.Query(`SELECT id, name, price, stock FROM products`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a single product by id. Returns ErrNotFound
// when no row matches.
func (s *Store) GetProduct(id int) (models.Product, error) {
	var p models.Product
	err := s.db.QueryRow(`SELECT id, name, price, stock FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, fmt.Errorf("failed to fetch product: %w", err)
	}
	return p, nil
}

// InsertProduct adds a new product and returns its assigned id.
func (s *Store) InsertProduct(name string, price float64, stock int) (int, error) {
	if name == "" {
		return 0, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if price < 0 {
		return 0, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if stock < 0 {
		return 0, &ValidationError{Field: "stock", Reason: "must not be negative"}
	}

	result, err := s.db.Exec(`INSERT INTO products (name, price, stock) VALUES (?, ?, ?)`,
		name, price, stock)
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get product ID: %w", err)
	}
	return int(id), nil
}

// DeleteProduct removes a product by id. Deleting an id that does
// not exist is not an error.
func (s *Store) DeleteProduct(id int) error {
	if _, err := s.db.Exec(`DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// Ping checks the database connection.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
