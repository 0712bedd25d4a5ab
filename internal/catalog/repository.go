package catalog

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"grocer-be/internal/logger"
)

var ErrProductNotFound = errors.New("product not found")

// Repository is the read-only product listing. The catalog is given input
// data; nothing in the storefront writes to it.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
}

type memoryRepository struct {
	products []Product
}

func NewMemoryRepository(products []Product) Repository {
	return &memoryRepository{products: products}
}

func (r *memoryRepository) List(_ context.Context) ([]Product, error) {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) List(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListProducts"),
	)
	start := time.Now()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, image_url, category
		FROM products
		ORDER BY position, id
	`)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var (
			p     Product
			price string
		)
		if err := rows.Scan(&p.ID, &p.Name, &price, &p.Image, &p.Category); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		if p.Price, err = decimal.NewFromString(price); err != nil {
			log.Error("invalid price", zap.String("product_id", p.ID), zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return products, nil
}

func (r *postgresRepository) Get(ctx context.Context, id string) (Product, error) {
	var (
		p     Product
		price string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, image_url, category
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &price, &p.Image, &p.Category)

	if err == sql.ErrNoRows {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, err
	}

	p.Price, err = decimal.NewFromString(price)
	return p, err
}

// Filter keeps products whose name contains term, ignoring case. An empty term
// keeps everything.
func Filter(products []Product, term string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}
