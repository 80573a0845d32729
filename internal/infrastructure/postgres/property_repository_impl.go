package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devsenior/property-service/internal/domain/entity"
	"github.com/devsenior/property-service/internal/domain/repository"
)

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func (r *PropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO properties (address, city, price, bedrooms, bathrooms, image_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, p.Address, p.City, p.Price, p.Bedrooms, p.Bathrooms, p.ImageURL, p.Description)

	return row.Scan(&p.ID)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*entity.Property, error) {
	p := &entity.Property{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, address, city, price, bedrooms, bathrooms, image_url, description
		FROM properties
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Address, &p.City, &p.Price, &p.Bedrooms,
		&p.Bathrooms, &p.ImageURL, &p.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *PropertyRepository) GetAll(ctx context.Context) ([]entity.Property, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, address, city, price, bedrooms, bathrooms, image_url, description
		FROM properties
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProperties(rows)
}

func (r *PropertyRepository) GetByCity(ctx context.Context, city string) ([]entity.Property, error) {
	// Exact, case-sensitive match on city.
	rows, err := r.pool.Query(ctx, `
		SELECT id, address, city, price, bedrooms, bathrooms, image_url, description
		FROM properties
		WHERE city = $1
		ORDER BY id
	`, city)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProperties(rows)
}

func (r *PropertyRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM properties WHERE id = $1)
	`, id).Scan(&exists)
	return exists, err
}

func (r *PropertyRepository) Update(ctx context.Context, p *entity.Property) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE properties
		SET address = $1, city = $2, price = $3, bedrooms = $4, bathrooms = $5,
		    image_url = $6, description = $7
		WHERE id = $8
	`, p.Address, p.City, p.Price, p.Bedrooms, p.Bathrooms, p.ImageURL, p.Description, p.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func scanProperties(rows pgx.Rows) ([]entity.Property, error) {
	out := make([]entity.Property, 0)
	for rows.Next() {
		var p entity.Property
		if err := rows.Scan(&p.ID, &p.Address, &p.City, &p.Price, &p.Bedrooms,
			&p.Bathrooms, &p.ImageURL, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ repository.PropertyRepository = (*PropertyRepository)(nil)
