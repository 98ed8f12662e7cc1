package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/sedes-api/internal/domain/entity"
	"github.com/tu-usuario/sedes-api/internal/domain/repository"
)

var _ repository.HeadquarterRepository = (*HeadquarterRepo)(nil)

// HeadquarterRepo implementación del puerto HeadquarterRepository sobre PostgreSQL.
type HeadquarterRepo struct {
	pool *pgxpool.Pool
}

// NewHeadquarterRepository construye el adaptador de persistencia para sedes.
func NewHeadquarterRepository(pool *pgxpool.Pool) *HeadquarterRepo {
	return &HeadquarterRepo{pool: pool}
}

// ListActive lista las sedes con estado activo.
func (r *HeadquarterRepo) ListActive(ctx context.Context) ([]*entity.Headquarter, error) {
	query := `SELECT id, name, status FROM headquarters WHERE status = 'active' ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active headquarters: %w", err)
	}
	defer rows.Close()
	var list []*entity.Headquarter
	for rows.Next() {
		var hq entity.Headquarter
		if err := rows.Scan(&hq.ID, &hq.Name, &hq.Status); err != nil {
			return nil, fmt.Errorf("scan headquarter: %w", err)
		}
		list = append(list, &hq)
	}
	return list, rows.Err()
}

// GetByID obtiene una sede por ID.
func (r *HeadquarterRepo) GetByID(ctx context.Context, id int) (*entity.Headquarter, error) {
	query := `SELECT id, name, status FROM headquarters WHERE id = $1`
	var hq entity.Headquarter
	err := r.pool.QueryRow(ctx, query, id).Scan(&hq.ID, &hq.Name, &hq.Status)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get headquarter: %w", err)
	}
	return &hq, nil
}
