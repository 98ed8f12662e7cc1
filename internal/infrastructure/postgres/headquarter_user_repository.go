package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/sedes-api/internal/domain/repository"
)

var _ repository.HeadquarterUserRepository = (*HeadquarterUserRepo)(nil)

// HeadquarterUserRepo adaptador para el vínculo usuario↔sede.
type HeadquarterUserRepo struct {
	pool *pgxpool.Pool
}

// NewHeadquarterUserRepository construye el adaptador del vínculo usuario↔sede.
func NewHeadquarterUserRepository(pool *pgxpool.Pool) *HeadquarterUserRepo {
	return &HeadquarterUserRepo{pool: pool}
}

// Create inserta el vínculo entre un usuario y una sede.
func (r *HeadquarterUserRepo) Create(ctx context.Context, email string, headquarterID int) error {
	query := `INSERT INTO headquarter_users (email, id_headquarter) VALUES ($1, $2)`
	_, err := r.pool.Exec(ctx, query, email, headquarterID)
	if err != nil {
		return fmt.Errorf("insert headquarter user: %w", err)
	}
	return nil
}
