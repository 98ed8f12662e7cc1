package usecase

import (
	"context"

	"github.com/tu-usuario/sedes-api/internal/application/dto"
	"github.com/tu-usuario/sedes-api/internal/domain/repository"
)

// HeadquarterUseCase consultas de sedes.
type HeadquarterUseCase struct {
	repo repository.HeadquarterRepository
}

// NewHeadquarterUseCase construye el caso de uso de sedes.
func NewHeadquarterUseCase(repo repository.HeadquarterRepository) *HeadquarterUseCase {
	return &HeadquarterUseCase{repo: repo}
}

// ListActive lista las sedes con estado activo.
func (uc *HeadquarterUseCase) ListActive(ctx context.Context) ([]*dto.HeadquarterResponse, error) {
	hqs, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.HeadquarterResponse, 0, len(hqs))
	for _, hq := range hqs {
		out = append(out, &dto.HeadquarterResponse{ID: hq.ID, Name: hq.Name, Status: hq.Status})
	}
	return out, nil
}
