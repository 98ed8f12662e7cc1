package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sedes-api/internal/application/usecase"
)

// HeadquarterHandler maneja consultas de sedes.
type HeadquarterHandler struct {
	uc *usecase.HeadquarterUseCase
}

// NewHeadquarterHandler construye el handler de sedes.
func NewHeadquarterHandler(uc *usecase.HeadquarterUseCase) *HeadquarterHandler {
	return &HeadquarterHandler{uc: uc}
}

// ListActive godoc
// @Summary      Listar sedes activas
// @Tags         headquarters
// @Produce      json
// @Success      200  {array}  dto.HeadquarterResponse
// @Router       /api/headquarters/active [get]
func (h *HeadquarterHandler) ListActive(c *fiber.Ctx) error {
	hqs, err := h.uc.ListActive(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(hqs)
}
