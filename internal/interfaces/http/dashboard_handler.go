package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/housing-reviews-api/internal/application/analytics"
)

// DashboardHandler maneja el panel de administración de alias.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del catálogo de alias.
// GET /api/admin/aliases/dashboard
//
// Respuesta: AliasDashboardResponse (active_aliases, unlinked_aliases,
// pending_suggestions, top_used[10]).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
