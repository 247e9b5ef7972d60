package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/application/usecase"
)

// SuggestionHandler alta pública de sugerencias y su revisión.
type SuggestionHandler struct {
	uc *usecase.SuggestionUseCase
}

// NewSuggestionHandler construye el handler.
func NewSuggestionHandler(uc *usecase.SuggestionUseCase) *SuggestionHandler {
	return &SuggestionHandler{uc: uc}
}

// Submit godoc
// @Summary      Sugerir un alias
// @Description  Si el nombre ya es un alias activo devuelve should_use_existing y no guarda nada.
// @Tags         aliases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitSuggestionRequest  true  "Nombre sugerido"
// @Success      200   {object}  dto.SubmitSuggestionResponse  "alias existente"
// @Success      201   {object}  dto.SubmitSuggestionResponse  "sugerencia creada"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/aliases/suggestions [post]
func (h *SuggestionHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitSuggestionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Submit(c.Context(), in, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	if out.ShouldUseExisting {
		return c.JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar sugerencias (admin)
// @Tags         admin-suggestions
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending, approved, rejected, merged"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.SuggestionListResponse
// @Router       /api/admin/suggestions [get]
func (h *SuggestionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("status"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Review godoc
// @Summary      Aprobar o rechazar una sugerencia (admin)
// @Tags         admin-suggestions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la sugerencia"
// @Param        body  body  dto.ReviewSuggestionRequest  true  "Decisión"
// @Success      200   {object}  dto.ReviewSuggestionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/suggestions/{id}/review [put]
func (h *SuggestionHandler) Review(c *fiber.Ctx) error {
	var in dto.ReviewSuggestionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Review(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
