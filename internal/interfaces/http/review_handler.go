package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/application/usecase"
)

// ReviewHandler reseñas, votos útiles y respuestas de empresa.
type ReviewHandler struct {
	uc *usecase.ReviewUseCase
}

// NewReviewHandler construye el handler.
func NewReviewHandler(uc *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar reseña
// @Description  Solo estudiantes; una reseña por usuario y empresa.
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReviewRequest  true  "Reseña"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), actorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Helpful godoc
// @Summary      Marcar reseña como útil
// @Tags         reviews
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reseña"
// @Success      200  {object}  dto.HelpfulVoteResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reviews/{id}/helpful [post]
func (h *ReviewHandler) Helpful(c *fiber.Ctx) error {
	out, err := h.uc.Helpful(c.Context(), actorFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Respond godoc
// @Summary      Responder a una reseña
// @Description  Representante de la empresa reseñada. Queda pendiente de moderación.
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la reseña"
// @Param        body  body  dto.CreateResponseRequest  true  "Texto"
// @Success      201   {object}  dto.ReviewReplyResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/reviews/{id}/responses [post]
func (h *ReviewHandler) Respond(c *fiber.Ctx) error {
	var in dto.CreateResponseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Respond(c.Context(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Moderate godoc
// @Summary      Moderar respuesta de empresa (admin)
// @Tags         admin-responses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la respuesta"
// @Param        body  body  dto.ModerateResponseRequest  true  "Decisión"
// @Success      200   {object}  dto.ReviewReplyResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/responses/{id} [put]
func (h *ReviewHandler) Moderate(c *fiber.Ctx) error {
	var in dto.ModerateResponseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Moderate(c.Context(), GetUserID(c), c.Params("id"), in.Decision)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
