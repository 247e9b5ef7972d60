package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/application/usecase"
)

// UserHandler perfil, score y tareas del usuario autenticado.
type UserHandler struct {
	uc *usecase.UserUseCase
}

func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetMe godoc
// @Summary      Perfil propio
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateMe godoc
// @Summary      Actualizar perfil propio
// @Description  Mezcla parcial: los campos ausentes no cambian. Recalcula completitud y trust.
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserProfileDTO  true  "Campos del perfil"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UserProfileDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateProfile(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Score godoc
// @Summary      Desglose del trust score propio
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScoreResponse
// @Router       /api/users/me/score [get]
func (h *UserHandler) Score(c *fiber.Ctx) error {
	out, err := h.uc.Score(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Tasks godoc
// @Summary      Tareas pendientes del perfil
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TaskListResponse
// @Router       /api/users/me/tasks [get]
func (h *UserHandler) Tasks(c *fiber.Ctx) error {
	out, err := h.uc.Tasks(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
