package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

// RequireCompanyAccess deja pasar al admin y al representante de la empresa indicada en el
// parámetro de ruta. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 Unauthorized → no hay rol en el contexto.
//   - 403 Forbidden    → representante de otra empresa o rol sin acceso.
func RequireCompanyAccess(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch GetRole(c) {
		case "":
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "rol no encontrado en el token",
			})
		case entity.RoleAdmin:
			return c.Next()
		case entity.RoleCompany:
			if companyID := GetCompanyID(c); companyID != "" && companyID == c.Params(param) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "solo el representante de esta empresa puede modificarla",
		})
	}
}
