package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP de empresas de alojamiento.
type CompanyHandler struct {
	uc      *usecase.CompanyUseCase
	reviews *usecase.ReviewUseCase
}

// NewCompanyHandler construye el handler inyectando los casos de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, reviews *usecase.ReviewUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc, reviews: reviews}
}

// Create godoc
// @Summary      Crear empresa (admin)
// @Description  Crea la empresa y su alias oficial. Si el nombre ya es un alias activo la respuesta lleva un aviso.
// @Tags         admin-companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CreateCompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Param        verification_status  query  string  false  "pending, verified, rejected"
// @Param        city                 query  string  false  "Ciudad"
// @Param        limit                query  int     false  "Límite"  default(20)
// @Param        offset               query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), dto.CompanyListRequest{
		VerificationStatus: c.Query("verification_status"),
		City:               c.Query("city"),
		PageRequest:        pageFromQuery(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar perfil de empresa
// @Description  Solo el representante de la empresa o un admin. Recalcula completitud y trust.
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetVerification godoc
// @Summary      Cambiar estado de verificación (admin)
// @Tags         admin-companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la empresa"
// @Param        body  body  dto.SetVerificationRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/companies/{id}/verification [put]
func (h *CompanyHandler) SetVerification(c *fiber.Ctx) error {
	var in dto.SetVerificationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetVerification(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Tasks godoc
// @Summary      Tareas de completitud de la empresa
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.TaskListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/tasks [get]
func (h *CompanyHandler) Tasks(c *fiber.Ctx) error {
	out, err := h.uc.Tasks(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reviews godoc
// @Summary      Reseñas aprobadas de la empresa
// @Tags         companies
// @Produce      json
// @Param        id      path   string  true   "ID de la empresa"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ReviewListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/reviews [get]
func (h *CompanyHandler) Reviews(c *fiber.Ctx) error {
	out, err := h.reviews.ListByCompany(c.Context(), c.Params("id"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
