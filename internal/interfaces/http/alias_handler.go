package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/application/usecase"
)

// AliasHandler maneja búsqueda y resolución públicas y la administración de alias.
type AliasHandler struct {
	uc *usecase.AliasUseCase
}

// NewAliasHandler construye el handler inyectando el caso de uso.
func NewAliasHandler(uc *usecase.AliasUseCase) *AliasHandler {
	return &AliasHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar alias por prefijo
// @Description  Autocompletado sobre alias activos. Mínimo 2 caracteres tras recortar espacios.
// @Tags         aliases
// @Produce      json
// @Param        q      query  string  true   "Prefijo a buscar"
// @Param        limit  query  int     false  "Máximo de resultados"  default(10)
// @Success      200    {object}  dto.AliasSearchResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/aliases/search [get]
func (h *AliasHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Context(), c.Query("q"), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver un nombre a su empresa canónica
// @Tags         aliases
// @Produce      json
// @Param        location  query  string  true  "Nombre libre"
// @Success      200       {object}  dto.ResolveResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/aliases/resolve [get]
func (h *AliasHandler) Resolve(c *fiber.Ctx) error {
	out, err := h.uc.Resolve(c.Context(), c.Query("location"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar alias (admin)
// @Tags         admin-aliases
// @Security     Bearer
// @Produce      json
// @Param        q           query  string  false  "Prefijo del nombre"
// @Param        company_id  query  string  false  "Empresa"
// @Param        category    query  string  false  "Categoría"
// @Param        is_active   query  bool    false  "Activo"
// @Param        unlinked    query  bool    false  "Solo sin empresa"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {object}  dto.AliasListResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /api/admin/aliases [get]
func (h *AliasHandler) List(c *fiber.Ctx) error {
	in := dto.AliasListRequest{
		Query:       c.Query("q"),
		CompanyID:   c.Query("company_id"),
		Category:    c.Query("category"),
		PageRequest: pageFromQuery(c),
	}
	if v := c.Query("is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "is_active debe ser booleano"})
		}
		in.IsActive = &b
	}
	if v := c.Query("unlinked"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unlinked debe ser booleano"})
		}
		in.UnlinkedOnly = b
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear alias (admin)
// @Tags         admin-aliases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAliasRequest  true  "Datos del alias"
// @Success      201   {object}  dto.AliasResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.AliasConflictResponse
// @Router       /api/admin/aliases [post]
func (h *AliasHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAliasRequest
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
// @Summary      Obtener alias por ID (admin)
// @Tags         admin-aliases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del alias"
// @Success      200  {object}  dto.AliasResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/aliases/{id} [get]
func (h *AliasHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar alias (admin)
// @Tags         admin-aliases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del alias"
// @Param        body  body  dto.UpdateAliasRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.AliasResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.AliasConflictResponse
// @Router       /api/admin/aliases/{id} [put]
func (h *AliasHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAliasRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Link godoc
// @Summary      Vincular alias a una empresa (admin)
// @Tags         admin-aliases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del alias"
// @Param        body  body  dto.LinkAliasRequest  true  "Empresa"
// @Success      200   {object}  dto.AliasResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/aliases/{id}/link [put]
func (h *AliasHandler) Link(c *fiber.Ctx) error {
	var in dto.LinkAliasRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Link(c.Context(), c.Params("id"), in.CompanyID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar o eliminar alias (admin)
// @Tags         admin-aliases
// @Security     Bearer
// @Param        id         path   string  true   "ID del alias"
// @Param        permanent  query  bool    false  "Eliminar la fila"  default(false)
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/aliases/{id} [delete]
func (h *AliasHandler) Delete(c *fiber.Ctx) error {
	permanent, _ := strconv.ParseBool(c.Query("permanent", "false"))
	if err := h.uc.Delete(c.Context(), c.Params("id"), permanent); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
