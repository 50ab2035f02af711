package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mvillagra/stock-sucursales/internal/application/catalogo"
	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

// CatalogoHandler maneja productos y categorías del catálogo.
type CatalogoHandler struct {
	uc *catalogo.UseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *catalogo.UseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// ListProductos godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        tipo_conservacion  query  string  false  "ambiente | heladera | freezer"
// @Param        categoria          query  string  false  "ID de categoría"
// @Param        search             query  string  false  "búsqueda por nombre, insensible a acentos"
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/products/productos/ [get]
func (h *CatalogoHandler) ListProductos(c *fiber.Ctx) error {
	filter := repository.ProductoFilter{
		TipoConservacion: c.Query("tipo_conservacion"),
		CategoriaID:      c.Query("categoria"),
	}
	out, err := h.uc.ListProductos(c.Context(), filter, c.Query("search"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetProducto godoc
// @Summary      Detalle de producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/productos/{id}/ [get]
func (h *CatalogoHandler) GetProducto(c *fiber.Ctx) error {
	out, err := h.uc.GetProducto(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// CreateProducto godoc
// @Summary      Crear producto (solo admin)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductoRequest  true  "producto"
// @Success      201  {object}  dto.ProductoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/productos/ [post]
func (h *CatalogoHandler) CreateProducto(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearProducto(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateProducto godoc
// @Summary      Modificar producto (solo admin)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del producto"
// @Param        body  body  dto.ProductoRequest  true  "producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/productos/{id}/ [put]
func (h *CatalogoHandler) UpdateProducto(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarProducto(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// DeleteProducto godoc
// @Summary      Eliminar producto (solo admin)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/productos/{id}/ [delete]
func (h *CatalogoHandler) DeleteProducto(c *fiber.Ctx) error {
	if err := h.uc.EliminarProducto(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "eliminado"})
}

// ListCategorias godoc
// @Summary      Listar categorías
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoriaResponse
// @Router       /api/products/categorias/ [get]
func (h *CatalogoHandler) ListCategorias(c *fiber.Ctx) error {
	out, err := h.uc.ListCategorias(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// CreateCategoria godoc
// @Summary      Crear categoría (solo admin)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoriaRequest  true  "categoría"
// @Success      201  {object}  dto.CategoriaResponse
// @Router       /api/products/categorias/ [post]
func (h *CatalogoHandler) CreateCategoria(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearCategoria(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCategoria godoc
// @Summary      Modificar categoría (solo admin)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la categoría"
// @Param        body  body  dto.CategoriaRequest  true  "categoría"
// @Success      200  {object}  dto.CategoriaResponse
// @Router       /api/products/categorias/{id}/ [put]
func (h *CatalogoHandler) UpdateCategoria(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarCategoria(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// DeleteCategoria godoc
// @Summary      Eliminar categoría (solo admin)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.StatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/categorias/{id}/ [delete]
func (h *CatalogoHandler) DeleteCategoria(c *fiber.Ctx) error {
	if err := h.uc.EliminarCategoria(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "eliminado"})
}
