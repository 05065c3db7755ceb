package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/construmart/construmart-api/internal/application/dto"
	"github.com/construmart/construmart-api/internal/application/usecase"
	"github.com/construmart/construmart-api/internal/domain"
)

// CatalogHandler expone el catálogo público: etiquetas, categorías y productos.
type CatalogHandler struct {
	tags       *usecase.TagUseCase
	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
}

// NewCatalogHandler construye el handler del catálogo.
func NewCatalogHandler(tags *usecase.TagUseCase, categories *usecase.CategoryUseCase, products *usecase.ProductUseCase) *CatalogHandler {
	return &CatalogHandler{tags: tags, categories: categories, products: products}
}

// ListTags godoc
// @Summary      Listar etiquetas
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.BaseResponse
// @Router       /api/tags [get]
func (h *CatalogHandler) ListTags(c *fiber.Ctx) error {
	list, err := h.tags.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
	return c.JSON(dto.Ok(list))
}

// GetTag godoc
// @Summary      Obtener una etiqueta
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Tag ID"
// @Success      200  {object}  dto.BaseResponse
// @Failure      404  {object}  dto.BaseResponse
// @Router       /api/tags/{id} [get]
func (h *CatalogHandler) GetTag(c *fiber.Ctx) error {
	tag, err := h.tags.GetByID(c.Params("id"))
	switch {
	case err == nil:
		return c.JSON(dto.Ok(tag))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Tag not found"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Param        limit   query     int  false  "Límite"
// @Param        offset  query     int  false  "Desplazamiento"
// @Success      200     {object}  dto.BaseResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid query parameters"))
	}
	list, err := h.categories.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
	return c.JSON(dto.Ok(list))
}

// GetCategory godoc
// @Summary      Obtener una categoría
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  dto.BaseResponse
// @Failure      404  {object}  dto.BaseResponse
// @Router       /api/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.categories.GetByID(c.Params("id"))
	switch {
	case err == nil:
		return c.JSON(dto.Ok(category))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Category not found"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
}

// CreateCategory godoc
// @Summary      Crear una categoría
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateCategoryRequest  true  "name, description, parentId"
// @Success      201   {object}  dto.BaseResponse
// @Failure      422   {object}  dto.BaseResponse
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	category, err := h.categories.Create(in)
	switch {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(dto.Ok(category))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("name is required"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Fail("Category name has been taken"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
}

// ListProducts godoc
// @Summary      Listar productos
// @Tags         catalog
// @Produce      json
// @Param        categoryId  query     string  false  "Filtrar por categoría"
// @Param        limit       query     int     false  "Límite"
// @Param        offset      query     int     false  "Desplazamiento"
// @Success      200         {object}  dto.BaseResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid query parameters"))
	}
	list, err := h.products.List(c.Query("categoryId"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
	return c.JSON(dto.Ok(list))
}

// GetProduct godoc
// @Summary      Obtener un producto
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  dto.BaseResponse
// @Failure      404  {object}  dto.BaseResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.products.GetByID(c.Params("id"))
	switch {
	case err == nil:
		return c.JSON(dto.Ok(product))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Product not found"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
}
