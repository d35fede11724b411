package http

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/usecase"
	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/infrastructure/storage"
)

// ProductHandler maneja las peticiones HTTP del catálogo (protegido).
// Las altas y ediciones llegan como multipart/form-data con los archivos
// de imagen bajo la clave "images".
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	images *storage.ImageStore
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, images *storage.ImageStore) *ProductHandler {
	return &ProductHandler{uc: uc, images: images}
}

// Create POST /api/products (multipart)
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}
	urls, err := h.saveImages(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE", Message: err.Error()})
	}
	product, err := h.uc.Create(in, urls)
	if err != nil {
		// Las imágenes ya escritas a disco se limpian si la creación falla.
		for _, u := range urls {
			h.images.Remove(u)
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y price > 0 son requeridos; stock no puede ser negativo"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List GET /api/products?limit=20&offset=0
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit y offset deben ser numéricos"})
	}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(product)
}

// Update PUT /api/products/:id (multipart; imágenes nuevas se anexan)
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}
	urls, err := h.saveImages(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE", Message: err.Error()})
	}
	product, err := h.uc.Update(id, in, urls)
	if err != nil {
		for _, u := range urls {
			h.images.Remove(u)
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y price > 0 son requeridos; stock no puede ser negativo"})
		}
		return internalError(c, err)
	}
	return c.JSON(product)
}

// Delete DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	urls, err := h.uc.Delete(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrProductInUse) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PRODUCT_IN_USE", Message: "el producto tiene ventas registradas y no se puede eliminar"})
		}
		return internalError(c, err)
	}
	// Limpieza best-effort de las imágenes huérfanas.
	for _, u := range urls {
		h.images.Remove(u)
	}
	return c.JSON(fiber.Map{"message": "producto eliminado"})
}

// saveImages persiste los archivos "images" del formulario y devuelve sus URLs.
func (h *ProductHandler) saveImages(c *fiber.Ctx) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Sin multipart no hay imágenes; el JSON plano también es válido.
		return nil, nil
	}
	var files []*multipart.FileHeader
	if form != nil {
		files = form.File["images"]
	}
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := h.images.SaveUpload(fh)
		if err != nil {
			for _, u := range urls {
				h.images.Remove(u)
			}
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
