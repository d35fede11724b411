package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso CRUD para el catálogo de productos.
// Las imágenes llegan ya guardadas en disco: aquí solo se persisten las URLs.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea el producto y registra sus imágenes. La primera URL subida
// queda marcada como principal.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest, imageURLs []string) (*dto.ProductResponse, error) {
	if in.Name == "" || !in.Price.GreaterThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	for i, url := range imageURLs {
		img := &entity.ProductImage{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			ImageURL:  url,
			IsPrimary: i == 0,
			CreatedAt: now,
		}
		if err := uc.repo.AddImage(img); err != nil {
			return nil, err
		}
		product.Images = append(product.Images, img)
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto con sus imágenes. Retorna nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	images, err := uc.repo.ImagesByProduct(id)
	if err != nil {
		return nil, err
	}
	product.Images = images
	return toProductResponse(product), nil
}

// List lista productos con sus imágenes.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		images, err := uc.repo.ImagesByProduct(p.ID)
		if err != nil {
			return nil, err
		}
		p.Images = images
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Limit: limit, Offset: offset}, nil
}

// Update actualiza el producto y anexa imágenes nuevas (si las hay).
// Las imágenes existentes no se tocan; la principal solo cambia si el
// producto no tenía ninguna.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest, imageURLs []string) (*dto.ProductResponse, error) {
	if in.Name == "" || !in.Price.GreaterThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Stock = in.Stock
	product.Category = in.Category
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}

	existing, err := uc.repo.ImagesByProduct(id)
	if err != nil {
		return nil, err
	}
	for i, url := range imageURLs {
		img := &entity.ProductImage{
			ID:        uuid.New().String(),
			ProductID: id,
			ImageURL:  url,
			IsPrimary: len(existing) == 0 && i == 0,
			CreatedAt: time.Now(),
		}
		if err := uc.repo.AddImage(img); err != nil {
			return nil, err
		}
		existing = append(existing, img)
	}
	product.Images = existing
	return toProductResponse(product), nil
}

// Delete elimina un producto. Un producto con ventas históricas no se puede
// eliminar (ErrProductInUse): los order_items conservan su referencia.
// Devuelve las URLs de imagen para que el caller limpie el disco.
func (uc *ProductUseCase) Delete(id string) ([]string, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	inUse, err := uc.repo.HasOrderItems(id)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, domain.ErrProductInUse
	}
	images, err := uc.repo.ImagesByProduct(id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.ImageURL)
	}
	return urls, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Images:      make([]dto.ProductImageResponse, 0, len(p.Images)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, dto.ProductImageResponse{
			ID:        img.ID,
			ImageURL:  img.ImageURL,
			IsPrimary: img.IsPrimary,
		})
	}
	return resp
}
