package repository

import "github.com/jhoicas/pos-backoffice/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product y sus imágenes.
// GetForUpdate y DecrementStock solo tienen sentido dentro de una transacción
// (ver postgres.TxRunner): el primero bloquea la fila con SELECT ... FOR UPDATE.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	DecrementStock(productID string, quantity int64) error
	Delete(id string) error

	AddImage(img *entity.ProductImage) error
	ImagesByProduct(productID string) ([]*entity.ProductImage, error)
	HasOrderItems(productID string) (bool, error)
}
