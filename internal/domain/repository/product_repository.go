package repository

import "github.com/jhoicas/Distribucion-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(category string) ([]*entity.Product, error)
	// DecrementStockCAS descuenta stock de accesorio con guard en la misma
	// sentencia (WHERE stock_quantity >= $qty); si ninguna fila cambia
	// retorna ErrInsufficientStock.
	DecrementStockCAS(id string, quantity int) error
}
