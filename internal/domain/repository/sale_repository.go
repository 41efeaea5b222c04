package repository

import "github.com/jhoicas/Distribucion-api/internal/domain/entity"

// SaleFilter filtros para listar ventas.
type SaleFilter struct {
	IMEI     string
	SellerID string
}

// SaleRepository define el puerto de persistencia para ventas.
// Las ventas son inmutables: no hay Update ni Delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(filter SaleFilter) ([]*entity.Sale, error)
	ListAll() ([]*entity.Sale, error)
}
