package repository

import "github.com/jhoicas/Distribucion-api/internal/domain/entity"

// ActorFilter filtros para listar actores.
type ActorFilter struct {
	Role     string
	Region   string
	ParentID string
	Status   string
}

// ActorRepository define el puerto de persistencia para actores (DIP).
// Los actores se desactivan, nunca se borran: las ventas y comisiones
// históricas los referencian.
type ActorRepository interface {
	Create(actor *entity.Actor) error
	GetByID(id string) (*entity.Actor, error)
	GetByEmail(email string) (*entity.Actor, error)
	List(filter ActorFilter) ([]*entity.Actor, error)
	ListAll() ([]*entity.Actor, error)
	Update(actor *entity.Actor) error
	// UpdateParent reasigna el superior directo (reasignación lateral de FO).
	UpdateParent(id, parentID string) error
	// Deactivate marca el actor como inactive (soft delete).
	Deactivate(id string) error
}
