package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/ledger"
)

func TestValidate_TransicionesPermitidas(t *testing.T) {
	cases := []struct {
		name             string
		current, next    string
		owner            string
	}{
		{"bodega a asignado", entity.UnitStatusInStock, entity.UnitStatusAllocated, "rm-1"},
		{"reasignacion entre custodios", entity.UnitStatusAllocated, entity.UnitStatusAllocated, "fo-1"},
		{"asignado a vendido", entity.UnitStatusAllocated, entity.UnitStatusSold, "fo-1"},
		{"venta directa desde bodega", entity.UnitStatusInStock, entity.UnitStatusSold, "admin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, ledger.Validate(tc.current, tc.next, tc.owner))
		})
	}
}

func TestValidate_SoldEsTerminal(t *testing.T) {
	// Ninguna salida de SOLD es válida, sin importar el destino.
	for _, next := range []string{entity.UnitStatusInStock, entity.UnitStatusAllocated, entity.UnitStatusSold} {
		err := ledger.Validate(entity.UnitStatusSold, next, "fo-1")
		assert.ErrorIs(t, err, domain.ErrAlreadySold, "SOLD → %s debe rechazarse", next)
	}
}

func TestValidate_NoHayRetornoABodega(t *testing.T) {
	err := ledger.Validate(entity.UnitStatusAllocated, entity.UnitStatusInStock, entity.WarehouseActorID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"una vez asignado no hay camino de vuelta a bodega por transición normal")
}

func TestValidate_AsignarExigeDuenoReal(t *testing.T) {
	assert.ErrorIs(t,
		ledger.Validate(entity.UnitStatusInStock, entity.UnitStatusAllocated, ""),
		domain.ErrInvalidInput)
	assert.ErrorIs(t,
		ledger.Validate(entity.UnitStatusInStock, entity.UnitStatusAllocated, entity.WarehouseActorID),
		domain.ErrInvalidInput,
		"el centinela de bodega no puede ser destino de una asignación")
}

func TestValidate_EstadoDestinoDesconocido(t *testing.T) {
	assert.ErrorIs(t, ledger.Validate(entity.UnitStatusInStock, "LOST", "fo-1"), domain.ErrInvalidInput)
}
