package reconciliation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/reconciliation"
)

func byType(list []reconciliation.Discrepancy, typ string) []reconciliation.Discrepancy {
	var out []reconciliation.Discrepancy
	for _, d := range list {
		if d.Type == typ {
			out = append(out, d)
		}
	}
	return out
}

func TestDetect_EquipoVendidoSinVenta(t *testing.T) {
	units := []*entity.InventoryUnit{
		{IMEI: "IMEI-001", Status: entity.UnitStatusSold},
		{IMEI: "IMEI-002", Status: entity.UnitStatusAllocated},
	}
	out := reconciliation.Detect(units, nil, nil, nil)

	mismatches := byType(out, reconciliation.TypeIMEIMismatch)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "IMEI-001", mismatches[0].IMEI)
	assert.Equal(t, reconciliation.SeverityHigh, mismatches[0].Severity)
}

func TestDetect_DobleVenta(t *testing.T) {
	sales := []*entity.Sale{
		{ID: "s1", IMEI: "IMEI-001", PaymentMethod: entity.PaymentMethodCash, ReceiptNumber: "R-1"},
		{ID: "s2", IMEI: "IMEI-001", PaymentMethod: entity.PaymentMethodCash, ReceiptNumber: "R-2"},
	}
	out := reconciliation.Detect(nil, sales, nil, nil)

	doubles := byType(out, reconciliation.TypeDoubleSale)
	require.Len(t, doubles, 1)
	assert.Equal(t, "IMEI-001", doubles[0].IMEI)
	assert.Equal(t, reconciliation.SeverityHigh, doubles[0].Severity)
}

func TestDetect_PagoElectronicoSinReferencia(t *testing.T) {
	sales := []*entity.Sale{
		{ID: "s1", IMEI: "IMEI-001", PaymentMethod: entity.PaymentMethodMpesa, PaymentReference: "", ReceiptNumber: "R-1"},
		{ID: "s2", IMEI: "IMEI-002", PaymentMethod: entity.PaymentMethodMpesa, PaymentReference: "MPESA-XYZ", ReceiptNumber: "R-2"},
		{ID: "s3", IMEI: "IMEI-003", PaymentMethod: entity.PaymentMethodCash, PaymentReference: "", ReceiptNumber: "R-3"},
	}
	units := []*entity.InventoryUnit{
		{IMEI: "IMEI-001", Status: entity.UnitStatusSold},
		{IMEI: "IMEI-002", Status: entity.UnitStatusSold},
		{IMEI: "IMEI-003", Status: entity.UnitStatusSold},
	}
	out := reconciliation.Detect(units, sales, nil, nil)

	missing := byType(out, reconciliation.TypeMissingPayment)
	require.Len(t, missing, 1, "solo el mpesa sin referencia; el cash no exige referencia")
	assert.Equal(t, "s1", missing[0].SaleID)
	assert.Equal(t, reconciliation.SeverityMedium, missing[0].Severity)
}

func TestDetect_VentaSinRecibo(t *testing.T) {
	sales := []*entity.Sale{
		{ID: "s1", IMEI: "IMEI-001", PaymentMethod: entity.PaymentMethodCash},
	}
	out := reconciliation.Detect(nil, sales, nil, nil)

	missing := byType(out, reconciliation.TypeMissingReceipt)
	require.Len(t, missing, 1)
	assert.Equal(t, "s1", missing[0].SaleID)
}

func TestDetect_ToleraDatosParciales(t *testing.T) {
	// Entradas nil y campos ausentes no deben provocar pánico ni falsos positivos
	// de correlación: sin IMEI no se puede verificar, no se reporta.
	units := []*entity.InventoryUnit{nil, {IMEI: "", Status: entity.UnitStatusSold}}
	sales := []*entity.Sale{nil, {ID: "s1", IMEI: "", PaymentMethod: entity.PaymentMethodCash, ReceiptNumber: "R-1"}}

	assert.NotPanics(t, func() {
		out := reconciliation.Detect(units, sales, nil, nil)
		assert.Empty(t, byType(out, reconciliation.TypeIMEIMismatch))
		assert.Empty(t, byType(out, reconciliation.TypeDoubleSale))
	})
}

func TestDetect_SinDiscrepancias(t *testing.T) {
	units := []*entity.InventoryUnit{{IMEI: "IMEI-001", Status: entity.UnitStatusSold}}
	sales := []*entity.Sale{{
		ID: "s1", IMEI: "IMEI-001",
		PaymentMethod: entity.PaymentMethodMpesa, PaymentReference: "MP-1", ReceiptNumber: "R-1",
	}}
	out := reconciliation.Detect(units, sales, nil, nil)
	assert.Empty(t, out)
}
