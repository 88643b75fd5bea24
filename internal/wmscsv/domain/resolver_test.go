package domain_test

import (
	"testing"

	"github.com/saiteki-ops/saiteki/internal/wmscsv/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func baseMapping() *domain.Mapping {
	return &domain.Mapping{
		OrderNumberColumn:      "A",
		ProductCodeColumn:      "B",
		ShipmentQuantityColumn: "C",
		UnitPriceColumn:        "D",
		ShipmentDateColumn:     "E",
	}
}

func TestResolverRequiredFields(t *testing.T) {
	r, err := domain.NewResolver(baseMapping())
	require.NoError(t, err)

	fields, ok := r.Resolve([]string{"ORD-1", "SKU-1", "3", "1,200", "2025/3/5"}, domain.NewTracker())
	require.True(t, ok)
	assert.Equal(t, "ORD-1", fields.OrderNumber)
	require.NotNil(t, fields.ProductCode)
	assert.Equal(t, "SKU-1", *fields.ProductCode)
	assert.Equal(t, 3, fields.Quantity)
	assert.Equal(t, int64(1200), fields.UnitPrice)
	assert.Equal(t, int64(3600), fields.TotalAmount)
	assert.Equal(t, "2025-03-05", fields.ShipmentDate)
}

func TestResolverBlankOrderSkipsRow(t *testing.T) {
	r, err := domain.NewResolver(baseMapping())
	require.NoError(t, err)

	tracker := domain.NewTracker()
	_, ok := r.Resolve([]string{"", "SKU-1", "1", "100", "2025-03-05"}, tracker)
	assert.False(t, ok)

	// A skipped row must not claim first-seen for later rows.
	fields, ok := r.Resolve([]string{"ORD-1", "SKU-1", "1", "100", "2025-03-05"}, tracker)
	require.True(t, ok)
	assert.Equal(t, "ORD-1", fields.OrderNumber)
}

func TestResolverNullableProductCode(t *testing.T) {
	r, err := domain.NewResolver(baseMapping())
	require.NoError(t, err)

	fields, ok := r.Resolve([]string{"ORD-1", "", "1", "100", "2025-03-05"}, domain.NewTracker())
	require.True(t, ok)
	assert.Nil(t, fields.ProductCode)
}

func TestFeeWithTargetChargedOnFirstRowOnly(t *testing.T) {
	m := baseMapping()
	m.ShippingFeeColumn = strPtr("F")
	m.ShippingFeeTarget = strPtr("送料")
	r, err := domain.NewResolver(m)
	require.NoError(t, err)

	tracker := domain.NewTracker()
	first, ok := r.Resolve([]string{"ORD-1", "SKU-1", "1", "100", "2025-03-05", "800"}, tracker)
	require.True(t, ok)
	assert.Equal(t, int64(800), first.ShippingFee)

	second, ok := r.Resolve([]string{"ORD-1", "SKU-2", "1", "100", "2025-03-05", "800"}, tracker)
	require.True(t, ok)
	assert.Equal(t, int64(0), second.ShippingFee)

	other, ok := r.Resolve([]string{"ORD-2", "SKU-1", "1", "100", "2025-03-05", "800"}, tracker)
	require.True(t, ok)
	assert.Equal(t, int64(800), other.ShippingFee)
}

func TestFeeWithoutTargetChargedPerRow(t *testing.T) {
	m := baseMapping()
	m.ShippingFeeColumn = strPtr("F")
	r, err := domain.NewResolver(m)
	require.NoError(t, err)

	tracker := domain.NewTracker()
	first, _ := r.Resolve([]string{"ORD-1", "SKU-1", "1", "100", "2025-03-05", "800"}, tracker)
	second, _ := r.Resolve([]string{"ORD-1", "SKU-2", "1", "100", "2025-03-05", "500"}, tracker)
	assert.Equal(t, int64(800), first.ShippingFee)
	assert.Equal(t, int64(500), second.ShippingFee)
}

func TestFeeEmptyCellIsZero(t *testing.T) {
	m := baseMapping()
	m.ShippingFeeColumn = strPtr("F")
	r, err := domain.NewResolver(m)
	require.NoError(t, err)

	fields, _ := r.Resolve([]string{"ORD-1", "SKU-1", "1", "100", "2025-03-05", ""}, domain.NewTracker())
	assert.Equal(t, int64(0), fields.ShippingFee)
}

func TestFeeTypesTrackedIndependently(t *testing.T) {
	m := baseMapping()
	m.ShippingFeeColumn = strPtr("F")
	m.ShippingFeeTarget = strPtr("送料")
	m.PaymentFeeColumn = strPtr("G")
	m.CodFeeColumn = strPtr("H")
	m.CodFeeTarget = strPtr("代引")
	r, err := domain.NewResolver(m)
	require.NoError(t, err)

	tracker := domain.NewTracker()
	first, _ := r.Resolve([]string{"ORD-1", "SKU-1", "1", "100", "2025-03-05", "800", "330", "420"}, tracker)
	second, _ := r.Resolve([]string{"ORD-1", "SKU-2", "1", "100", "2025-03-05", "800", "330", "420"}, tracker)

	assert.Equal(t, int64(800), first.ShippingFee)
	assert.Equal(t, int64(330), first.PaymentFee)
	assert.Equal(t, int64(420), first.CodFee)

	// Without a target the payment fee repeats; the targeted fees do not.
	assert.Equal(t, int64(0), second.ShippingFee)
	assert.Equal(t, int64(330), second.PaymentFee)
	assert.Equal(t, int64(0), second.CodFee)
}

func TestResolverShortRow(t *testing.T) {
	m := baseMapping()
	m.ShippingFeeColumn = strPtr("F")
	r, err := domain.NewResolver(m)
	require.NoError(t, err)

	fields, ok := r.Resolve([]string{"ORD-1", "SKU-1"}, domain.NewTracker())
	require.True(t, ok)
	assert.Equal(t, 0, fields.Quantity)
	assert.Equal(t, int64(0), fields.UnitPrice)
	assert.Equal(t, int64(0), fields.TotalAmount)
	assert.Equal(t, "", fields.ShipmentDate)
	assert.Equal(t, int64(0), fields.ShippingFee)
}

func TestResolverBadColumnLabel(t *testing.T) {
	m := baseMapping()
	m.OrderNumberColumn = "3"
	_, err := domain.NewResolver(m)
	assert.Error(t, err)
}
