package domain_test

import (
	"testing"

	"github.com/saiteki-ops/saiteki/internal/productcsv/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolverAllColumns(t *testing.T) {
	m := &domain.Mapping{
		ProductCodeColumn: "A",
		ProductNameColumn: strPtr("B"),
		UnitPriceColumn:   strPtr("C"),
		CategoryColumn:    strPtr("D"),
		VariationColumn:   strPtr("E"),
	}
	r, err := domain.NewResolver(m)
	require.NoError(t, err)

	fields, ok := r.Resolve([]string{"SKU-1", "Tシャツ", "1,500", "アパレル", "白/M"})
	require.True(t, ok)
	assert.Equal(t, "SKU-1", fields.Code)
	require.NotNil(t, fields.Name)
	assert.Equal(t, "Tシャツ", *fields.Name)
	require.NotNil(t, fields.UnitPrice)
	assert.Equal(t, int64(1500), *fields.UnitPrice)
	require.NotNil(t, fields.Category)
	assert.Equal(t, "アパレル", *fields.Category)
	require.NotNil(t, fields.Variation)
	assert.Equal(t, "白/M", *fields.Variation)
}

func TestResolverBlankCodeSkipsRow(t *testing.T) {
	r, err := domain.NewResolver(&domain.Mapping{ProductCodeColumn: "A"})
	require.NoError(t, err)

	_, ok := r.Resolve([]string{"   ", "name"})
	assert.False(t, ok)

	_, ok = r.Resolve([]string{})
	assert.False(t, ok)
}

func TestResolverUnmappedOptionalFields(t *testing.T) {
	r, err := domain.NewResolver(&domain.Mapping{ProductCodeColumn: "B"})
	require.NoError(t, err)

	fields, ok := r.Resolve([]string{"ignored", "SKU-2", "also ignored"})
	require.True(t, ok)
	assert.Equal(t, "SKU-2", fields.Code)
	assert.Nil(t, fields.Name)
	assert.Nil(t, fields.UnitPrice)
	assert.Nil(t, fields.Category)
	assert.Nil(t, fields.Variation)
}

func TestResolverEmptyOptionalCell(t *testing.T) {
	m := &domain.Mapping{
		ProductCodeColumn: "A",
		ProductNameColumn: strPtr("B"),
		UnitPriceColumn:   strPtr("C"),
	}
	r, err := domain.NewResolver(m)
	require.NoError(t, err)

	fields, ok := r.Resolve([]string{"SKU-3", "", ""})
	require.True(t, ok)
	assert.Nil(t, fields.Name)
	assert.Nil(t, fields.UnitPrice)
}

func TestResolverUnparsablePriceIsZero(t *testing.T) {
	m := &domain.Mapping{
		ProductCodeColumn: "A",
		UnitPriceColumn:   strPtr("B"),
	}
	r, err := domain.NewResolver(m)
	require.NoError(t, err)

	fields, ok := r.Resolve([]string{"SKU-4", "価格未定"})
	require.True(t, ok)
	require.NotNil(t, fields.UnitPrice)
	assert.Equal(t, int64(0), *fields.UnitPrice)
}

func TestResolverBadColumnLabel(t *testing.T) {
	_, err := domain.NewResolver(&domain.Mapping{ProductCodeColumn: "A1"})
	assert.Error(t, err)

	_, err = domain.NewResolver(&domain.Mapping{
		ProductCodeColumn: "A",
		CategoryColumn:    strPtr("!"),
	})
	assert.Error(t, err)
}
