package domain

import (
	"github.com/saiteki-ops/saiteki/internal/csvkit"
)

// ProductFields is one CSV row projected through a mapping. Optional fields
// are nil when the column is unmapped or the cell is empty, so an upsert can
// leave the stored value alone.
type ProductFields struct {
	Code      string
	Name      *string
	UnitPrice *int64
	Category  *string
	Variation *string
}

// Resolver holds the column indexes of a mapping, resolved once per import
// run. Unmapped optional columns resolve to -1.
type Resolver struct {
	codeIdx      int
	nameIdx      int
	priceIdx     int
	categoryIdx  int
	variationIdx int
}

// NewResolver fails fast on a malformed column letter so a broken mapping is
// reported before any row is read.
func NewResolver(m *Mapping) (*Resolver, error) {
	codeIdx, err := csvkit.ColumnToIndex(m.ProductCodeColumn)
	if err != nil {
		return nil, err
	}
	r := &Resolver{codeIdx: codeIdx}
	if r.nameIdx, err = optionalIndex(m.ProductNameColumn); err != nil {
		return nil, err
	}
	if r.priceIdx, err = optionalIndex(m.UnitPriceColumn); err != nil {
		return nil, err
	}
	if r.categoryIdx, err = optionalIndex(m.CategoryColumn); err != nil {
		return nil, err
	}
	if r.variationIdx, err = optionalIndex(m.VariationColumn); err != nil {
		return nil, err
	}
	return r, nil
}

// Resolve projects one data row. The second return is false when the product
// code cell is blank, which means the row carries no identity and is skipped.
func (r *Resolver) Resolve(row []string) (ProductFields, bool) {
	code := csvkit.Field(row, r.codeIdx)
	if code == "" {
		return ProductFields{}, false
	}
	f := ProductFields{Code: code}
	if v := csvkit.Field(row, r.nameIdx); v != "" {
		f.Name = &v
	}
	if v := csvkit.Field(row, r.priceIdx); v != "" {
		price := csvkit.ParseAmount(v)
		f.UnitPrice = &price
	}
	if v := csvkit.Field(row, r.categoryIdx); v != "" {
		f.Category = &v
	}
	if v := csvkit.Field(row, r.variationIdx); v != "" {
		f.Variation = &v
	}
	return f, true
}

func optionalIndex(column *string) (int, error) {
	if column == nil || *column == "" {
		return -1, nil
	}
	return csvkit.ColumnToIndex(*column)
}
