package domain

import (
	"github.com/saiteki-ops/saiteki/internal/csvkit"
)

// ShipmentFields is one CSV row projected through a mapping. TotalAmount is
// quantity times unit price; fees are already attributed by the tracker.
type ShipmentFields struct {
	OrderNumber  string
	ProductCode  *string
	Quantity     int
	UnitPrice    int64
	TotalAmount  int64
	ShippingFee  int64
	PaymentFee   int64
	CodFee       int64
	ShipmentDate string
}

// Tracker remembers which order numbers have already produced a row within
// one import run. Fee attribution with a target marker charges the fee only
// on an order's first row.
type Tracker struct {
	seen map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]struct{})}
}

// FirstSeen marks the order number and reports whether this was its first
// appearance.
func (t *Tracker) FirstSeen(orderNumber string) bool {
	if _, ok := t.seen[orderNumber]; ok {
		return false
	}
	t.seen[orderNumber] = struct{}{}
	return true
}

type feeColumn struct {
	idx      int
	firstRow bool
}

// Resolver holds the column indexes of a mapping, resolved once per import
// run.
type Resolver struct {
	orderIdx int
	codeIdx  int
	qtyIdx   int
	priceIdx int
	dateIdx  int
	shipping feeColumn
	payment  feeColumn
	cod      feeColumn
}

func NewResolver(m *Mapping) (*Resolver, error) {
	r := &Resolver{}
	var err error
	if r.orderIdx, err = csvkit.ColumnToIndex(m.OrderNumberColumn); err != nil {
		return nil, err
	}
	if r.codeIdx, err = csvkit.ColumnToIndex(m.ProductCodeColumn); err != nil {
		return nil, err
	}
	if r.qtyIdx, err = csvkit.ColumnToIndex(m.ShipmentQuantityColumn); err != nil {
		return nil, err
	}
	if r.priceIdx, err = csvkit.ColumnToIndex(m.UnitPriceColumn); err != nil {
		return nil, err
	}
	if r.dateIdx, err = csvkit.ColumnToIndex(m.ShipmentDateColumn); err != nil {
		return nil, err
	}
	if r.shipping, err = newFeeColumn(m.ShippingFeeColumn, m.ShippingFeeTarget); err != nil {
		return nil, err
	}
	if r.payment, err = newFeeColumn(m.PaymentFeeColumn, m.PaymentFeeTarget); err != nil {
		return nil, err
	}
	if r.cod, err = newFeeColumn(m.CodFeeColumn, m.CodFeeTarget); err != nil {
		return nil, err
	}
	return r, nil
}

// Resolve projects one data row, advancing the tracker. The second return is
// false when the order number cell is blank; such rows are skipped without
// touching the tracker.
func (r *Resolver) Resolve(row []string, tracker *Tracker) (ShipmentFields, bool) {
	orderNumber := csvkit.Field(row, r.orderIdx)
	if orderNumber == "" {
		return ShipmentFields{}, false
	}

	f := ShipmentFields{OrderNumber: orderNumber}
	if code := csvkit.Field(row, r.codeIdx); code != "" {
		f.ProductCode = &code
	}
	f.Quantity = csvkit.ParseQuantity(csvkit.Field(row, r.qtyIdx))
	f.UnitPrice = csvkit.ParseAmount(csvkit.Field(row, r.priceIdx))
	f.TotalAmount = int64(f.Quantity) * f.UnitPrice
	f.ShipmentDate = csvkit.NormalizeDate(csvkit.Field(row, r.dateIdx))

	first := tracker.FirstSeen(orderNumber)
	f.ShippingFee = r.shipping.amount(row, first)
	f.PaymentFee = r.payment.amount(row, first)
	f.CodFee = r.cod.amount(row, first)
	return f, true
}

func newFeeColumn(column, target *string) (feeColumn, error) {
	if column == nil || *column == "" {
		return feeColumn{idx: -1}, nil
	}
	idx, err := csvkit.ColumnToIndex(*column)
	if err != nil {
		return feeColumn{}, err
	}
	return feeColumn{idx: idx, firstRow: target != nil && *target != ""}, nil
}

// amount returns the fee for one row. An unmapped column or empty cell
// yields zero. A configured target marker restricts the charge to the
// order's first row.
func (c feeColumn) amount(row []string, firstForOrder bool) int64 {
	if c.idx < 0 {
		return 0
	}
	cell := csvkit.Field(row, c.idx)
	if cell == "" {
		return 0
	}
	if c.firstRow && !firstForOrder {
		return 0
	}
	return csvkit.ParseAmount(cell)
}
