package salesreport

import "time"

const (
	// UnlinkedLabel names the bucket for shipments whose product code does
	// not resolve to a project.
	UnlinkedLabel = "未紐付け"
	// UnknownClientLabel names a project whose client row is missing.
	UnknownClientLabel = "不明"
)

// ProjectSummary is one aggregation bucket: a project, or the unlinked
// bucket when ProjectID is nil.
type ProjectSummary struct {
	ProjectID     *string `json:"project_id"`
	ProjectName   string  `json:"project_name"`
	ClientID      *string `json:"client_id"`
	ClientName    string  `json:"client_name"`
	TotalAmount   int64   `json:"total_amount"`
	ShippingFee   int64   `json:"shipping_fee"`
	PaymentFee    int64   `json:"payment_fee"`
	CodFee        int64   `json:"cod_fee"`
	ShipmentCount int     `json:"shipment_count"`
}

// Subtotal carries a client group's summed figures. It is present only when
// the group holds more than one project.
type Subtotal struct {
	TotalAmount   int64 `json:"total_amount"`
	ShippingFee   int64 `json:"shipping_fee"`
	PaymentFee    int64 `json:"payment_fee"`
	CodFee        int64 `json:"cod_fee"`
	ShipmentCount int   `json:"shipment_count"`
}

// ClientGroup holds the project summaries of one client, in report order.
type ClientGroup struct {
	ClientID   *string          `json:"client_id"`
	ClientName string           `json:"client_name"`
	Projects   []ProjectSummary `json:"projects"`
	Subtotal   *Subtotal        `json:"subtotal,omitempty"`
}

// Totals is the grand total block of a report. OrderCount is the number of
// distinct order numbers in the period.
type Totals struct {
	TotalAmount   int64 `json:"total_amount"`
	TotalFees     int64 `json:"total_fees"`
	ShippingFee   int64 `json:"shipping_fee"`
	PaymentFee    int64 `json:"payment_fee"`
	CodFee        int64 `json:"cod_fee"`
	ShipmentCount int   `json:"shipment_count"`
	OrderCount    int   `json:"order_count"`
}

// ShipmentRow is one shipment record as it appears in the report detail.
type ShipmentRow struct {
	ID               string    `json:"id"`
	WarehouseID      string    `json:"warehouse_id"`
	OrderNumber      string    `json:"order_number"`
	ProductCode      *string   `json:"product_code,omitempty"`
	PurchaseQuantity int       `json:"purchase_quantity"`
	TotalAmount      int64     `json:"total_amount"`
	ShippingFee      int64     `json:"shipping_fee"`
	PaymentFee       int64     `json:"payment_fee"`
	CodFee           int64     `json:"cod_fee"`
	ShipmentDate     string    `json:"shipment_date"`
	CreatedAt        time.Time `json:"created_at"`
}

// Report is the monthly sales rollup. Aggregation is a pure read: running it
// twice over the same records yields the same report.
type Report struct {
	Year         int              `json:"year"`
	Month        int              `json:"month"`
	Summaries    []ProjectSummary `json:"summaries"`
	ClientGroups []ClientGroup    `json:"client_groups"`
	Totals       Totals           `json:"totals"`
	Shipments    []ShipmentRow    `json:"shipments"`
}
