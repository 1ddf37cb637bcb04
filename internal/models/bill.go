package models

// Bill payment states understood by the upstream API
const (
	PaymentStatePaid   = "paid"
	PaymentStateUnpaid = "unpaid"
)

type Bill struct {
	BillID           int64   `json:"bill_id"`
	UserID           int64   `json:"user_id"`
	RoomNumber       int     `json:"room_number"`
	WaterUnits       float64 `json:"water_units"`
	ElectricityUnits float64 `json:"electricity_units"`
	// Derived server-side; never computed or persisted locally
	TotalAmount  float64 `json:"total_amount"`
	DueDate      string  `json:"due_date"`
	SlipPath     string  `json:"slip_path"`
	Meter        string  `json:"meter"`
	PaymentState string  `json:"payment_state"`
}

// SaveBillRequest is the body for bill creation and update. Meter must be
// a persisted upload path by the time this is sent, never raw file bytes.
type SaveBillRequest struct {
	UserID           int64   `json:"user_id"`
	RoomNumber       int     `json:"room_number"`
	WaterUnits       float64 `json:"water_units"`
	ElectricityUnits float64 `json:"electricity_units"`
	DueDate          string  `json:"due_date"`
	SlipPath         string  `json:"slip_path,omitempty"`
	Meter            string  `json:"meter,omitempty"`
	PaymentState     string  `json:"payment_state,omitempty"`
}

// UploadResult mirrors the upstream /api/upload response envelope
type UploadResult struct {
	File struct {
		Path string `json:"path"`
	} `json:"file"`
}
