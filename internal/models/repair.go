package models

// Repair ticket statuses understood by the upstream API
const (
	RepairStatusPending    = "pending"
	RepairStatusInProgress = "in_progress"
	RepairStatusComplete   = "complete"
)

// Repair dates arrive as strings in mixed layouts ("2006-01-02" or
// "2006-01-02 15:04:05"); the repairs page normalizes them to RFC 3339.
type Repair struct {
	RepairID    int64  `json:"repair_id"`
	RoomNumber  int    `json:"room_number"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	RepairDate  string `json:"repair_date"`
}

// UpdateRepairStatusRequest is the status-only update body; no other
// repair field is writable from the dashboard.
type UpdateRepairStatusRequest struct {
	Status string `json:"status"`
}
