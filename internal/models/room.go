package models

// Room statuses understood by the upstream API
const (
	RoomStatusAvailable = "available"
	RoomStatusOccupied  = "occupied"
)

type Room struct {
	RoomID      int64  `json:"room_id"`
	RoomNumber  int    `json:"room_number"`
	Rent        int    `json:"rent"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// SaveRoomRequest is the body for both room creation and update
type SaveRoomRequest struct {
	RoomNumber  int    `json:"room_number"`
	Rent        int    `json:"rent"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
