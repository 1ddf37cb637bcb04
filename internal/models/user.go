package models

// User roles understood by the upstream API
const (
	RoleNone  = ""
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	LineID      string `json:"line_id"`
	Role        string `json:"role"`
	RoomNumber  *int   `json:"room_number"`

	// Populated on the admin bills listing only
	TotalUnpaidAmount float64 `json:"total_unpaid_amount,omitempty"`
}

// RegisterUserRequest represents the request body for creating a user
type RegisterUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	LineID      string `json:"line_id"`
	Role        string `json:"role"`
	RoomNumber  *int   `json:"room_number"`
}

// UpdateUserRequest represents the request body for updating a user.
// Password is omitted entirely when left blank (keep existing password).
type UpdateUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	LineID      string `json:"line_id"`
	Role        string `json:"role"`
	RoomNumber  *int   `json:"room_number"`
}

// LoginRequest represents the request body for the admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult represents the upstream response to a successful login
type LoginResult struct {
	Message string `json:"message"`
}
