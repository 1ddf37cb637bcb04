package models

type Announcement struct {
	AnnouncementID int64  `json:"announcement_id"`
	Title          string `json:"title"`
	Detail         string `json:"detail"`
}

// SaveAnnouncementRequest is the body for both creation and update
type SaveAnnouncementRequest struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
