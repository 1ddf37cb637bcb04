package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"horplus-console/internal/models"
)

type RoomsService struct {
	c *Client
}

func (s *RoomsService) List(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.c.do(ctx, "rooms", http.MethodGet, "/api/rooms", nil, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// ListByStatus returns rooms in one status, e.g. "available" for the
// room picker on the user form.
func (s *RoomsService) ListByStatus(ctx context.Context, status string) ([]models.Room, error) {
	var rooms []models.Room
	query := url.Values{"status": {status}}
	if err := s.c.do(ctx, "rooms", http.MethodGet, "/api/rooms-by-status", query, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomsService) Create(ctx context.Context, req models.SaveRoomRequest) error {
	return s.c.do(ctx, "rooms", http.MethodPost, "/api/rooms", nil, req, nil)
}

func (s *RoomsService) Update(ctx context.Context, id int64, req models.SaveRoomRequest) error {
	return s.c.do(ctx, "rooms", http.MethodPut, fmt.Sprintf("/api/rooms/%d", id), nil, req, nil)
}

func (s *RoomsService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, "rooms", http.MethodDelete, fmt.Sprintf("/api/rooms/%d", id), nil, nil, nil)
}
