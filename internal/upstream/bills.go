package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"horplus-console/internal/models"
)

type BillsService struct {
	c *Client
}

// List returns all bills; isAdmin asks the upstream for the admin view.
func (s *BillsService) List(ctx context.Context, isAdmin bool) ([]models.Bill, error) {
	var bills []models.Bill
	var query url.Values
	if isAdmin {
		query = url.Values{"is_admin": {"true"}}
	}
	if err := s.c.do(ctx, "bills", http.MethodGet, "/api/bills", query, nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// ListByRoom returns the bills of a single room. A 404 here means the room
// has no bills yet, which callers treat as an empty state.
func (s *BillsService) ListByRoom(ctx context.Context, roomID int) ([]models.Bill, error) {
	var bills []models.Bill
	path := fmt.Sprintf("/api/bills/room-admin/%d", roomID)
	if err := s.c.do(ctx, "bills", http.MethodGet, path, nil, nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

func (s *BillsService) Create(ctx context.Context, req models.SaveBillRequest) error {
	return s.c.do(ctx, "bills", http.MethodPost, "/api/bills", nil, req, nil)
}

func (s *BillsService) Update(ctx context.Context, id int64, req models.SaveBillRequest) error {
	return s.c.do(ctx, "bills", http.MethodPut, fmt.Sprintf("/api/bills/%d", id), nil, req, nil)
}

func (s *BillsService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, "bills", http.MethodDelete, fmt.Sprintf("/api/bills/%d", id), nil, nil, nil)
}
