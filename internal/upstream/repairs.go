package upstream

import (
	"context"
	"fmt"
	"net/http"

	"horplus-console/internal/models"
)

type RepairsService struct {
	c *Client
}

func (s *RepairsService) List(ctx context.Context) ([]models.Repair, error) {
	var repairs []models.Repair
	if err := s.c.do(ctx, "repairs", http.MethodGet, "/api/repairs", nil, nil, &repairs); err != nil {
		return nil, err
	}
	return repairs, nil
}

// UpdateStatus changes a ticket's status; tickets are opened by tenants,
// the dashboard only moves them through the workflow.
func (s *RepairsService) UpdateStatus(ctx context.Context, id int64, status string) error {
	req := models.UpdateRepairStatusRequest{Status: status}
	return s.c.do(ctx, "repairs", http.MethodPut, fmt.Sprintf("/api/repairs/%d", id), nil, req, nil)
}

func (s *RepairsService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, "repairs", http.MethodDelete, fmt.Sprintf("/api/repairs/%d", id), nil, nil, nil)
}
