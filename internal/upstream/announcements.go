package upstream

import (
	"context"
	"fmt"
	"net/http"

	"horplus-console/internal/models"
)

type AnnouncementsService struct {
	c *Client
}

func (s *AnnouncementsService) List(ctx context.Context) ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := s.c.do(ctx, "announcements", http.MethodGet, "/api/announcements", nil, nil, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (s *AnnouncementsService) Create(ctx context.Context, req models.SaveAnnouncementRequest) error {
	return s.c.do(ctx, "announcements", http.MethodPost, "/api/announcements", nil, req, nil)
}

func (s *AnnouncementsService) Update(ctx context.Context, id int64, req models.SaveAnnouncementRequest) error {
	return s.c.do(ctx, "announcements", http.MethodPut, fmt.Sprintf("/api/announcements/%d", id), nil, req, nil)
}

func (s *AnnouncementsService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, "announcements", http.MethodDelete, fmt.Sprintf("/api/announcements/%d", id), nil, nil, nil)
}
