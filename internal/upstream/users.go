package upstream

import (
	"context"
	"fmt"
	"net/http"

	"horplus-console/internal/models"
)

type UsersService struct {
	c *Client
}

func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.c.do(ctx, "users", http.MethodGet, "/api/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Register creates a user; the upstream exposes creation on /api/register
// rather than under /api/users.
func (s *UsersService) Register(ctx context.Context, req models.RegisterUserRequest) error {
	return s.c.do(ctx, "users", http.MethodPost, "/api/register", nil, req, nil)
}

func (s *UsersService) Update(ctx context.Context, id int64, req models.UpdateUserRequest) error {
	return s.c.do(ctx, "users", http.MethodPut, fmt.Sprintf("/api/users/%d", id), nil, req, nil)
}

func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, "users", http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil, nil)
}
