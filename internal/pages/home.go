package pages

import (
	"context"

	"horplus-console/internal/crud"
	"horplus-console/internal/models"
	"horplus-console/internal/upstream"
)

// HomePage shows the tenant roster and a few derived figures. Derived
// values are recomputed from the latest fetch on every call; nothing is
// cached beyond the lists themselves.
type HomePage struct {
	Users *crud.ListController[models.User]
	Rooms *crud.ListController[models.Room]
}

func NewHomePage(api *upstream.Client, notifier crud.Notifier) *HomePage {
	return &HomePage{
		Users: crud.NewListController(api.Users().List, notifier,
			crud.WithFetchFailedText[models.User]("Could not load users")),
		Rooms: crud.NewListController(api.Rooms().List, crud.NopNotifier{}),
	}
}

func (p *HomePage) Load(ctx context.Context) error {
	p.Rooms.Refresh(ctx)
	return p.Users.Refresh(ctx)
}

// AvailableRoomCount filters the fetched rooms by status.
func (p *HomePage) AvailableRoomCount() int {
	count := 0
	for _, r := range p.Rooms.Items() {
		if r.Status == models.RoomStatusAvailable {
			count++
		}
	}
	return count
}

// TenantCount counts users holding the tenant role.
func (p *HomePage) TenantCount() int {
	count := 0
	for _, u := range p.Users.Items() {
		if u.Role == models.RoleUser {
			count++
		}
	}
	return count
}
