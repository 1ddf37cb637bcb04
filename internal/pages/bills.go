package pages

import (
	"context"

	"horplus-console/internal/crud"
	"horplus-console/internal/models"
	"horplus-console/internal/upstream"
)

// AdminBillsPage lists tenants with their outstanding totals; each row
// links into that tenant's per-room bill screen. There is no dialog here.
type AdminBillsPage struct {
	List *crud.ListController[models.User]
	// Bills backs the summary line above the tenant table; fetched through
	// the admin bill listing so the numbers cover every room at once.
	Bills *crud.ListController[models.Bill]
}

func NewAdminBillsPage(api *upstream.Client, notifier crud.Notifier) *AdminBillsPage {
	list := crud.NewListController(api.Users().List, notifier,
		crud.WithFetchFailedText[models.User]("Could not load tenants"),
		// Only tenants have rooms and bills
		crud.WithNormalize(func(users []models.User) []models.User {
			tenants := users[:0]
			for _, u := range users {
				if u.Role == models.RoleUser {
					tenants = append(tenants, u)
				}
			}
			return tenants
		}))

	bills := crud.NewListController(func(ctx context.Context) ([]models.Bill, error) {
		return api.Bills().List(ctx, true)
	}, crud.NopNotifier{})

	return &AdminBillsPage{List: list, Bills: bills}
}

func (p *AdminBillsPage) Load(ctx context.Context) error {
	// The summary is secondary; its fetch failing never blocks the roster
	p.Bills.Refresh(ctx)
	return p.List.Refresh(ctx)
}

// UnpaidCount reports how many bills across all rooms are still open.
func (p *AdminBillsPage) UnpaidCount() int {
	count := 0
	for _, b := range p.Bills.Items() {
		if b.PaymentState != models.PaymentStatePaid {
			count++
		}
	}
	return count
}

// OutstandingTotal sums the amounts of all open bills.
func (p *AdminBillsPage) OutstandingTotal() float64 {
	total := 0.0
	for _, b := range p.Bills.Items() {
		if b.PaymentState != models.PaymentStatePaid {
			total += b.TotalAmount
		}
	}
	return total
}
