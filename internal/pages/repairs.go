package pages

import (
	"context"
	"strings"

	"horplus-console/internal/crud"
	"horplus-console/internal/models"
	"horplus-console/internal/upstream"
)

// RepairForm is status-only: tickets are opened by tenants, the dashboard
// just moves them through the workflow.
type RepairForm struct {
	Status string
}

type RepairsPage struct {
	*crud.Controller[models.Repair, RepairForm]
}

func NewRepairsPage(api *upstream.Client, notifier crud.Notifier, confirmer crud.Confirmer) *RepairsPage {
	list := crud.NewListController(api.Repairs().List, notifier,
		crud.WithFetchFailedText[models.Repair]("Could not load repair tickets"),
		crud.WithNormalize(normalizeRepairDates))

	dialog := crud.NewDialog(func() RepairForm {
		return RepairForm{Status: models.RepairStatusPending}
	})

	actions := crud.Actions[RepairForm]{
		Validate: func(f RepairForm, editing bool) error {
			if !editing {
				return &crud.ValidationError{Field: "status", Title: "Not allowed", Text: "Repair tickets are opened by tenants, not from the dashboard"}
			}
			if f.Status == "" {
				return &crud.ValidationError{Field: "status", Title: "Missing status", Text: "Please choose a status"}
			}
			return nil
		},
		Update: func(ctx context.Context, id int64, f RepairForm) error {
			return api.Repairs().UpdateStatus(ctx, id, f.Status)
		},
		Delete: func(ctx context.Context, id int64) error {
			return api.Repairs().Delete(ctx, id)
		},
	}

	messages := crud.Messages{
		UpdatedTitle: "Status updated",
		UpdatedText:  "The repair ticket has been updated",
		DeletedTitle: "Ticket deleted",
		DeletedText:  "The repair ticket has been removed",
		ConfirmTitle: "Please confirm",
		ConfirmText:  "The repair ticket will be deleted permanently and cannot be recovered",
		SaveFailed:   "Could not update the repair ticket",
		DeleteFailed: "Could not delete the repair ticket",
	}

	return &RepairsPage{
		Controller: crud.NewController(list, dialog, actions, notifier, confirmer, messages),
	}
}

func (p *RepairsPage) Load(ctx context.Context) error {
	return p.List.Refresh(ctx)
}

func (p *RepairsPage) OpenEdit(r models.Repair) {
	status := r.Status
	if status == "" {
		status = models.RepairStatusPending
	}
	p.Dialog.OpenEdit(r.RepairID, RepairForm{Status: status})
}

// StatusColor maps a ticket status to the display color class used by the
// repairs table.
func StatusColor(status string) string {
	switch status {
	case models.RepairStatusPending:
		return "red"
	case models.RepairStatusInProgress:
		return "orange"
	case models.RepairStatusComplete:
		return "green"
	default:
		return "gray"
	}
}

// normalizeRepairDates rewrites the upstream's mixed date layouts into
// RFC 3339 so the templates can parse them uniformly: a bare date gains a
// midnight time, a "2006-01-02 15:04:05" timestamp swaps the space for "T".
func normalizeRepairDates(repairs []models.Repair) []models.Repair {
	for i := range repairs {
		if len(repairs[i].RepairDate) == len("2006-01-02") {
			repairs[i].RepairDate += "T00:00:00"
		}
		if len(repairs[i].CreatedAt) == len("2006-01-02 15:04:05") {
			repairs[i].CreatedAt = strings.Replace(repairs[i].CreatedAt, " ", "T", 1)
		}
	}
	return repairs
}
