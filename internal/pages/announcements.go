package pages

import (
	"context"
	"sort"

	"horplus-console/internal/crud"
	"horplus-console/internal/models"
	"horplus-console/internal/upstream"
)

type AnnouncementForm struct {
	Title  string
	Detail string
}

type AnnouncementsPage struct {
	*crud.Controller[models.Announcement, AnnouncementForm]
}

func NewAnnouncementsPage(api *upstream.Client, notifier crud.Notifier, confirmer crud.Confirmer) *AnnouncementsPage {
	list := crud.NewListController(api.Announcements().List, notifier,
		crud.WithFetchFailedText[models.Announcement]("Could not load announcements"),
		// Newest first
		crud.WithNormalize(func(items []models.Announcement) []models.Announcement {
			sort.Slice(items, func(i, j int) bool {
				return items[i].AnnouncementID > items[j].AnnouncementID
			})
			return items
		}))

	dialog := crud.NewDialog(func() AnnouncementForm { return AnnouncementForm{} })

	actions := crud.Actions[AnnouncementForm]{
		Validate: func(f AnnouncementForm, _ bool) error {
			if f.Title == "" || f.Detail == "" {
				return &crud.ValidationError{Field: "title", Title: "Missing fields", Text: "Please fill in the title and detail"}
			}
			return nil
		},
		Create: func(ctx context.Context, f AnnouncementForm) error {
			return api.Announcements().Create(ctx, models.SaveAnnouncementRequest{Title: f.Title, Detail: f.Detail})
		},
		Update: func(ctx context.Context, id int64, f AnnouncementForm) error {
			return api.Announcements().Update(ctx, id, models.SaveAnnouncementRequest{Title: f.Title, Detail: f.Detail})
		},
		Delete: func(ctx context.Context, id int64) error {
			return api.Announcements().Delete(ctx, id)
		},
	}

	messages := crud.Messages{
		CreatedTitle: "Announcement added",
		CreatedText:  "The announcement has been published",
		UpdatedTitle: "Announcement updated",
		UpdatedText:  "The announcement has been saved",
		DeletedTitle: "Announcement deleted",
		DeletedText:  "The announcement has been removed",
		ConfirmTitle: "Please confirm",
		ConfirmText:  "The announcement will be deleted permanently and cannot be recovered",
		SaveFailed:   "Could not save the announcement",
		DeleteFailed: "Could not delete the announcement",
	}

	return &AnnouncementsPage{
		Controller: crud.NewController(list, dialog, actions, notifier, confirmer, messages),
	}
}

func (p *AnnouncementsPage) Load(ctx context.Context) error {
	return p.List.Refresh(ctx)
}

func (p *AnnouncementsPage) OpenEdit(a models.Announcement) {
	p.Dialog.OpenEdit(a.AnnouncementID, AnnouncementForm{Title: a.Title, Detail: a.Detail})
}
