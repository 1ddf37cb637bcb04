package pages

import (
	"context"
	"sort"
	"strconv"

	"horplus-console/internal/crud"
	"horplus-console/internal/models"
	"horplus-console/internal/upstream"
)

// RoomForm keeps the numeric fields as entered text; coercion happens once
// at payload time so a half-typed value never corrupts the form.
type RoomForm struct {
	RoomNumber  string
	Rent        string
	Description string
	Status      string
}

type RoomsPage struct {
	*crud.Controller[models.Room, RoomForm]
}

func NewRoomsPage(api *upstream.Client, notifier crud.Notifier, confirmer crud.Confirmer) *RoomsPage {
	list := crud.NewListController(api.Rooms().List, notifier,
		crud.WithFetchFailedText[models.Room]("Could not load rooms"),
		crud.WithNormalize(func(rooms []models.Room) []models.Room {
			sort.Slice(rooms, func(i, j int) bool {
				return rooms[i].RoomNumber < rooms[j].RoomNumber
			})
			return rooms
		}))

	dialog := crud.NewDialog(func() RoomForm {
		return RoomForm{Status: models.RoomStatusAvailable}
	})

	actions := crud.Actions[RoomForm]{
		Validate: validateRoomForm,
		Create: func(ctx context.Context, f RoomForm) error {
			return api.Rooms().Create(ctx, roomRequest(f))
		},
		Update: func(ctx context.Context, id int64, f RoomForm) error {
			return api.Rooms().Update(ctx, id, roomRequest(f))
		},
		Delete: func(ctx context.Context, id int64) error {
			return api.Rooms().Delete(ctx, id)
		},
	}

	messages := crud.Messages{
		CreatedTitle: "Room added",
		CreatedText:  "The room has been saved",
		UpdatedTitle: "Room updated",
		UpdatedText:  "The room has been saved",
		DeletedTitle: "Room deleted",
		DeletedText:  "The room has been removed",
		ConfirmTitle: "Please confirm",
		ConfirmText:  "The room will be deleted permanently and cannot be recovered",
		SaveFailed:   "Could not save the room",
		DeleteFailed: "Could not delete the room",
	}

	return &RoomsPage{
		Controller: crud.NewController(list, dialog, actions, notifier, confirmer, messages),
	}
}

func (p *RoomsPage) Load(ctx context.Context) error {
	return p.List.Refresh(ctx)
}

func (p *RoomsPage) OpenEdit(r models.Room) {
	p.Dialog.OpenEdit(r.RoomID, RoomForm{
		RoomNumber:  strconv.Itoa(r.RoomNumber),
		Rent:        strconv.Itoa(r.Rent),
		Description: r.Description,
		Status:      r.Status,
	})
}

func validateRoomForm(f RoomForm, _ bool) error {
	if f.RoomNumber == "" || f.Rent == "" {
		return &crud.ValidationError{Field: "room_number", Title: "Missing fields", Text: "Please fill in the room number and rent"}
	}
	if _, err := strconv.Atoi(f.RoomNumber); err != nil {
		return &crud.ValidationError{Field: "room_number", Title: "Invalid room number", Text: "The room number must be a whole number"}
	}
	if _, err := strconv.Atoi(f.Rent); err != nil {
		return &crud.ValidationError{Field: "rent", Title: "Invalid rent", Text: "The rent must be a whole number"}
	}
	return nil
}

func roomRequest(f RoomForm) models.SaveRoomRequest {
	roomNumber, _ := strconv.Atoi(f.RoomNumber)
	rent, _ := strconv.Atoi(f.Rent)
	status := f.Status
	if status == "" {
		status = models.RoomStatusAvailable
	}
	return models.SaveRoomRequest{
		RoomNumber:  roomNumber,
		Rent:        rent,
		Description: f.Description,
		Status:      status,
	}
}
