// Package pages wires the generic crud pattern to each dashboard screen:
// its upstream calls, validation rules, sort order and notification wording.
package pages

import (
	"context"

	"horplus-console/internal/crud"
	"horplus-console/internal/models"
	"horplus-console/internal/upstream"
)

// UserForm holds the add/edit dialog fields for the user screen. Password
// is write-only: editing an existing user starts with it blank.
type UserForm struct {
	Username    string
	Password    string
	FullName    string
	PhoneNumber string
	LineID      string
	Role        string
	RoomNumber  *int
}

type UsersPage struct {
	*crud.Controller[models.User, UserForm]

	// AvailableRooms feeds the room picker on the form. Its fetch failures
	// are silent, matching the picker's secondary role.
	AvailableRooms *crud.ListController[models.Room]
}

func NewUsersPage(api *upstream.Client, notifier crud.Notifier, confirmer crud.Confirmer) *UsersPage {
	list := crud.NewListController(api.Users().List, notifier,
		crud.WithFetchFailedText[models.User]("Could not load users"))

	rooms := crud.NewListController(func(ctx context.Context) ([]models.Room, error) {
		return api.Rooms().ListByStatus(ctx, models.RoomStatusAvailable)
	}, crud.NopNotifier{})

	dialog := crud.NewDialog(func() UserForm { return UserForm{} })

	actions := crud.Actions[UserForm]{
		Validate: validateUserForm,
		Create: func(ctx context.Context, f UserForm) error {
			return api.Users().Register(ctx, models.RegisterUserRequest{
				Username:    f.Username,
				Password:    f.Password,
				FullName:    f.FullName,
				PhoneNumber: f.PhoneNumber,
				LineID:      f.LineID,
				Role:        f.Role,
				RoomNumber:  f.RoomNumber,
			})
		},
		Update: func(ctx context.Context, id int64, f UserForm) error {
			// Password stays out of the payload when blank (unchanged)
			return api.Users().Update(ctx, id, models.UpdateUserRequest{
				Username:    f.Username,
				Password:    f.Password,
				FullName:    f.FullName,
				PhoneNumber: f.PhoneNumber,
				LineID:      f.LineID,
				Role:        f.Role,
				RoomNumber:  f.RoomNumber,
			})
		},
		Delete: func(ctx context.Context, id int64) error {
			return api.Users().Delete(ctx, id)
		},
	}

	messages := crud.Messages{
		CreatedTitle: "User added",
		CreatedText:  "The user account has been saved",
		UpdatedTitle: "User updated",
		UpdatedText:  "The user account has been saved",
		DeletedTitle: "User deleted",
		DeletedText:  "The user account has been removed",
		ConfirmTitle: "Please confirm",
		ConfirmText:  "The user will be deleted permanently and cannot be recovered",
		SaveFailed:   "Could not save the user",
		DeleteFailed: "Could not delete the user",
	}

	return &UsersPage{
		Controller:     crud.NewController(list, dialog, actions, notifier, confirmer, messages),
		AvailableRooms: rooms,
	}
}

// Load fetches the user roster and the available-room picker.
func (p *UsersPage) Load(ctx context.Context) error {
	p.AvailableRooms.Refresh(ctx)
	return p.List.Refresh(ctx)
}

// OpenEdit fills the dialog from a fetched record, clearing the write-only
// password field.
func (p *UsersPage) OpenEdit(u models.User) {
	p.Dialog.OpenEdit(u.UserID, UserForm{
		Username:    u.Username,
		Password:    "",
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		LineID:      u.LineID,
		Role:        u.Role,
		RoomNumber:  u.RoomNumber,
	})
}

func validateUserForm(f UserForm, editing bool) error {
	if f.Username == "" {
		return &crud.ValidationError{Field: "username", Title: "Missing username", Text: "Please enter a username"}
	}
	if f.Role == "" {
		return &crud.ValidationError{Field: "role", Title: "Missing role", Text: "Please choose a role"}
	}
	if f.Role == models.RoleUser && f.RoomNumber == nil {
		return &crud.ValidationError{Field: "room_number", Title: "No room selected", Text: "Please choose a room for the tenant"}
	}
	if !editing && f.Password == "" {
		return &crud.ValidationError{Field: "password", Title: "Missing password", Text: "Please enter a password"}
	}
	if f.Password != "" && len(f.Password) < 6 {
		return &crud.ValidationError{Field: "password", Title: "Password too short", Text: "Please use a password of at least 6 characters"}
	}
	return nil
}
