package pages

import (
	"bytes"
	"context"
	"strconv"

	"horplus-console/internal/crud"
	"horplus-console/internal/models"
	"horplus-console/internal/upstream"
)

// PendingUpload is a meter photo still living in the form; it becomes an
// upstream path exactly once, when the save flow resolves it.
type PendingUpload struct {
	Filename string
	Content  []byte
}

// BillForm holds the bill dialog fields. MeterPath and MeterUpload are
// mutually exclusive: a form carries either an already-persisted path or a
// pending file, never both.
type BillForm struct {
	WaterUnits       string
	ElectricityUnits string
	DueDate          string
	SlipPath         string
	MeterPath        string
	MeterUpload      *PendingUpload
	PaymentState     string
}

// RoomBillsPage manages the bills of a single room. The room (and the
// tenant the new bills belong to) is the page's identifying parameter;
// changing it refetches.
type RoomBillsPage struct {
	*crud.Controller[models.Bill, BillForm]

	roomID int
	userID int64
}

func NewRoomBillsPage(api *upstream.Client, notifier crud.Notifier, confirmer crud.Confirmer, roomID int, userID int64) *RoomBillsPage {
	p := &RoomBillsPage{roomID: roomID, userID: userID}

	list := crud.NewListController(func(ctx context.Context) ([]models.Bill, error) {
		return api.Bills().ListByRoom(ctx, p.roomID)
	}, notifier,
		crud.WithFetchFailedText[models.Bill]("Could not load bills"),
		crud.WithEmptyOnNotFound[models.Bill]("No bills", "This room has no bills yet"))

	dialog := crud.NewDialog(func() BillForm { return BillForm{} })

	actions := crud.Actions[BillForm]{
		Validate: validateBillForm,
		Resolve: func(ctx context.Context, f *BillForm) error {
			if f.MeterUpload == nil {
				return nil
			}
			path, err := api.Upload(ctx, f.MeterUpload.Filename, bytes.NewReader(f.MeterUpload.Content))
			if err != nil {
				return err
			}
			f.MeterPath = path
			f.MeterUpload = nil
			return nil
		},
		Create: func(ctx context.Context, f BillForm) error {
			return api.Bills().Create(ctx, p.billRequest(f))
		},
		Update: func(ctx context.Context, id int64, f BillForm) error {
			return api.Bills().Update(ctx, id, p.billRequest(f))
		},
		Delete: func(ctx context.Context, id int64) error {
			return api.Bills().Delete(ctx, id)
		},
	}

	messages := crud.Messages{
		CreatedTitle: "Bill added",
		CreatedText:  "The new bill has been saved",
		UpdatedTitle: "Bill updated",
		UpdatedText:  "The bill has been saved",
		DeletedTitle: "Bill deleted",
		DeletedText:  "The bill has been removed",
		ConfirmTitle: "Please confirm",
		ConfirmText:  "The bill will be deleted permanently and cannot be recovered",
		SaveFailed:   "Could not save the bill",
		DeleteFailed: "Could not delete the bill",
	}

	p.Controller = crud.NewController(list, dialog, actions, notifier, confirmer, messages)
	return p
}

func (p *RoomBillsPage) RoomID() int   { return p.roomID }
func (p *RoomBillsPage) UserID() int64 { return p.userID }

func (p *RoomBillsPage) Load(ctx context.Context) error {
	return p.List.Refresh(ctx)
}

// SetRoom switches the page to another room and refetches. Stale responses
// from the previous room are discarded by the list's request identity.
func (p *RoomBillsPage) SetRoom(ctx context.Context, roomID int, userID int64) error {
	if roomID == p.roomID && userID == p.userID {
		return nil
	}
	p.roomID = roomID
	p.userID = userID
	p.Dialog.Close()
	return p.List.Refresh(ctx)
}

func (p *RoomBillsPage) OpenEdit(b models.Bill) {
	p.Dialog.OpenEdit(b.BillID, BillForm{
		WaterUnits:       strconv.FormatFloat(b.WaterUnits, 'f', -1, 64),
		ElectricityUnits: strconv.FormatFloat(b.ElectricityUnits, 'f', -1, 64),
		DueDate:          b.DueDate,
		SlipPath:         b.SlipPath,
		MeterPath:        b.Meter,
		PaymentState:     b.PaymentState,
	})
}

// AttachMeter stages a meter photo on the open dialog, replacing any
// previous reference.
func (p *RoomBillsPage) AttachMeter(filename string, content []byte) {
	p.Dialog.Apply(func(f *BillForm) {
		f.MeterUpload = &PendingUpload{Filename: filename, Content: content}
		f.MeterPath = ""
	})
}

// The upstream validates bill contents; locally only the numeric fields
// need to parse.
func validateBillForm(f BillForm, _ bool) error {
	if f.WaterUnits != "" {
		if _, err := strconv.ParseFloat(f.WaterUnits, 64); err != nil {
			return &crud.ValidationError{Field: "water_units", Title: "Invalid water units", Text: "Water units must be a number"}
		}
	}
	if f.ElectricityUnits != "" {
		if _, err := strconv.ParseFloat(f.ElectricityUnits, 64); err != nil {
			return &crud.ValidationError{Field: "electricity_units", Title: "Invalid electricity units", Text: "Electricity units must be a number"}
		}
	}
	return nil
}

func (p *RoomBillsPage) billRequest(f BillForm) models.SaveBillRequest {
	water, _ := strconv.ParseFloat(f.WaterUnits, 64)
	electricity, _ := strconv.ParseFloat(f.ElectricityUnits, 64)
	return models.SaveBillRequest{
		UserID:           p.userID,
		RoomNumber:       p.roomID,
		WaterUnits:       water,
		ElectricityUnits: electricity,
		DueDate:          f.DueDate,
		SlipPath:         f.SlipPath,
		Meter:            f.MeterPath,
		PaymentState:     f.PaymentState,
	}
}
