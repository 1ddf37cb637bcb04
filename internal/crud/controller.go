package crud

import (
	"context"
	"errors"

	"horplus-console/internal/upstream"
)

// Actions binds a page's dialog form to the upstream operations that persist
// it. Validate and Resolve are optional; Delete may be nil for pages without
// a delete action.
type Actions[F any] struct {
	// Validate checks required fields locally. A non-nil error aborts the
	// save before any request is issued.
	Validate func(form F, editing bool) error
	// Resolve finalizes pending attachments (upload-then-reference): a local
	// file becomes a persisted upstream path exactly once, before the save
	// request. A failure aborts the whole save.
	Resolve func(ctx context.Context, form *F) error
	Create  func(ctx context.Context, form F) error
	Update  func(ctx context.Context, id int64, form F) error
	Delete  func(ctx context.Context, id int64) error
}

// Messages carries the per-entity notification wording.
type Messages struct {
	CreatedTitle string
	CreatedText  string
	UpdatedTitle string
	UpdatedText  string
	DeletedTitle string
	DeletedText  string
	ConfirmTitle string
	ConfirmText  string
	SaveFailed   string
	DeleteFailed string
}

// Controller ties one page's list, dialog and actions together.
type Controller[T, F any] struct {
	List   *ListController[T]
	Dialog *Dialog[F]

	actions   Actions[F]
	notifier  Notifier
	confirmer Confirmer
	messages  Messages
}

func NewController[T, F any](list *ListController[T], dialog *Dialog[F], actions Actions[F], notifier Notifier, confirmer Confirmer, messages Messages) *Controller[T, F] {
	return &Controller[T, F]{
		List:      list,
		Dialog:    dialog,
		actions:   actions,
		notifier:  notifier,
		confirmer: confirmer,
		messages:  messages,
	}
}

// Save persists the open dialog's form: validate, resolve attachments, then
// create or update depending on the dialog mode. Any failure leaves the
// dialog open with the user's input intact; only success closes it and
// refetches the list.
func (c *Controller[T, F]) Save(ctx context.Context) error {
	if !c.Dialog.IsOpen() {
		return nil
	}

	form := c.Dialog.Form()
	editing := c.Dialog.Editing()

	if c.actions.Validate != nil {
		if err := c.actions.Validate(form, editing); err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				c.notifier.Error(ve.Title, ve.Text)
			} else {
				c.notifier.Error("Invalid input", err.Error())
			}
			return err
		}
	}

	if c.actions.Resolve != nil {
		if err := c.actions.Resolve(ctx, &form); err != nil {
			title, text := upstream.Describe(err, c.messages.SaveFailed)
			c.notifier.Error(title, text)
			return err
		}
		// Keep the resolved attachment reference so a later retry does not
		// upload the same file twice.
		c.Dialog.Apply(func(f *F) { *f = form })
	}

	var err error
	if editing {
		err = c.actions.Update(ctx, c.Dialog.EditingID(), form)
	} else {
		err = c.actions.Create(ctx, form)
	}
	if err != nil {
		title, text := upstream.Describe(err, c.messages.SaveFailed)
		c.notifier.Error(title, text)
		return err
	}

	if editing {
		c.notifier.Success(c.messages.UpdatedTitle, c.messages.UpdatedText)
	} else {
		c.notifier.Success(c.messages.CreatedTitle, c.messages.CreatedText)
	}
	c.Dialog.Close()
	return c.List.Refresh(ctx)
}

// Delete removes one record after a blocking confirmation. Declining sends
// nothing and changes nothing; there is no optimistic removal either way.
func (c *Controller[T, F]) Delete(ctx context.Context, id int64) error {
	if !c.confirmer.Confirm(c.messages.ConfirmTitle, c.messages.ConfirmText) {
		return nil
	}

	if err := c.actions.Delete(ctx, id); err != nil {
		title, text := upstream.Describe(err, c.messages.DeleteFailed)
		c.notifier.Error(title, text)
		return err
	}

	c.notifier.Success(c.messages.DeletedTitle, c.messages.DeletedText)
	return c.List.Refresh(ctx)
}
