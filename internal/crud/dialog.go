package crud

// Mode is the dialog's tagged state. The form and the editing id are only
// meaningful while the dialog is open, which rules out the SPA's
// inconsistent flag combinations (edit mode set but form blank).
type Mode int

const (
	ModeClosed Mode = iota
	ModeCreating
	ModeEditing
)

// Dialog is the add/edit dialog state machine for one page. At most one
// dialog is open at a time; closing always resets the form to the default
// template and discards unsaved edits.
type Dialog[F any] struct {
	defaults  func() F
	mode      Mode
	form      F
	editingID int64
}

func NewDialog[F any](defaults func() F) *Dialog[F] {
	return &Dialog[F]{
		defaults: defaults,
		form:     defaults(),
	}
}

// OpenAdd resets the form to the default template and enters create mode.
func (d *Dialog[F]) OpenAdd() {
	d.form = d.defaults()
	d.editingID = 0
	d.mode = ModeCreating
}

// OpenEdit enters edit mode with a form pre-filled by the caller. Write-only
// fields (passwords) must already be blanked by the page's form builder.
func (d *Dialog[F]) OpenEdit(id int64, form F) {
	d.form = form
	d.editingID = id
	d.mode = ModeEditing
}

// Close hides the dialog and resets the form to the default template.
func (d *Dialog[F]) Close() {
	d.mode = ModeClosed
	d.form = d.defaults()
	d.editingID = 0
}

// Apply mutates exactly the fields the mutator touches, leaving the rest of
// the form as-is. Ignored while the dialog is closed.
func (d *Dialog[F]) Apply(mut func(*F)) {
	if d.mode == ModeClosed {
		return
	}
	mut(&d.form)
}

func (d *Dialog[F]) Mode() Mode { return d.mode }

func (d *Dialog[F]) IsOpen() bool { return d.mode != ModeClosed }

func (d *Dialog[F]) Editing() bool { return d.mode == ModeEditing }

func (d *Dialog[F]) EditingID() int64 { return d.editingID }

func (d *Dialog[F]) Form() F { return d.form }
