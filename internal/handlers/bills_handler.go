package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"horplus-console/internal/crud"
	"horplus-console/internal/pages"
	"horplus-console/internal/services"
	"horplus-console/internal/upstream"
	"horplus-console/internal/web"

	"github.com/gorilla/mux"
)

// Meter photos are small phone snapshots; anything bigger is a mistake.
const maxMeterUploadBytes = 10 << 20

type BillsHandler struct {
	api      *upstream.Client
	sessions *web.SessionManager
	renderer *web.Renderer
	receipts *services.ReceiptService
}

func NewBillsHandler(api *upstream.Client, sessions *web.SessionManager, renderer *web.Renderer, receipts *services.ReceiptService) *BillsHandler {
	return &BillsHandler{api: api, sessions: sessions, renderer: renderer, receipts: receipts}
}

// Admin renders the tenant overview with outstanding totals; rows link into
// the per-room bill screen.
func (h *BillsHandler) Admin(w http.ResponseWriter, r *http.Request) {
	notifier := &web.FlashNotifier{Sessions: h.sessions, W: w, R: r}
	page := pages.NewAdminBillsPage(h.api, notifier)
	page.Load(r.Context())

	h.renderer.Render(w, "bills.html", pageData(w, r, h.sessions, "Bills", map[string]interface{}{
		"Items":       page.List.Items(),
		"UnpaidCount": page.UnpaidCount(),
		"Outstanding": page.OutstandingTotal(),
	}))
}

func (h *BillsHandler) roomPage(w http.ResponseWriter, r *http.Request) (*pages.RoomBillsPage, bool) {
	roomID, err := strconv.Atoi(mux.Vars(r)["room"])
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}
	userID := queryID(r, "user")
	if userID == 0 {
		userID = formID(r, "user")
	}

	notifier := &web.FlashNotifier{Sessions: h.sessions, W: w, R: r}
	return pages.NewRoomBillsPage(h.api, notifier, &web.FormConfirmer{R: r}, roomID, userID), true
}

// Room renders one room's bill history.
func (h *BillsHandler) Room(w http.ResponseWriter, r *http.Request) {
	page, ok := h.roomPage(w, r)
	if !ok {
		return
	}
	page.Load(r.Context())

	switch r.URL.Query().Get("dialog") {
	case "new":
		page.Dialog.OpenAdd()
	case "edit":
		id := queryID(r, "id")
		for _, b := range page.List.Items() {
			if b.BillID == id {
				page.OpenEdit(b)
				break
			}
		}
	}

	h.renderRoom(w, r, page)
}

// SaveRoom persists the posted bill form. A staged meter photo is uploaded
// first and the bill references the returned path.
func (h *BillsHandler) SaveRoom(w http.ResponseWriter, r *http.Request) {
	// MaxBytesReader enforces the cap; the parse's maxMemory argument alone
	// only picks the spill-to-disk threshold.
	r.Body = http.MaxBytesReader(w, r.Body, maxMeterUploadBytes)
	if err := r.ParseMultipartForm(maxMeterUploadBytes); err != nil && err != http.ErrNotMultipart {
		h.sessions.AddFlash(w, r, web.Flash{Level: "error", Title: "Upload too large", Text: "The meter photo exceeds the size limit"})
		http.Redirect(w, r, fmt.Sprintf("/bill/room/%s", mux.Vars(r)["room"]), http.StatusFound)
		return
	}

	page, ok := h.roomPage(w, r)
	if !ok {
		return
	}

	form := pages.BillForm{
		WaterUnits:       r.PostFormValue("water_units"),
		ElectricityUnits: r.PostFormValue("electricity_units"),
		DueDate:          r.PostFormValue("due_date"),
		SlipPath:         r.PostFormValue("slip_path"),
		MeterPath:        r.PostFormValue("meter_path"),
		PaymentState:     r.PostFormValue("payment_state"),
	}

	if id := formID(r, "id"); id > 0 {
		page.Dialog.OpenEdit(id, form)
	} else {
		page.Dialog.OpenAdd()
		page.Dialog.Apply(func(f *pages.BillForm) { *f = form })
	}

	if file, header, err := r.FormFile("meter"); err == nil {
		content, readErr := io.ReadAll(file)
		file.Close()
		if readErr != nil {
			log.Printf("[Bills] Meter photo read failed: %v", readErr)
		} else {
			page.AttachMeter(header.Filename, content)
		}
	}

	if err := page.Save(r.Context()); err != nil {
		page.Load(r.Context())
		h.renderRoom(w, r, page)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/bill/room/%d?user=%d", page.RoomID(), page.UserID()), http.StatusFound)
}

func (h *BillsHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	page, ok := h.roomPage(w, r)
	if !ok {
		return
	}
	page.Delete(r.Context(), formID(r, "id"))
	http.Redirect(w, r, fmt.Sprintf("/bill/room/%d?user=%d", page.RoomID(), page.UserID()), http.StatusFound)
}

// Receipt serves one bill as a PDF download.
func (h *BillsHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.Atoi(vars["room"])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	billID, err := strconv.ParseInt(vars["bill"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	bills, err := h.api.Bills().ListByRoom(r.Context(), roomID)
	if err != nil {
		title, text := upstream.Describe(err, "Could not load the bill")
		h.sessions.AddFlash(w, r, web.Flash{Level: "error", Title: title, Text: text})
		http.Redirect(w, r, fmt.Sprintf("/bill/room/%d", roomID), http.StatusFound)
		return
	}

	for _, b := range bills {
		if b.BillID != billID {
			continue
		}
		pdf, err := h.receipts.GenerateBillPDF(b)
		if err != nil {
			log.Printf("[Bills] Receipt generation failed: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=bill_%d.pdf", billID))
		w.Write(pdf)
		return
	}
	http.NotFound(w, r)
}

func (h *BillsHandler) renderRoom(w http.ResponseWriter, r *http.Request, page *pages.RoomBillsPage) {
	h.renderer.Render(w, "roombills.html", pageData(w, r, h.sessions, "Room Bills", map[string]interface{}{
		"RoomID":     page.RoomID(),
		"UserID":     page.UserID(),
		"Items":      page.List.Items(),
		"DialogOpen": page.Dialog.IsOpen(),
		"Editing":    page.Dialog.Mode() == crud.ModeEditing,
		"EditingID":  page.Dialog.EditingID(),
		"Form":       page.Dialog.Form(),
	}))
}
