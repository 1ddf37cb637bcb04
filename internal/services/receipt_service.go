package services

import (
	"bytes"
	"fmt"

	"horplus-console/internal/models"
	"horplus-console/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReceiptService renders a fetched bill as a printable receipt. The data
// comes straight from the upstream API; nothing is computed or stored here.
type ReceiptService struct{}

func NewReceiptService() *ReceiptService {
	return &ReceiptService{}
}

// GenerateBillPDF produces an A4 receipt for one bill.
func (s *ReceiptService) GenerateBillPDF(bill models.Bill) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "HorPlus - Bill Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Bill Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Bill Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Bill No: %d", bill.BillID), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Room: %d", bill.RoomNumber), "RB", 1, "L", false, 0, "")
	dueDate := bill.DueDate
	if dueDate == "" {
		dueDate = "-"
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Due Date: %s", dueDate), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Tenant ID: %d", bill.UserID), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Usage table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Usage", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(95, 7, "Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(95, 7, "Units", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, "Water", "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("%.2f", bill.WaterUnits), "1", 1, "R", false, 0, "")
	pdf.CellFormat(95, 6, "Electricity", "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("%.2f", bill.ElectricityUnits), "1", 1, "R", false, 0, "")
	pdf.Ln(5)

	// Total - highlight by payment state
	if bill.PaymentState == models.PaymentStatePaid {
		pdf.SetFillColor(200, 255, 200)
	} else {
		pdf.SetFillColor(255, 200, 200)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(95, 10, fmt.Sprintf("Total: %.2f THB", bill.TotalAmount), "1", 0, "C", true, 0, "")
	state := bill.PaymentState
	if state == "" {
		state = models.PaymentStateUnpaid
	}
	pdf.CellFormat(95, 10, fmt.Sprintf("Status: %s", state), "1", 1, "C", true, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
