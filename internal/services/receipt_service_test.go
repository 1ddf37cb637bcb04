package services

import (
	"testing"

	"horplus-console/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBillPDF(t *testing.T) {
	pdf, err := NewReceiptService().GenerateBillPDF(models.Bill{
		BillID: 8, UserID: 42, RoomNumber: 101,
		WaterUnits: 12.5, ElectricityUnits: 80,
		TotalAmount: 3200, DueDate: "2024-06-05", PaymentState: "unpaid",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateBillPDFDefaultsBlankState(t *testing.T) {
	pdf, err := NewReceiptService().GenerateBillPDF(models.Bill{BillID: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
