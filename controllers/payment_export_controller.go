package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/Govind-619/PaymentRecords/models"
	"github.com/Govind-619/PaymentRecords/utils"
)

var recentSessionHeaders = []string{"Session ID", "Proposed At", "Amount", "Currency", "Status", "Refunds", "Refunded", "Captures", "Captured", "Void"}

// GET /v1/payment-sessions/export.xlsx
func (pc *PaymentController) DownloadRecentSessionsExcel(c *gin.Context) {
	utils.LogInfo("DownloadRecentSessionsExcel called")

	sessions, err := pc.store.GetPaymentSessions(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	file, err := buildRecentSessionsWorkbook(sessions)
	if err != nil {
		utils.LogError("Failed to build sessions workbook: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payment_sessions_%s.xlsx", time.Now().Format("2006-01-02")))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write sessions workbook: %v", err)
		return
	}
	utils.LogInfo("Exported %d payment sessions to Excel", len(sessions))
}

func buildRecentSessionsWorkbook(sessions []models.PaymentSession) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payment Sessions")
	if err != nil {
		return nil, err
	}

	headerRow := sheet.AddRow()
	for _, h := range recentSessionHeaders {
		headerRow.AddCell().SetString(h)
	}

	for _, session := range sessions {
		row := sheet.AddRow()
		row.AddCell().SetString(session.ID)
		row.AddCell().SetString(session.ProposedAt.UTC().Format(time.RFC3339))
		row.AddCell().SetFloat(session.Amount)
		row.AddCell().SetString(session.Currency)
		row.AddCell().SetString(string(session.Status))
		row.AddCell().SetInt(len(session.Refunds))
		row.AddCell().SetFloat(totalRefunded(session))
		row.AddCell().SetInt(len(session.Captures))
		row.AddCell().SetFloat(totalCaptured(session))
		row.AddCell().SetString(voidStatus(session))
	}
	return file, nil
}

// GET /v1/payment-sessions/:id/receipt.pdf
func (pc *PaymentController) DownloadPaymentSessionPDF(c *gin.Context) {
	id := c.Param("id")
	utils.LogInfo("DownloadPaymentSessionPDF called for %s", id)

	session, err := pc.store.GetPaymentSession(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	pdf := buildPaymentSessionPDF(session)
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payment_session_%s.pdf", session.ID))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF for payment session %s: %v", id, err)
	}
}

func buildPaymentSessionPDF(session *models.PaymentSession) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Payment Session "+session.ID)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	summary := [][2]string{
		{"Proposed At", session.ProposedAt.UTC().Format("2006-01-02 15:04 MST")},
		{"Amount", fmt.Sprintf("%.2f %s", session.Amount, session.Currency)},
		{"Status", string(session.Status)},
		{"Kind", session.Kind},
		{"Test", fmt.Sprintf("%t", session.Test)},
		{"Refunded", fmt.Sprintf("%.2f", totalRefunded(*session))},
		{"Captured", fmt.Sprintf("%.2f", totalCaptured(*session))},
		{"Void", voidStatus(*session)},
	}
	for _, line := range summary {
		pdf.CellFormat(50, 8, line[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 8, line[1], "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	writeChildTable := func(title string, rows [][3]string) {
		if len(rows) == 0 {
			return
		}
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(220, 230, 250)
		for i, h := range []string{"ID", "Amount", "Status"} {
			pdf.CellFormat([]float64{80, 30, 30}[i], 8, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 10)
		for _, r := range rows {
			pdf.CellFormat(80, 8, r[0], "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 8, r[1], "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 8, r[2], "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}
	}

	refunds := make([][3]string, 0, len(session.Refunds))
	for _, r := range session.Refunds {
		refunds = append(refunds, [3]string{r.ID, fmt.Sprintf("%.2f", r.Amount), string(r.Status)})
	}
	captures := make([][3]string, 0, len(session.Captures))
	for _, cp := range session.Captures {
		captures = append(captures, [3]string{cp.ID, fmt.Sprintf("%.2f", cp.Amount), string(cp.Status)})
	}
	writeChildTable("Refunds", refunds)
	writeChildTable("Captures", captures)

	return pdf
}

func totalRefunded(session models.PaymentSession) float64 {
	var total float64
	for _, r := range session.Refunds {
		total += r.Amount
	}
	return total
}

func totalCaptured(session models.PaymentSession) float64 {
	var total float64
	for _, cp := range session.Captures {
		total += cp.Amount
	}
	return total
}

func voidStatus(session models.PaymentSession) string {
	if session.Void == nil {
		return "-"
	}
	return string(session.Void.Status)
}
