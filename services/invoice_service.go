package services

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/polotecnico/gestionale-api/models"
	"github.com/polotecnico/gestionale-api/utils"
)

// ErrNoInterventions is returned when the requested invoice period has no
// interventions for the client; no document is produced in that case.
var ErrNoInterventions = errors.New("Nessun intervento trovato per il periodo selezionato")

// InvoiceLine is one billed intervention on the invoice
type InvoiceLine struct {
	Date     string  `json:"date"`
	Type     string  `json:"type"`
	Duration float64 `json:"duration"`
	Cost     float64 `json:"cost"`
}

// Invoice is the structured document handed to the PDF renderer
type Invoice struct {
	ClientID   uint          `json:"client_id"`
	ClientName string        `json:"client_name"`
	DateStart  string        `json:"date_start"`
	DateEnd    string        `json:"date_end"`
	Lines      []InvoiceLine `json:"lines"`
	Total      float64       `json:"total"`
}

// BuildInvoice selects the client's interventions with date inside the
// inclusive [start, end] range and builds the invoice. Returns
// ErrNoInterventions when nothing falls in the period.
func BuildInvoice(client *models.Client, interventions []models.Intervention, dateStart, dateEnd string) (*Invoice, error) {
	invoice := &Invoice{
		ClientID:   client.ID,
		ClientName: client.Name,
		DateStart:  dateStart,
		DateEnd:    dateEnd,
	}

	for _, intervention := range interventions {
		if intervention.ClientID != client.ID {
			continue
		}
		if !utils.InDateRange(intervention.Date, dateStart, dateEnd) {
			continue
		}
		invoice.Lines = append(invoice.Lines, InvoiceLine{
			Date:     intervention.Date,
			Type:     intervention.Type,
			Duration: intervention.Duration,
			Cost:     intervention.Cost,
		})
		invoice.Total += intervention.Cost
	}

	if len(invoice.Lines) == 0 {
		return nil, ErrNoInterventions
	}
	return invoice, nil
}

// Filename returns the download name, embedding client and period
func (inv *Invoice) Filename() string {
	return fmt.Sprintf("fattura_%s_%s_%s.pdf", inv.ClientName, inv.DateStart, inv.DateEnd)
}

// RenderPDF produces the downloadable invoice document: centered title,
// client and period lines, one table row per intervention, total due.
func (inv *Invoice) RenderPDF() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Fattura", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Cliente: %s", inv.ClientName)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Periodo: dal %s al %s", inv.DateStart, inv.DateEnd), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	colWidths := []float64{40, 70, 35, 35}
	headers := []string{"Data", "Tipo", "Durata", "Costo"}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range inv.Lines {
		pdf.CellFormat(colWidths[0], 8, line.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, tr(line.Type), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, fmt.Sprintf("%g ore", line.Duration), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 8, tr(fmt.Sprintf("€%.2f", line.Cost)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colWidths[0]+colWidths[1], 8, "", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colWidths[2], 8, "Totale", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 8, tr(fmt.Sprintf("€%.2f", inv.Total)), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
