// Package export renders attendance record sets to downloadable tabular
// documents. Renderers only format rows the engine already classified;
// labels come from the canonical status table, never from local switches.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/pointago/pointage-backend-go/internal/domain/attendance"
)

var columns = []string{"Employé", "Date", "Arrivée", "Départ", "Statut", "Retard (min)", "Heures", "Justification"}

type row struct {
	employee      string
	date          string
	timeIn        string
	timeOut       string
	status        string
	delayMinutes  string
	totalHours    string
	justification string
}

func toRow(rec attendance.RecordResponse) row {
	timeOf := func(s *string) string {
		if s == nil || len(*s) < 16 {
			return "-"
		}
		// "2006-01-02 15:04:05" -> "15:04"
		return (*s)[11:16]
	}

	delay := "-"
	if rec.DelayMinutes > 0 {
		delay = fmt.Sprintf("%d", rec.DelayMinutes)
	}

	hours := "-"
	if rec.TotalHours > 0 {
		hours = fmt.Sprintf("%.1f", rec.TotalHours)
	}

	justification := ""
	if rec.JustificationStatus != "NONE" {
		justification = rec.JustificationStatus
	}

	return row{
		employee:      rec.EmployeeName,
		date:          rec.Date,
		timeIn:        timeOf(rec.TimeIn),
		timeOut:       timeOf(rec.TimeOut),
		status:        rec.StatusLabel,
		delayMinutes:  delay,
		totalHours:    hours,
		justification: justification,
	}
}

// RecordsXLSX renders records to an XLSX workbook.
func RecordsXLSX(records []attendance.RecordResponse, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Pointages"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// Title
	f.SetCellValue(sheetName, "A1", "RAPPORT DE POINTAGE")
	f.MergeCell(sheetName, "A1", "H1")
	f.SetCellStyle(sheetName, "A1", "H1", headerStyle)
	f.SetRowHeight(sheetName, 1, 25)

	// Column headers
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheetName, cell, col)
	}
	f.SetCellStyle(sheetName, "A3", "H3", headerStyle)

	rowIdx := 4
	for _, rec := range records {
		r := toRow(rec)
		values := []interface{}{r.employee, r.date, r.timeIn, r.timeOut, r.status, r.delayMinutes, r.totalHours, r.justification}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx)
			f.SetCellValue(sheetName, cell, v)
		}
		rowIdx++
	}

	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "H", 14)

	rowIdx += 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIdx),
		fmt.Sprintf("Généré le: %s", generatedAt.Format("02/01/2006 15:04:05")))

	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}

	return buf.Bytes(), nil
}

// RecordsPDF renders records to a landscape A4 PDF.
func RecordsPDF(records []attendance.RecordResponse, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	// Core fonts are cp1252; translate the accented labels.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr("Rapport de pointage"))
	pdf.Ln(12)

	widths := []float64{60, 26, 22, 22, 30, 28, 22, 38}

	header := func() {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(68, 114, 196)
		pdf.SetTextColor(255, 255, 255)
		for i, col := range columns {
			pdf.CellFormat(widths[i], 8, tr(col), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
	}
	header()

	for _, rec := range records {
		if pdf.GetY() > 180 {
			pdf.AddPage()
			header()
		}
		r := toRow(rec)
		values := []string{r.employee, r.date, r.timeIn, r.timeOut, r.status, r.delayMinutes, r.totalHours, r.justification}
		for i, v := range values {
			pdf.CellFormat(widths[i], 7, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Généré le: %s", generatedAt.Format("02/01/2006 15:04:05"))))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}

	return buf.Bytes(), nil
}
