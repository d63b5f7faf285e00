// Package export кодирует записи обратной связи в файлы для выгрузки.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"feedbackTracker/internal/domain"
)

const (
	// SheetName - единственный лист xlsx выгрузки
	SheetName = "Feedback Data"

	dateLayout = "2006-01-02 15:04:05"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv"
)

// Columns - колонки выгрузки, совпадают с колонками таблицы feedback
var Columns = []string{"id", "reviewer", "team_member", "feedback", "team", "status", "date"}

func row(e *domain.FeedbackEntry) []string {
	return []string{
		strconv.FormatInt(e.ID, 10),
		e.Reviewer,
		e.TeamMember,
		e.Text,
		e.Team,
		string(e.Status),
		e.Date.Format(dateLayout),
	}
}

// CSV кодирует записи в CSV с заголовком
func CSV(entries []domain.FeedbackEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns); err != nil {
		return nil, err
	}
	for i := range entries {
		if err := w.Write(row(&entries[i])); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// XLSX кодирует записи в книгу с одним листом SheetName
func XLSX(entries []domain.FeedbackEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i := range entries {
		e := &entries[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			e.ID,
			e.Reviewer,
			e.TeamMember,
			e.Text,
			e.Team,
			string(e.Status),
			e.Date.Format(dateLayout),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", e.ID, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode выбирает кодировщик по формату и собирает готовый файл
func Encode(entries []domain.FeedbackEntry, format domain.ExportFormat) (*domain.Export, error) {
	var (
		data        []byte
		contentType string
		err         error
	)

	switch format {
	case domain.ExportFormatXLSX:
		data, err = XLSX(entries)
		contentType = ContentTypeXLSX
	case domain.ExportFormatCSV:
		data, err = CSV(entries)
		contentType = ContentTypeCSV
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, err
	}

	return &domain.Export{
		FileName:    "feedback_data." + string(format),
		ContentType: contentType,
		Data:        data,
	}, nil
}
