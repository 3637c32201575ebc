package timeadmin

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/workplanner/workplanner-backend-go/internal/domain/timeadmin"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/logger"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Time Administration"

var exportHeader = []interface{}{
	"ID", "Name", "Email", "Administered Hours", "Required Hours", "Vacation Days", "Difference", "Status",
}

// ExportTimeAdministrationReport renders the report as an XLSX workbook with a header row,
// one row per employee and a totals row. The generation time goes into the document properties.
func (s *TimeAdministrationServiceImpl) ExportTimeAdministrationReport(ctx context.Context, req timeadmin.TimeAdministrationRequest) ([]byte, error) {
	report, err := s.GenerateTimeAdministrationReport(ctx, req)
	if err != nil {
		return nil, err
	}

	return renderWorkbook(report, s.now())
}

func renderWorkbook(report timeadmin.Report, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   fmt.Sprintf("Time Administration %04d-%02d", report.Year, report.Month),
		Creator: logger.AppName,
		Created: generatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	if err := f.SetCellStyle(exportSheet, "A1", "H1", bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	administered, required, difference := decimal.Zero, decimal.Zero, decimal.Zero
	vacationDays := 0

	for i, row := range report.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			row.ID,
			row.Name,
			row.Email,
			row.AdministeredHours,
			row.RequiredHours,
			row.VacationDays,
			row.Difference,
			string(row.Status),
		}
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}

		administered = administered.Add(decimal.NewFromFloat(row.AdministeredHours))
		required = required.Add(decimal.NewFromFloat(row.RequiredHours))
		difference = difference.Add(decimal.NewFromFloat(row.Difference))
		vacationDays += row.VacationDays
	}

	totalRow := len(report.Rows) + 2
	first, err := excelize.CoordinatesToCellName(1, totalRow)
	if err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(exportHeader), totalRow)
	if err != nil {
		return nil, err
	}
	totals := []interface{}{
		"",
		"Total",
		"",
		administered.InexactFloat64(),
		required.InexactFloat64(),
		vacationDays,
		difference.InexactFloat64(),
	}
	if err := f.SetSheetRow(exportSheet, first, &totals); err != nil {
		return nil, fmt.Errorf("failed to write totals: %w", err)
	}
	if err := f.SetCellStyle(exportSheet, first, last, bold); err != nil {
		return nil, fmt.Errorf("failed to style totals: %w", err)
	}

	if err := f.SetColWidth(exportSheet, "B", "C", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "D", "H", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
