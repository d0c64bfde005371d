package reports

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportRevenueXLSX формирует Excel файл с отчетом о выручке по дням.
// Возвращает содержимое файла, готовое к отдаче клиенту.
func (s *Service) ExportRevenueXLSX(ctx context.Context) (*bytes.Buffer, error) {
	report, err := s.Revenue(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Revenue"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create sheet: %v", ErrInternal, err)
	}
	f.SetActiveSheet(index)

	// Заголовки
	_ = f.SetCellValue(sheetName, "A1", "Date")
	_ = f.SetCellValue(sheetName, "B1", "Revenue")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	_ = f.SetCellStyle(sheetName, "A1", "B1", headerStyle)

	// Данные по дням
	row := 2
	for _, daily := range report.Daily {
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), daily.Date)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), daily.Revenue)
		row++
	}

	// Итоговая строка
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Total")
	_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), report.TotalRevenue)
	_ = f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)

	_ = f.SetColWidth(sheetName, "A", "B", 16)
	_ = f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to write workbook: %v", ErrInternal, err)
	}

	s.logger.Info("ExportRevenueXLSX: exported %d days, total=%.2f", len(report.Daily), report.TotalRevenue)
	return buf, nil
}
