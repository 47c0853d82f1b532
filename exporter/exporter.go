package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"tariffserver/enrichment"
)

// ExportFormat формат экспорта
type ExportFormat string

const (
	FormatJSON  ExportFormat = "json"
	FormatCSV   ExportFormat = "csv"
	FormatExcel ExportFormat = "excel"
)

// csvHeader общий заголовок для табличных форматов
var csvHeader = []string{
	"code", "duty_type", "rate", "unit_basis", "minimum_floor", "vat_rate", "source_url", "fetched_at",
}

// Export сохраняет результаты обогащения в файл в выбранном формате
func Export(format ExportFormat, filename string, items []*enrichment.TariffInfo) error {
	switch format {
	case FormatJSON:
		return ExportToJSON(filename, items)
	case FormatCSV:
		return ExportToCSV(filename, items)
	case FormatExcel:
		return ExportToExcel(filename, items)
	default:
		return fmt.Errorf("неизвестный формат экспорта: %q", format)
	}
}

// ExportToJSON экспортирует данные в JSON
func ExportToJSON(filename string, items []*enrichment.TariffInfo) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	result := map[string]interface{}{
		"exported_at": time.Now().Format(time.RFC3339),
		"total":       len(items),
		"items":       items,
	}

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// ExportToCSV экспортирует данные в CSV
func ExportToCSV(filename string, items []*enrichment.TariffInfo) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, item := range items {
		if err := writer.Write(itemRow(item)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// ExportToExcel экспортирует данные в XLSX
func ExportToExcel(filename string, items []*enrichment.TariffInfo) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Tariffs"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, item := range items {
		for col, value := range itemRow(item) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}

func itemRow(item *enrichment.TariffInfo) []string {
	minimumFloor := ""
	if floor, ok := item.Duty.Floor(); ok {
		minimumFloor = strconv.FormatFloat(floor, 'f', -1, 64)
	}

	return []string{
		item.Code,
		string(item.Duty.DutyType),
		strconv.FormatFloat(item.Duty.Rate, 'f', -1, 64),
		string(item.Duty.UnitBasis),
		minimumFloor,
		strconv.FormatFloat(item.VATRate, 'f', -1, 64),
		item.SourceURL,
		item.FetchedAt.Format(time.RFC3339),
	}
}
