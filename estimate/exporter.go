package estimate

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary = "Kopsavilkums"
	SheetRooms   = "Telpas"
	SheetActions = "Darbi"
)

// Exporter writes an assembled estimate into an Excel workbook with the
// three standard sheets.
type Exporter struct{}

// NewExporter creates a workbook exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Workbook renders the export into a new excelize file. The caller owns
// the file and must Close it.
func (e *Exporter) Workbook(export Export) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	for _, sheet := range []string{SheetRooms, SheetActions} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	e.writeSummary(f, export)
	if err := e.writeRooms(f, export, headerStyle); err != nil {
		return nil, err
	}
	if err := e.writeActions(f, export, headerStyle); err != nil {
		return nil, err
	}

	return f, nil
}

// Bytes renders the export and returns the xlsx file contents.
func (e *Exporter) Bytes(export Export) ([]byte, error) {
	f, err := e.Workbook(export)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Save renders the export directly to a file on disk.
func (e *Exporter) Save(export Export, filename string) error {
	f, err := e.Workbook(export)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (e *Exporter) writeSummary(f *excelize.File, export Export) {
	for i, field := range export.Summary {
		row := i + 1
		f.SetCellValue(SheetSummary, fmt.Sprintf("A%d", row), field.Label)
		f.SetCellValue(SheetSummary, fmt.Sprintf("B%d", row), field.Value)
	}
	f.SetColWidth(SheetSummary, "A", "A", 32)
	f.SetColWidth(SheetSummary, "B", "B", 48)
}

func (e *Exporter) writeRooms(f *excelize.File, export Export, headerStyle int) error {
	headers := []string{"Nr.", "Telpa", "Bojātās virsmas", "Piezīmes"}
	if err := writeHeaderRow(f, SheetRooms, headers, headerStyle); err != nil {
		return err
	}

	for i, room := range export.Rooms {
		row := i + 2
		f.SetCellValue(SheetRooms, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(SheetRooms, fmt.Sprintf("B%d", row), roomLabel(room))
		f.SetCellValue(SheetRooms, fmt.Sprintf("C%d", row), joinAreas(room.DamagedAreas))
		f.SetCellValue(SheetRooms, fmt.Sprintf("D%d", row), room.Note)
	}

	f.SetColWidth(SheetRooms, "B", "B", 28)
	f.SetColWidth(SheetRooms, "C", "D", 36)
	return nil
}

func (e *Exporter) writeActions(f *excelize.File, export Export, headerStyle int) error {
	headers := []string{
		"Nr.", "Pozīcija", "Daudzums", "Mērvienība",
		"Vienības cena", "Darbs", "Materiāli", "Mehānismi", "Summa",
	}
	if err := writeHeaderRow(f, SheetActions, headers, headerStyle); err != nil {
		return err
	}

	position := 0
	for i, action := range export.Actions {
		row := i + 2
		name := action.Position
		if action.Derived {
			name = "  – " + name
		} else {
			position++
			f.SetCellValue(SheetActions, fmt.Sprintf("A%d", row), position)
		}
		f.SetCellValue(SheetActions, fmt.Sprintf("B%d", row), name)
		f.SetCellValue(SheetActions, fmt.Sprintf("C%d", row), action.Quantity)
		f.SetCellValue(SheetActions, fmt.Sprintf("D%d", row), action.Unit)
		f.SetCellValue(SheetActions, fmt.Sprintf("E%d", row), action.UnitPrice)
		f.SetCellValue(SheetActions, fmt.Sprintf("F%d", row), action.Labor)
		f.SetCellValue(SheetActions, fmt.Sprintf("G%d", row), action.Materials)
		f.SetCellValue(SheetActions, fmt.Sprintf("H%d", row), action.Mechanisms)
		f.SetCellValue(SheetActions, fmt.Sprintf("I%d", row), action.Total)
	}

	totalRow := len(export.Actions) + 2
	f.SetCellValue(SheetActions, fmt.Sprintf("B%d", totalRow), "Kopā")
	f.SetCellValue(SheetActions, fmt.Sprintf("I%d", totalRow), export.Total())

	f.SetColWidth(SheetActions, "B", "B", 44)
	f.SetColWidth(SheetActions, "C", "I", 13)
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string, style int) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, style)
	}
	return nil
}

func roomLabel(room RoomInstance) string {
	return fmt.Sprintf("%s %d", room.RoomType, room.Index)
}

func joinAreas(areas []string) string {
	return strings.Join(areas, ", ")
}
