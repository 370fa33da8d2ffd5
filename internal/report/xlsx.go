package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the keeper table.
const SheetName = "Keepers"

var xlsxHeaders = []string{"Player", "NFL Team", "Pos", "Last Manager", "Draft Manager", "Draft Round", "Keeper Round"}

// Workbook lays rep out as a single-sheet workbook, one row per player.
func Workbook(rep *Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, h := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SheetName, cell, h)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(SheetName, 1, 1, headerStyle)

	for i, p := range rep.Players {
		row := i + 2
		f.SetCellValue(SheetName, fmt.Sprintf("A%d", row), p.Name)
		f.SetCellValue(SheetName, fmt.Sprintf("B%d", row), p.NFLTeam)
		f.SetCellValue(SheetName, fmt.Sprintf("C%d", row), p.Position)
		f.SetCellValue(SheetName, fmt.Sprintf("D%d", row), p.LastManager)
		f.SetCellValue(SheetName, fmt.Sprintf("E%d", row), p.DraftManager)
		f.SetCellValue(SheetName, fmt.Sprintf("F%d", row), p.DraftRound)
		f.SetCellValue(SheetName, fmt.Sprintf("G%d", row), p.KeeperRound)
	}
	f.SetColWidth(SheetName, "A", "A", 28)
	f.SetColWidth(SheetName, "D", "E", 20)
	return f, nil
}

// WriteXLSX saves the keeper sheet of rep to path.
func WriteXLSX(path string, rep *Report) error {
	f, err := Workbook(rep)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
