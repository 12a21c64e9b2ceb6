package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/fuzumoe/domsight-api/internal/model"
)

// WriteXLSX renders the flattened report as a workbook: one Metrics sheet of
// path/value rows with a styled, frozen header.
func WriteXLSX(w io.Writer, r model.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Metrics"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F6FEB"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})

	for i, col := range []string{"metric", "value"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, row := range Flatten(r) {
		pathCell, _ := excelize.CoordinatesToCellName(1, i+2)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+2)
		f.SetCellValue(sheet, pathCell, row.Path)
		f.SetCellValue(sheet, valueCell, row.Value)
	}

	f.SetColWidth(sheet, "A", "A", 60)
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	_, err = f.WriteTo(w)
	return err
}
