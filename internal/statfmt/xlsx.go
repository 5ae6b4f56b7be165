package statfmt

import (
	"io"

	"github.com/macrat/newline/lib-newline"
	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "stats"

func excelPos(x, y int) string {
	pos, err := excelize.CoordinatesToCellName(x+1, y+1)
	if err != nil {
		panic(err)
	}
	return pos
}

// ToXlsx writes records as a spreadsheet.
// Each row has a bottom border colored by the newline kind of the file.
func ToXlsx(w io.Writer, rs []Record) error {
	xlsx := excelize.NewFile()
	defer xlsx.Close()
	xlsx.SetSheetName("Sheet1", xlsxSheet)

	xlsx.SetAppProps(&excelize.AppProperties{
		Application: "nlconv",
	})
	xlsx.SetDocProps(&excelize.DocProperties{
		Creator:        "nlconv",
		LastModifiedBy: "nlconv",
	})

	header := []string{"path", "size", "kind", "segments", "lf", "crlf", "cr"}
	headerStyle, _ := xlsx.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "bottom", Style: 2, Color: "000000"}},
	})
	for x, h := range header {
		xlsx.SetCellStr(xlsxSheet, excelPos(x, 0), h)
	}
	xlsx.SetCellStyle(xlsxSheet, excelPos(0, 0), excelPos(len(header)-1, 0), headerStyle)

	colors := map[newline.Kind]string{
		newline.KindNone:  "C0C0C0",
		newline.KindLF:    "89C923",
		newline.KindCRLF:  "2D7FFF",
		newline.KindCR:    "DDA100",
		newline.KindMixed: "FF2D00",
	}

	for i, r := range rs {
		y := i + 1

		style, _ := xlsx.NewStyle(&excelize.Style{
			Border: []excelize.Border{{Type: "bottom", Style: 1, Color: colors[r.Kind]}},
		})

		values := []any{r.Path, r.Size, r.Kind.String(), r.Segments, r.LF, r.CRLF, r.CR}
		for x, v := range values {
			xlsx.SetCellValue(xlsxSheet, excelPos(x, y), v)
		}
		xlsx.SetCellStyle(xlsxSheet, excelPos(0, y), excelPos(len(values)-1, y), style)
	}

	if err := xlsx.SetPanes(xlsxSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	xlsx.SetColWidth(xlsxSheet, "A", "A", 40)
	xlsx.SetColWidth(xlsxSheet, "B", "G", 10)

	xlsx.AutoFilter(xlsxSheet, excelPos(0, 0)+":"+excelPos(len(header)-1, len(rs)), nil)

	return xlsx.Write(w)
}
