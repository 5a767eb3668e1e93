package report

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// writeXLSX puts every section on its own sheet. The first sheet also
// carries the document header.
func writeXLSX(w io.Writer, doc *Document) error {
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for _, page := range doc.Pages {
		for _, s := range page.Sections {
			name := sheetName(s)
			if first {
				if err := f.SetSheetName("Sheet1", name); err != nil {
					return err
				}
			} else if _, err := f.NewSheet(name); err != nil {
				return err
			}

			row := 1
			if first {
				for _, line := range []string{doc.Title, "Generated on " + doc.GeneratedOn, "User: " + doc.User} {
					if err := setRow(f, name, row, []string{line}); err != nil {
						return err
					}
					row++
				}
				row++
				first = false
			}
			if err := xlsxSection(f, name, row, s); err != nil {
				return err
			}
		}
	}

	f.SetActiveSheet(0)
	_, err := f.WriteTo(w)
	return err
}

func sheetName(s Section) string {
	if s.Heading == "" {
		return "Summary"
	}
	if len(s.Heading) > 31 {
		return s.Heading[:31]
	}
	return s.Heading
}

func xlsxSection(f *excelize.File, sheet string, row int, s Section) error {
	if s.Table == nil {
		if s.Placeholder != "" {
			return setRow(f, sheet, row, []string{s.Placeholder})
		}
		return nil
	}

	headers := make([]string, len(s.Table.Columns))
	for i, c := range s.Table.Columns {
		headers[i] = c.Header
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		// millimetres to character widths, roughly
		if err := f.SetColWidth(sheet, col, col, c.Width/2); err != nil {
			return err
		}
	}
	if err := setRow(f, sheet, row, headers); err != nil {
		return err
	}
	row++

	for _, r := range s.Table.Rows {
		if err := setRow(f, sheet, row, r); err != nil {
			return err
		}
		row++
	}

	if len(s.Footer) > 0 {
		row++
		for _, line := range s.Footer {
			if err := setRow(f, sheet, row, []string{line}); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
