// Package xlsx extracts text from Excel (.xlsx) workbooks using excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.SpreadsheetExtractor = (*Extractor)(nil)

const (
	format = "xlsx"

	// dateLayout renders date cells without a zone.
	dateLayout = "2006-01-02T15:04:05"
)

// Extractor handles XLSX workbooks.
type Extractor struct{}

// New creates a new XLSX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns the format label used in errors.
func (e *Extractor) Format() string {
	return format
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{domain.MIMETypeSpreadsheet}
}

// Extract renders every sheet in workbook order.
func (e *Extractor) Extract(ctx context.Context, content domain.Content) (string, error) {
	return e.render(ctx, content, "")
}

// ExtractSheet renders one sheet. An unknown sheet is ErrNotFound.
func (e *Extractor) ExtractSheet(ctx context.Context, content domain.Content, sheet string) (string, error) {
	if sheet == "" {
		return "", fmt.Errorf("%w: sheet name is required", domain.ErrInvalidInput)
	}
	return e.render(ctx, content, sheet)
}

// SheetNames lists the workbook's sheets in order.
func (e *Extractor) SheetNames(ctx context.Context, content domain.Content) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := open(content.Data)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

func open(data []byte) (*excelize.File, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, domain.NewExtractionError(format, domain.ExtractionMalformed, err)
	}
	return f, nil
}

// render writes the selected sheets, or all of them when only is empty.
func (e *Extractor) render(ctx context.Context, content domain.Content, only string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := open(content.Data)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if only != "" {
		found := false
		for _, name := range sheets {
			if name == only {
				found = true
				break
			}
		}
		if !found {
			return "", fmt.Errorf("%w: sheet %q", domain.ErrNotFound, only)
		}
		sheets = []string{only}
	}

	w := newSheetWriter(f)
	var out strings.Builder
	for _, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := w.write(sheet, &out); err != nil {
			return "", domain.NewExtractionError(format, domain.ExtractionMalformed, err)
		}
	}
	return out.String(), nil
}

// sheetWriter renders rows as tab-joined non-empty cells. Style lookups
// are cached per workbook.
type sheetWriter struct {
	f        *excelize.File
	date1904 bool
	isDate   map[int]bool
}

func newSheetWriter(f *excelize.File) *sheetWriter {
	w := &sheetWriter{f: f, isDate: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		w.date1904 = *props.Date1904
	}
	return w
}

func (w *sheetWriter) write(sheet string, out *strings.Builder) error {
	rows, err := w.f.Rows(sheet)
	if err != nil {
		return err
	}
	defer rows.Close()

	for row := 1; rows.Next(); row++ {
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return err
		}

		cells := make([]string, 0, len(cols))
		for col, raw := range cols {
			if raw == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			cells = append(cells, w.value(sheet, cell, raw))
		}

		out.WriteString(strings.Join(cells, "\t"))
		out.WriteByte('\n')
	}
	return rows.Error()
}

// value formats one raw cell value. Lookup failures fall back to raw.
func (w *sheetWriter) value(sheet, cell, raw string) string {
	cellType, err := w.f.GetCellType(sheet, cell)
	if err != nil {
		return raw
	}

	switch cellType {
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "true") {
			return "True"
		}
		return "False"
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if !w.dateStyled(sheet, cell) {
			return raw
		}
		serial, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return raw
		}
		t, err := excelize.ExcelDateToTime(serial, w.date1904)
		if err != nil {
			return raw
		}
		return t.Round(time.Second).Format(dateLayout)
	default:
		return raw
	}
}

func (w *sheetWriter) dateStyled(sheet, cell string) bool {
	idx, err := w.f.GetCellStyle(sheet, cell)
	if err != nil || idx == 0 {
		return false
	}
	if known, ok := w.isDate[idx]; ok {
		return known
	}

	style, err := w.f.GetStyle(idx)
	isDate := err == nil && style != nil &&
		(isDateNumFmt(style.NumFmt) || (style.CustomNumFmt != nil && isDateFormatCode(*style.CustomNumFmt)))
	w.isDate[idx] = isDate
	return isDate
}

// isDateNumFmt reports whether a built-in number format id is a date or time.
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	default:
		return false
	}
}

// isDateFormatCode reports whether a custom format code renders a date.
// Quoted literals, escaped characters and bracketed sections are ignored.
func isDateFormatCode(code string) bool {
	if code == "" || strings.EqualFold(code, "general") {
		return false
	}

	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			inQuote = c != '"'
		case inBracket:
			inBracket = c != ']'
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		default:
			switch c | 0x20 {
			case 'y', 'm', 'd', 'h', 's':
				return true
			}
		}
	}
	return false
}
