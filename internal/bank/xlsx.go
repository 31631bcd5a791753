package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	questionsSheet = "Questions"
	metaSheet      = "_meta"
)

// Column headers of the XLSX layout. Option columns are every header that
// starts with "option", read in column order.
const (
	colID      = "id"
	colText    = "question"
	colCorrect = "correct_answer"
	colImage   = "image"
	colOption  = "option"
)

// ErrMissingColumn is returned when a required XLSX column is absent.
var ErrMissingColumn = errors.New("missing required column")

// LoadXLSX reads a bank from an XLSX workbook on disk.
func LoadXLSX(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bank: %w", err)
	}
	defer f.Close()
	return ReadXLSX(f)
}

// ReadXLSX reads a bank from the first sheet of an XLSX workbook. An
// optional "_meta" sheet holds key/value rows with JSON-encoded values.
func ReadXLSX(r io.Reader) (*Bank, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}
	sheetName := sheets[0]
	if sheetName == metaSheet && len(sheets) > 1 {
		sheetName = sheets[1]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read Excel rows: %w", err)
	}
	if len(rows) == 0 {
		b, err := New(nil)
		if err != nil {
			return nil, err
		}
		return b, nil
	}

	headerMap := make(map[string]int)
	var optionCols []int
	for i, header := range rows[0] {
		h := strings.ToLower(strings.TrimSpace(header))
		headerMap[h] = i
		if strings.HasPrefix(h, colOption) {
			optionCols = append(optionCols, i)
		}
	}
	for _, col := range []string{colID, colText, colCorrect} {
		if _, ok := headerMap[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	if len(optionCols) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, "option")
	}

	questions := make([]Question, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}
		column := func(name string) string {
			idx, ok := headerMap[name]
			if !ok {
				return ""
			}
			return cell(idx)
		}

		id := column(colID)
		if id == "" && len(strings.Join(row, "")) == 0 {
			continue // blank row
		}

		q := Question{
			ID:            id,
			Text:          column(colText),
			CorrectAnswer: column(colCorrect),
			Image:         column(colImage),
		}
		for _, idx := range optionCols {
			if v := cell(idx); v != "" {
				q.Options = append(q.Options, v)
			}
		}
		questions = append(questions, q)
	}

	b, err := New(questions)
	if err != nil {
		return nil, err
	}

	meta, err := readMetaSheet(f)
	if err != nil {
		return nil, err
	}
	return b.withMeta(meta), nil
}

func readMetaSheet(f *excelize.File) (map[string]any, error) {
	idx, err := f.GetSheetIndex(metaSheet)
	if err != nil || idx < 0 {
		return nil, nil
	}
	rows, err := f.GetRows(metaSheet)
	if err != nil {
		return nil, fmt.Errorf("read meta sheet: %w", err)
	}

	meta := make(map[string]any, len(rows))
	for _, row := range rows {
		if len(row) < 2 || row[0] == "" {
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(row[1]), &v); err != nil {
			v = row[1]
		}
		meta[row[0]] = v
	}
	return meta, nil
}

// WriteXLSX stores b as an XLSX workbook at path.
func WriteXLSX(path string, b *Bank) error {
	f, err := buildWorkbook(b)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save Excel file: %w", err)
	}
	return nil
}

func buildWorkbook(b *Bank) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(questionsSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	questions := b.Questions()
	maxOptions := 0
	for _, q := range questions {
		maxOptions = max(maxOptions, len(q.Options))
	}

	headers := []string{"ID", "Question"}
	for i := range maxOptions {
		headers = append(headers, fmt.Sprintf("Option %c", 'A'+i))
	}
	headers = append(headers, "Correct_Answer", "Image")

	set := func(sheet string, col, row int, value any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, value)
	}

	for i, h := range headers {
		if err := set(questionsSheet, i+1, 1, h); err != nil {
			f.Close()
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for r, q := range questions {
		values := make([]string, len(headers))
		values[0] = q.ID
		values[1] = q.Text
		copy(values[2:], q.Options)
		values[2+maxOptions] = q.CorrectAnswer
		values[3+maxOptions] = q.Image

		for c, v := range values {
			if v == "" {
				continue
			}
			if err := set(questionsSheet, c+1, r+2, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("write question %s: %w", q.ID, err)
			}
		}
	}

	if meta := b.Meta(); len(meta) > 0 {
		if _, err := f.NewSheet(metaSheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("create meta sheet: %w", err)
		}
		keys := make([]string, 0, len(meta))
		for k := range meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for r, k := range keys {
			v, err := json.Marshal(meta[k])
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("encode meta %q: %w", k, err)
			}
			if err := set(metaSheet, 1, r+1, k); err != nil {
				f.Close()
				return nil, err
			}
			if err := set(metaSheet, 2, r+1, string(v)); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	return f, nil
}
