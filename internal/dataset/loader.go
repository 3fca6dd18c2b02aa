package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"cx-metrics-go/internal/types"
)

var (
	ErrNoSheets = errors.New("no sheets")
	ErrNoRows   = errors.New("no data rows")
)

var idHeaders = map[string]bool{
	"id": true, "response id": true, "response_id": true,
	"respondent id": true, "respondent_id": true,
}

// Load reads a survey export: first sheet, one header row of question labels, one
// response per row. Blank cells are skipped; numeric cells become float64.
func Load(path string) ([]types.SurveyRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return read(f)
}

func read(f *excelize.File) ([]types.SurveyRecord, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, ErrNoRows
	}

	header := rows[0]
	idIdx := -1
	questionCols := map[int]string{}
	for i, h := range header {
		label := strings.TrimSpace(h)
		l := strings.ToLower(label)
		switch {
		case l == "":
			continue
		case idHeaders[l]:
			if idIdx == -1 {
				idIdx = i
			}
		case strings.Contains(l, "submitted") || strings.Contains(l, "timestamp") || l == "date":
			continue
		default:
			questionCols[i] = label
		}
	}

	var out []types.SurveyRecord
	for _, r := range rows[1:] {
		rec := types.SurveyRecord{Answers: types.RawResponse{}}
		if idIdx >= 0 && idIdx < len(r) {
			rec.ResponseID = strings.TrimSpace(r[idIdx])
		}
		for i := range header {
			label, ok := questionCols[i]
			if !ok || i >= len(r) {
				continue
			}
			cell := strings.TrimSpace(r[i])
			if cell == "" {
				continue
			}
			rec.Answers = append(rec.Answers, types.Answer{QuestionID: label, Value: cellValue(cell)})
		}
		if len(rec.Answers) == 0 {
			continue
		}
		if rec.ResponseID == "" {
			rec.ResponseID = uuid.New().String()
		}
		out = append(out, rec)
	}
	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}

// cellValue turns numeric cells into float64. Words ParseFloat accepts, such as "nan"
// or "Infinity", stay text.
func cellValue(cell string) any {
	if n, err := strconv.ParseFloat(cell, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return n
	}
	return cell
}
