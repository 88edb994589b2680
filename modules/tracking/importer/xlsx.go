package importer

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads the first sheet of an xlsx workbook, skipping a fixed
// number of leading junk rows before the header row.
type XLSXSource struct {
	path     string
	skipRows int
}

func NewXLSXSource(path string, skipRows int) *XLSXSource {
	return &XLSXSource{path: path, skipRows: skipRows}
}

func (s *XLSXSource) Rows(ctx context.Context) ([]Row, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", s.path)
	}

	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	if len(all) <= s.skipRows {
		return nil, fmt.Errorf("workbook %s: no header row after skipping %d rows", s.path, s.skipRows)
	}
	header := all[s.skipRows]
	records := all[s.skipRows+1:]

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rowsFromRecords(header, records), nil
}
