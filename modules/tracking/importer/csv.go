package importer

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVSource mirrors XLSXSource for extracts already flattened to CSV.
type CSVSource struct {
	path     string
	skipRows int
}

func NewCSVSource(path string, skipRows int) *CSVSource {
	return &CSVSource{path: path, skipRows: skipRows}
}

func (s *CSVSource) Rows(ctx context.Context) ([]Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	br := stripUTF8BOM(bufio.NewReader(f))
	r := csv.NewReader(br)
	r.FieldsPerRecord = -1

	for i := 0; i < s.skipRows; i++ {
		if _, err := r.Read(); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("%s: no header row after skipping %d rows", s.path, s.skipRows)
			}
			return nil, err
		}
	}

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%s: missing header", s.path)
		}
		return nil, err
	}

	var records [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		records = append(records, rec)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rowsFromRecords(header, records), nil
}

func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}
