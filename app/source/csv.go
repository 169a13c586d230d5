package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

var _ RowSource = (*CSVSource)(nil)

// CSVSource reads rows from a CSV file. The first record is the header;
// short records are padded with absent fields.
type CSVSource struct {
	path    string
	aliases map[string]string
}

func NewCSVSource(path string, aliases map[string]string) *CSVSource {
	return &CSVSource{path: path, aliases: aliases}
}

func (s *CSVSource) Read() ([]Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &MissingColumnsError{Columns: []string{"Title", "Start Date"}}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	fields := normalizeHeader(header, s.aliases)
	if err := checkRequired(fields); err != nil {
		return nil, err
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		row := make(Row, len(fields))
		for i, field := range fields {
			if i < len(record) {
				row[field] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
