package usecase

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/xavierca1/leadstore/internal/entity"
)

// RowError is a structural parse failure for a single data row. These are
// response data, not request failures.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// csvBatch is the outcome of running raw CSV text through validation:
// candidate leads, parse-level rejections, and the total data-row count.
// Rows that parse but miss a required field are counted in totalRows only.
type csvBatch struct {
	valid     []*entity.Lead
	parseErrs []RowError
	totalRows int
}

// columnIndexes maps header names to positions. Columns are matched by name,
// never by position; unknown columns are ignored. Gender and message are not
// importable — enrichment and the message flow own those fields.
type columnIndexes struct {
	firstName   int
	lastName    int
	email       int
	countryCode int
	jobTitle    int
	companyName int
}

func resolveColumns(header []string) columnIndexes {
	cols := columnIndexes{
		firstName:   -1,
		lastName:    -1,
		email:       -1,
		countryCode: -1,
		jobTitle:    -1,
		companyName: -1,
	}

	for i, raw := range header {
		name := strings.TrimPrefix(strings.TrimSpace(raw), "\uFEFF")
		switch {
		case strings.EqualFold(name, "firstName"):
			cols.firstName = i
		case strings.EqualFold(name, "lastName"):
			cols.lastName = i
		case strings.EqualFold(name, "email"):
			cols.email = i
		case strings.EqualFold(name, "countryCode"):
			cols.countryCode = i
		case strings.EqualFold(name, "jobTitle"):
			cols.jobTitle = i
		case strings.EqualFold(name, "companyName"):
			cols.companyName = i
		}
	}

	return cols
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// parseLeadsCSV never fails as a whole: malformed rows become RowErrors and
// everything else keeps flowing. Row numbers are 1-based over data rows, the
// header is row 0.
func parseLeadsCSV(data string) csvBatch {
	var batch csvBatch

	r := csv.NewReader(strings.NewReader(data))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return batch
	}
	if err != nil {
		batch.parseErrs = append(batch.parseErrs, RowError{Row: 0, Message: parseMessage(err)})
		return batch
	}

	cols := resolveColumns(header)

	row := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		row++
		batch.totalRows++

		if err != nil {
			batch.parseErrs = append(batch.parseErrs, RowError{Row: row, Message: parseMessage(err)})
			continue
		}

		lead := &entity.Lead{
			FirstName:   field(record, cols.firstName),
			LastName:    field(record, cols.lastName),
			Email:       field(record, cols.email),
			CountryCode: field(record, cols.countryCode),
			JobTitle:    field(record, cols.jobTitle),
			CompanyName: field(record, cols.companyName),
		}

		// The ingestion path requires lastName too, unlike direct creation.
		if lead.FirstName == "" || lead.LastName == "" || lead.Email == "" {
			continue
		}

		batch.valid = append(batch.valid, lead)
	}

	return batch
}

func parseMessage(err error) string {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}
