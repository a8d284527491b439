package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedRow is returned for rows without a response column.
var ErrMalformedRow = errors.New("survey: row has less than 2 columns")

// Response is a single form response.
type Response struct {
	Person string
	Text   string
}

// Format tells how response texts are encoded.
type Format int

const (
	PlainText Format = iota
	HTML
)

// ReadResponses reads all responses from a form export.
func ReadResponses(r io.Reader, format Format) ([]Response, error) {
	var responses []Response
	err := readResponses(r, format, func(resp Response) {
		responses = append(responses, resp)
	})
	return responses, err
}

// readResponses calls emit for every response read from r. It stops at the
// first malformed row.
func readResponses(r io.Reader, format Format, emit func(Response)) error {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1
	line := 0
	for {
		row, err := rd.Read()
		if err == io.EOF {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if len(row) < 2 {
			return fmt.Errorf("line %d: %w", line, ErrMalformedRow)
		}
		resp := Response{Person: strings.TrimSpace(row[0]), Text: row[1]}
		if format == HTML {
			if resp.Text, err = TextFromHTML(strings.NewReader(row[1])); err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
		}
		emit(resp)
	}
}
