package report

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformedRecord is returned for record lines which do not have the
// four expected fields.
var ErrMalformedRecord = errors.New("report: malformed record")

// Record is the output form of a counted word or phrase.
type Record struct {
	Word      string   `json:"word"`
	People    []string `json:"people"`
	NumPeople int      `json:"-"`
	Count     int      `json:"count"`
}

const peopleSep = ";"

func (r Record) fields() []string {
	return []string{
		r.Word,
		strings.Join(r.People, peopleSep),
		strconv.Itoa(r.NumPeople),
		strconv.Itoa(r.Count),
	}
}

// WriteRecord writes r as a single line to w.
func WriteRecord(w io.Writer, r Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.fields()); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteRecords writes all records to w.
func WriteRecords(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	for _, r := range records {
		if err := cw.Write(r.fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRecords parses record lines from r.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var records []Record
	for line := 1; ; line++ {
		fields, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		rec, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
}

func parseRecord(fields []string) (Record, error) {
	if len(fields) != 4 {
		return Record{}, fmt.Errorf("%w: %d fields", ErrMalformedRecord, len(fields))
	}
	rec := Record{Word: fields[0]}
	if fields[1] != "" {
		rec.People = strings.Split(fields[1], peopleSep)
	}
	var err error
	if rec.NumPeople, err = strconv.Atoi(fields[2]); err != nil {
		return Record{}, fmt.Errorf("%w: people count: %w", ErrMalformedRecord, err)
	}
	if rec.Count, err = strconv.Atoi(fields[3]); err != nil {
		return Record{}, fmt.Errorf("%w: occurrence count: %w", ErrMalformedRecord, err)
	}
	return rec, nil
}

// SortByCount orders records by descending count. Records with equal counts
// keep their relative order, i.e. alphabetical order if records come from a
// tree traversal.
func SortByCount(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(b.Count, a.Count)
	})
}
