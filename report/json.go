package report

import (
	"encoding/json"
	"io"
)

// DumpJSON writes records as a JSON array of {word, people, count} objects.
func DumpJSON(w io.Writer, records []Record) error {
	out := make([]Record, len(records))
	copy(out, records)
	for i := range out {
		if out[i].People == nil {
			out[i].People = []string{}
		}
	}
	return json.NewEncoder(w).Encode(out)
}
