// Package render writes records to a sink, either as aligned colorized text
// lines or as JSON objects, one per record.
package render

import (
	"io"

	"cmtail/internal/record"

	"github.com/goccy/go-json"
)

// Renderer writes one record to its sink.
type Renderer interface {
	Render(rec record.Record) error
}

// JSONRenderer emits each record as a single JSON object per line. It does
// no presentation work; the record is marshalled as-is.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSON returns a Renderer writing JSON lines to w.
func NewJSON(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (r *JSONRenderer) Render(rec record.Record) error {
	return r.enc.Encode(rec)
}
