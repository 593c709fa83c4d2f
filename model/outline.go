package model

import (
	"bytes"
	"encoding/json"
	"io"
)

// OutlineEntry is a single heading in the flat document outline.
type OutlineEntry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the final extraction result: the document title plus a flat,
// document-ordered list of headings. Entries is never nil after assembly,
// so an outline with no headings serializes as an empty array rather
// than null.
type Outline struct {
	Title   string         `json:"title"`
	Entries []OutlineEntry `json:"outline"`
}

// NewOutline creates an outline with a non-nil, empty entry list.
func NewOutline() Outline {
	return Outline{
		Entries: []OutlineEntry{},
	}
}

// WriteJSON serializes the outline to w as indented UTF-8 JSON.
// HTML escaping is disabled so non-ASCII text (CJK headings, accented
// Latin) appears literally rather than as \uXXXX sequences.
func (o Outline) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}

// JSON returns the outline serialized per WriteJSON.
func (o Outline) JSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.WriteJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
