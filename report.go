package texverts

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Format represents a report output format.
type Format string

const (
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	Plain    Format = "plain"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
)

var formats = []Format{JSON, JSONL, YAML, Plain, TSV, Markdown}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported report format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Alignment is a column alignment as declared by a directive letter.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Letter returns the directive letter for a.
func (a Alignment) Letter() byte {
	switch a {
	case AlignCenter:
		return 'c'
	case AlignRight:
		return 'r'
	default:
		return 'l'
	}
}

// Alignments decodes the column letters of d.
func (d Directive) Alignments() []Alignment {
	out := make([]Alignment, len(d.Columns))
	for i := range len(d.Columns) {
		switch d.Columns[i] {
		case 'c':
			out[i] = AlignCenter
		case 'r':
			out[i] = AlignRight
		default:
			out[i] = AlignLeft
		}
	}
	return out
}

// Entry is one line of a scan report.
type Entry struct {
	Line    int    `json:"line" yaml:"line"`
	Offset  int    `json:"offset" yaml:"offset"`
	Columns string `json:"columns" yaml:"columns"`
	Ruled   string `json:"ruled" yaml:"ruled"`
}

// Header returns the column names used by the tabular formats.
func (Entry) Header() []string { return []string{"Line", "Offset", "Columns", "Ruled"} }

// Row returns the cells used by the tabular formats.
func (e Entry) Row() []string {
	return []string{strconv.Itoa(e.Line), strconv.Itoa(e.Offset), e.Columns, e.Ruled}
}

// String implements fmt.Stringer.
func (e Entry) String() string {
	return fmt.Sprintf("%d:%d %s -> %s", e.Line, e.Offset, e.Columns, e.Ruled)
}

// Report builds the scan report entries for ds. Ruled shows the column
// field as opts would rewrite it.
func Report(ds []Directive, opts ...Option) []Entry {
	c := newConfig(opts)
	out := make([]Entry, len(ds))
	for i, d := range ds {
		out[i] = Entry{
			Line:    d.Line,
			Offset:  d.Offset,
			Columns: d.Columns,
			Ruled:   c.columns(d.Columns),
		}
	}
	return out
}

// WriteReport writes entries to w in format f.
func WriteReport(w io.Writer, f Format, entries []Entry) error {
	switch f {
	case JSON:
		return writeJSON(w, entries)
	case JSONL:
		return writeJSONL(w, entries)
	case YAML:
		return writeYAML(w, entries)
	case Plain:
		return writePlain(w, entries)
	case TSV:
		return writeTSV(w, entries)
	case Markdown:
		return writeMarkdown(w, entries)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// MarshalReport formats entries and returns the bytes.
func MarshalReport(f Format, entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, f, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
