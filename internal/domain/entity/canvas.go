package entity

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CanvasKind selects one of the two fixed-schema planning documents.
type CanvasKind string

const (
	// CanvasBusinessModel is the nine-block Business Model Canvas.
	CanvasBusinessModel CanvasKind = "bmc"
	// CanvasValueProposition is the six-block Value Proposition Canvas.
	CanvasValueProposition CanvasKind = "vpc"
)

var (
	// ErrUnknownCanvasField is returned when a field name is not part of the canvas schema.
	ErrUnknownCanvasField = errors.New("unknown canvas field")
	// ErrInvalidLine is returned for entries that are blank or span several lines.
	ErrInvalidLine = errors.New("line must be non-empty and must not contain line breaks")
	// ErrLineIndexOutOfRange is returned when an edit addresses a missing position.
	ErrLineIndexOutOfRange = errors.New("line index out of range")
)

//nolint:gochecknoglobals
var canvasFields = map[CanvasKind][]string{
	CanvasBusinessModel: {
		"key_partners",
		"key_activities",
		"key_resources",
		"value_propositions",
		"customer_relationships",
		"channels",
		"customer_segments",
		"cost_structure",
		"revenue_streams",
	},
	CanvasValueProposition: {
		"customer_jobs",
		"pains",
		"gains",
		"products_services",
		"pain_relievers",
		"gain_creators",
	},
}

// IsValid reports whether k names a known canvas.
func (k CanvasKind) IsValid() bool {
	_, ok := canvasFields[k]

	return ok
}

// Fields returns the ordered field names of the canvas schema.
func (k CanvasKind) Fields() []string {
	return slices.Clone(canvasFields[k])
}

// HasField reports whether name belongs to the canvas schema.
func (k CanvasKind) HasField(name string) bool {
	return slices.Contains(canvasFields[k], name)
}

// Lines is an ordered list of short, single-line entries.
type Lines []string

// ParseLines converts free text into Lines. Each line is trimmed and blank lines are dropped,
// so whitespace-only lines never survive.
func ParseLines(text string) Lines {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make(Lines, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	return lines
}

// Normalize applies the same rules as ParseLines to an existing list.
// Entries containing line breaks are split into separate entries.
func (l Lines) Normalize() Lines {
	return ParseLines(strings.Join(l, "\n"))
}

// Text joins the entries with a newline, the inverse of ParseLines for normalized input.
func (l Lines) Text() string {
	return strings.Join(l, "\n")
}

// Insert returns a copy with value placed at index. A negative index appends.
func (l Lines) Insert(index int, value string) (Lines, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.ContainsAny(value, "\r\n") {
		return nil, ErrInvalidLine
	}
	if index < 0 {
		index = len(l)
	}
	if index > len(l) {
		return nil, ErrLineIndexOutOfRange
	}

	return slices.Insert(slices.Clone(l), index, value), nil
}

// Remove returns a copy without the entry at index.
func (l Lines) Remove(index int) (Lines, error) {
	if index < 0 || index >= len(l) {
		return nil, ErrLineIndexOutOfRange
	}

	return slices.Delete(slices.Clone(l), index, index+1), nil
}

// Move returns a copy with the entry at from relocated to position to.
func (l Lines) Move(from, to int) (Lines, error) {
	if from < 0 || from >= len(l) || to < 0 || to >= len(l) {
		return nil, ErrLineIndexOutOfRange
	}

	moved := slices.Clone(l)
	value := moved[from]
	moved = slices.Delete(moved, from, from+1)

	return slices.Insert(moved, to, value), nil
}

// Canvas is a singleton planning document attached to a Business.
type Canvas struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Kind       CanvasKind
	Fields     map[string]Lines
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewCanvas returns an empty canvas of kind with every schema field present.
func NewCanvas(kind CanvasKind, businessID uuid.UUID) *Canvas {
	fields := make(map[string]Lines, len(canvasFields[kind]))
	for _, name := range canvasFields[kind] {
		fields[name] = Lines{}
	}

	return &Canvas{
		BusinessID: businessID,
		Kind:       kind,
		Fields:     fields,
	}
}

// Field returns the entries of name, or nil when the field is empty or unknown.
func (c *Canvas) Field(name string) Lines {
	return c.Fields[name]
}

// SetField replaces a field after normalizing it.
func (c *Canvas) SetField(name string, lines Lines) error {
	if !c.Kind.HasField(name) {
		return ErrUnknownCanvasField
	}
	if c.Fields == nil {
		c.Fields = make(map[string]Lines)
	}
	c.Fields[name] = lines.Normalize()

	return nil
}
