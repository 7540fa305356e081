package model

import (
	"fmt"
	"strings"
)

// Operation is the kind of structural edit applied to an array prop.
type Operation string

const (
	// OpUpdate replaces one element.
	OpUpdate Operation = "update"
	// OpRemove deletes one element, never emptying the array.
	OpRemove Operation = "remove"
	// OpAdd appends one element.
	OpAdd Operation = "add"
)

// ParseOperation resolves an operation name, ignoring case.
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(strings.ToLower(strings.TrimSpace(s))); op {
	case OpUpdate, OpRemove, OpAdd:
		return op, nil
	default:
		return "", fmt.Errorf("unsupported operation: %q", s)
	}
}

// NeedsRecord reports whether the operation writes a record.
func (o Operation) NeedsRecord() bool {
	return o == OpUpdate || o == OpAdd
}

// EditStatus explains the outcome of an edit. Every status except Applied
// leaves the source text untouched.
type EditStatus int

// Available EditStatus values.
const (
	Applied EditStatus = iota
	BlockNotFound
	FieldNotFound
	ElementOutOfRange
	LastElementProtected
	InvalidEdit
)

var editStatuses = []EditStatus{
	Applied, BlockNotFound, FieldNotFound, ElementOutOfRange, LastElementProtected, InvalidEdit,
}

func (s EditStatus) String() string {
	switch s {
	case Applied:
		return "applied"
	case BlockNotFound:
		return "block not found"
	case FieldNotFound:
		return "field not found"
	case ElementOutOfRange:
		return "element out of range"
	case LastElementProtected:
		return "last element protected"
	case InvalidEdit:
		return "invalid edit"
	default:
		return "unknown"
	}
}

// MarshalYAML stores the status by name.
func (s EditStatus) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML reads a status written by MarshalYAML.
func (s *EditStatus) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	for _, candidate := range editStatuses {
		if candidate.String() == name {
			*s = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown edit status %q", name)
}

// EditResult is the outcome of one edit. Code is always the full text to
// use afterwards: the edited text when Status is Applied, the input otherwise.
type EditResult struct {
	Code    string
	Status  EditStatus
	Changed bool
}

// Edit is a single structural edit request against one component block.
type Edit struct {
	Op           Operation
	Component    ComponentType
	SectionIndex int
	ElementIndex int
	Flight       *FlightRecord
	Hotel        *HotelRecord
}

// Record returns the record attached to the edit for its component, if any.
func (e Edit) Record() TravelRecord {
	switch e.Component.Name {
	case ComponentFlights.Name:
		if e.Flight != nil {
			return *e.Flight
		}
	case ComponentHotels.Name:
		if e.Hotel != nil {
			return *e.Hotel
		}
	}

	return nil
}

func (e Edit) String() string {
	if e.Op == OpAdd {
		return fmt.Sprintf("%s %s[%d]", e.Op, e.Component.Name, e.SectionIndex)
	}

	return fmt.Sprintf("%s %s[%d][%d]", e.Op, e.Component.Name, e.SectionIndex, e.ElementIndex)
}
