package splice

import (
	"strings"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

const elementSeparator = ",\n"

// target is a located array prop inside a located block.
type target struct {
	block m.BlockMatch
	field m.ArrayField
}

func (t target) bodyOffset() int {
	return t.block.Span.Start + t.field.BodySpan.Start
}

func (t target) bodySpan() m.Span {
	return t.field.BodySpan.Shift(t.block.Span.Start)
}

func locate(code string, ct m.ComponentType, sectionIndex int) (target, m.EditStatus) {
	block, ok := FindBlock(code, ct.Tag, sectionIndex)
	if !ok {
		return target{}, m.BlockNotFound
	}

	field, ok := ExtractArrayField(block.Text, ct.Field)
	if !ok {
		return target{}, m.FieldNotFound
	}

	return target{block: block, field: field}, m.Applied
}

func unchanged(code string, status m.EditStatus) m.EditResult {
	return m.EditResult{Code: code, Status: status}
}

func applied(before, after string) m.EditResult {
	return m.EditResult{Code: after, Status: m.Applied, Changed: before != after}
}

// Update replaces element elementIndex of the sectionIndex-th block with
// replacement. Only the element's own span changes.
func Update(code string, ct m.ComponentType, sectionIndex, elementIndex int, replacement string) m.EditResult {
	t, status := locate(code, ct, sectionIndex)
	if status != m.Applied {
		return unchanged(code, status)
	}

	if elementIndex < 0 || elementIndex >= len(t.field.Elements) {
		return unchanged(code, m.ElementOutOfRange)
	}

	span := t.field.Elements[elementIndex].Span.Shift(t.bodyOffset())

	return applied(code, replaceRange(code, span.Start, span.End, replacement))
}

// Remove deletes element elementIndex and rebuilds the array body from the
// remaining elements. An array is never emptied, and a body holding entries
// other than object literals is reported as FieldNotFound.
func Remove(code string, ct m.ComponentType, sectionIndex, elementIndex int) m.EditResult {
	t, status := locate(code, ct, sectionIndex)
	if status != m.Applied {
		return unchanged(code, status)
	}

	elements := t.field.Texts()
	if elementIndex < 0 || elementIndex >= len(elements) {
		return unchanged(code, m.ElementOutOfRange)
	}

	if !OnlyObjectLiterals(t.field) {
		return unchanged(code, m.FieldNotFound)
	}

	if len(elements) == 1 {
		return unchanged(code, m.LastElementProtected)
	}

	kept := make([]string, 0, len(elements)-1)
	kept = append(kept, elements[:elementIndex]...)
	kept = append(kept, elements[elementIndex+1:]...)

	span := t.bodySpan()

	return applied(code, replaceRange(code, span.Start, span.End, strings.Join(kept, elementSeparator)))
}

// Add appends addition to the array body of the sectionIndex-th block. Like
// Remove it refuses bodies holding entries other than object literals.
func Add(code string, ct m.ComponentType, sectionIndex int, addition string) m.EditResult {
	t, status := locate(code, ct, sectionIndex)
	if status != m.Applied {
		return unchanged(code, status)
	}

	if !OnlyObjectLiterals(t.field) {
		return unchanged(code, m.FieldNotFound)
	}

	elements := append(t.field.Texts(), addition)
	span := t.bodySpan()

	return applied(code, replaceRange(code, span.Start, span.End, strings.Join(elements, elementSeparator)))
}

// Apply dispatches an Edit. Update and add edits need a record matching the
// edit's component.
func Apply(code string, edit m.Edit) m.EditResult {
	switch edit.Op {
	case m.OpRemove:
		return Remove(code, edit.Component, edit.SectionIndex, edit.ElementIndex)
	case m.OpUpdate, m.OpAdd:
		record := edit.Record()
		if record == nil {
			return unchanged(code, m.InvalidEdit)
		}

		if edit.Op == m.OpAdd {
			return Add(code, edit.Component, edit.SectionIndex, Format(record))
		}

		return Update(code, edit.Component, edit.SectionIndex, edit.ElementIndex, Format(record))
	default:
		return unchanged(code, m.InvalidEdit)
	}
}

// UpdateFlight replaces a flight, returning code unchanged on any miss.
func UpdateFlight(code string, sectionIndex, flightIndex int, flight m.FlightRecord) string {
	return Update(code, m.ComponentFlights, sectionIndex, flightIndex, FormatFlight(flight)).Code
}

// RemoveFlight removes a flight, returning code unchanged on any miss.
func RemoveFlight(code string, sectionIndex, flightIndex int) string {
	return Remove(code, m.ComponentFlights, sectionIndex, flightIndex).Code
}

// AddFlight appends a flight, returning code unchanged on any miss.
func AddFlight(code string, sectionIndex int, flight m.FlightRecord) string {
	return Add(code, m.ComponentFlights, sectionIndex, FormatFlight(flight)).Code
}

// UpdateHotel replaces a hotel, returning code unchanged on any miss.
func UpdateHotel(code string, sectionIndex, hotelIndex int, hotel m.HotelRecord) string {
	return Update(code, m.ComponentHotels, sectionIndex, hotelIndex, FormatHotel(hotel)).Code
}

// RemoveHotel removes a hotel, returning code unchanged on any miss.
func RemoveHotel(code string, sectionIndex, hotelIndex int) string {
	return Remove(code, m.ComponentHotels, sectionIndex, hotelIndex).Code
}

// AddHotel appends a hotel, returning code unchanged on any miss.
func AddHotel(code string, sectionIndex int, hotel m.HotelRecord) string {
	return Add(code, m.ComponentHotels, sectionIndex, FormatHotel(hotel)).Code
}
