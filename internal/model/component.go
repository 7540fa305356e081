package model

import "strings"

// ComponentType describes an editable generated component: the JSX tag that
// invokes it and the prop that carries its array of records.
type ComponentType struct {
	Name  string
	Tag   string
	Field string
}

var (
	// ComponentFlights is the flights section (<AirplaneSection flights={[...]} />).
	ComponentFlights = ComponentType{Name: "flights", Tag: "AirplaneSection", Field: "flights"}
	// ComponentHotels is the hotels section (<HotelsSection hotels={[...]} />).
	ComponentHotels = ComponentType{Name: "hotels", Tag: "HotelsSection", Field: "hotels"}
)

// Components returns all known component types.
func Components() []ComponentType {
	return []ComponentType{ComponentFlights, ComponentHotels}
}

// ComponentByName resolves a component type by name, ignoring case.
func ComponentByName(name string) (ComponentType, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))

	for _, ct := range Components() {
		if ct.Name == needle {
			return ct, true
		}
	}

	return ComponentType{}, false
}

// SectionSummary describes one located block and the size of its array prop.
type SectionSummary struct {
	Component  ComponentType
	Ordinal    int
	Span       Span
	FieldFound bool
	Elements   int
}
