package splice

import (
	"testing"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

const tripFixture = `import React from "react";

export default function Trip() {
  return (
    <div>
      <Header title="Trip" />
      <AirplaneSection
        title="Flights"
        flights={[
          {
            date: "2024-01-01",
            fromAirport: "JFK",
            toAirport: "LAX",
            travelers: { adults: 2, children: 0, infants: 0 },
            luggage: "1 bag"
          }
        ]}
      />
      <HotelsSection hotels={[{ city: "Rome", nights: 2 }, { city: "Paris", nights: 3 }]} />
      <AirplaneSection flights={[]} />
    </div>
  );
}
`

const firstFlightText = `{
            date: "2024-01-01",
            fromAirport: "JFK",
            toAirport: "LAX",
            travelers: { adults: 2, children: 0, infants: 0 },
            luggage: "1 bag"
          }`

func sampleFlight() m.FlightRecord {
	return m.FlightRecord{
		Date:        "2024-02-02",
		FromAirport: "SFO",
		ToAirport:   "SEA",
		Travelers:   m.Travelers{Adults: 1, Children: 2},
		Luggage:     "carry-on",
	}
}

func sampleHotel() m.HotelRecord {
	return m.HotelRecord{
		City:      "Lisbon",
		Nights:    4,
		HotelName: "Casa Azul",
		RoomDescription: m.RoomDescription{
			IncludesAll: "Breakfast and dinner",
			BedType:     "King",
		},
		CheckInDate:  "2024-03-01",
		CheckOutDate: "2024-03-05",
		DayInfo:      m.DayInfo{CheckInDay: "Fri", CheckOutDay: "Tue"},
	}
}

// arrayBody returns the array body of the ordinal-th block and its absolute span.
func arrayBody(t *testing.T, code string, ct m.ComponentType, ordinal int) (m.ArrayField, m.Span) {
	t.Helper()

	block, ok := FindBlock(code, ct.Tag, ordinal)
	if !ok {
		t.Fatalf("block %s[%d] not found", ct.Tag, ordinal)
	}

	field, ok := ExtractArrayField(block.Text, ct.Field)
	if !ok {
		t.Fatalf("field %s not found in %s[%d]", ct.Field, ct.Tag, ordinal)
	}

	return field, field.BodySpan.Shift(block.Span.Start)
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
