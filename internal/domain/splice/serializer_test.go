package splice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`say "hi"`, `say \"hi\"`},
		{"two\nlines", `two\nlines`},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Escape(tt.in))
	}
}

func TestFormatFlight(t *testing.T) {
	want := `{
    date: "2024-02-02",
    fromAirport: "SFO",
    toAirport: "SEA",
    travelers: {
        adults: 1,
        children: 2,
        infants: 0
    },
    luggage: "carry-on"
}`

	assert.Equal(t, want, FormatFlight(sampleFlight()))
}

func TestFormatFlight_EscapesStrings(t *testing.T) {
	flight := sampleFlight()
	flight.Luggage = "2 \"large\"\nbags"

	assert.Contains(t, FormatFlight(flight), `luggage: "2 \"large\"\nbags"`)
}

func TestFormatHotel(t *testing.T) {
	t.Run("optional fields omitted", func(t *testing.T) {
		want := `{
    city: "Lisbon",
    nights: 4,
    hotelName: "Casa Azul",
    hasDetailsLink: false,
    roomDescription: {
        includesAll: "Breakfast and dinner",
        bedType: "King"
    },
    checkInDate: "2024-03-01",
    checkOutDate: "2024-03-05",
    dayInfo: {
        checkInDay: "Fri",
        checkOutDay: "Tue"
    }
}`

		got := FormatHotel(sampleHotel())
		assert.Equal(t, want, got)
		assert.NotContains(t, got, "cityBadge")
		assert.NotContains(t, got, "roomType")
		assert.NotContains(t, got, "null")
	})

	t.Run("optional fields present", func(t *testing.T) {
		hotel := sampleHotel()
		hotel.CityBadge = strPtr("Capital")
		hotel.HasDetailsLink = boolPtr(true)
		hotel.RoomDescription.RoomType = strPtr("Suite")

		got := FormatHotel(hotel)
		assert.Contains(t, got, "    nights: 4,\n    cityBadge: \"Capital\",\n    hotelName:")
		assert.Contains(t, got, "hasDetailsLink: true,")
		assert.Contains(t, got, "        bedType: \"King\",\n        roomType: \"Suite\"\n    },")
	})
}

func TestFormat_IsDeterministic(t *testing.T) {
	records := []m.TravelRecord{sampleFlight(), sampleHotel(), &m.FlightRecord{Date: "x"}}

	for _, record := range records {
		first := Format(record)
		assert.NotEmpty(t, first)
		assert.Equal(t, first, Format(record))
	}
}

func TestFormat_BalancedBraces(t *testing.T) {
	out := FormatHotel(sampleHotel())

	assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"))
	assert.Equal(t, []string{out}, textsOf(SplitElements(out)))
}

func textsOf(elements []m.Element) []string {
	texts := make([]string, 0, len(elements))
	for _, el := range elements {
		texts = append(texts, el.Text)
	}

	return texts
}
