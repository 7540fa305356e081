package splice

import (
	"strconv"
	"strings"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

const indentUnit = "    "

var escaper = strings.NewReplacer(`"`, `\"`, "\n", `\n`)

// Escape prepares a value for a double-quoted literal in generated code.
func Escape(s string) string {
	return escaper.Replace(s)
}

// objectLiteral is an ordered list of key/value pairs rendered in the layout
// used by the generated components.
type objectLiteral struct {
	fields []objectField
}

type objectField struct {
	key    string
	value  string
	nested *objectLiteral
}

func (o *objectLiteral) str(key, value string) *objectLiteral {
	o.fields = append(o.fields, objectField{key: key, value: `"` + Escape(value) + `"`})
	return o
}

func (o *objectLiteral) optStr(key string, value *string) *objectLiteral {
	if value == nil {
		return o
	}

	return o.str(key, *value)
}

func (o *objectLiteral) num(key string, value int) *objectLiteral {
	o.fields = append(o.fields, objectField{key: key, value: strconv.Itoa(value)})
	return o
}

func (o *objectLiteral) flag(key string, value bool) *objectLiteral {
	o.fields = append(o.fields, objectField{key: key, value: strconv.FormatBool(value)})
	return o
}

func (o *objectLiteral) object(key string, nested *objectLiteral) *objectLiteral {
	o.fields = append(o.fields, objectField{key: key, nested: nested})
	return o
}

func (o *objectLiteral) render(depth int) string {
	var sb strings.Builder

	inner := strings.Repeat(indentUnit, depth+1)

	sb.WriteString("{\n")

	for i, f := range o.fields {
		sb.WriteString(inner)
		sb.WriteString(f.key)
		sb.WriteString(": ")

		if f.nested != nil {
			sb.WriteString(f.nested.render(depth + 1))
		} else {
			sb.WriteString(f.value)
		}

		if i < len(o.fields)-1 {
			sb.WriteByte(',')
		}

		sb.WriteByte('\n')
	}

	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteByte('}')

	return sb.String()
}

// FormatFlight renders a flight as an object literal.
func FormatFlight(f m.FlightRecord) string {
	travelers := (&objectLiteral{}).
		num("adults", f.Travelers.Adults).
		num("children", f.Travelers.Children).
		num("infants", f.Travelers.Infants)

	return (&objectLiteral{}).
		str("date", f.Date).
		str("fromAirport", f.FromAirport).
		str("toAirport", f.ToAirport).
		object("travelers", travelers).
		str("luggage", f.Luggage).
		render(0)
}

// FormatHotel renders a hotel as an object literal. cityBadge and roomType
// are omitted when unset; hasDetailsLink defaults to false.
func FormatHotel(h m.HotelRecord) string {
	hasDetailsLink := false
	if h.HasDetailsLink != nil {
		hasDetailsLink = *h.HasDetailsLink
	}

	room := (&objectLiteral{}).
		str("includesAll", h.RoomDescription.IncludesAll).
		str("bedType", h.RoomDescription.BedType).
		optStr("roomType", h.RoomDescription.RoomType)

	dayInfo := (&objectLiteral{}).
		str("checkInDay", h.DayInfo.CheckInDay).
		str("checkOutDay", h.DayInfo.CheckOutDay)

	return (&objectLiteral{}).
		str("city", h.City).
		num("nights", h.Nights).
		optStr("cityBadge", h.CityBadge).
		str("hotelName", h.HotelName).
		flag("hasDetailsLink", hasDetailsLink).
		object("roomDescription", room).
		str("checkInDate", h.CheckInDate).
		str("checkOutDate", h.CheckOutDate).
		object("dayInfo", dayInfo).
		render(0)
}

// Format renders any supported record. Unknown record types render empty.
func Format(record m.TravelRecord) string {
	switch r := record.(type) {
	case m.FlightRecord:
		return FormatFlight(r)
	case *m.FlightRecord:
		return FormatFlight(*r)
	case m.HotelRecord:
		return FormatHotel(r)
	case *m.HotelRecord:
		return FormatHotel(*r)
	default:
		return ""
	}
}
