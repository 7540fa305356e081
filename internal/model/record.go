package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// TravelRecord is a typed record that can be serialized into a component's
// array prop.
type TravelRecord interface {
	Component() ComponentType
	Validate() error
}

// Travelers counts passengers by age group.
type Travelers struct {
	Adults   int `yaml:"adults" json:"adults"`
	Children int `yaml:"children" json:"children"`
	Infants  int `yaml:"infants" json:"infants"`
}

// FlightRecord is one element of a flights array.
type FlightRecord struct {
	Date        string    `yaml:"date" json:"date"`
	FromAirport string    `yaml:"fromAirport" json:"fromAirport"`
	ToAirport   string    `yaml:"toAirport" json:"toAirport"`
	Travelers   Travelers `yaml:"travelers" json:"travelers"`
	Luggage     string    `yaml:"luggage" json:"luggage"`
}

// RoomDescription describes the booked room.
type RoomDescription struct {
	IncludesAll string  `yaml:"includesAll" json:"includesAll"`
	BedType     string  `yaml:"bedType" json:"bedType"`
	RoomType    *string `yaml:"roomType,omitempty" json:"roomType,omitempty"`
}

// DayInfo holds weekday labels for check-in and check-out.
type DayInfo struct {
	CheckInDay  string `yaml:"checkInDay" json:"checkInDay"`
	CheckOutDay string `yaml:"checkOutDay" json:"checkOutDay"`
}

// HotelRecord is one element of a hotels array.
type HotelRecord struct {
	City            string          `yaml:"city" json:"city"`
	Nights          int             `yaml:"nights" json:"nights"`
	CityBadge       *string         `yaml:"cityBadge,omitempty" json:"cityBadge,omitempty"`
	HotelName       string          `yaml:"hotelName" json:"hotelName"`
	HasDetailsLink  *bool           `yaml:"hasDetailsLink,omitempty" json:"hasDetailsLink,omitempty"`
	RoomDescription RoomDescription `yaml:"roomDescription" json:"roomDescription"`
	CheckInDate     string          `yaml:"checkInDate" json:"checkInDate"`
	CheckOutDate    string          `yaml:"checkOutDate" json:"checkOutDate"`
	DayInfo         DayInfo         `yaml:"dayInfo" json:"dayInfo"`
}

// ErrInvalidRecord is returned by Validate for records that cannot be written.
var ErrInvalidRecord = errors.New("invalid record")

// Component implements TravelRecord.
func (FlightRecord) Component() ComponentType { return ComponentFlights }

// Component implements TravelRecord.
func (HotelRecord) Component() ComponentType { return ComponentHotels }

// Validate checks mandatory fields and passenger counts.
func (f FlightRecord) Validate() error {
	if err := requireFields(map[string]string{
		"date":        f.Date,
		"fromAirport": f.FromAirport,
		"toAirport":   f.ToAirport,
	}); err != nil {
		return err
	}

	if f.Travelers.Adults < 0 || f.Travelers.Children < 0 || f.Travelers.Infants < 0 {
		return fmt.Errorf("%w: negative traveler count", ErrInvalidRecord)
	}

	return nil
}

// Validate checks mandatory fields and the number of nights.
func (h HotelRecord) Validate() error {
	if err := requireFields(map[string]string{
		"city":         h.City,
		"hotelName":    h.HotelName,
		"checkInDate":  h.CheckInDate,
		"checkOutDate": h.CheckOutDate,
	}); err != nil {
		return err
	}

	if h.Nights < 0 {
		return fmt.Errorf("%w: negative nights", ErrInvalidRecord)
	}

	return nil
}

func requireFields(fields map[string]string) error {
	var missing []string

	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)

	return fmt.Errorf("%w: missing %s", ErrInvalidRecord, strings.Join(missing, ", "))
}
