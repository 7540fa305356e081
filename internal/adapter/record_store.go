package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

// RecordStore loads travel records and edit plans. Files may be YAML or
// JSON; unknown keys are rejected.
type RecordStore interface {
	LoadFlight(path m.Path) (m.FlightRecord, error)
	LoadHotel(path m.Path) (m.HotelRecord, error)
	LoadPlan(path m.Path) (m.Plan, error)
}

// LocalRecordStore reads records from disk.
type LocalRecordStore struct{}

// NewRecordStore constructs a RecordStore implementation.
func NewRecordStore() *LocalRecordStore {
	return &LocalRecordStore{}
}

// LoadFlight reads a flight record file.
func (rs *LocalRecordStore) LoadFlight(path m.Path) (m.FlightRecord, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.FlightRecord{}, fmt.Errorf("read flight record: %w", err)
	}

	return ParseFlight(data)
}

// LoadHotel reads a hotel record file.
func (rs *LocalRecordStore) LoadHotel(path m.Path) (m.HotelRecord, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.HotelRecord{}, fmt.Errorf("read hotel record: %w", err)
	}

	return ParseHotel(data)
}

// LoadPlan reads a batch edit plan.
func (rs *LocalRecordStore) LoadPlan(path m.Path) (m.Plan, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Plan{}, fmt.Errorf("read plan: %w", err)
	}

	return ParsePlan(data)
}

// ParseFlight decodes a YAML or JSON flight record.
func ParseFlight(data []byte) (m.FlightRecord, error) {
	var flight m.FlightRecord
	if err := decodeStrict(data, &flight); err != nil {
		return m.FlightRecord{}, fmt.Errorf("decode flight record: %w", err)
	}

	return flight, nil
}

// ParseHotel decodes a YAML or JSON hotel record.
func ParseHotel(data []byte) (m.HotelRecord, error) {
	var hotel m.HotelRecord
	if err := decodeStrict(data, &hotel); err != nil {
		return m.HotelRecord{}, fmt.Errorf("decode hotel record: %w", err)
	}

	return hotel, nil
}

type planYAML struct {
	Files []planFileYAML `yaml:"files"`
}

type planFileYAML struct {
	Path  string     `yaml:"path"`
	Edits []editYAML `yaml:"edits"`
}

type editYAML struct {
	Op        string          `yaml:"op"`
	Component string          `yaml:"component"`
	Section   int             `yaml:"section"`
	Element   int             `yaml:"element"`
	Flight    *m.FlightRecord `yaml:"flight,omitempty"`
	Hotel     *m.HotelRecord  `yaml:"hotel,omitempty"`
}

// ParsePlan decodes a YAML or JSON edit plan:
//
//	files:
//	  - path: src/Trip.jsx
//	    edits:
//	      - {op: remove, component: hotels, section: 0, element: 1}
func ParsePlan(data []byte) (m.Plan, error) {
	var raw planYAML
	if err := decodeStrict(data, &raw); err != nil {
		return m.Plan{}, fmt.Errorf("decode plan: %w", err)
	}

	plan := m.Plan{Files: make([]m.PlanFile, 0, len(raw.Files))}

	for i, f := range raw.Files {
		if f.Path == "" {
			return m.Plan{}, fmt.Errorf("plan file %d: missing path", i)
		}

		planFile := m.PlanFile{Path: m.Path(f.Path), Edits: make([]m.Edit, 0, len(f.Edits))}

		for j, e := range f.Edits {
			edit, err := e.toEdit()
			if err != nil {
				return m.Plan{}, fmt.Errorf("plan file %s edit %d: %w", f.Path, j, err)
			}

			planFile.Edits = append(planFile.Edits, edit)
		}

		plan.Files = append(plan.Files, planFile)
	}

	return plan, nil
}

func (e editYAML) toEdit() (m.Edit, error) {
	op, err := m.ParseOperation(e.Op)
	if err != nil {
		return m.Edit{}, err
	}

	ct, ok := m.ComponentByName(e.Component)
	if !ok {
		return m.Edit{}, fmt.Errorf("unknown component %q", e.Component)
	}

	return m.Edit{
		Op:           op,
		Component:    ct,
		SectionIndex: e.Section,
		ElementIndex: e.Element,
		Flight:       e.Flight,
		Hotel:        e.Hotel,
	}, nil
}

func decodeStrict(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty document")
		}

		return err
	}

	return nil
}
