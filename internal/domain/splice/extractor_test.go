package splice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

func TestExtractArrayField(t *testing.T) {
	t.Run("nested objects stay inside one element", func(t *testing.T) {
		field, _ := arrayBody(t, tripFixture, m.ComponentFlights, 0)

		require.Len(t, field.Elements, 1)
		assert.Equal(t, firstFlightText, field.Elements[0].Text)
		assert.Equal(t, "flights", field.Name)
	})

	t.Run("splits top-level elements", func(t *testing.T) {
		field, _ := arrayBody(t, tripFixture, m.ComponentHotels, 0)

		assert.Equal(t, []string{`{ city: "Rome", nights: 2 }`, `{ city: "Paris", nights: 3 }`}, field.Texts())
	})

	t.Run("element spans index the body", func(t *testing.T) {
		field, _ := arrayBody(t, tripFixture, m.ComponentHotels, 0)

		for _, el := range field.Elements {
			assert.Equal(t, el.Text, field.Body[el.Span.Start:el.Span.End])
		}
	})

	t.Run("empty array has no elements", func(t *testing.T) {
		field, _ := arrayBody(t, tripFixture, m.ComponentFlights, 1)

		assert.Empty(t, field.Elements)
		assert.Empty(t, field.Body)
	})

	t.Run("missing prop is not found", func(t *testing.T) {
		_, ok := ExtractArrayField(`<AirplaneSection title="x" />`, "flights")
		assert.False(t, ok)
	})

	t.Run("prop name must be whole", func(t *testing.T) {
		_, ok := ExtractArrayField(`<AirplaneSection extraflights={[{ a: 1 }]} />`, "flights")
		assert.False(t, ok)
	})

	t.Run("tolerates whitespace around the array", func(t *testing.T) {
		field, ok := ExtractArrayField("<AirplaneSection flights = {\n  [ { a: 1 } ]\n} />", "flights")
		require.True(t, ok)
		assert.Equal(t, []string{"{ a: 1 }"}, field.Texts())
	})

	t.Run("braces inside strings do not split", func(t *testing.T) {
		field, ok := ExtractArrayField(`<X flights={[{ luggage: "}{", note: '[' }, { b: 2 }]} />`, "flights")
		require.True(t, ok)
		assert.Equal(t, []string{`{ luggage: "}{", note: '[' }`, `{ b: 2 }`}, field.Texts())
	})

	t.Run("nested arrays inside elements", func(t *testing.T) {
		field, ok := ExtractArrayField(`<X flights={[{ legs: [{ a: 1 }, { a: 2 }] }]} />`, "flights")
		require.True(t, ok)
		assert.Equal(t, []string{`{ legs: [{ a: 1 }, { a: 2 }] }`}, field.Texts())
	})

	t.Run("unbalanced array is not found", func(t *testing.T) {
		_, ok := ExtractArrayField(`<X flights={[{ a: 1 } />`, "flights")
		assert.False(t, ok)
	})

	t.Run("non-array expression is not found", func(t *testing.T) {
		_, ok := ExtractArrayField(`<X flights={data} />`, "flights")
		assert.False(t, ok)
	})
}

func TestSplitElements(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace", "  \n ", nil},
		{"single", "{a:1}", []string{"{a:1}"}},
		{"two with newline", "{a:1},\n{b:{c:2}}", []string{"{a:1}", "{b:{c:2}}"}},
		{"comment with brace", "{a:1}, // }\n{b:2}", []string{"{a:1}", "{b:2}"}},
		{"escaped quote", `{a:"x\"}"},{b:2}`, []string{`{a:"x\"}"}`, "{b:2}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, el := range SplitElements(tt.body) {
				got = append(got, el.Text)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOnlyObjectLiterals(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"empty", "", true},
		{"objects with separators", "\n  {a:1},\n  {b:2}\n", true},
		{"trailing comma", "{a:1},", true},
		{"comments between elements", "{a:1}, // next\n/* two */ {b:2}", true},
		{"identifier", "baseFlight, {a:1}", false},
		{"spread", "{a:1}, ...extra", false},
		{"nested array", "{a:1}, [1, 2]", false},
		{"string entry", `{a:1}, "x"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := m.ArrayField{Body: tt.body, Elements: SplitElements(tt.body)}
			assert.Equal(t, tt.want, OnlyObjectLiterals(field))
		})
	}
}
