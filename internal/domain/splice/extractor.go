package splice

import (
	"strings"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

// ExtractArrayField locates `field={ [ ... ] }` inside a block and decomposes
// the array body into its top-level object literals.
func ExtractArrayField(block, field string) (m.ArrayField, bool) {
	open, ok := findArrayOpen(block, field)
	if !ok {
		return m.ArrayField{}, false
	}

	closeIdx, ok := matchingClose(block, open)
	if !ok {
		return m.ArrayField{}, false
	}

	body := block[open+1 : closeIdx]

	return m.ArrayField{
		Name:     field,
		Body:     body,
		BodySpan: m.Span{Start: open + 1, End: closeIdx},
		Elements: SplitElements(body),
	}, true
}

// findArrayOpen returns the index of the '[' that starts the array value of
// field, trying each occurrence of the prop name in turn.
func findArrayOpen(block, field string) (int, bool) {
	if field == "" {
		return 0, false
	}

	pos := 0

	for pos < len(block) {
		idx := strings.Index(block[pos:], field)
		if idx < 0 {
			return 0, false
		}

		start := pos + idx
		pos = start + len(field)

		if start > 0 && isIdentByte(block[start-1]) {
			continue
		}

		i := skipSpace(block, pos)
		if i >= len(block) || block[i] != '=' {
			continue
		}

		i = skipSpace(block, i+1)
		if i >= len(block) || block[i] != '{' {
			continue
		}

		if open, ok := firstArrayInExpression(block, i); ok {
			return open, true
		}
	}

	return 0, false
}

// firstArrayInExpression scans the JSX expression container opening at
// brace and returns the first '[' directly inside it.
func firstArrayInExpression(s string, brace int) (int, bool) {
	for i := brace + 1; i < len(s); i++ {
		if next := skipInert(s, i); next != i {
			i = next - 1
			continue
		}

		switch s[i] {
		case '[':
			return i, true
		case '{', '}':
			return 0, false
		}
	}

	return 0, false
}

// matchingClose returns the index of the ']' matching the '[' at open.
// Mismatched nesting is treated as not found.
func matchingClose(s string, open int) (int, bool) {
	stack := make([]byte, 0, 8)

	for i := open; i < len(s); i++ {
		if next := skipInert(s, i); next != i {
			i = next - 1
			continue
		}

		c := s[i]

		switch c {
		case '[', '{':
			stack = append(stack, c)
		case ']', '}':
			if len(stack) == 0 {
				return 0, false
			}

			top := stack[len(stack)-1]
			if (top == '[' && c != ']') || (top == '{' && c != '}') {
				return 0, false
			}

			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i, c == ']'
			}
		}
	}

	return 0, false
}

// SplitElements returns the top-level object literals of an array body.
// Only a '{' at depth zero opens an element, so nested objects stay inside
// the element that contains them.
func SplitElements(body string) []m.Element {
	var elements []m.Element

	depth := 0
	start := -1

	for i := 0; i < len(body); i++ {
		if next := skipInert(body, i); next != i {
			i = next - 1
			continue
		}

		switch body[i] {
		case '{', '[':
			if depth == 0 && body[i] == '{' {
				start = i
			}

			depth++
		case '}', ']':
			if depth == 0 {
				continue
			}

			depth--
			if depth == 0 && start >= 0 && body[i] == '}' {
				elements = append(elements, m.Element{
					Text: body[start : i+1],
					Span: m.Span{Start: start, End: i + 1},
				})
				start = -1
			}
		}
	}

	return elements
}

// OnlyObjectLiterals reports whether the array body holds nothing but its
// object-literal elements, commas, whitespace and comments. Bodies with other
// entries (identifiers, spreads, nested arrays) cannot be rebuilt from their
// elements without losing text.
func OnlyObjectLiterals(field m.ArrayField) bool {
	pos := 0

	for _, el := range field.Elements {
		if !onlySeparators(field.Body[pos:el.Span.Start]) {
			return false
		}

		pos = el.Span.End
	}

	return onlySeparators(field.Body[pos:])
}

func onlySeparators(s string) bool {
	for i := 0; i < len(s); i++ {
		if next := skipComment(s, i); next != i {
			i = next - 1
			continue
		}

		if s[i] != ',' && !isSpace(s[i]) {
			return false
		}
	}

	return true
}
