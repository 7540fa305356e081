// Package splice implements position-preserving edits of generated JSX
// component invocations: it locates blocks, decomposes their array props and
// splices serialized records back in without touching unrelated text.
package splice

func replaceRange(code string, start, end int, replacement string) string {
	if start < 0 || end < start || end > len(code) {
		return code
	}

	return code[:start] + replacement + code[end:]
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' || b == '.' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	return i
}

// skipQuoted returns the index just past the string literal opening at i.
// An unterminated literal runs to the end of s.
func skipQuoted(s string, i int) int {
	quote := s[i]

	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case quote:
			return j + 1
		}
	}

	return len(s)
}

// skipComment returns the index just past a comment opening at i, or i when
// no comment starts there.
func skipComment(s string, i int) int {
	if i+1 >= len(s) || s[i] != '/' {
		return i
	}

	switch s[i+1] {
	case '/':
		for j := i + 2; j < len(s); j++ {
			if s[j] == '\n' {
				return j + 1
			}
		}

		return len(s)
	case '*':
		for j := i + 2; j+1 < len(s); j++ {
			if s[j] == '*' && s[j+1] == '/' {
				return j + 2
			}
		}

		return len(s)
	default:
		return i
	}
}

// skipInert returns the index just past a string literal or comment at i,
// or i when neither starts there.
func skipInert(s string, i int) int {
	switch s[i] {
	case '"', '\'', '`':
		return skipQuoted(s, i)
	case '/':
		return skipComment(s, i)
	default:
		return i
	}
}
