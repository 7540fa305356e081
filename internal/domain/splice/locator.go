package splice

import (
	"strings"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

const selfClose = "/>"

// FindBlocks returns every self-closing <tag ... /> invocation in document
// order. A block ends at the first "/>" after its opening; an opening with no
// later "/>" is not a block.
func FindBlocks(code, tag string) []m.BlockMatch {
	if tag == "" {
		return nil
	}

	open := "<" + tag

	var blocks []m.BlockMatch

	pos := 0

	for pos < len(code) {
		idx := strings.Index(code[pos:], open)
		if idx < 0 {
			break
		}

		start := pos + idx
		after := start + len(open)

		// <AirplaneSectionList is a different component.
		if after < len(code) && isIdentByte(code[after]) {
			pos = after
			continue
		}

		closeIdx := strings.Index(code[after:], selfClose)
		if closeIdx < 0 {
			break
		}

		end := after + closeIdx + len(selfClose)
		blocks = append(blocks, m.BlockMatch{
			Text:    code[start:end],
			Span:    m.Span{Start: start, End: end},
			Ordinal: len(blocks),
		})
		pos = end
	}

	return blocks
}

// FindBlock returns the ordinal-th <tag ... /> invocation of code.
func FindBlock(code, tag string, ordinal int) (m.BlockMatch, bool) {
	if ordinal < 0 {
		return m.BlockMatch{}, false
	}

	blocks := FindBlocks(code, tag)
	if ordinal >= len(blocks) {
		return m.BlockMatch{}, false
	}

	return blocks[ordinal], true
}
