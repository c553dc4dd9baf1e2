package htmlexport

import (
	"strings"
)

// Minify strips ordinary HTML comments (conditional `<!--[if` comments are
// preserved) and collapses inter-tag whitespace. The pass is cosmetic: the
// parsed DOM shape of the output is identical to the input's.
func Minify(in string) string {
	return collapseWhitespace(stripComments(in))
}

func stripComments(in string) string {
	var b strings.Builder
	for {
		start := strings.Index(in, "<!--")
		if start < 0 {
			b.WriteString(in)
			break
		}
		end := strings.Index(in[start:], "-->")
		if end < 0 {
			b.WriteString(in)
			break
		}
		end += start + len("-->")
		b.WriteString(in[:start])
		if strings.HasPrefix(in[start:], "<!--[if") {
			b.WriteString(in[start:end])
		}
		in = in[end:]
	}
	return b.String()
}

// collapseWhitespace reduces whitespace runs between tags to nothing and runs
// inside text to a single space. Only the ASCII whitespace characters HTML
// itself collapses count; NBSP and other multi-byte runes are text and pass
// through byte-for-byte.
func collapseWhitespace(in string) string {
	var b strings.Builder
	b.Grow(len(in))
	i := 0
	for i < len(in) {
		if !htmlSpace(in[i]) {
			b.WriteByte(in[i])
			i++
			continue
		}
		j := i
		for j < len(in) && htmlSpace(in[j]) {
			j++
		}
		prevTag := i > 0 && in[i-1] == '>'
		nextTag := j < len(in) && in[j] == '<'
		if !(prevTag && nextTag) && j < len(in) && i > 0 {
			b.WriteByte(' ')
		}
		i = j
	}
	return strings.Trim(b.String(), " \t\n\r\f")
}

func htmlSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
