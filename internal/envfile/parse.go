package envfile

import "strings"

// whitespace is the set trimmed from lines, keys and values.
const whitespace = " \t\r\n"

// Entry is a single key/value pair parsed from one line.
type Entry struct {
	Key   string
	Value string
}

// quoteState tracks which kind of quoted span the value scanner is inside.
type quoteState int

const (
	quoteNone quoteState = iota
	quoteSingle
	quoteDouble
)

// ParseLine parses one line of a dotenv file. ok is false for blank lines,
// comments, lines without '=' and lines whose key does not start with a
// letter or underscore.
func ParseLine(line string, opts Options) (e Entry, ok bool) {
	if opts.TrimWhitespace {
		line = strings.Trim(line, whitespace)
	}
	if line == "" || line[0] == '#' {
		return Entry{}, false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return Entry{}, false
	}
	if opts.TrimWhitespace {
		key = strings.Trim(key, whitespace)
	}
	if !validKey(key) {
		return Entry{}, false
	}

	value = stripInlineComment(value)
	return Entry{Key: key, Value: ProcessValue(value, opts)}, true
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	c := key[0]
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// stripInlineComment cuts value at the first space or tab that is followed
// by '#' outside a quoted span. A quote preceded by a backslash does not
// close the span it is in.
func stripInlineComment(value string) string {
	state := quoteNone
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch state {
		case quoteNone:
			switch {
			case c == '"':
				state = quoteDouble
			case c == '\'':
				state = quoteSingle
			case c == '#' && i > 0 && (value[i-1] == ' ' || value[i-1] == '\t'):
				return value[:i-1]
			}
		case quoteDouble, quoteSingle:
			if c == closingQuote(state) && (i == 0 || value[i-1] != '\\') {
				state = quoteNone
			}
		}
	}
	return value
}

func closingQuote(s quoteState) byte {
	if s == quoteSingle {
		return '\''
	}
	return '"'
}

// ProcessValue trims, unquotes and unescapes a raw value. Escape decoding
// runs whether or not the value was quoted.
func ProcessValue(value string, opts Options) string {
	if opts.TrimWhitespace {
		value = strings.Trim(value, whitespace)
	}
	if opts.StripQuotes && len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return unescape(value)
}

func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !escaped {
			if c == '\\' {
				escaped = true
			} else {
				b.WriteByte(c)
			}
			continue
		}
		switch c {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\', '"', '\'':
			b.WriteByte(c)
		default:
			// Unknown escape: keep both characters.
			b.WriteByte('\\')
			b.WriteByte(c)
		}
		escaped = false
	}
	if escaped {
		b.WriteByte('\\')
	}
	return b.String()
}
