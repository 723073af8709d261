// internal/properties/properties.go
//
// This package implements the legacy Java-properties text format the
// profile store file uses. The escaping, separator and continuation
// rules are idiosyncratic and must be reproduced exactly so files keep
// round-tripping with the legacy tool, so the codec is an explicit
// tokenizer/encoder pair rather than a generic config reader.
//
// Read rules:
//   - lines whose first non-blank character is '#' or '!' are comments
//   - the key ends at the first unescaped '=', ':' or whitespace run;
//     whitespace around the separator is trimmed
//   - a trailing unescaped '\' joins the next physical line, with its
//     leading whitespace dropped
//   - \t \n \r \f \\ \uXXXX decode to their characters; any other
//     escaped character decodes to itself
//   - lines that fail to decode are skipped, never fatal
//
// Write rules:
//   - keys are emitted in sorted order, one "key=value" per line
//   - '\', '=', ':', '#', '!' and blanks in keys are backslash-escaped;
//     in values only a leading blank run is
//   - control characters and every rune outside printable ASCII are
//     encoded as \uXXXX

package properties

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Properties is a string property bag with sorted iteration order.
type Properties struct {
	props map[string]string
}

func New() *Properties {
	return &Properties{props: make(map[string]string)}
}

func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.props[key]
	return v, ok
}

func (p *Properties) Set(key, value string) {
	p.props[key] = value
}

func (p *Properties) Remove(key string) {
	delete(p.props, key)
}

func (p *Properties) Len() int {
	return len(p.props)
}

// Names returns all keys in sorted order.
func (p *Properties) Names() []string {
	names := make([]string, 0, len(p.props))
	for k := range p.props {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Load reads properties from r, merging into the bag. Unparseable
// lines are skipped for forward compatibility.
func (p *Properties) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var logical strings.Builder
	continued := false

	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t\f")
		if !continued {
			if line == "" || line[0] == '#' || line[0] == '!' {
				continue
			}
		}

		if hasTrailingContinuation(line) {
			logical.WriteString(line[:len(line)-1])
			continued = true
			continue
		}

		logical.WriteString(line)
		p.parseLine(logical.String())
		logical.Reset()
		continued = false
	}
	// A dangling continuation at EOF still yields a logical line.
	if continued && logical.Len() > 0 {
		p.parseLine(logical.String())
	}
	return scanner.Err()
}

// hasTrailingContinuation reports whether the line ends in an odd
// number of backslashes.
func hasTrailingContinuation(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// parseLine splits one logical line into key and value and stores the
// decoded pair. Undecodable lines are dropped.
func (p *Properties) parseLine(line string) {
	keyEnd := -1
	sepAt := -1
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' {
			i++ // skip the escaped character
			continue
		}
		if c == '=' || c == ':' {
			keyEnd = i
			sepAt = i
			break
		}
		if c == ' ' || c == '\t' || c == '\f' {
			keyEnd = i
			break
		}
	}
	if keyEnd == -1 {
		// Key with no value, e.g. a bare word.
		if key, err := decode(line); err == nil && key != "" {
			p.props[key] = ""
		}
		return
	}

	rawKey := line[:keyEnd]

	// Skip whitespace after the key, then at most one '=' or ':'.
	i := keyEnd
	if sepAt != -1 {
		i++
	}
	for i < len(line) && (line[i] == ' ' || line[i] == '\t' || line[i] == '\f') {
		i++
	}
	if sepAt == -1 && i < len(line) && (line[i] == '=' || line[i] == ':') {
		i++
		for i < len(line) && (line[i] == ' ' || line[i] == '\t' || line[i] == '\f') {
			i++
		}
	}

	key, err := decode(rawKey)
	if err != nil || key == "" {
		return
	}
	value, err := decode(line[i:])
	if err != nil {
		return
	}
	p.props[key] = value
}

// decode resolves backslash escapes, including \uXXXX sequences.
func decode(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("dangling backslash")
		}
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			r, err := decodeUnit(s, i)
			if err != nil {
				return "", err
			}
			i += 4
			// Recombine a surrogate pair written as two \u escapes.
			if r >= 0xd800 && r <= 0xdbff && i+6 < len(s) && s[i+1] == '\\' && s[i+2] == 'u' {
				if low, err := decodeUnit(s, i+2); err == nil && low >= 0xdc00 && low <= 0xdfff {
					r = 0x10000 + (r-0xd800)<<10 + (low - 0xdc00)
					i += 6
				}
			}
			b.WriteRune(r)
		default:
			// Unknown escape: the backslash is dropped.
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}

// decodeUnit reads the four hex digits following s[at] == 'u'.
func decodeUnit(s string, at int) (rune, error) {
	if at+4 >= len(s) {
		return 0, fmt.Errorf("truncated \\u escape")
	}
	var r rune
	for _, h := range s[at+1 : at+5] {
		d, ok := hexDigit(h)
		if !ok {
			return 0, fmt.Errorf("bad \\u escape in %q", s)
		}
		r = r<<4 | rune(d)
	}
	return r, nil
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// Write emits the bag in sorted key order, preceded by a comment line
// and a timestamp line. An empty comment still produces a bare "#"
// line, matching the legacy header layout exactly.
func (p *Properties) Write(w io.Writer, comment string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "#%s\n", comment); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "#%s\n", time.Now().Format(time.ANSIC)); err != nil {
		return err
	}
	for _, key := range p.Names() {
		if _, err := fmt.Fprintf(bw, "%s=%s\n", encode(key, true), encode(p.props[key], false)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// encode escapes one key or value. Keys escape every blank; values
// only a leading blank run, so a reloaded value keeps its interior
// spacing.
func encode(s string, isKey bool) string {
	var b strings.Builder
	leading := true
	for _, r := range s {
		switch r {
		case ' ':
			if isKey || leading {
				b.WriteString(`\ `)
			} else {
				b.WriteByte(' ')
			}
			continue
		case '\\':
			b.WriteString(`\\`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '=', ':', '#', '!':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			if r < 0x20 || r > 0x7e {
				for _, u := range encodeUTF16(r) {
					fmt.Fprintf(&b, `\u%04X`, u)
				}
			} else {
				b.WriteRune(r)
			}
		}
		leading = false
	}
	return b.String()
}

// encodeUTF16 expands runes beyond the BMP into surrogate pairs, the
// way the legacy tool's 16-bit chars serialize.
func encodeUTF16(r rune) []uint16 {
	if r <= 0xffff {
		return []uint16{uint16(r)}
	}
	r -= 0x10000
	return []uint16{0xd800 + uint16(r>>10), 0xdc00 + uint16(r&0x3ff)}
}
