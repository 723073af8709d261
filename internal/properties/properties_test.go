// internal/properties/properties_test.go

package properties

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadString(t *testing.T, s string) *Properties {
	t.Helper()
	p := New()
	require.NoError(t, p.Load(strings.NewReader(s)))
	return p
}

func TestLoadBasic(t *testing.T) {
	p := loadString(t, "host=example.com\nport: 22\n")
	v, ok := p.Get("host")
	assert.True(t, ok)
	assert.Equal(t, "example.com", v)
	v, _ = p.Get("port")
	assert.Equal(t, "22", v)
}

func TestLoadCommentsAndBlanks(t *testing.T) {
	p := loadString(t, "# a comment\n! another\n\n   \nkey=value\n")
	assert.Equal(t, 1, p.Len())
	v, _ := p.Get("key")
	assert.Equal(t, "value", v)
}

func TestLoadSeparators(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		key   string
		value string
	}{
		{"equals", "a=1", "a", "1"},
		{"colon", "a:1", "a", "1"},
		{"spaces around equals", "a  =  1", "a", "1"},
		{"whitespace separator", "a 1", "a", "1"},
		{"tab separator", "a\t1", "a", "1"},
		{"escaped equals in key", `a\=b=1`, "a=b", "1"},
		{"escaped colon in key", `a\:b:1`, "a:b", "1"},
		{"value keeps interior equals", "a=b=c", "a", "b=c"},
		{"value keeps interior colon", "a=b:c", "a", "b:c"},
		{"key only", "lonely", "lonely", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := loadString(t, tt.line+"\n")
			v, ok := p.Get(tt.key)
			require.True(t, ok, "key %q not found", tt.key)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestLoadContinuation(t *testing.T) {
	p := loadString(t, "key=one \\\n    two\n")
	v, _ := p.Get("key")
	assert.Equal(t, "one two", v)

	// An escaped backslash at end of line is a literal, not a
	// continuation.
	p = loadString(t, `key=trail\\`+"\nnext=1\n")
	v, _ = p.Get("key")
	assert.Equal(t, `trail\`, v)
	_, ok := p.Get("next")
	assert.True(t, ok)
}

func TestLoadEscapes(t *testing.T) {
	p := loadString(t, `key=a\tb\nc\u0041\u00e9`+"\n")
	v, _ := p.Get("key")
	assert.Equal(t, "a\tb\ncAé", v)
}

func TestLoadSkipsUnparseableLines(t *testing.T) {
	p := loadString(t, "good=1\nbad=\\u00zz\nalso=2\n")
	assert.Equal(t, 2, p.Len())
	_, ok := p.Get("bad")
	assert.False(t, ok)
}

func TestWriteSortedAndASCII(t *testing.T) {
	p := New()
	p.Set("b", "2")
	p.Set("a", "1")
	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf, ""))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	// The legacy header is a bare "#" line followed by the timestamp.
	assert.Equal(t, "#", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "#"))
	assert.Equal(t, "a=1", lines[2])
	assert.Equal(t, "b=2", lines[3])
}

func TestRoundTripAwkwardValues(t *testing.T) {
	values := map[string]string{
		"equals":      "a=b",
		"colon":       "a:b",
		"hash":        "#not a comment",
		"bang":        "!also not",
		"backslash":   `C:\Users\someone`,
		"leading ws":  "  indented",
		"newline":     "two\nlines",
		"tab":         "a\tb",
		"non-ascii":   "zażółć gęślą jaźń",
		"astral":      "ok \U0001f600 done",
		"empty":       "",
		"key=with:":   "both",
	}
	p := New()
	for k, v := range values {
		p.Set(k, v)
	}

	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf, "saved by test"))

	// The file on disk must be pure ASCII.
	for _, b := range buf.Bytes() {
		assert.Less(t, b, byte(0x80))
	}

	reloaded := New()
	require.NoError(t, reloaded.Load(&buf))
	require.Equal(t, len(values), reloaded.Len())
	for k, v := range values {
		got, ok := reloaded.Get(k)
		require.True(t, ok, "key %q lost", k)
		assert.Equal(t, v, got, "value for %q", k)
	}
}

func TestLegacyFileCompat(t *testing.T) {
	// A fragment as written by the legacy tool.
	legacy := "#\n#Mon Jan 02 15:04:05 2006\n" +
		"box.name=box\n" +
		"box.hostname=alice@box.example.com\n" +
		"box.port=22\n" +
		"box.mode=ssh\n" +
		"default.keypath=default\n"
	p := loadString(t, legacy)
	v, _ := p.Get("box.hostname")
	assert.Equal(t, "alice@box.example.com", v)
	v, _ = p.Get("default.keypath")
	assert.Equal(t, "default", v)
}
