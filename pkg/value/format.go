package value

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IndentWidth is the number of spaces per nesting level. It is fixed so that
// reference files stay byte-identical across environments.
const IndentWidth = 2

// blockQuote opens and closes multi-line strings. Content lines sit one level
// deeper than the closing quote, so the delimiter needs no escaping.
const blockQuote = `"""`

// Serialize renders v in the canonical debug format. It never fails; the
// same logical input always yields the same bytes.
func Serialize(v Value) string {
	var w writer

	w.value(v, 0)

	return w.String()
}

type writer struct {
	strings.Builder
}

func (w *writer) indent(depth int) {
	w.WriteString(strings.Repeat(" ", depth*IndentWidth))
}

//nolint:cyclop // One case per variant keeps the format readable in one place.
func (w *writer) value(v Value, depth int) {
	switch x := v.(type) {
	case nil, Null:
		w.WriteString("nil")
	case Bool:
		w.WriteString(strconv.FormatBool(bool(x)))
	case Int:
		w.WriteString(strconv.FormatInt(int64(x), 10))
	case Uint:
		w.WriteString(strconv.FormatUint(uint64(x), 10))
	case Float:
		w.WriteString(FormatFloat(float64(x)))
	case String:
		w.str(string(x), depth)
	case Bytes:
		w.WriteString("b")
		w.WriteString(strconv.Quote(string(x)))
	case Seq:
		w.seq(x, depth)
	case Record:
		w.record(x, depth)
	case Map:
		w.mapping(x, depth)
	case Opaque:
		w.opaque(x)
	}
}

func (w *writer) str(s string, depth int) {
	if !blockEligible(s) {
		w.WriteString(strconv.Quote(s))
		return
	}

	w.WriteString(blockQuote)

	for _, line := range strings.Split(s, "\n") {
		w.WriteString("\n")

		if line == "" {
			continue
		}

		w.indent(depth + 1)
		w.WriteString(line)
	}

	w.WriteString("\n")
	w.indent(depth)
	w.WriteString(blockQuote)
}

func (w *writer) seq(s Seq, depth int) {
	if len(s) == 0 {
		w.WriteString("[]")
		return
	}

	w.WriteString("[\n")

	for _, item := range s {
		w.indent(depth + 1)
		w.value(item, depth+1)
		w.WriteString(",\n")
	}

	w.indent(depth)
	w.WriteString("]")
}

func (w *writer) record(r Record, depth int) {
	if r.Type != "" {
		w.WriteString(r.Type)
		w.WriteString(" ")
	}

	if len(r.Fields) == 0 {
		w.WriteString("{}")
		return
	}

	w.WriteString("{\n")

	for _, f := range r.Fields {
		w.indent(depth + 1)
		w.WriteString(fieldKey(f.Key))
		w.WriteString(": ")
		w.value(f.Value, depth+1)
		w.WriteString(",\n")
	}

	w.indent(depth)
	w.WriteString("}")
}

func (w *writer) mapping(m Map, depth int) {
	if len(m) == 0 {
		w.WriteString("{}")
		return
	}

	w.WriteString("{\n")

	for _, e := range sortedEntries(m) {
		w.indent(depth + 1)
		w.WriteString(e.key)
		w.WriteString(": ")
		w.value(e.entry.Value, depth+1)
		w.WriteString(",\n")
	}

	w.indent(depth)
	w.WriteString("}")
}

func (w *writer) opaque(o Opaque) {
	w.WriteString("<")
	w.WriteString(o.Type)

	if o.Repr != "" {
		w.WriteString(" ")
		w.WriteString(o.Repr)
	}

	w.WriteString(">")
}

type keyedEntry struct {
	key   string
	value string
	entry Entry
}

// sortedEntries orders map entries by their serialized key. Entries with equal
// keys are ordered by their serialized value so the order is total.
func sortedEntries(m Map) []keyedEntry {
	entries := make([]keyedEntry, 0, len(m))
	for _, e := range m {
		entries = append(entries, keyedEntry{
			key:   Serialize(e.Key),
			value: Serialize(e.Value),
			entry: e,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].key != entries[j].key {
			return entries[i].key < entries[j].key
		}

		return entries[i].value < entries[j].value
	})

	return entries
}

// FormatFloat returns the shortest representation of f that parses back to
// the same float64. Integral values keep a ".0" suffix so floats never read
// as integers.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}

func fieldKey(key string) string {
	if isIdentifier(key) {
		return key
	}

	return strconv.Quote(key)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return false
	}

	return true
}

// blockEligible reports whether a string may use the block form. Block
// lines are emitted verbatim, so anything the comparator would normalize away
// (trailing whitespace, CR) or that is invisible must stay quoted.
func blockEligible(s string) bool {
	if !strings.Contains(s, "\n") || strings.HasSuffix(s, "\n") || !utf8.ValidString(s) {
		return false
	}

	for _, line := range strings.Split(s, "\n") {
		if strings.TrimRight(line, " \t") != line {
			return false
		}

		for _, r := range line {
			if r != '\t' && !unicode.IsPrint(r) {
				return false
			}
		}
	}

	return true
}
