package format

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN encodes v as EDN, followed by a newline. Struct values are first
// normalized through their JSON representation so the EDN output follows the
// same field names and omissions as the JSON output.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	norm, err := normalize(v)
	if err != nil {
		return err
	}
	var sb strings.Builder
	if err := writeEDNValue(&sb, norm, pretty, 0); err != nil {
		return err
	}
	sb.WriteByte('\n')
	_, err = io.WriteString(w, sb.String())
	return err
}

// normalize round-trips v through JSON so the encoder only ever sees maps,
// slices, strings, float64, bool and nil.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode edn: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("encode edn: %w", err)
	}
	return out, nil
}

func writeEDNValue(sb *strings.Builder, v any, pretty bool, depth int) error {
	switch val := v.(type) {
	case nil:
		sb.WriteString("nil")
	case bool:
		sb.WriteString(strconv.FormatBool(val))
	case string:
		sb.WriteString(strconv.Quote(val))
	case float64:
		// JSON numbers arrive as float64; print integral values without
		// a fractional part so ids and sizes stay readable.
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			sb.WriteString(strconv.FormatInt(int64(val), 10))
		} else {
			sb.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
		}
	case []any:
		return writeEDNVector(sb, val, pretty, depth)
	case map[string]any:
		return writeEDNMap(sb, val, pretty, depth)
	default:
		return fmt.Errorf("encode edn: unsupported value %T", v)
	}
	return nil
}

func writeEDNVector(sb *strings.Builder, items []any, pretty bool, depth int) error {
	if len(items) == 0 {
		sb.WriteString("[]")
		return nil
	}
	sb.WriteByte('[')
	for i, item := range items {
		if pretty {
			sb.WriteByte('\n')
			writeIndent(sb, depth+1)
		} else if i > 0 {
			sb.WriteByte(' ')
		}
		if err := writeEDNValue(sb, item, pretty, depth+1); err != nil {
			return err
		}
	}
	if pretty {
		sb.WriteByte('\n')
		writeIndent(sb, depth)
	}
	sb.WriteByte(']')
	return nil
}

func writeEDNMap(sb *strings.Builder, m map[string]any, pretty bool, depth int) error {
	if len(m) == 0 {
		sb.WriteString("{}")
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sb.WriteByte('{')
	for i, k := range keys {
		if pretty {
			sb.WriteByte('\n')
			writeIndent(sb, depth+1)
		} else if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(keyword(k))
		sb.WriteByte(' ')
		if err := writeEDNValue(sb, m[k], pretty, depth+1); err != nil {
			return err
		}
	}
	if pretty {
		sb.WriteByte('\n')
		writeIndent(sb, depth)
	}
	sb.WriteByte('}')
	return nil
}

// keyword turns a JSON field name into an EDN keyword. Names that would not
// survive as a bare keyword fall back to a quoted string key.
func keyword(name string) string {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.' || r == '+' || r == '?' || r == '*':
		default:
			return strconv.Quote(name)
		}
	}
	return ":" + name
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}
