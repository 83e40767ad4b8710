package config

import "strings"

// kind discriminates the variants a configuration value can hold.
type kind uint8

const (
	kindString kind = iota
	kindInteger
	kindBoolean
	kindBytes
	kindMap
)

// String reports the kind name as it appears in validation errors.
func (k kind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindInteger:
		return "integer"
	case kindBoolean:
		return "boolean"
	case kindBytes:
		return "bytes"
	case kindMap:
		return "map"
	default:
		return "unknown"
	}
}

// value is the common currency exchanged between configuration sources: a
// tagged union over strings, integers, booleans and nested key/value maps.
// The bytes variant is never produced by a source; it exists so the
// derivation step can place raw key material into the tree.
type value struct {
	kind kind
	str  string
	num  int64
	b    bool
	raw  []byte
	dict dict
}

// dict is a nested string-keyed mapping of values. Keys are unique and
// order-irrelevant; values may themselves be maps, nested arbitrarily deep.
type dict map[string]value

func stringValue(s string) value { return value{kind: kindString, str: s} }

func integerValue(n int64) value { return value{kind: kindInteger, num: n} }

func booleanValue(b bool) value { return value{kind: kindBoolean, b: b} }

func bytesValue(p []byte) value { return value{kind: kindBytes, raw: p} }

func mapValue(d dict) value { return value{kind: kindMap, dict: d} }

// merge combines v with a higher-precedence override. Two maps merge
// recursively key by key; any other pairing is resolved by replacing v with
// the override entirely. Merging is total and never fails.
func (v value) merge(override value) value {
	if v.kind != kindMap || override.kind != kindMap {
		return override
	}
	return mapValue(v.dict.merge(override.dict))
}

// merge returns a fresh dict holding d overlaid with override. Neither
// input is mutated.
func (d dict) merge(override dict) dict {
	out := make(dict, len(d)+len(override))
	for k, v := range d {
		out[k] = v
	}
	for k, o := range override {
		if cur, ok := out[k]; ok {
			out[k] = cur.merge(o)
		} else {
			out[k] = o
		}
	}
	return out
}

// at walks a dotted key path down nested maps and returns the value found
// at its end.
func (d dict) at(path string) (value, bool) {
	segments := strings.Split(path, ".")
	cur := d
	for i, segment := range segments {
		v, ok := cur[segment]
		if !ok {
			return value{}, false
		}
		if i == len(segments)-1 {
			return v, true
		}
		if v.kind != kindMap {
			return value{}, false
		}
		cur = v.dict
	}
	return value{}, false
}

// put writes v at a dotted key path, creating intermediate maps as needed.
// A non-map value standing where an intermediate map is required is
// replaced, mirroring the overwrite rule of merge.
func (d dict) put(path string, v value) {
	segments := strings.Split(path, ".")
	cur := d
	for _, segment := range segments[:len(segments)-1] {
		next, ok := cur[segment]
		if !ok || next.kind != kindMap {
			next = mapValue(dict{})
			cur[segment] = next
		}
		cur = next.dict
	}
	cur[segments[len(segments)-1]] = v
}

// stringAt returns the string leaf at path, if present with that kind.
func (d dict) stringAt(path string) (string, bool) {
	v, ok := d.at(path)
	if !ok || v.kind != kindString {
		return "", false
	}
	return v.str, true
}

// integerAt returns the integer leaf at path, if present with that kind.
func (d dict) integerAt(path string) (int64, bool) {
	v, ok := d.at(path)
	if !ok || v.kind != kindInteger {
		return 0, false
	}
	return v.num, true
}

// fromAny converts a value decoded from TOML into the value model. The
// second return is false for shapes the model cannot carry (arrays, floats,
// datetimes); callers drop those.
func fromAny(x any) (value, bool) {
	switch t := x.(type) {
	case string:
		return stringValue(t), true
	case int64:
		return integerValue(t), true
	case int:
		return integerValue(int64(t)), true
	case bool:
		return booleanValue(t), true
	case map[string]any:
		return mapValue(fromMap(t)), true
	default:
		return value{}, false
	}
}

func fromMap(m map[string]any) dict {
	d := make(dict, len(m))
	for k, x := range m {
		if v, ok := fromAny(x); ok {
			d[k] = v
		}
	}
	return d
}
