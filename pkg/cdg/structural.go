package cdg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxNestingDepth bounds how deeply arrays and objects may nest in a response body.
const maxNestingDepth = 10000

var (
	errTrailingData = errors.New("trailing data after top-level value")
	errTooDeep      = fmt.Errorf("exceeded max nesting depth %d", maxNestingDepth)

	errStructuralFilled = errors.New("cannot unmarshal into a non-empty structural value")
)

// ValueKind is the JSON kind of a Value.
type ValueKind int

const (
	NullValue ValueKind = iota
	BoolValue
	NumberValue
	StringValue
	ArrayValue
	ObjectValue
)

var valueKindNames = [...]string{
	NullValue:   "null",
	BoolValue:   "boolean",
	NumberValue: "number",
	StringValue: "string",
	ArrayValue:  "array",
	ObjectValue: "object",
}

// String returns the JSON name of the kind.
func (k ValueKind) String() string {
	if k < 0 || int(k) >= len(valueKindNames) {
		return "unknown"
	}

	return valueKindNames[k]
}

// Value is one node of a structural response. The zero Value is JSON null.
type Value struct {
	kind    ValueKind
	boolean bool
	text    string // string contents or number literal
	list    []Value
	object  *Structural
}

// Structural is an ordered JSON object. It keeps every key it was built from, in
// document order, and is never modified after construction.
type Structural struct {
	keys   []string
	values map[string]Value
}

// NullVal returns a JSON null.
func NullVal() Value { return Value{} }

// BoolVal wraps a boolean.
func BoolVal(b bool) Value { return Value{kind: BoolValue, boolean: b} }

// NumberVal wraps a JSON number literal.
func NumberVal(n json.Number) Value { return Value{kind: NumberValue, text: n.String()} }

// StringVal wraps a string.
func StringVal(s string) Value { return Value{kind: StringValue, text: s} }

// ArrayVal wraps a sequence of values.
func ArrayVal(items ...Value) Value {
	return Value{kind: ArrayValue, list: append([]Value{}, items...)}
}

// ObjectVal wraps a nested object.
func ObjectVal(s *Structural) Value {
	if s == nil {
		s = &Structural{}
	}

	return Value{kind: ObjectValue, object: s}
}

// Kind returns the JSON kind of v.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == NullValue }

// Bool returns the boolean held by v.
func (v Value) Bool() (bool, bool) { return v.boolean, v.kind == BoolValue }

// Number returns the number literal held by v.
func (v Value) Number() (json.Number, bool) { return json.Number(v.text), v.kind == NumberValue }

// Str returns the string held by v.
func (v Value) Str() (string, bool) { return v.text, v.kind == StringValue }

// Array returns a copy of the elements held by v.
func (v Value) Array() ([]Value, bool) {
	if v.kind != ArrayValue {
		return nil, false
	}

	return append([]Value{}, v.list...), true
}

// Object returns the object held by v.
func (v Value) Object() (*Structural, bool) { return v.object, v.kind == ObjectValue }

// Interface converts v to plain Go values: map[string]any, []any, string, json.Number,
// bool or nil. Key order is lost.
func (v Value) Interface() any {
	switch v.kind {
	case BoolValue:
		return v.boolean
	case NumberValue:
		return json.Number(v.text)
	case StringValue:
		return v.text
	case ArrayValue:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}

		return out
	case ObjectValue:
		return v.object.Map()
	case NullValue:
	}

	return nil
}

// Equal reports deep equality, including key order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case NullValue:
		return true
	case BoolValue:
		return v.boolean == other.boolean
	case NumberValue, StringValue:
		return v.text == other.text
	case ArrayValue:
		if len(v.list) != len(other.list) {
			return false
		}

		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}

		return true
	case ObjectValue:
		return v.object.Equal(other.object)
	}

	return false
}

// ParseStructural builds a Structural from a JSON document whose top level is an object.
// It never fails on unknown fields; it fails only on malformed JSON.
func ParseStructural(data []byte) (*Structural, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	value, err := decodeValue(decoder, 0)
	if err != nil {
		return nil, &MalformedBodyError{Body: data, Err: err}
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, &MalformedBodyError{Body: data, Err: errTrailingData}
	}

	object, ok := value.Object()
	if !ok {
		return nil, &MalformedBodyError{Body: data, Err: fmt.Errorf("%w: top level is %s", ErrNotAnObject, value.Kind())}
	}

	return object, nil
}

func decodeValue(decoder *json.Decoder, depth int) (Value, error) {
	token, err := decoder.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, io.ErrUnexpectedEOF
		}

		return Value{}, err
	}

	switch tok := token.(type) {
	case nil:
		return NullVal(), nil
	case bool:
		return BoolVal(tok), nil
	case json.Number:
		return NumberVal(tok), nil
	case string:
		return StringVal(tok), nil
	case json.Delim:
		if depth >= maxNestingDepth {
			return Value{}, errTooDeep
		}

		switch tok {
		case '[':
			items := []Value{}

			for decoder.More() {
				item, err := decodeValue(decoder, depth+1)
				if err != nil {
					return Value{}, err
				}

				items = append(items, item)
			}

			if _, err := decoder.Token(); err != nil {
				return Value{}, err
			}

			return ArrayVal(items...), nil
		case '{':
			object := &Structural{}

			for decoder.More() {
				keyToken, err := decoder.Token()
				if err != nil {
					return Value{}, err
				}

				key, ok := keyToken.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key %v", keyToken)
				}

				item, err := decodeValue(decoder, depth+1)
				if err != nil {
					return Value{}, err
				}

				object.set(key, item)
			}

			if _, err := decoder.Token(); err != nil {
				return Value{}, err
			}

			return ObjectVal(object), nil
		}
	}

	return Value{}, fmt.Errorf("unexpected token %v", token)
}

// set appends key, or replaces its value in place when the key repeats.
func (s *Structural) set(key string, value Value) {
	if s.values == nil {
		s.values = make(map[string]Value)
	}

	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}

	s.values[key] = value
}

// Len returns the number of keys.
func (s *Structural) Len() int {
	if s == nil {
		return 0
	}

	return len(s.keys)
}

// Keys returns the keys in document order.
func (s *Structural) Keys() []string {
	if s == nil {
		return nil
	}

	return append([]string(nil), s.keys...)
}

// Get returns the value stored under key.
func (s *Structural) Get(key string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}

	value, ok := s.values[key]

	return value, ok
}

// Lookup walks a dotted path of object keys and array indexes, e.g. "congress.sessions"
// or "bills.0.title".
func (s *Structural) Lookup(path string) (Value, bool) {
	current := ObjectVal(s)

	for _, part := range strings.Split(path, ".") {
		if items, ok := current.Array(); ok {
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(items) {
				return Value{}, false
			}

			current = items[index]

			continue
		}

		object, ok := current.Object()
		if !ok {
			return Value{}, false
		}

		current, ok = object.Get(part)
		if !ok {
			return Value{}, false
		}
	}

	return current, true
}

// Map converts s to a plain map. Key order is lost.
func (s *Structural) Map() map[string]any {
	out := make(map[string]any, s.Len())
	if s == nil {
		return out
	}

	for _, key := range s.keys {
		out[key] = s.values[key].Interface()
	}

	return out
}

// Equal reports whether both objects hold the same keys, in the same order, with equal
// values.
func (s *Structural) Equal(other *Structural) bool {
	if s.Len() != other.Len() {
		return false
	}

	for i, key := range s.Keys() {
		if other.keys[i] != key {
			return false
		}

		if !s.values[key].Equal(other.values[key]) {
			return false
		}
	}

	return true
}

// Render serializes s back to JSON text, compact or indented by two spaces.
func (s *Structural) Render(pretty bool) string {
	var buffer bytes.Buffer

	writeValue(&buffer, ObjectVal(s))

	if !pretty {
		return buffer.String()
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, buffer.Bytes(), "", "  "); err != nil {
		return buffer.String()
	}

	return indented.String()
}

// String renders compact JSON.
func (s *Structural) String() string {
	return s.Render(false)
}

// MarshalJSON implements json.Marshaler, preserving key order.
func (s *Structural) MarshalJSON() ([]byte, error) {
	return []byte(s.Render(false)), nil
}

// UnmarshalJSON implements json.Unmarshaler. Only an empty Structural can be filled.
func (s *Structural) UnmarshalJSON(data []byte) error {
	if s.Len() > 0 {
		return errStructuralFilled
	}

	parsed, err := ParseStructural(data)
	if err != nil {
		return err
	}

	*s = *parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler, preserving key order.
func (s *Structural) MarshalYAML() (interface{}, error) {
	return yamlNode(ObjectVal(s)), nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer

	writeValue(&buffer, v)

	return buffer.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (interface{}, error) {
	return yamlNode(v), nil
}

func writeValue(buffer *bytes.Buffer, v Value) {
	switch v.kind {
	case NullValue:
		buffer.WriteString("null")
	case BoolValue:
		if v.boolean {
			buffer.WriteString("true")
		} else {
			buffer.WriteString("false")
		}
	case NumberValue:
		buffer.WriteString(v.text)
	case StringValue:
		writeString(buffer, v.text)
	case ArrayValue:
		buffer.WriteByte('[')

		for i, item := range v.list {
			if i > 0 {
				buffer.WriteByte(',')
			}

			writeValue(buffer, item)
		}

		buffer.WriteByte(']')
	case ObjectValue:
		buffer.WriteByte('{')

		for i, key := range v.object.Keys() {
			if i > 0 {
				buffer.WriteByte(',')
			}

			writeString(buffer, key)
			buffer.WriteByte(':')
			writeValue(buffer, v.object.values[key])
		}

		buffer.WriteByte('}')
	}
}

func writeString(buffer *bytes.Buffer, s string) {
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(s)

	// Encode terminates with a newline.
	buffer.Truncate(buffer.Len() - 1)
}

func yamlNode(v Value) *yaml.Node {
	switch v.kind {
	case BoolValue:
		if v.boolean {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"}
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"}
	case NumberValue:
		tag := "!!int"
		if strings.ContainsAny(v.text, ".eE") {
			tag = "!!float"
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.text}
	case StringValue:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.text}
	case ArrayValue:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.list {
			node.Content = append(node.Content, yamlNode(item))
		}

		return node
	case ObjectValue:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range v.object.Keys() {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				yamlNode(v.object.values[key]),
			)
		}

		return node
	case NullValue:
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
