package cdg

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Shape fields are matched by their json tag name. A field tagged cdg:"required" must be
// present and of the right kind; every other field is optional. A *Structural field tagged
// cdg:"extra" receives the keys the shape does not declare, and optional fields whose
// value has the wrong kind.
const (
	tagRequired = "required"
	tagExtra    = "extra"
)

var (
	structuralType = reflect.TypeOf((*Structural)(nil))
	valueType      = reflect.TypeOf(Value{})
	numberType     = reflect.TypeOf(json.Number(""))
)

type shapeField struct {
	name     string
	index    int
	required bool
}

type shapeInfo struct {
	fields []shapeField
	byName map[string]int
	extra  int // field index, or -1
}

var shapeCache sync.Map // reflect.Type -> *shapeInfo

func shapeInfoFor(t reflect.Type) *shapeInfo {
	if cached, ok := shapeCache.Load(t); ok {
		info, _ := cached.(*shapeInfo)

		return info
	}

	info := &shapeInfo{byName: make(map[string]int), extra: -1}

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("cdg")
		if tag == tagExtra && field.Type == structuralType {
			info.extra = i

			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}

		if name == "" {
			name = field.Name
		}

		info.byName[name] = len(info.fields)
		info.fields = append(info.fields, shapeField{name: name, index: i, required: tag == tagRequired})
	}

	actual, _ := shapeCache.LoadOrStore(t, info)
	stored, _ := actual.(*shapeInfo)

	return stored
}

// Materialize converts a structural response into the shape T. Unknown keys never cause
// a failure; a missing or wrongly-kinded required field yields a *ShapeMismatchError.
func Materialize[T any](s *Structural) (*T, error) {
	target := new(T)
	if err := MaterializeInto(s, target); err != nil {
		return nil, err
	}

	return target, nil
}

// MaterializeInto fills target, which must be a non-nil pointer to a struct.
func MaterializeInto(s *Structural, target any) error {
	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Pointer || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidShapeTarget, target)
	}

	shapeName := value.Elem().Type().Name()

	if mismatch := decodeObject(s, value.Elem(), ""); mismatch != nil {
		mismatch.Shape = shapeName

		return mismatch
	}

	return nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}

	return parent + "." + name
}

func decodeObject(s *Structural, target reflect.Value, path string) *ShapeMismatchError {
	info := shapeInfoFor(target.Type())
	seen := make([]bool, len(info.fields))

	var extra *Structural

	keepExtra := func(key string, value Value) {
		if extra == nil {
			extra = &Structural{}
		}

		extra.set(key, value)
	}

	for _, key := range s.Keys() {
		raw, _ := s.Get(key)

		position, declared := info.byName[key]
		if !declared {
			keepExtra(key, raw)

			continue
		}

		field := info.fields[position]
		seen[position] = true
		fieldPath := joinPath(path, field.name)

		if raw.IsNull() && !field.required {
			continue
		}

		if mismatch := decodeValueInto(raw, target.Field(field.index), fieldPath); mismatch != nil {
			if field.required {
				return mismatch
			}

			target.Field(field.index).SetZero()
			keepExtra(key, raw)
		}
	}

	for position, field := range info.fields {
		if field.required && !seen[position] {
			return &ShapeMismatchError{Path: joinPath(path, field.name), Expected: expectedKind(target.Field(field.index).Type())}
		}
	}

	if info.extra >= 0 && extra != nil {
		target.Field(info.extra).Set(reflect.ValueOf(extra))
	}

	return nil
}

func decodeValueInto(raw Value, target reflect.Value, path string) *ShapeMismatchError {
	mismatch := func() *ShapeMismatchError {
		return &ShapeMismatchError{Path: path, Expected: expectedKind(target.Type()), Found: raw.Kind().String()}
	}

	switch target.Type() {
	case valueType:
		target.Set(reflect.ValueOf(raw))

		return nil
	case structuralType:
		object, ok := raw.Object()
		if !ok {
			return mismatch()
		}

		target.Set(reflect.ValueOf(object))

		return nil
	case numberType:
		number, ok := raw.Number()
		if !ok {
			return mismatch()
		}

		target.Set(reflect.ValueOf(number))

		return nil
	}

	//nolint:exhaustive // remaining kinds are not used by shapes
	switch target.Kind() {
	case reflect.Pointer:
		if raw.IsNull() {
			return mismatch()
		}

		element := reflect.New(target.Type().Elem())
		if m := decodeValueInto(raw, element.Elem(), path); m != nil {
			return m
		}

		target.Set(element)
	case reflect.String:
		text, ok := raw.Str()
		if !ok {
			return mismatch()
		}

		target.SetString(text)
	case reflect.Bool:
		boolean, ok := raw.Bool()
		if !ok {
			return mismatch()
		}

		target.SetBool(boolean)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		number, ok := raw.Number()
		if !ok {
			return mismatch()
		}

		parsed, err := strconv.ParseInt(number.String(), 10, target.Type().Bits())
		if err != nil {
			return mismatch()
		}

		target.SetInt(parsed)
	case reflect.Float32, reflect.Float64:
		number, ok := raw.Number()
		if !ok {
			return mismatch()
		}

		parsed, err := strconv.ParseFloat(number.String(), target.Type().Bits())
		if err != nil {
			return mismatch()
		}

		target.SetFloat(parsed)
	case reflect.Slice:
		items, ok := raw.Array()
		if !ok {
			return mismatch()
		}

		// Empty arrays materialize as nil.
		if len(items) == 0 {
			target.SetZero()

			return nil
		}

		slice := reflect.MakeSlice(target.Type(), len(items), len(items))
		for i, item := range items {
			if m := decodeValueInto(item, slice.Index(i), path+"["+strconv.Itoa(i)+"]"); m != nil {
				return m
			}
		}

		target.Set(slice)
	case reflect.Struct:
		object, ok := raw.Object()
		if !ok {
			return mismatch()
		}

		return decodeObject(object, target, path)
	case reflect.Interface:
		if target.NumMethod() != 0 {
			return mismatch()
		}

		if interfaceValue := raw.Interface(); interfaceValue != nil {
			target.Set(reflect.ValueOf(interfaceValue))
		}
	default:
		return mismatch()
	}

	return nil
}

func expectedKind(t reflect.Type) string {
	switch t {
	case valueType:
		return "any"
	case structuralType:
		return ObjectValue.String()
	case numberType:
		return NumberValue.String()
	}

	//nolint:exhaustive // remaining kinds are not used by shapes
	switch t.Kind() {
	case reflect.Pointer:
		return expectedKind(t.Elem())
	case reflect.String:
		return StringValue.String()
	case reflect.Bool:
		return BoolValue.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return NumberValue.String()
	case reflect.Slice:
		return ArrayValue.String()
	case reflect.Struct:
		return ObjectValue.String()
	}

	return "any"
}

// ToStructural converts a shape back to its structural form. Declared fields come first,
// in declaration order, followed by any extra keys. Nil pointers and nil optional slices
// are omitted; a nil required slice encodes as an empty array.
func ToStructural(shape any) (*Structural, error) {
	value := reflect.ValueOf(shape)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("%w: got nil %T", ErrInvalidShapeTarget, shape)
		}

		value = value.Elem()
	}

	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidShapeTarget, shape)
	}

	if object, ok := value.Interface().(Structural); ok {
		return &object, nil
	}

	return encodeObject(value), nil
}

func encodeObject(value reflect.Value) *Structural {
	info := shapeInfoFor(value.Type())
	object := &Structural{}

	for _, field := range info.fields {
		fieldValue := value.Field(field.index)

		if !field.required && isAbsent(fieldValue) {
			continue
		}

		object.set(field.name, encodeValue(fieldValue))
	}

	if info.extra >= 0 {
		if extra, ok := value.Field(info.extra).Interface().(*Structural); ok && extra != nil {
			for _, key := range extra.keys {
				if _, taken := object.values[key]; !taken {
					object.set(key, extra.values[key])
				}
			}
		}
	}

	return object
}

func isAbsent(value reflect.Value) bool {
	//nolint:exhaustive // only nillable kinds can be absent
	switch value.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Interface, reflect.Map:
		return value.IsNil()
	}

	return false
}

func encodeValue(value reflect.Value) Value {
	switch value.Type() {
	case valueType:
		raw, _ := value.Interface().(Value)

		return raw
	case structuralType:
		object, _ := value.Interface().(*Structural)

		return ObjectVal(object)
	case numberType:
		return NumberVal(json.Number(value.String()))
	}

	//nolint:exhaustive // remaining kinds are not used by shapes
	switch value.Kind() {
	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return NullVal()
		}

		if value.Kind() == reflect.Interface {
			return fromInterface(value.Interface())
		}

		return encodeValue(value.Elem())
	case reflect.String:
		return StringVal(value.String())
	case reflect.Bool:
		return BoolVal(value.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NumberVal(json.Number(strconv.FormatInt(value.Int(), 10)))
	case reflect.Float32, reflect.Float64:
		return NumberVal(json.Number(strconv.FormatFloat(value.Float(), 'g', -1, value.Type().Bits())))
	case reflect.Slice:
		items := make([]Value, value.Len())
		for i := range items {
			items[i] = encodeValue(value.Index(i))
		}

		return ArrayVal(items...)
	case reflect.Struct:
		return ObjectVal(encodeObject(value))
	}

	return NullVal()
}

// fromInterface converts the plain values produced by Value.Interface back.
func fromInterface(v any) Value {
	switch typed := v.(type) {
	case nil:
		return NullVal()
	case bool:
		return BoolVal(typed)
	case json.Number:
		return NumberVal(typed)
	case string:
		return StringVal(typed)
	case []any:
		items := make([]Value, len(typed))
		for i, item := range typed {
			items[i] = fromInterface(item)
		}

		return ArrayVal(items...)
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		object := &Structural{}
		for _, key := range keys {
			object.set(key, fromInterface(typed[key]))
		}

		return ObjectVal(object)
	}

	return encodeValue(reflect.ValueOf(v))
}
