package cdg_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseStructural(t *testing.T) {
	t.Parallel()

	t.Run("keeps document order", func(t *testing.T) {
		t.Parallel()

		s, err := cdg.ParseStructural([]byte(`{"zeta":1,"alpha":{"b":true,"a":null},"mid":["x",2.50]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, s.Keys())
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, `{"zeta":1,"alpha":{"b":true,"a":null},"mid":["x",2.50]}`, s.Render(false))
	})

	t.Run("keeps number literals", func(t *testing.T) {
		t.Parallel()

		s, err := cdg.ParseStructural([]byte(`{"big":12345678901234567890,"exp":1e3}`))
		require.NoError(t, err)

		big, ok := s.Get("big")
		require.True(t, ok)

		number, ok := big.Number()
		require.True(t, ok)
		assert.Equal(t, json.Number("12345678901234567890"), number)
		assert.Contains(t, s.String(), `"exp":1e3`)
	})

	t.Run("repeated key replaces value in place", func(t *testing.T) {
		t.Parallel()

		s, err := cdg.ParseStructural([]byte(`{"a":1,"b":2,"a":3}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, s.Keys())
		assert.Equal(t, `{"a":3,"b":2}`, s.Render(false))
	})

	t.Run("empty object", func(t *testing.T) {
		t.Parallel()

		s, err := cdg.ParseStructural([]byte(` {} `))
		require.NoError(t, err)
		assert.Zero(t, s.Len())
		assert.Equal(t, "{}", s.Render(false))
	})

	tests := []struct {
		name        string
		body        string
		notAnObject bool
	}{
		{name: "html", body: "<html>maintenance</html>"},
		{name: "empty", body: ""},
		{name: "truncated", body: `{"bills":[`},
		{name: "trailing data", body: `{"a":1} {"b":2}`},
		{name: "top-level array", body: `[{"a":1}]`, notAnObject: true},
		{name: "top-level string", body: `"text"`, notAnObject: true},
		{name: "top-level null", body: `null`, notAnObject: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := cdg.ParseStructural([]byte(tt.body))
			require.ErrorIs(t, err, cdg.ErrMalformedBody)
			assert.Nil(t, s)
			assert.Equal(t, tt.notAnObject, errors.Is(err, cdg.ErrNotAnObject))

			malformed := &cdg.MalformedBodyError{}
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.body, string(malformed.Body))
		})
	}
}

func TestParseStructural_NestingDepth(t *testing.T) {
	t.Parallel()

	t.Run("rejects bodies nested past the limit", func(t *testing.T) {
		t.Parallel()

		for _, open := range []string{"[", `{"k":`} {
			body := `{"a":` + strings.Repeat(open, 20000)

			s, err := cdg.ParseStructural([]byte(body))
			require.ErrorIs(t, err, cdg.ErrMalformedBody)
			assert.Nil(t, s)
			assert.Contains(t, err.Error(), "nesting depth")
		}
	})

	t.Run("accepts bodies nested within the limit", func(t *testing.T) {
		t.Parallel()

		body := `{"a":` + strings.Repeat("[", 500) + strings.Repeat("]", 500) + `}`

		s, err := cdg.ParseStructural([]byte(body))
		require.NoError(t, err)
		assert.Equal(t, body, s.Render(false))
	})
}

func TestStructural_Lookup(t *testing.T) {
	t.Parallel()

	s, err := cdg.ParseStructural([]byte(`{
		"congress": {"name": "118th Congress", "sessions": [{"number": 1}, {"number": 2}]},
		"bills": [{"title": "First"}, {"title": "Second"}]
	}`))
	require.NoError(t, err)

	tests := []struct {
		path  string
		want  string
		found bool
	}{
		{path: "congress.name", want: `"118th Congress"`, found: true},
		{path: "congress.sessions.1.number", want: "2", found: true},
		{path: "bills.0.title", want: `"First"`, found: true},
		{path: "bills.2.title"},
		{path: "bills.-1.title"},
		{path: "bills.first"},
		{path: "congress.name.first"},
		{path: "missing"},
		{path: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			value, found := s.Lookup(tt.path)
			assert.Equal(t, tt.found, found)

			if tt.found {
				rendered, err := json.Marshal(value)
				require.NoError(t, err)
				assert.Equal(t, tt.want, string(rendered))
			}
		})
	}
}

func TestStructural_Render(t *testing.T) {
	t.Parallel()

	s, err := cdg.ParseStructural([]byte(`{"b":1,"a":[true,null],"html":"<a&b>"}`))
	require.NoError(t, err)

	assert.Equal(t, `{"b":1,"a":[true,null],"html":"<a&b>"}`, s.Render(false))
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    true,\n    null\n  ],\n  \"html\": \"<a&b>\"\n}", s.Render(true))

	marshaled, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, s.Render(false), string(marshaled))
}

func TestStructural_MarshalYAML(t *testing.T) {
	t.Parallel()

	s, err := cdg.ParseStructural([]byte(`{"zeta":1,"alpha":"x","list":[false]}`))
	require.NoError(t, err)

	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "zeta: 1\nalpha: x\nlist:\n    - false\n", string(out))
}

func TestStructural_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var holder struct {
		Request *cdg.Structural `json:"request"`
	}

	err := json.Unmarshal([]byte(`{"request":{"format":"json","congress":"118"}}`), &holder)
	require.NoError(t, err)
	require.NotNil(t, holder.Request)
	assert.Equal(t, []string{"format", "congress"}, holder.Request.Keys())

	err = json.Unmarshal([]byte(`{"request":{"format":"xml"}}`), &holder)
	require.Error(t, err)
	assert.Equal(t, []string{"format", "congress"}, holder.Request.Keys())

	holder.Request = nil
	err = json.Unmarshal([]byte(`{"request":[1]}`), &holder)
	require.Error(t, err)
}

func TestStructural_Equal(t *testing.T) {
	t.Parallel()

	a, err := cdg.ParseStructural([]byte(`{"a":1,"b":{"c":[1,2]}}`))
	require.NoError(t, err)

	same, err := cdg.ParseStructural([]byte(`{ "a": 1, "b": { "c": [1, 2] } }`))
	require.NoError(t, err)

	reordered, err := cdg.ParseStructural([]byte(`{"b":{"c":[1,2]},"a":1}`))
	require.NoError(t, err)

	different, err := cdg.ParseStructural([]byte(`{"a":1,"b":{"c":[1,3]}}`))
	require.NoError(t, err)

	assert.True(t, a.Equal(same))
	assert.False(t, a.Equal(reordered))
	assert.False(t, a.Equal(different))

	var empty *cdg.Structural
	assert.True(t, empty.Equal(&cdg.Structural{}))
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	s, err := cdg.ParseStructural([]byte(`{"s":"x","n":7,"b":true,"z":null,"l":[1],"o":{"k":"v"}}`))
	require.NoError(t, err)

	value, _ := s.Get("s")
	text, ok := value.Str()
	assert.True(t, ok)
	assert.Equal(t, "x", text)
	assert.Equal(t, cdg.StringValue, value.Kind())

	_, ok = value.Number()
	assert.False(t, ok)

	value, _ = s.Get("b")
	boolean, ok := value.Bool()
	assert.True(t, ok)
	assert.True(t, boolean)

	value, _ = s.Get("z")
	assert.True(t, value.IsNull())
	assert.Equal(t, "null", value.Kind().String())

	value, _ = s.Get("l")
	items, ok := value.Array()
	assert.True(t, ok)
	assert.Len(t, items, 1)

	items[0] = cdg.StringVal("changed")
	assert.Equal(t, `{"s":"x","n":7,"b":true,"z":null,"l":[1],"o":{"k":"v"}}`, s.Render(false))

	assert.Equal(t, map[string]any{
		"s": "x",
		"n": json.Number("7"),
		"b": true,
		"z": nil,
		"l": []any{json.Number("1")},
		"o": map[string]any{"k": "v"},
	}, s.Map())

	assert.Equal(t, "unknown", cdg.ValueKind(42).String())
}

func TestValue_Constructors(t *testing.T) {
	t.Parallel()

	inner, err := cdg.ParseStructural([]byte(`{"k":"v"}`))
	require.NoError(t, err)

	value := cdg.ArrayVal(cdg.StringVal("a"), cdg.NumberVal("1"), cdg.BoolVal(false), cdg.NullVal(), cdg.ObjectVal(inner))

	rendered, err := json.Marshal(value)
	require.NoError(t, err)
	assert.Equal(t, `["a",1,false,null,{"k":"v"}]`, string(rendered))

	empty, err := json.Marshal(cdg.ArrayVal())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}
