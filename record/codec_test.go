package record_test

import (
	"encoding/json"
	"testing"

	"github.com/Gobd/reshape/record"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSONKeepsOrder(t *testing.T) {
	in := `{"z":1,"a":{"y":true,"b":null},"m":[1,"x",{"k":"v"}]}`

	var r record.Record
	require.NoError(t, json.Unmarshal([]byte(in), &r))
	assert.Equal(t, []string{"z", "a", "m"}, r.Keys())

	nested, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "b"}, nested.(*record.Record).Keys())

	out, err := json.Marshal(&r)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestJSONOmitsUndefined(t *testing.T) {
	r := record.New(record.P("a", record.Undefined), record.P("b", nil), record.P("c", record.Undefined))
	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"b":null}`, string(out))
}

func TestJSONNestedUndefinedIsNull(t *testing.T) {
	r := record.New(record.P("a", []any{1, record.Undefined, "x"}), record.P("b", record.Undefined))
	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,null,"x"]}`, string(out))
}

func TestJSONSequence(t *testing.T) {
	var seq record.Sequence
	require.NoError(t, json.Unmarshal([]byte(`[{"a":1},{"b":2}]`), &seq))
	require.Len(t, seq, 2)
	assert.Equal(t, []string{"b"}, seq[1].Keys())
}

func TestJSONRejectsNonObject(t *testing.T) {
	var r record.Record
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &r))
}

func TestYAMLKeepsOrder(t *testing.T) {
	in := "z: 1\na:\n    y: true\n    b: null\nm:\n    - x\n"

	var r record.Record
	require.NoError(t, yaml.Unmarshal([]byte(in), &r))

	want := record.New(
		record.P("z", 1),
		record.P("a", record.New(record.P("y", true), record.P("b", nil))),
		record.P("m", []any{"x"}),
	)
	if diff := cmp.Diff(want.Pairs(), r.Pairs()); diff != "" {
		t.Errorf("unexpected record (-want +got):\n%s", diff)
	}

	out, err := yaml.Marshal(&r)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestYAMLOmitsUndefined(t *testing.T) {
	r := record.New(record.P("a", record.Undefined), record.P("b", "x"))
	out, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "b: x\n", string(out))
}

func TestYAMLNestedUndefinedIsNull(t *testing.T) {
	r := record.New(record.P("a", []any{record.Undefined}))
	out, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), "- null")
	assert.NotContains(t, string(out), "{}")
}

func TestYAMLRejectsNonMapping(t *testing.T) {
	var r record.Record
	assert.Error(t, yaml.Unmarshal([]byte("- a\n- b\n"), &r))
}
