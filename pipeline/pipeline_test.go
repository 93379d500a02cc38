package pipeline_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gobd/reshape"
	"github.com/Gobd/reshape/pipeline"
	"github.com/Gobd/reshape/record"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const example = `
steps:
  - op: rename
    props: {b: mammals, c: orange}
  - op: delete
    props: [a]
  - op: map
    iteratee: upperKeys
  - op: capitalizeFirstChar
`

func abc() *record.Record {
	return record.New(record.P("a", 1), record.P("b", "bats"), record.P("c", "color"))
}

func TestParseAndApply(t *testing.T) {
	p, err := pipeline.Parse([]byte(example))
	require.NoError(t, err)
	require.Len(t, p.Steps(), 4)

	data := abc()
	require.NoError(t, p.Apply(data))
	want := []record.Pair{record.P("MAMMALS", "bats"), record.P("ORANGE", "color")}
	if diff := cmp.Diff(want, data.Pairs()); diff != "" {
		t.Errorf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestApplySequence(t *testing.T) {
	p, err := pipeline.Parse([]byte(example))
	require.NoError(t, err)

	data := record.Sequence{abc(), record.New(record.P("b", 2))}
	require.NoError(t, p.Apply(data))
	assert.Equal(t, []string{"MAMMALS", "ORANGE"}, data[0].Keys())
	assert.Equal(t, []string{"MAMMALS"}, data[1].Keys())
}

func TestPropsKeepDocumentOrder(t *testing.T) {
	p, err := pipeline.Parse([]byte(`
steps:
  - op: add
    props:
      z: 1
      y: {b: 1, a: 2}
      x: null
`))
	require.NoError(t, err)

	data := record.New()
	require.NoError(t, p.Apply(data))
	assert.Equal(t, []string{"z", "y", "x"}, data.Keys())

	y, _ := data.Get("y")
	require.IsType(t, &record.Record{}, y)
	assert.Equal(t, []string{"b", "a"}, y.(*record.Record).Keys())
	x, ok := data.Get("x")
	assert.True(t, ok)
	assert.Nil(t, x)
}

func TestReplacementStep(t *testing.T) {
	p, err := pipeline.Parse([]byte(`
steps:
  - op: replaceValueIfEquals
    props:
      property: [a, b]
      ifEquals: bats
      replaceWith: ~
  - op: replaceAllValuesIfEquals
    props:
      ifEquals: color
`))
	require.NoError(t, err)

	data := abc()
	require.NoError(t, p.Apply(data))
	assert.Equal(t, []record.Pair{
		record.P("a", 1),
		record.P("b", nil),
		record.P("c", record.Undefined),
	}, data.Pairs())
}

func TestParseEmpty(t *testing.T) {
	p, err := pipeline.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, p.Steps())
	assert.NoError(t, p.Apply(abc()))
}

func TestInvalidSteps(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{
			name: "unknown op",
			doc:  "steps: [{op: shuffle}]",
			msg:  "step 0 (shuffle)",
		},
		{
			name: "missing props",
			doc:  "steps: [{op: merge}]",
			msg:  "props is required",
		},
		{
			name: "null props",
			doc:  "steps: [{op: merge, props: ~}]",
			msg:  "props is required",
		},
		{
			name: "props of the wrong type",
			doc:  "steps: [{op: capitalizeFirstChar}, {op: merge, props: [a]}]",
			msg:  "step 1 (merge): props",
		},
		{
			name: "rename to a number",
			doc:  "steps: [{op: rename, props: {a: 1}}]",
			msg:  "step 0 (rename): props",
		},
		{
			name: "limitTo with a string",
			doc:  "steps: [{op: limitTo, props: a}]",
			msg:  "step 0 (limitTo): props",
		},
		{
			name: "replacement without property",
			doc:  "steps: [{op: replaceValueIfEquals, props: {ifEquals: 1}}]",
			msg:  "step 0 (replaceValueIfEquals): props",
		},
		{
			name: "map without iteratee",
			doc:  "steps: [{op: map}]",
			msg:  "iteratee is required",
		},
		{
			name: "unregistered iteratee",
			doc:  "steps: [{op: map, iteratee: shout}]",
			msg:  `iteratee "shout" is not registered`,
		},
		{
			name: "iteratee on another op",
			doc:  "steps: [{op: delete, props: a, iteratee: upperKeys}]",
			msg:  "iteratee given to an operation other than map",
		},
		{
			name: "props on a case op",
			doc:  "steps: [{op: deCapitalizeFirstChar, props: {a: b}}]",
			msg:  "props given to an operation without arguments",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pipeline.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, pipeline.ErrInvalidStep)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestUnknownOpMatchesSentinel(t *testing.T) {
	_, err := pipeline.New([]pipeline.Step{{Op: "shuffle"}})
	assert.ErrorIs(t, err, reshape.ErrUnknownOperation)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := pipeline.Parse([]byte("steps: [{op: merge, prop: {a: 1}}]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse pipeline")
	assert.NotErrorIs(t, err, pipeline.ErrInvalidStep)

	_, err = pipeline.Parse([]byte("steps: {"))
	assert.Error(t, err)
}

func TestNewFromGoValues(t *testing.T) {
	p, err := pipeline.New([]pipeline.Step{
		{Op: reshape.OpMerge, Props: map[string]any{"d": 4}},
		{Op: reshape.OpRenameReverse, Props: map[string]string{"alpha": "a"}},
		{Op: reshape.OpLimitTo, Props: []string{"alpha", "d"}},
		{Op: reshape.OpReplaceValueIfEquals, Props: reshape.Replacement{Property: "d", IfEquals: 4, ReplaceWith: "four"}},
	})
	require.NoError(t, err)

	data := abc()
	require.NoError(t, p.Apply(data))
	assert.Equal(t, []record.Pair{record.P("d", "four"), record.P("alpha", 1)}, data.Pairs())
}

func TestApplyStopsOnError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p, err := pipeline.Parse([]byte(example), pipeline.WithLogger(zap.New(core)))
	require.NoError(t, err)

	err = p.Apply("not a record")
	require.Error(t, err)
	assert.ErrorIs(t, err, reshape.ErrDataType)
	assert.True(t, strings.HasPrefix(err.Error(), "step 0 (rename): "))

	assert.Equal(t, 1, logs.FilterMessage("applying step").Len())
	failed := logs.FilterMessage("step failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
	assert.Equal(t, "rename", failed[0].ContextMap()["op"])
}

func TestApplyLogsEachStep(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p, err := pipeline.Parse([]byte(example), pipeline.WithLogger(zap.New(core)))
	require.NoError(t, err)

	require.NoError(t, p.Apply(abc()))
	entries := logs.FilterMessage("applying step").All()
	require.Len(t, entries, 4)
	assert.Equal(t, "capitalizeFirstChar", entries[3].ContextMap()["op"])
	assert.Equal(t, int64(3), entries[3].ContextMap()["step"])
}

func TestWithNilLogger(t *testing.T) {
	p, err := pipeline.Parse([]byte(example), pipeline.WithLogger(nil))
	require.NoError(t, err)
	assert.NoError(t, p.Apply(abc()))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(example), 0o600))

	p, err := pipeline.Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Steps(), 4)

	_, err = pipeline.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
