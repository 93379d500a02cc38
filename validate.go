package reshape

import (
	"fmt"

	"github.com/Gobd/reshape/record"
	"github.com/Gobd/reshape/transform"
	"github.com/getkin/kin-openapi/openapi3"
)

// Operation names accepted by [Apply].
const (
	OpMap                      Op = "map"
	OpMerge                    Op = "merge"
	OpAdd                      Op = "add"
	OpDelete                   Op = "delete"
	OpRename                   Op = "rename"
	OpRenameReverse            Op = "renameReverse"
	OpLimitTo                  Op = "limitTo"
	OpReplaceValueIfEquals     Op = "replaceValueIfEquals"
	OpReplaceAllValuesIfEquals Op = "replaceAllValuesIfEquals"
	OpCapitalizeFirstChar      Op = "capitalizeFirstChar"
	OpDeCapitalizeFirstChar    Op = "deCapitalizeFirstChar"
)

type argument struct {
	name string
	rule argRule
}

// operation binds the argument rules of an op to its per-record edit.
// run receives arguments that already passed their rules.
type operation struct {
	args []argument
	run  func(t target, args []any)
}

var opOrder = []Op{
	OpMap, OpMerge, OpAdd, OpDelete, OpRename, OpRenameReverse, OpLimitTo,
	OpReplaceValueIfEquals, OpReplaceAllValuesIfEquals,
	OpCapitalizeFirstChar, OpDeCapitalizeFirstChar,
}

var (
	propsRecord = argument{"props", recordRule{desc: "entries to set"}}
	propsRename = argument{"props", recordRule{
		values:      isString,
		valueSchema: openapi3.NewStringSchema,
		desc:        "pairs of key names",
	}}
)

var operations = map[Op]operation{
	OpMap: {
		args: []argument{{"iteratee", iterateeRule{}}},
		run: func(t target, args []any) {
			fn, _ := asIteratee(args[0])
			t.apply(func(r *record.Record) { transform.Map(r, fn) })
		},
	},
	OpMerge: {
		args: []argument{propsRecord},
		run:  mergeRun(true),
	},
	OpAdd: {
		args: []argument{propsRecord},
		run:  mergeRun(false),
	},
	OpDelete: {
		args: []argument{{"props", keysRule{allowString: true, desc: "keys to delete"}}},
		run: func(t target, args []any) {
			keys := asKeys(args[0])
			t.apply(func(r *record.Record) { transform.Delete(r, keys...) })
		},
	},
	OpRename: {
		args: []argument{propsRename},
		run:  renameRun(transform.Forward),
	},
	OpRenameReverse: {
		args: []argument{propsRename},
		run:  renameRun(transform.Reverse),
	},
	OpLimitTo: {
		args: []argument{{"props", keysRule{desc: "keys to keep"}}},
		run: func(t target, args []any) {
			keys := asKeys(args[0])
			t.apply(func(r *record.Record) { transform.LimitTo(r, keys) })
		},
	},
	OpReplaceValueIfEquals: {
		args: []argument{{"props", replacementRule{withProperty: true}}},
		run: func(t target, args []any) {
			rep, _ := asReplacement(args[0])
			keys := asKeys(rep.Property)
			t.apply(func(r *record.Record) {
				transform.ReplaceValueIfEquals(r, keys, rep.IfEquals, rep.ReplaceWith)
			})
		},
	},
	OpReplaceAllValuesIfEquals: {
		args: []argument{{"props", replacementRule{}}},
		run: func(t target, args []any) {
			rep, _ := asReplacement(args[0])
			t.apply(func(r *record.Record) {
				transform.ReplaceAllValuesIfEquals(r, rep.IfEquals, rep.ReplaceWith)
			})
		},
	},
	OpCapitalizeFirstChar: {
		run: caseRun(transform.Upper),
	},
	OpDeCapitalizeFirstChar: {
		run: caseRun(transform.Lower),
	},
}

func mergeRun(overwrite bool) func(target, []any) {
	return func(t target, args []any) {
		props, _ := asRecord(args[0])
		t.apply(func(r *record.Record) { transform.Merge(r, props, overwrite) })
	}
}

func renameRun(dir transform.Direction) func(target, []any) {
	return func(t target, args []any) {
		props, _ := asRecord(args[0])
		pairs := props.Pairs()
		t.apply(func(r *record.Record) { transform.Rename(r, pairs, dir) })
	}
}

func caseRun(c transform.Case) func(target, []any) {
	return func(t target, _ []any) {
		t.apply(func(r *record.Record) { transform.ChangeFirstCharCase(r, c) })
	}
}

// Ops lists every operation name in a stable order.
func Ops() []Op {
	return append([]Op(nil), opOrder...)
}

// Apply runs the operation named op on data. args holds the operation's
// argument, if it takes one: Apply(OpMerge, data, props) is Merge(data, props).
func Apply(op Op, data any, args ...any) error {
	o, ok := operations[op]
	if !ok {
		return newUnknownOperationError(op)
	}
	t, err := resolve(op, data)
	if err != nil {
		return err
	}
	if len(args) != len(o.args) {
		return newArgumentTypeError(op, "args", fmt.Sprintf("%d argument(s)", len(o.args)), nil)
	}
	for i, a := range o.args {
		if err := a.rule.Validate(args[i]); err != nil {
			if isPropertyError(err) {
				return newPropertyArgumentError(op, err)
			}
			return newArgumentTypeError(op, a.name, a.rule.expected(), err)
		}
	}
	o.run(t, args)
	return nil
}
