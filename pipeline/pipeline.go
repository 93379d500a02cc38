package pipeline

import (
	"errors"
	"fmt"

	"github.com/Gobd/reshape"
	"github.com/Gobd/reshape/record"
	"go.uber.org/zap"
)

// ErrInvalidStep is matched by every error New reports for a malformed step.
var ErrInvalidStep = errors.New("invalid step")

// Pipeline is a checked list of steps. It holds no per-run state and may be
// applied to any number of records.
type Pipeline struct {
	steps []compiled
	log   *zap.Logger
}

type compiled struct {
	Step
	args []any
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger steps are reported to. The default discards
// everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// New checks steps and returns a pipeline running them in order.
func New(steps []Step, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	for i, s := range steps {
		args, err := compile(s)
		if err != nil {
			return nil, fmt.Errorf("%w: step %d (%s): %w", ErrInvalidStep, i, s.Op, err)
		}
		p.steps = append(p.steps, compiled{Step: s, args: args})
	}
	return p, nil
}

// compile resolves the arguments of s in the order the operation takes them.
func compile(s Step) ([]any, error) {
	schema, err := reshape.ArgumentSchema(s.Op)
	if err != nil {
		return nil, err
	}
	_, takesProps := schema.Properties["props"]
	if !takesProps && s.Props != nil {
		return nil, errors.New("props given to an operation without arguments")
	}
	if _, ok := schema.Properties["iteratee"]; !ok && s.Iteratee != "" {
		return nil, errors.New("iteratee given to an operation other than map")
	}

	args := make([]any, 0, len(schema.Required))
	for _, name := range schema.Required {
		switch name {
		case "iteratee":
			if s.Iteratee == "" {
				return nil, errors.New("iteratee is required")
			}
			fn, ok := lookupIteratee(s.Iteratee)
			if !ok {
				return nil, fmt.Errorf("iteratee %q is not registered", s.Iteratee)
			}
			args = append(args, fn)
		case "props":
			if s.Props == nil {
				return nil, errors.New("props is required")
			}
			if err := schema.Properties[name].Value.VisitJSON(plain(s.Props)); err != nil {
				return nil, fmt.Errorf("props: %w", err)
			}
			args = append(args, s.Props)
		default:
			return nil, fmt.Errorf("unsupported argument %q", name)
		}
	}
	return args, nil
}

// Steps returns the steps of p.
func (p *Pipeline) Steps() []Step {
	steps := make([]Step, len(p.steps))
	for i, s := range p.steps {
		steps[i] = s.Step
	}
	return steps
}

// Apply runs every step on data, which must be a record or a sequence. It
// stops at the first failing step; the steps before it stay applied.
func (p *Pipeline) Apply(data any) error {
	for i, s := range p.steps {
		p.log.Debug("applying step", zap.Int("step", i), zap.String("op", string(s.Op)))
		if err := reshape.Apply(s.Op, data, s.args...); err != nil {
			p.log.Warn("step failed",
				zap.Int("step", i),
				zap.String("op", string(s.Op)),
				zap.Error(err))
			return fmt.Errorf("step %d (%s): %w", i, s.Op, err)
		}
	}
	return nil
}

// plain converts props into the JSON-like values the argument schemas
// validate. Values holding no data are dropped from mappings.
func plain(v any) any {
	switch v := v.(type) {
	case *record.Record:
		if v == nil {
			return nil
		}
		m := make(map[string]any, v.Len())
		for _, p := range v.Pairs() {
			if p.Value != record.Undefined {
				m[p.Key] = plain(p.Value)
			}
		}
		return m
	case map[string]any:
		return plain(record.FromMap(v))
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return m
	case reshape.Replacement:
		return plain(record.New(
			record.P("property", v.Property),
			record.P("ifEquals", v.IfEquals),
			record.P("replaceWith", v.ReplaceWith),
		))
	case *reshape.Replacement:
		if v == nil {
			return nil
		}
		return plain(*v)
	case []any:
		l := make([]any, len(v))
		for i, e := range v {
			l[i] = plain(e)
		}
		return l
	case []string:
		l := make([]any, len(v))
		for i, e := range v {
			l[i] = e
		}
		return l
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	}
	if v == record.Undefined {
		return nil
	}
	return v
}
