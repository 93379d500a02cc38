package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Gobd/reshape"
	"github.com/Gobd/reshape/record"
	"gopkg.in/yaml.v3"
)

// Step is one operation of a pipeline.
type Step struct {
	Op reshape.Op
	// Props is the argument of every op except map and the case ops. YAML
	// mappings are decoded as *record.Record.
	Props any
	// Iteratee names a registered iteratee. Only map steps use it.
	Iteratee string
}

type document struct {
	Steps []stepNode `yaml:"steps"`
}

type stepNode struct {
	Op       string    `yaml:"op"`
	Props    yaml.Node `yaml:"props"`
	Iteratee string    `yaml:"iteratee"`
}

// Load reads the pipeline stored in the YAML file at path.
func Load(path string, opts ...Option) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline: %w", err)
	}
	return Parse(data, opts...)
}

// Parse builds a pipeline from a YAML document. An empty document holds no
// steps.
func Parse(b []byte, opts ...Option) (*Pipeline, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse pipeline: %w", err)
	}

	steps := make([]Step, 0, len(doc.Steps))
	for i, n := range doc.Steps {
		s := Step{Op: reshape.Op(n.Op), Iteratee: n.Iteratee}
		if !n.Props.IsZero() {
			props, err := record.DecodeNode(&n.Props)
			if err != nil {
				return nil, fmt.Errorf("parse pipeline: step %d: %w", i, err)
			}
			s.Props = props
		}
		steps = append(steps, s)
	}
	return New(steps, opts...)
}
