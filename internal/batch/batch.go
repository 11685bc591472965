// Package batch evaluates vector operations listed in a YAML file.
package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/govec/pkg/geometry"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Operation kinds
const (
	OpAdd         = "add"
	OpSub         = "sub"
	OpDot         = "dot"
	OpCross       = "cross"
	OpNorm        = "norm"
	OpPolar       = "polar"
	OpHomogeneous = "homogeneous"
)

// File is the content of a batch file
type File struct {
	Operations []Operation `yaml:"operations"`
}

// Operation is a single computation. A and B hold Cartesian components,
// R and Theta the polar form.
type Operation struct {
	Name  string    `yaml:"name"`
	Op    string    `yaml:"op"`
	A     []float64 `yaml:"a,omitempty"`
	B     []float64 `yaml:"b,omitempty"`
	R     *float64  `yaml:"r,omitempty"`
	Theta *float64  `yaml:"theta,omitempty"`
}

// Result of one operation. Exactly one of Vector, Scalar and Err is set.
type Result struct {
	Name   string
	Op     string
	Vector geometry.Vector
	Scalar *float64
	Err    error
}

// Load reads and parses a batch file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a batch file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}

	for i := range f.Operations {
		op := &f.Operations[i]
		if op.Name == "" {
			op.Name = fmt.Sprintf("op%d", i+1)
		}
		if err := op.Validate(); err != nil {
			return nil, fmt.Errorf("operation %q: %w", op.Name, err)
		}
	}
	return &f, nil
}

// Validate checks that the operands required by Op are present
func (o Operation) Validate() error {
	switch o.Op {
	case OpAdd, OpSub, OpDot, OpCross:
		if o.A == nil || o.B == nil {
			return fmt.Errorf("%s needs operands a and b", o.Op)
		}
	case OpNorm, OpHomogeneous:
		if o.A == nil {
			return fmt.Errorf("%s needs operand a", o.Op)
		}
	case OpPolar:
		if o.R == nil || o.Theta == nil {
			return fmt.Errorf("%s needs r and theta", o.Op)
		}
	case "":
		return errors.New("missing op")
	default:
		return fmt.Errorf("unknown op %q", o.Op)
	}
	return nil
}

// Evaluator runs operations and logs their outcome
type Evaluator struct {
	logger *zap.Logger
}

// NewEvaluator creates an evaluator. A nil logger disables logging.
func NewEvaluator(logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{logger: logger}
}

// Evaluate runs every operation of f in order. A failing operation does not
// stop the remaining ones.
func (e *Evaluator) Evaluate(f *File) []Result {
	results := make([]Result, 0, len(f.Operations))
	failed := 0
	for _, op := range f.Operations {
		r := e.Run(op)
		if r.Err != nil {
			failed++
		}
		results = append(results, r)
	}
	e.logger.Info("batch evaluated",
		zap.Int("operations", len(results)),
		zap.Int("failed", failed))
	return results
}

// Run evaluates a single operation
func (e *Evaluator) Run(op Operation) Result {
	r := Result{Name: op.Name, Op: op.Op}
	if err := op.Validate(); err != nil {
		r.Err = err
		return r
	}

	a := geometry.NewVectorN(op.A...)
	b := geometry.NewVectorN(op.B...)

	switch op.Op {
	case OpAdd:
		r.setVector(a.Add(b))
	case OpSub:
		r.setVector(a.Sub(b))
	case OpCross:
		r.setVector(a.Cross(b))
	case OpDot:
		r.setScalar(a.Dot(b))
	case OpNorm:
		r.setScalar(a.Norm(), nil)
	case OpPolar:
		r.Vector = geometry.NewPolar(*op.R, *op.Theta).ToCartesian()
	case OpHomogeneous:
		r.setVector(geometry.NewHomogeneous(op.A...).ToCartesian())
	}

	if r.Err != nil {
		e.logger.Debug("operation failed",
			zap.String("name", op.Name),
			zap.String("op", op.Op),
			zap.Error(r.Err))
	}
	return r
}

func (r *Result) setVector(v geometry.VectorN, err error) {
	if err != nil {
		r.Err = err
		return
	}
	r.Vector = v
}

func (r *Result) setScalar(s float64, err error) {
	if err != nil {
		r.Err = err
		return
	}
	r.Scalar = &s
}
