package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario is returned by [Load] when a scenario is malformed.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

//go:embed default.yaml
var defaultSuite []byte

// Call names the helper a scenario invokes.
type Call string

const (
	CallProcess Call = "process"
	CallFilter  Call = "filter"
	CallCombine Call = "combine"
)

// Kind names the container a scenario's data is built into.
type Kind string

const (
	KindList  Kind = "list"
	KindTuple Kind = "tuple"
	KindDict  Kind = "dict"
	// KindSet builds a map[any]struct{}, which the helpers reject.
	KindSet Kind = "set"
)

// Func references a registered operation or predicate. In YAML it is either
// a bare name ("upper") or a mapping with name and args.
type Func struct {
	Name string `yaml:"name"`
	Args []any  `yaml:"args"`
}

// UnmarshalYAML accepts the scalar shorthand.
func (f *Func) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Name = node.Value
		return nil
	}
	type plain Func
	return node.Decode((*plain)(f))
}

// Scenario is one helper call.
type Scenario struct {
	Name string `yaml:"name"`
	Call Call   `yaml:"call"`

	// process and filter
	Kind      Kind      `yaml:"kind"`
	Data      yaml.Node `yaml:"data"`
	Op        *Func     `yaml:"op"`
	Predicate *Func     `yaml:"predicate"`
	Target    string    `yaml:"target"`

	// combine
	Values    []any  `yaml:"values"`
	Separator string `yaml:"separator"`
	Initial   any    `yaml:"initial"`
}

// Suite is the top-level document of a scenario file.
type Suite struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load decodes and validates a suite.
func Load(r io.Reader) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	for i := range s.Scenarios {
		if err := s.Scenarios[i].validate(); err != nil {
			return nil, fmt.Errorf("%w: #%d %q: %v", ErrInvalidScenario, i+1, s.Scenarios[i].Name, err)
		}
	}
	return &s, nil
}

// LoadFile reads a suite from path.
func LoadFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in demonstration suite.
func Default() *Suite {
	s, err := Load(bytes.NewReader(defaultSuite))
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	switch s.Call {
	case CallProcess:
		if s.Op == nil || s.Op.Name == "" {
			return errors.New("process needs an op")
		}
	case CallFilter:
		if s.Predicate == nil || s.Predicate.Name == "" {
			return errors.New("filter needs a predicate")
		}
	case CallCombine:
		return nil
	default:
		return fmt.Errorf("unknown call %q (want process, filter or combine)", s.Call)
	}
	switch s.Kind {
	case KindList, KindTuple, KindDict, KindSet:
	default:
		return fmt.Errorf("unknown kind %q (want list, tuple, dict or set)", s.Kind)
	}
	if s.Data.Kind == 0 {
		return errors.New("data is required")
	}
	return nil
}
