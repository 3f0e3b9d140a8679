package scenario

import (
	"errors"
	"strings"

	"github.com/hasbyte1/go-functools/functools"
)

// Outcome is the result of running one scenario.
type Outcome struct {
	Name string `json:"name"`
	Call Call   `json:"call"`
	// Output is the display form of the helper's result: the value, or the
	// failure message.
	Output string `json:"output"`
	OK     bool   `json:"ok"`
	// ErrorKind is the functools error kind, empty on success or when the
	// scenario could not be set up.
	ErrorKind string `json:"error_kind,omitempty"`
	Err       error  `json:"-"`
}

// Run executes s.
func Run(s Scenario) Outcome {
	out := Outcome{Name: s.Name, Call: s.Call}
	res, err := call(&s)
	if err != nil {
		out.Output = err.Error()
		out.Err = err
		return out
	}
	out.Output = res.String()
	out.OK = res.IsOk()
	if out.Err = res.Err(); out.Err != nil {
		var ferr *functools.Error
		if errors.As(out.Err, &ferr) {
			out.ErrorKind = ferr.Kind.String()
		}
	}
	return out
}

// RunAll executes every scenario of suite whose name contains only
// (case-insensitive). An empty only runs everything.
func RunAll(suite *Suite, only string) []Outcome {
	only = strings.ToLower(only)
	outcomes := make([]Outcome, 0, len(suite.Scenarios))
	for _, s := range suite.Scenarios {
		if only != "" && !strings.Contains(strings.ToLower(s.Name), only) {
			continue
		}
		outcomes = append(outcomes, Run(s))
	}
	return outcomes
}

// call resolves the scenario's functions and data and invokes the helper.
// A returned error means the scenario itself is broken.
func call(s *Scenario) (functools.Result[any], error) {
	if err := s.validate(); err != nil {
		return functools.Result[any]{}, err
	}
	switch s.Call {
	case CallCombine:
		opts := []functools.CombineOption{functools.WithSeparator(s.Separator)}
		if s.Initial != nil {
			opts = append(opts, functools.WithInitial(s.Initial))
		}
		return functools.Combine(s.Values, opts...), nil
	case CallProcess:
		op, err := functools.LookupOperation(s.Op.Name, s.Op.Args...)
		if err != nil {
			return functools.Result[any]{}, err
		}
		data, err := s.Container()
		if err != nil {
			return functools.Result[any]{}, err
		}
		return functools.Process(data, op, functools.Target(s.Target)), nil
	case CallFilter:
		pred, err := functools.LookupPredicate(s.Predicate.Name, s.Predicate.Args...)
		if err != nil {
			return functools.Result[any]{}, err
		}
		data, err := s.Container()
		if err != nil {
			return functools.Result[any]{}, err
		}
		return functools.Filter(data, pred), nil
	default:
		return functools.Result[any]{}, errors.New("unknown call " + string(s.Call))
	}
}
