package scenario

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-functools/collections"
)

// Container builds the scenario's data into the Go value for its Kind.
func (s *Scenario) Container() (any, error) {
	switch s.Kind {
	case KindList:
		return sequence(&s.Data)
	case KindTuple:
		items, err := sequence(&s.Data)
		if err != nil {
			return nil, err
		}
		return collections.TupleFrom(items), nil
	case KindSet:
		items, err := sequence(&s.Data)
		if err != nil {
			return nil, err
		}
		set := make(map[any]struct{}, len(items))
		for i, item := range items {
			if !hashable(item) {
				return nil, fmt.Errorf("line %d: unhashable key %T", s.Data.Content[i].Line, item)
			}
			set[item] = struct{}{}
		}
		return set, nil
	case KindDict:
		return mapping(&s.Data)
	default:
		return nil, fmt.Errorf("unknown kind %q", s.Kind)
	}
}

func sequence(node *yaml.Node) ([]any, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: data must be a sequence", node.Line)
	}
	items := make([]any, len(node.Content))
	for i, n := range node.Content {
		if err := n.Decode(&items[i]); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
	}
	return items, nil
}

// mapping walks the node pairwise so entries keep their file order.
func mapping(node *yaml.Node) (*collections.Dict[any, any], error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: data must be a mapping", node.Line)
	}
	d := collections.NewDictCap[any, any](len(node.Content) / 2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var k, v any
		if err := node.Content[i].Decode(&k); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Content[i].Line, err)
		}
		if !hashable(k) {
			return nil, fmt.Errorf("line %d: unhashable key %T", node.Content[i].Line, k)
		}
		if err := node.Content[i+1].Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Content[i+1].Line, err)
		}
		d.Set(k, v)
	}
	return d, nil
}

// hashable reports whether v can be used as a map key. Decoded YAML
// sequences and mappings cannot.
func hashable(v any) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}
