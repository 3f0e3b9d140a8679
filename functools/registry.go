package functools

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry errors.
var (
	// ErrOperationNotFound is returned when an unregistered operation name
	// is looked up.
	ErrOperationNotFound = errors.New("functools: operation not found")

	// ErrPredicateNotFound is returned when an unregistered predicate name
	// is looked up.
	ErrPredicateNotFound = errors.New("functools: predicate not found")

	// ErrInvalidArgs is returned by a factory whose arguments have the
	// wrong count or type.
	ErrInvalidArgs = errors.New("functools: invalid arguments")
)

// OperationFactory builds an [Operation] from its arguments, e.g. the
// factory registered as "add" turns (1) into x → x+1.
type OperationFactory func(args ...any) (Operation, error)

// PredicateFactory builds a [Predicate] from its arguments.
type PredicateFactory func(args ...any) (Predicate, error)

// registry is the package-level, goroutine-safe store of named operations
// and predicates. It starts out holding the builtins.
var registry struct {
	mu         sync.RWMutex
	operations map[string]OperationFactory
	predicates map[string]PredicateFactory
}

func init() {
	ResetRegistry()
}

// RegisterOperation adds a named operation factory. An existing entry with
// the same name is replaced. Safe to call from multiple goroutines.
//
//	functools.RegisterOperation("half", func(...any) (functools.Operation, error) {
//	    return func(v any) (any, error) { return v.(int) / 2, nil }, nil
//	})
func RegisterOperation(name string, factory OperationFactory) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.operations[name] = factory
}

// RegisterPredicate adds a named predicate factory, replacing any existing
// entry with the same name.
func RegisterPredicate(name string, factory PredicateFactory) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.predicates[name] = factory
}

// HasOperation reports whether an operation is registered under name.
func HasOperation(name string) bool {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	_, ok := registry.operations[name]
	return ok
}

// HasPredicate reports whether a predicate is registered under name.
func HasPredicate(name string) bool {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	_, ok := registry.predicates[name]
	return ok
}

// LookupOperation builds the operation registered under name with args.
func LookupOperation(name string, args ...any) (Operation, error) {
	registry.mu.RLock()
	factory, ok := registry.operations[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, name)
	}
	op, err := factory(args...)
	if err != nil {
		return nil, fmt.Errorf("operation %q: %w", name, err)
	}
	return op, nil
}

// LookupPredicate builds the predicate registered under name with args.
func LookupPredicate(name string, args ...any) (Predicate, error) {
	registry.mu.RLock()
	factory, ok := registry.predicates[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPredicateNotFound, name)
	}
	pred, err := factory(args...)
	if err != nil {
		return nil, fmt.Errorf("predicate %q: %w", name, err)
	}
	return pred, nil
}

// Operations returns the registered operation names in sorted order.
func Operations() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return sortedKeys(registry.operations)
}

// Predicates returns the registered predicate names in sorted order.
func Predicates() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return sortedKeys(registry.predicates)
}

// ResetRegistry drops every custom registration and restores the builtins.
// Intended for use in tests.
func ResetRegistry() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.operations = builtinOperations()
	registry.predicates = builtinPredicates()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
