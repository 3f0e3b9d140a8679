package collections

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Dict is a key-unique mapping that remembers insertion order.
//
// Go maps iterate in random order, which makes results of mapping helpers
// hard to print and compare. Dict keeps entries in the order their keys were
// first inserted; overwriting a key updates its value in place.
//
//	d := collections.NewDict[string, int]()
//	d.Set("a", 1)
//	d.Set("b", 2)
//	d.Set("a", 3)
//	d.String() // "{a: 3, b: 2}"
//
// The zero value is not usable; create a Dict with [NewDict], [DictOf] or
// [DictFromMap].
type Dict[K comparable, V any] struct {
	index   map[K]int
	entries []Pair[K, V]
}

// NewDict creates an empty Dict.
func NewDict[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{index: make(map[K]int)}
}

// NewDictCap creates an empty Dict with room for n entries.
func NewDictCap[K comparable, V any](n int) *Dict[K, V] {
	return &Dict[K, V]{
		index:   make(map[K]int, n),
		entries: make([]Pair[K, V], 0, n),
	}
}

// DictOf creates a Dict from key/value pairs, in order.
// When a key repeats, the later value wins.
func DictOf[K comparable, V any](pairs ...Pair[K, V]) *Dict[K, V] {
	d := NewDictCap[K, V](len(pairs))
	for _, p := range pairs {
		d.Set(p.First, p.Second)
	}
	return d
}

// DictFromMap creates a Dict from a Go map with the keys in ascending order.
func DictFromMap[K cmp.Ordered, V any](m map[K]V) *Dict[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	d := NewDictCap[K, V](len(keys))
	for _, k := range keys {
		d.Set(k, m[k])
	}
	return d
}

// Set stores value under key. An existing key keeps its position. The zero
// Dict is ready to use.
func (d *Dict[K, V]) Set(key K, value V) {
	if i, ok := d.index[key]; ok {
		d.entries[i].Second = value
		return
	}
	if d.index == nil {
		d.index = make(map[K]int)
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, Pair[K, V]{First: key, Second: value})
}

// Get returns the value stored under key together with a presence flag.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	i, ok := d.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return d.entries[i].Second, true
}

// Has reports whether key is present.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.index[key]
	return ok
}

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int { return len(d.entries) }

// Keys returns the keys in insertion order.
func (d *Dict[K, V]) Keys() []K {
	out := make([]K, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.First
	}
	return out
}

// Values returns the values in insertion order.
func (d *Dict[K, V]) Values() []V {
	out := make([]V, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Second
	}
	return out
}

// Items returns a copy of the entries in insertion order.
func (d *Dict[K, V]) Items() []Pair[K, V] {
	out := make([]Pair[K, V], len(d.entries))
	copy(out, d.entries)
	return out
}

// Each calls fn(key, value) for every entry in insertion order.
func (d *Dict[K, V]) Each(fn func(K, V)) {
	for _, e := range d.entries {
		fn(e.First, e.Second)
	}
}

// ToMap returns the entries as a plain Go map. Order is lost.
func (d *Dict[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(d.entries))
	for _, e := range d.entries {
		out[e.First] = e.Second
	}
	return out
}

// Clone returns a shallow copy of d.
func (d *Dict[K, V]) Clone() *Dict[K, V] {
	return DictOf(d.entries...)
}

// String renders the dict as "{k1: v1, k2: v2}".
func (d *Dict[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range d.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", e.First, e.Second)
	}
	b.WriteByte('}')
	return b.String()
}
