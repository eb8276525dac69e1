// Package spantable provides a claim table over a bounded stretch of the
// real line: named spans carrying label sets are claimed inside a fixed
// universe interval and rejected when they collide with an existing claim.
// Free space is derived as the complement of the claimed set within the
// universe.
package spantable

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"k8s.io/apimachinery/pkg/labels"

	"github.com/brunolnetto/interval-sets/pkg/interval"
	"github.com/brunolnetto/interval-sets/pkg/intervalset"
)

// Entry is one claimed span.
type Entry struct {
	Name   string
	Span   interval.Interval
	Labels labels.Set
}

type Table interface {
	Claim(name string, span interval.Interval, lbls labels.Set) error
	ClaimSize(name string, size float64, lbls labels.Set) (interval.Interval, error)
	Release(name string) error
	Get(name string) (Entry, error)
	Has(name string) bool
	Find(x float64) (Entry, bool)
	Count() int
	Universe() interval.Interval
	Claimed() intervalset.Set
	Free() intervalset.Set
	List(selector labels.Selector) []Entry
}

// New returns an empty table over the given universe, which must be a
// non-empty bounded interval.
func New(universe interval.Interval) (Table, error) {
	if universe.IsEmpty() {
		return nil, fmt.Errorf("universe must not be empty")
	}
	if !universe.IsBounded() {
		return nil, fmt.Errorf("universe %s must be bounded", universe)
	}
	return &table{
		m:        new(sync.RWMutex),
		universe: universe,
		entries:  map[string]Entry{},
	}, nil
}

type table struct {
	m        *sync.RWMutex
	universe interval.Interval
	entries  map[string]Entry
}

func (r *table) Claim(name string, span interval.Interval, lbls labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.claim(name, span, lbls)
}

func (r *table) claim(name string, span interval.Interval, lbls labels.Set) error {
	if span.IsEmpty() {
		return fmt.Errorf("cannot claim an empty span")
	}
	if !r.universe.ContainsInterval(span) {
		return fmt.Errorf("span %s is outside the universe %s", span, r.universe)
	}
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("entry %q already exists", name)
	}
	for _, e := range r.entries {
		if e.Span.Overlaps(span) {
			return fmt.Errorf("span %s overlaps existing claim %q at %s", span, e.Name, e.Span)
		}
	}
	r.entries[name] = Entry{Name: name, Span: span, Labels: lbls}
	return nil
}

// ClaimSize claims the first free gap that fits size, first-fit in
// ascending order. The claimed span is half-open at its upper end so a
// later claim can start where this one stops.
func (r *table) ClaimSize(name string, size float64, lbls labels.Set) (interval.Interval, error) {
	r.m.Lock()
	defer r.m.Unlock()

	if math.IsNaN(size) || size <= 0 {
		return interval.Empty(), fmt.Errorf("size %v must be positive", size)
	}
	for _, gap := range r.free().Intervals() {
		if gap.Length() < size {
			continue
		}
		span := interval.Make(gap.Start(), gap.Start()+size, gap.OpenStart(), true)
		if !gap.ContainsInterval(span) {
			continue
		}
		if err := r.claim(name, span, lbls); err != nil {
			return interval.Empty(), err
		}
		return span, nil
	}
	return interval.Empty(), fmt.Errorf("no free gap of size %v", size)
}

func (r *table) Release(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.entries[name]; !ok {
		return fmt.Errorf("entry %q not found", name)
	}
	delete(r.entries, name)
	return nil
}

func (r *table) Get(name string) (Entry, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("entry %q not found", name)
	}
	return e, nil
}

func (r *table) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.entries[name]
	return ok
}

// Find returns the entry whose span contains x, if any.
func (r *table) Find(x float64) (Entry, bool) {
	r.m.RLock()
	defer r.m.RUnlock()

	for _, e := range r.entries {
		if e.Span.Contains(x) {
			return e, true
		}
	}
	return Entry{}, false
}

func (r *table) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *table) Universe() interval.Interval {
	return r.universe
}

// Claimed returns the normalized set of all claimed spans.
func (r *table) Claimed() intervalset.Set {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.claimed()
}

func (r *table) claimed() intervalset.Set {
	spans := make([]interval.Interval, 0, len(r.entries))
	for _, e := range r.entries {
		spans = append(spans, e.Span)
	}
	return intervalset.New(spans...)
}

// Free returns the unclaimed remainder of the universe.
func (r *table) Free() intervalset.Set {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.free()
}

func (r *table) free() intervalset.Set {
	return r.claimed().Complement(r.universe)
}

// List returns the entries matching the selector, ordered by span then
// name.
func (r *table) List(selector labels.Selector) []Entry {
	r.m.RLock()
	defer r.m.RUnlock()

	var out []Entry
	for _, e := range r.entries {
		if selector == nil || selector.Matches(e.Labels) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Span.Compare(out[j].Span); c != 0 {
			return c == -1
		}
		return out[i].Name < out[j].Name
	})
	return out
}
