package collection

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/hydronet/fluid"
)

// checkMembers rejects empty slices and nil entries, including nil pointers
// of the package's own collection types and of *fluid.Tracked. Nil pointers
// of other component types are not detected.
func checkMembers[T any](ms []T) error {
	if len(ms) == 0 {
		return ErrNoMembers
	}
	for i, m := range ms {
		if isNil(m) {
			return fmt.Errorf("%w: index %d", ErrNilMember, i)
		}
	}
	return nil
}

func isNil(m any) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *Series:
		return v == nil
	case *Parallel:
		return v == nil
	case *Super:
		return v == nil
	case *fluid.Tracked:
		return v == nil
	}
	return false
}

// checkIndex rejects i outside [0, n).
func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}
	return nil
}

// The helpers below always return a fresh slice: a member slice already
// handed out is never written to, so a built tree can be read concurrently.

func withAdded[T any](ms []T, m T) ([]T, error) {
	next := append(slices.Clone(ms), m)
	if err := checkMembers(next); err != nil {
		return nil, err
	}
	return next, nil
}

func withRemoved[T any](ms []T, i int) ([]T, error) {
	if err := checkIndex(i, len(ms)); err != nil {
		return nil, err
	}
	next := slices.Delete(slices.Clone(ms), i, i+1)
	if len(next) == 0 {
		return nil, ErrNoMembers
	}
	return next, nil
}

func withReplaced[T any](ms []T, i int, m T) ([]T, error) {
	if err := checkIndex(i, len(ms)); err != nil {
		return nil, err
	}
	next := slices.Clone(ms)
	next[i] = m
	if err := checkMembers(next); err != nil {
		return nil, err
	}
	return next, nil
}

// memberSet is the member list shared by every collection type. Mutators
// swap in a new slice; they are not safe to call while the collection is
// being solved from another goroutine.
type memberSet[T any] struct {
	items []T
}

func newMemberSet[T any](ms []T) (memberSet[T], error) {
	if err := checkMembers(ms); err != nil {
		return memberSet[T]{}, err
	}
	return memberSet[T]{items: slices.Clone(ms)}, nil
}

// Len returns the number of direct members.
func (s *memberSet[T]) Len() int {
	return len(s.items)
}

// At returns the member at index i.
func (s *memberSet[T]) At(i int) (T, error) {
	if err := checkIndex(i, len(s.items)); err != nil {
		var zero T
		return zero, err
	}
	return s.items[i], nil
}

// Members returns a copy of the member slice.
func (s *memberSet[T]) Members() []T {
	return slices.Clone(s.items)
}

// SetMembers replaces all members at once.
func (s *memberSet[T]) SetMembers(ms []T) error {
	if err := checkMembers(ms); err != nil {
		return err
	}
	s.items = slices.Clone(ms)
	return nil
}

// Add appends a member.
func (s *memberSet[T]) Add(m T) error {
	next, err := withAdded(s.items, m)
	if err != nil {
		return err
	}
	s.items = next
	return nil
}

// Remove drops the member at index i. Removing the last member fails with
// ErrNoMembers.
func (s *memberSet[T]) Remove(i int) error {
	next, err := withRemoved(s.items, i)
	if err != nil {
		return err
	}
	s.items = next
	return nil
}

// Replace swaps the member at index i.
func (s *memberSet[T]) Replace(i int, m T) error {
	next, err := withReplaced(s.items, i, m)
	if err != nil {
		return err
	}
	s.items = next
	return nil
}
