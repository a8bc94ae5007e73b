// Package selectable provides an ordered list with an optional cursor and
// one-shot claiming of its entries.
package selectable

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Claim when the index does not address an
// entry of the list.
var ErrIndexOutOfRange = errors.New("index out of range")

const noCursor = -1

// Claimable is satisfied by entries that carry a claimed flag. WithClaimed
// returns a copy of the entry with the flag set.
type Claimable[T any] interface {
	Claimed() bool
	WithClaimed() T
}

// List is an ordered sequence with an optional cursor. The cursor is either
// unset or a valid index; it is always unset while the list is empty.
type List[T Claimable[T]] struct {
	items  []T
	cursor int
}

// New creates a list holding a copy of items. The cursor starts unset.
func New[T Claimable[T]](items []T) *List[T] {
	l := &List[T]{cursor: noCursor}
	if len(items) > 0 {
		l.items = make([]T, len(items))
		copy(l.items, items)
	}
	return l
}

// Len returns the number of entries.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Items returns a copy of the entries in order.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// At returns the entry at index i.
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Cursor returns the current cursor and whether one is set.
func (l *List[T]) Cursor() (int, bool) {
	if l.cursor == noCursor {
		return 0, false
	}
	return l.cursor, true
}

// Next moves the cursor forward, wrapping from the last entry to the first.
// Without a cursor it selects the first entry.
func (l *List[T]) Next() {
	if len(l.items) == 0 {
		return
	}
	if l.cursor == noCursor {
		l.cursor = 0
		return
	}
	l.cursor = (l.cursor + 1) % len(l.items)
}

// Prev moves the cursor backward, wrapping from the first entry to the last.
// Without a cursor it selects the first entry, same as Next.
func (l *List[T]) Prev() {
	if len(l.items) == 0 {
		return
	}
	if l.cursor == noCursor {
		l.cursor = 0
		return
	}
	l.cursor = (l.cursor - 1 + len(l.items)) % len(l.items)
}

// Unselect clears the cursor.
func (l *List[T]) Unselect() {
	l.cursor = noCursor
}

// Push appends an entry. The cursor is left untouched.
func (l *List[T]) Push(item T) {
	l.items = append(l.items, item)
}

// Claim marks the entry at index i as claimed and returns a copy of it.
// An entry that was already claimed yields ok == false and no error, so an
// entry can be claimed successfully at most once.
func (l *List[T]) Claim(i int) (item T, ok bool, err error) {
	if i < 0 || i >= len(l.items) {
		return item, false, fmt.Errorf("claim %d of %d entries: %w", i, len(l.items), ErrIndexOutOfRange)
	}
	if l.items[i].Claimed() {
		return item, false, nil
	}
	l.items[i] = l.items[i].WithClaimed()
	return l.items[i], true, nil
}
