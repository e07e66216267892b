package dcel

import "fmt"

// arena keeps records behind stable indices. Freed slots are reused.
type arena[T any] struct {
	items []*T
	free  []int32
	size  int
}

func (a *arena[T]) alloc() (int32, *T) {
	rec := new(T)
	a.size++
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		a.items[i] = rec
		return i, rec
	}
	a.items = append(a.items, rec)
	return int32(len(a.items) - 1), rec
}

func (a *arena[T]) release(i int32) {
	a.get(i)
	a.items[i] = nil
	a.free = append(a.free, i)
	a.size--
}

func (a *arena[T]) get(i int32) *T {
	if i < 0 || int(i) >= len(a.items) || a.items[i] == nil {
		panic(fmt.Sprintf("dcel: access to a dead record %d", i))
	}
	return a.items[i]
}

func (a *arena[T]) alive(i int32) bool {
	return i >= 0 && int(i) < len(a.items) && a.items[i] != nil
}

func (a *arena[T]) ids() []int32 {
	out := make([]int32, 0, a.size)
	for i, rec := range a.items {
		if rec != nil {
			out = append(out, int32(i))
		}
	}
	return out
}

func (a *arena[T]) reset() {
	a.items = nil
	a.free = nil
	a.size = 0
}

// clone copies the arena keeping every index in place.
func (a *arena[T]) clone(copyRec func(*T) *T) arena[T] {
	out := arena[T]{
		items: make([]*T, len(a.items)),
		free:  append([]int32(nil), a.free...),
		size:  a.size,
	}
	for i, rec := range a.items {
		if rec != nil {
			out.items[i] = copyRec(rec)
		}
	}
	return out
}
