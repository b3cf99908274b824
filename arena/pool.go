package arena

import "fmt"

// Ref is a handle to a record within a Pool. The zero Ref is Nil.
type Ref uint32

// Nil is the reserved null handle.
const Nil Ref = 0

// DefaultPageSize is the number of records per page if not configured otherwise.
const DefaultPageSize = 256

// Pool is a paged slab of records of type T.
//
// A Pool created by
//
//	Pool[T]{}
//
// is valid and uses DefaultPageSize.
type Pool[T any] struct {
	pageSize int
	shift    uint
	pages    [][]T
	next     Ref   // next never-used handle
	free     []Ref // recycled handles
	live     int
}

// NewPool creates a pool with a given page size, which must be a power of two.
func NewPool[T any](pageSize int) (*Pool[T], error) {
	p := &Pool[T]{}
	if err := p.SetPageSize(pageSize); err != nil {
		return nil, err
	}
	return p, nil
}

// SetPageSize configures the page size of a pool which has not yet been used.
func (p *Pool[T]) SetPageSize(pageSize int) error {
	if pageSize <= 0 || pageSize&(pageSize-1) != 0 || pageSize > 1<<16 {
		return fmt.Errorf("arena: page size %d is not a power of two in [1, 65536]", pageSize)
	}
	if len(p.pages) > 0 {
		return fmt.Errorf("arena: cannot change page size of a pool in use")
	}
	p.pageSize = pageSize
	p.shift = 0
	for 1<<p.shift < pageSize {
		p.shift++
	}
	return nil
}

func (p *Pool[T]) init() {
	if p.pageSize == 0 {
		_ = p.SetPageSize(DefaultPageSize)
	}
	if p.next == Nil {
		p.next = 1
	}
}

// Alloc returns a handle to a zeroed record together with a pointer to it.
// The pointer stays valid until the record is freed.
func (p *Pool[T]) Alloc() (Ref, *T) {
	p.init()
	var ref Ref
	if n := len(p.free); n > 0 {
		ref = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		ref = p.next
		if int(ref>>p.shift) >= len(p.pages) {
			p.pages = append(p.pages, make([]T, p.pageSize))
		}
		p.next++
	}
	p.live++
	rec := p.at(ref)
	var zero T
	*rec = zero
	return ref, rec
}

// Free returns a record to the pool. Freeing Nil is a no-op.
func (p *Pool[T]) Free(ref Ref) {
	if ref == Nil {
		return
	}
	if ref >= p.next {
		panic(fmt.Sprintf("arena: free of unallocated handle %d", ref))
	}
	var zero T
	*p.at(ref) = zero
	p.free = append(p.free, ref)
	p.live--
}

// At returns a pointer to the record addressed by ref.
// Dereferencing Nil or an out-of-range handle panics.
func (p *Pool[T]) At(ref Ref) *T {
	if ref == Nil || ref >= p.next {
		panic(fmt.Sprintf("arena: invalid handle %d", ref))
	}
	return p.at(ref)
}

func (p *Pool[T]) at(ref Ref) *T {
	return &p.pages[ref>>p.shift][int(ref)&(p.pageSize-1)]
}

// Len returns the number of live records.
func (p *Pool[T]) Len() int {
	return p.live
}

// Cap returns the number of records the pool can hold without allocating a new page.
func (p *Pool[T]) Cap() int {
	return len(p.pages) * p.pageSize
}

// PageSize returns the configured page size.
func (p *Pool[T]) PageSize() int {
	p.init()
	return p.pageSize
}

// Reset drops all records and pages. The page size is kept.
func (p *Pool[T]) Reset() {
	p.pages = nil
	p.free = nil
	p.next = 1
	p.live = 0
}

// Clone returns a copy of the pool. Records are copied by value, handles
// remain valid in the copy.
func (p *Pool[T]) Clone() *Pool[T] {
	c := &Pool[T]{
		pageSize: p.pageSize,
		shift:    p.shift,
		next:     p.next,
		live:     p.live,
	}
	if len(p.free) > 0 {
		c.free = append([]Ref(nil), p.free...)
	}
	c.pages = make([][]T, len(p.pages))
	for i, page := range p.pages {
		c.pages[i] = append([]T(nil), page...)
	}
	return c
}
