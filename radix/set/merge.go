package set

import "iter"

// The four set-algebra operations are merge-joins over two ascending
// cursors with one-key lookahead. An exhausted side compares as a fixed
// extreme (see cmpHeads) so every loop terminates by draining whichever
// side the operation still needs.

// peeker adds one-key lookahead to a Cursor so the heads can be compared
// before being consumed.
type peeker struct {
	it   *Cursor
	key  uint
	ok   bool
	full bool
}

func (p *peeker) head() (uint, bool) {
	if !p.full {
		p.key, p.ok = p.it.Next()
		p.full = true
	}
	return p.key, p.ok
}

func (p *peeker) next() (uint, bool) {
	key, ok := p.head()
	p.full = false
	return key, ok
}

// cmpHeads compares the heads of two peekers, substituting short when a is
// exhausted and long when b is exhausted.
func cmpHeads(a, b *peeker, short, long int) int {
	ak, aok := a.head()
	bk, bok := b.head()
	switch {
	case !aok:
		return short
	case !bok:
		return long
	case ak < bk:
		return -1
	case ak > bk:
		return +1
	}
	return 0
}

// Difference iterates, in ascending order, over the keys present in the
// first set but not in the second.
type Difference struct {
	a, b peeker
}

func (t *Set) Difference(other *Set) *Difference {
	return &Difference{peeker{it: t.Iter()}, peeker{it: other.Iter()}}
}

func (d *Difference) Next() (uint, bool) {
	for {
		switch cmpHeads(&d.a, &d.b, -1, -1) {
		case -1:
			return d.a.next()
		case 0:
			d.a.next()
			d.b.next()
		default:
			d.b.next()
		}
	}
}

func (d *Difference) All() iter.Seq[uint] { return seq(d) }

// Collect drains the iterator into a new Set.
func (d *Difference) Collect() *Set { return collect(d) }

// SymmetricDifference iterates, in ascending order, over the keys present
// in exactly one of the two sets.
type SymmetricDifference struct {
	a, b peeker
}

func (t *Set) SymmetricDifference(other *Set) *SymmetricDifference {
	return &SymmetricDifference{peeker{it: t.Iter()}, peeker{it: other.Iter()}}
}

func (d *SymmetricDifference) Next() (uint, bool) {
	for {
		switch cmpHeads(&d.a, &d.b, +1, -1) {
		case -1:
			return d.a.next()
		case 0:
			d.a.next()
			d.b.next()
		default:
			return d.b.next()
		}
	}
}

func (d *SymmetricDifference) All() iter.Seq[uint] { return seq(d) }

// Collect drains the iterator into a new Set.
func (d *SymmetricDifference) Collect() *Set { return collect(d) }

// Intersection iterates, in ascending order, over the keys present in both
// sets.
type Intersection struct {
	a, b peeker
}

func (t *Set) Intersection(other *Set) *Intersection {
	return &Intersection{peeker{it: t.Iter()}, peeker{it: other.Iter()}}
}

func (i *Intersection) Next() (uint, bool) {
	// either side running out ends the iteration
	for {
		ak, aok := i.a.head()
		bk, bok := i.b.head()
		switch {
		case !aok || !bok:
			return 0, false
		case ak < bk:
			i.a.next()
		case ak > bk:
			i.b.next()
		default:
			i.b.next()
			return i.a.next()
		}
	}
}

func (i *Intersection) All() iter.Seq[uint] { return seq(i) }

// Collect drains the iterator into a new Set.
func (i *Intersection) Collect() *Set { return collect(i) }

// Union iterates, in ascending order, over the keys present in either set.
// Keys present in both appear once.
type Union struct {
	a, b peeker
}

func (t *Set) Union(other *Set) *Union {
	return &Union{peeker{it: t.Iter()}, peeker{it: other.Iter()}}
}

func (u *Union) Next() (uint, bool) {
	for {
		switch cmpHeads(&u.a, &u.b, +1, -1) {
		case -1:
			return u.a.next()
		case 0:
			u.b.next()
			return u.a.next()
		default:
			return u.b.next()
		}
	}
}

func (u *Union) All() iter.Seq[uint] { return seq(u) }

// Collect drains the iterator into a new Set.
func (u *Union) Collect() *Set { return collect(u) }

// nexter is any ascending key iterator produced by a Set.
type nexter interface {
	Next() (uint, bool)
}

func seq(it nexter) iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for key, ok := it.Next(); ok; key, ok = it.Next() {
			if !yield(key) {
				return
			}
		}
	}
}

func collect(it nexter) *Set {
	res := NewSet()
	for key, ok := it.Next(); ok; key, ok = it.Next() {
		res.Add(key)
	}
	return res
}
