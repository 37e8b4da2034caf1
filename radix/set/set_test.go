package set

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectCursor(c *Cursor) []uint {
	var keys []uint
	for key, ok := c.Next(); ok; key, ok = c.Next() {
		keys = append(keys, key)
	}
	return keys
}

func TestNewSet(t *testing.T) {
	t.Parallel()

	s := NewSet()

	require.NotNil(t, s)
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Len())
}

func TestAdd_Del_Has(t *testing.T) {
	t.Parallel()

	s := NewSet()

	assert.True(t, s.Add(2))
	assert.False(t, s.Add(2))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has(2))

	assert.True(t, s.Del(2))
	assert.False(t, s.Del(2))
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(2))
	assert.True(t, s.Empty())
}

func TestNewSet_Dups(t *testing.T) {
	t.Parallel()

	s := NewSet(6, 28, 6)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []uint{6, 28}, s.Keys())
}

func TestOrder(t *testing.T) {
	t.Parallel()

	s := NewSet(3, 2, 1, 2, math.MaxUint, 0, 1<<20)

	assert.Equal(t, []uint{0, 1, 2, 3, 1 << 20, math.MaxUint}, s.Keys())
	assert.Equal(t, []uint{0, 1, 2, 3, 1 << 20, math.MaxUint}, collectCursor(s.Iter()))
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := NewSet(1, 2, 3)
	s.Clear()

	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Len())

	s.Add(7)
	assert.Equal(t, []uint{7}, s.Keys())
}

func TestEachReverse(t *testing.T) {
	t.Parallel()

	s := NewSet(1, 2, 3, 4, 5)

	var visited []uint
	all := s.EachReverse(func(key uint) bool {
		visited = append(visited, key)
		return true
	})

	assert.True(t, all)
	assert.Equal(t, []uint{5, 4, 3, 2, 1}, visited)
}

func TestEachReverse_Abort(t *testing.T) {
	t.Parallel()

	s := NewSet(1, 2, 3, 4, 5)

	var visited []uint
	all := s.EachReverse(func(key uint) bool {
		visited = append(visited, key)
		return key != 3
	})

	assert.False(t, all)
	assert.Equal(t, []uint{5, 4, 3}, visited)
}

func TestLowerBound(t *testing.T) {
	t.Parallel()

	s := NewSet(2, 4, 6, 8)

	for _, tcase := range []*struct {
		Bound uint
		First uint
		OK    bool
	}{
		{4, 4, true},
		{5, 6, true},
		{10, 0, false},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%v", tcase.Bound)
		)

		t.Run(name, func(t *testing.T) {
			key, ok := s.LowerBound(tcase.Bound).Next()

			assert.Equal(t, tcase.OK, ok)
			if ok {
				assert.Equal(t, tcase.First, key)
			}
		})
	}
}

func TestUpperBound(t *testing.T) {
	t.Parallel()

	s := NewSet(2, 4, 6, 8)

	for _, tcase := range []*struct {
		Bound uint
		First uint
		OK    bool
	}{
		{4, 6, true},
		{5, 6, true},
		{10, 0, false},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%v", tcase.Bound)
		)

		t.Run(name, func(t *testing.T) {
			key, ok := s.UpperBound(tcase.Bound).Next()

			assert.Equal(t, tcase.OK, ok)
			if ok {
				assert.Equal(t, tcase.First, key)
			}
		})
	}
}

func TestIsDisjoint(t *testing.T) {
	t.Parallel()

	a := NewSet(1, 2, 3)
	b := NewSet()

	assert.True(t, a.IsDisjoint(b))
	assert.True(t, b.IsDisjoint(a))

	b.Add(4)
	assert.True(t, a.IsDisjoint(b))

	b.Add(1)
	assert.False(t, a.IsDisjoint(b))
}

func TestIsSubset_IsSuperset(t *testing.T) {
	t.Parallel()

	sup := NewSet(1, 2, 3)
	s := NewSet()

	assert.True(t, s.IsSubset(sup))
	assert.False(t, s.IsSuperset(sup))

	s.Add(2)
	assert.True(t, s.IsSubset(sup))
	assert.True(t, sup.IsSuperset(s))

	s.Add(4)
	assert.False(t, s.IsSubset(sup))
	assert.False(t, sup.IsSuperset(s))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := NewSet(1, 2, 3)
	b := NewSet(3, 2, 1)

	assert.True(t, a.Equal(b))

	b.Del(2)
	assert.False(t, a.Equal(b))

	b.Add(4)
	assert.False(t, a.Equal(b))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		A, B []uint
		Exp  int
	}{
		{nil, nil, 0},
		{[]uint{1}, nil, +1},
		{nil, []uint{1}, -1},
		{[]uint{1, 2}, []uint{1, 2}, 0},
		{[]uint{1, 2}, []uint{1, 3}, -1},
		{[]uint{1, 3}, []uint{1, 2}, +1},
		{[]uint{1, 2}, []uint{1, 2, 3}, -1},
		{[]uint{1, 2, 3}, []uint{1, 2}, +1},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%v,%v", tcase.A, tcase.B)
		)

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tcase.Exp, NewSet(tcase.A...).Compare(NewSet(tcase.B...)))
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "{}", NewSet().String())
	assert.Equal(t, "{1, 2, 3}", NewSet(3, 1, 2).String())
}

func TestMerge(t *testing.T) {
	t.Parallel()

	a := NewSet(1, 2)
	b := NewSet(2, 3)

	a.Merge(b)

	assert.Equal(t, []uint{1, 2, 3}, a.Keys())
	assert.Equal(t, []uint{2, 3}, b.Keys())
}

func TestExtend(t *testing.T) {
	t.Parallel()

	s := NewSet(1)
	s.Extend(3, 2, 3)

	assert.Equal(t, []uint{1, 2, 3}, s.Keys())
}

func TestAll_Range(t *testing.T) {
	t.Parallel()

	s := NewSet(3, 1, 2)

	var keys []uint
	for key := range s.All() {
		keys = append(keys, key)
		if key == 2 {
			break
		}
	}

	assert.Equal(t, []uint{1, 2}, keys)
}

func TestFakeData(t *testing.T) {
	t.Parallel()

	const (
		total = 50_000
		seed  = 24680
	)

	var (
		s     = NewSet()
		state = map[uint]struct{}{}
		fake  = gofakeit.New(seed)
	)

	for i := 0; i < total; i++ {
		key := uint(fake.Uint64())
		s.Add(key)
		state[key] = struct{}{}
	}

	require.Equal(t, len(state), s.Len())

	expected := make([]uint, 0, len(state))
	for key := range state {
		expected = append(expected, key)
	}
	sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })
	assert.Equal(t, expected, s.Keys())

	for key := range state {
		require.True(t, s.Del(key), key)
	}
	assert.True(t, s.Empty())
}
