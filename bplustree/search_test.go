package bplus

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioTree(t *testing.T) *BPlusTree[int, string] {
	t.Helper()
	tree := newIntTree(t, 3)
	for _, k := range []int{10, 20, 5, 15, 25, 1} {
		tree.Insert(k, val(k))
	}
	return tree
}

func TestRangeSearchScenario(t *testing.T) {
	tree := scenarioTree(t)

	tests := []struct {
		name string
		key  int
		op   Comparator
		want []string
	}{
		{name: "ge boundary key", key: 15, op: GreaterOrEqual, want: []string{"v15", "v20", "v25"}},
		{name: "ge below all", key: 0, op: GreaterOrEqual, want: []string{"v1", "v5", "v10", "v15", "v20", "v25"}},
		{name: "ge missing key", key: 12, op: GreaterOrEqual, want: []string{"v15", "v20", "v25"}},
		{name: "ge above all", key: 30, op: GreaterOrEqual, want: []string{}},
		{name: "eq present", key: 5, op: Equal, want: []string{"v5"}},
		{name: "eq absent", key: 7, op: Equal, want: []string{}},
		// only the entry leaf and the leaves after it are scanned
		{name: "le from entry leaf", key: 15, op: LessOrEqual, want: []string{"v15"}},
		{name: "le in first leaf", key: 5, op: LessOrEqual, want: []string{"v1", "v5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tree.RangeSearch(tt.key, tt.op))
		})
	}
}

func TestRangeSearchInvalidComparator(t *testing.T) {
	tree := scenarioTree(t)

	for _, op := range []Comparator{invalid, Comparator(-1), Comparator(99)} {
		got := tree.RangeSearch(10, op)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}

	for _, s := range []string{"", ">", "<", "=", "!=", "=>", " >="} {
		got := tree.RangeSearchString(10, s)
		assert.NotNil(t, got, "comparator %q", s)
		assert.Empty(t, got, "comparator %q", s)
	}
}

func TestRangeSearchString(t *testing.T) {
	tree := scenarioTree(t)

	assert.Equal(t, []string{"v15", "v20", "v25"}, tree.RangeSearchString(15, ">="))
	assert.Equal(t, []string{"v10"}, tree.RangeSearchString(10, "=="))
	assert.Equal(t, tree.RangeSearch(5, LessOrEqual), tree.RangeSearchString(5, "<="))
}

func TestRangeSearchEmptyTree(t *testing.T) {
	tree := newIntTree(t, 3)

	for _, op := range []Comparator{GreaterOrEqual, Equal, LessOrEqual} {
		got := tree.RangeSearch(1, op)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestRangeSearchIdempotent(t *testing.T) {
	tree := scenarioTree(t)

	for _, op := range []Comparator{GreaterOrEqual, Equal, LessOrEqual} {
		first := tree.RangeSearch(10, op)
		second := tree.RangeSearch(10, op)
		assert.Equal(t, first, second, "op %s", op)
	}
}

func TestRangeSearchGreaterOrEqualMatchesModel(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	tree := newIntTree(t, 5)
	model := make(map[int]string)
	for i := range 500 {
		k := rng.IntN(1000)
		tree.Insert(k, val(i))
		model[k] = val(i)
	}

	keys := make([]int, 0, len(model))
	for k := range model {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for range 100 {
		q := rng.IntN(1100) - 50
		want := []string{}
		for _, k := range keys {
			if k >= q {
				want = append(want, model[k])
			}
		}
		require.Equal(t, want, tree.RangeSearch(q, GreaterOrEqual), "query %d", q)
	}
}

func TestSearch(t *testing.T) {
	tree := scenarioTree(t)

	v, ok := tree.Search(20)
	assert.True(t, ok)
	assert.Equal(t, "v20", v)

	v, ok = tree.Search(21)
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestParseComparator(t *testing.T) {
	tests := []struct {
		in   string
		want Comparator
		ok   bool
	}{
		{in: ">=", want: GreaterOrEqual, ok: true},
		{in: "==", want: Equal, ok: true},
		{in: "<=", want: LessOrEqual, ok: true},
		{in: "<", want: invalid},
		{in: "", want: invalid},
	}

	for _, tt := range tests {
		got, ok := ParseComparator(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		if ok {
			assert.Equal(t, tt.in, got.String())
		}
	}
	assert.Equal(t, "invalid", invalid.String())
	assert.False(t, invalid.Valid())
}
