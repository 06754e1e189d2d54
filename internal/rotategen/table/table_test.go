package table_test

import (
	"go/constant"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msakuta/rotate-enum/internal/rotategen/table"
)

// enumConsts declares a named int type with one constant per name, in the
// given order, mimicking what the parser collects from a real package.
func enumConsts(typeName string, names ...string) []*types.Const {
	pkg := types.NewPackage("example.com/fixture", "fixture")
	tn := types.NewTypeName(token.NoPos, pkg, typeName, nil)
	named := types.NewNamed(tn, types.Typ[types.Int], nil)

	consts := make([]*types.Const, len(names))
	for i, name := range names {
		consts[i] = types.NewConst(token.NoPos, pkg, name, named, constant.MakeInt64(int64(i)))
	}
	return consts
}

func direction() table.Sequence {
	return table.NewSequence(enumConsts("Direction", "Up", "Left", "Down", "Right"))
}

func next(t *testing.T, tbl table.Table, name string) *table.Variant {
	t.Helper()
	tr, ok := tbl.Lookup(name)
	require.True(t, ok, "variant %s not in table", name)
	return tr.Next
}

func prev(t *testing.T, tbl table.Table, name string) *table.Variant {
	t.Helper()
	tr, ok := tbl.Lookup(name)
	require.True(t, ok, "variant %s not in table", name)
	return tr.Prev
}

func TestRotate(t *testing.T) {
	tbl := table.Build(direction(), table.PolicyRotate)

	assert.Equal(t, "Left", next(t, tbl, "Up").Name)
	assert.Equal(t, "Down", next(t, tbl, "Left").Name)
	assert.Equal(t, "Right", next(t, tbl, "Down").Name)
	assert.Equal(t, "Up", next(t, tbl, "Right").Name)

	assert.Equal(t, "Right", prev(t, tbl, "Up").Name)
	assert.Equal(t, "Up", prev(t, tbl, "Left").Name)
	assert.Equal(t, "Left", prev(t, tbl, "Down").Name)
	assert.Equal(t, "Down", prev(t, tbl, "Right").Name)
}

// TestRotateRoundTrip checks that Next and Prev invert each other for every
// variant.
func TestRotateRoundTrip(t *testing.T) {
	tbl := table.Build(direction(), table.PolicyRotate)

	for v := range tbl.All() {
		n := next(t, tbl, v.Name)
		require.NotNil(t, n)
		assert.Equal(t, v.Name, prev(t, tbl, n.Name).Name)

		p := prev(t, tbl, v.Name)
		require.NotNil(t, p)
		assert.Equal(t, v.Name, next(t, tbl, p.Name).Name)
	}
}

func TestRotateSingle(t *testing.T) {
	seq := table.NewSequence(enumConsts("Solo", "Only"))
	tbl := table.Build(seq, table.PolicyRotate)

	assert.Equal(t, "Only", next(t, tbl, "Only").Name)
	assert.Equal(t, "Only", prev(t, tbl, "Only").Name)
}

func TestShift(t *testing.T) {
	tbl := table.Build(direction(), table.PolicyShift)

	assert.Equal(t, "Left", next(t, tbl, "Up").Name)
	assert.Equal(t, "Down", next(t, tbl, "Left").Name)
	assert.Equal(t, "Right", next(t, tbl, "Down").Name)
	assert.Nil(t, next(t, tbl, "Right"))

	assert.Nil(t, prev(t, tbl, "Up"))
	assert.Equal(t, "Up", prev(t, tbl, "Left").Name)
	assert.Equal(t, "Left", prev(t, tbl, "Down").Name)
	assert.Equal(t, "Down", prev(t, tbl, "Right").Name)
}

// TestShiftRoundTrip checks that for non-boundary variants, shifting forward
// and then backward lands on the original variant, and that absence appears
// exactly once per direction.
func TestShiftRoundTrip(t *testing.T) {
	tbl := table.Build(direction(), table.PolicyShift)

	noNext, noPrev := 0, 0
	for v, tr := range tbl.All() {
		if tr.Next == nil {
			noNext++
		} else {
			assert.Equal(t, v.Name, prev(t, tbl, tr.Next.Name).Name)
		}
		if tr.Prev == nil {
			noPrev++
		} else {
			assert.Equal(t, v.Name, next(t, tbl, tr.Prev.Name).Name)
		}
	}
	assert.Equal(t, 1, noNext)
	assert.Equal(t, 1, noPrev)
}

func TestShiftSingle(t *testing.T) {
	seq := table.NewSequence(enumConsts("Solo", "Only"))
	tbl := table.Build(seq, table.PolicyShift)

	assert.Nil(t, next(t, tbl, "Only"))
	assert.Nil(t, prev(t, tbl, "Only"))
}

func TestIterate(t *testing.T) {
	tbl := table.Build(direction(), table.PolicyIterate)

	// Forward transitions drive the cursor; the last variant exhausts it.
	assert.Equal(t, "Left", next(t, tbl, "Up").Name)
	assert.Equal(t, "Down", next(t, tbl, "Left").Name)
	assert.Equal(t, "Right", next(t, tbl, "Down").Name)
	assert.Nil(t, next(t, tbl, "Right"))

	assert.Equal(t, "Up", tbl.First().Name)
}

// TestAllOrder checks that iteration reproduces the declaration order.
func TestAllOrder(t *testing.T) {
	tbl := table.Build(direction(), table.PolicyIterate)

	var names []string
	for v := range tbl.All() {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"Up", "Left", "Down", "Right"}, names)
}

func TestCoversEveryVariantOnce(t *testing.T) {
	for _, policy := range []table.Policy{table.PolicyRotate, table.PolicyShift, table.PolicyIterate} {
		tbl := table.Build(direction(), policy)

		assert.Equal(t, 4, tbl.Len())
		seen := make(map[string]int)
		for v := range tbl.All() {
			seen[v.Name]++
		}
		for name, count := range seen {
			assert.Equal(t, 1, count, "variant %s under %s", name, policy)
		}
	}
}
