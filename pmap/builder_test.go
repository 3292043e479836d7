package pmap

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("builder does not change its source", prop.ForAll(
		func(rm *rmap, k int, v string) bool {
			size := rm.m.Size()
			b := rm.m.AsBuilder()
			b.AddOrUpdate(k, v)
			for key := range rm.n {
				b.RemoveIfPresent(key)
			}
			_ = b.Map()
			return rm.m.Size() == size && rm.m.Size() == uint(len(rm.n))
		},
		genRandomMap,
		gen.Int(),
		gen.Identifier(),
	))
	properties.Property("builder matches persistent updates", prop.ForAll(
		func(rm *rmap, keys []int) bool {
			m := rm.m
			b := rm.m.AsBuilder()
			for _, k := range keys {
				v := "v" + string(rune('a'+k%26))
				m = m.AddOrUpdate(k, v)
				b.AddOrUpdate(k, v)
			}
			bm := b.Map()
			return bm.Equal(m) && bm.String() == m.String()
		},
		genRandomMap,
		gen.SliceOf(gen.IntRange(0, 500)),
	))
	properties.TestingRun(t)
}

func TestBuilderAccessors(t *testing.T) {
	b := Empty[string, int]().AsBuilder()
	assert.Equal(t, uint(0), b.Size())
	b.AddOrUpdate("a", 1).AddOrUpdate("b", 2)
	assert.Equal(t, uint(2), b.Size())
	assert.True(t, b.Contains("a"))
	assert.Equal(t, 2, b.GetIfPresent("b").Value())
	assert.True(t, b.GetIfPresent("c").IsMissing())

	b.RemoveIfPresent("a").RemoveIfPresent("a")
	assert.Equal(t, uint(1), b.Size())

	b.RemoveIfPresent("b")
	assert.True(t, b.Map() == Empty[string, int]())
}

func TestBuilderSealed(t *testing.T) {
	b := Empty[string, int]().AsBuilder()
	b.AddOrUpdate("a", 1)
	m := b.Map()
	assert.Equal(t, uint(1), m.Size())

	assert.PanicsWithValue(t, ErrBuilderSealed, func() { b.AddOrUpdate("b", 2) })
	assert.PanicsWithValue(t, ErrBuilderSealed, func() { b.RemoveIfPresent("a") })
	assert.PanicsWithValue(t, ErrBuilderSealed, func() { b.Size() })
	assert.PanicsWithValue(t, ErrBuilderSealed, func() { b.Map() })
	assert.False(t, m.Contains("b"))
}

func TestBuilderNilArguments(t *testing.T) {
	b := Empty[*CompositeID, *CompositeID]().AsBuilder()
	panicsWithArgument(t, func() { b.AddOrUpdate(nil, &CompositeID{}) })
	panicsWithArgument(t, func() { b.AddOrUpdate(&CompositeID{}, nil) })
	panicsWithArgument(t, func() { b.Contains(nil) })
	panicsWithArgument(t, func() { b.GetIfPresent(nil) })
	panicsWithArgument(t, func() { b.RemoveIfPresent(nil) })
}
