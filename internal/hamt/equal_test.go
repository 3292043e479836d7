package hamt

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

type person struct {
	Name string
	ID   int
}

type badge struct {
	Owner person
	Tags  [2]string
	Extra interface{}
	level float64
}

type link struct {
	Label string
	Next  *link
}

func sameHash[K any](k1, k2 K) bool {
	return defaultHash(k1, seed) == defaultHash(k2, seed)
}

func TestDefaultHashFollowsEquality(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("rebuilt struct keys hash alike", prop.ForAll(
		func(p person) bool {
			q := person{Name: strings.Clone(p.Name), ID: p.ID}
			return defaultEqual(p, q) && sameHash(p, q)
		},
		gen.Struct(reflect.TypeOf(person{}), map[string]gopter.Gen{
			"Name": gen.AlphaString(),
			"ID":   gen.Int(),
		}),
	))
	properties.Property("rebuilt nested keys hash alike", prop.ForAll(
		func(name, tag string, id int) bool {
			b1 := badge{
				Owner: person{Name: name, ID: id},
				Tags:  [2]string{tag, name},
				Extra: person{Name: tag, ID: id},
			}
			b2 := badge{
				Owner: person{Name: strings.Clone(name), ID: id},
				Tags:  [2]string{strings.Clone(tag), strings.Clone(name)},
				Extra: person{Name: strings.Clone(tag), ID: id},
			}
			return defaultEqual(b1, b2) && sameHash(b1, b2)
		},
		gen.Identifier(),
		gen.Identifier(),
		gen.Int(),
	))
	properties.TestingRun(t)

	var i1, i2 interface{} = person{"a", 1}, person{strings.Clone("a"), 1}
	assert.True(t, sameHash(i1, i2))

	assert.True(t, sameHash(badge{level: math.Copysign(0, -1)}, badge{level: 0}))
	assert.True(t, sameHash(complex(math.Copysign(0, -1), 1), complex(0, 1)))
}

func TestDefaultHashPointerIdentity(t *testing.T) {
	n := &link{Label: "a"}
	before := defaultHash(n, seed)
	n.Label = "b"
	assert.Equal(t, before, defaultHash(n, seed))

	k := link{Label: "x", Next: n}
	assert.True(t, sameHash(k, link{Label: strings.Clone("x"), Next: n}))
}
