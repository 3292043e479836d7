package pmap

import (
	"fmt"

	json "github.com/goccy/go-json"
)

func ExampleEmpty() {
	m := Empty[string, int]()
	fmt.Println(m, m.Size())
	// Output: { } 0
}

func ExampleMap_AddOrUpdate() {
	m1 := Empty[string, int]().AddOrUpdate("a", 1)
	m2 := m1.AddOrUpdate("a", 2)
	m3 := m2.AddOrUpdate("a", 2)
	fmt.Println(m1, m2, m3 == m2)
	// Output: { [a 1] } { [a 2] } true
}

func ExampleMap_GetIfPresent() {
	m := FromEntries(Entry[string, int]{Key: "a", Value: 1})
	fmt.Println(m.GetIfPresent("a"), m.GetIfPresent("b"))
	fmt.Println(m.GetIfPresent("b").OrElse(-1))
	// Output:
	// Present(1) Missing
	// -1
}

func ExampleMap_RemoveIfPresent() {
	m := FromEntries(
		Entry[string, int]{Key: "a", Value: 1},
		Entry[string, int]{Key: "b", Value: 2},
	)
	fmt.Println(m.RemoveIfPresent("a"))
	fmt.Println(m.RemoveIfPresent("c") == m)
	// Output:
	// { [b 2] }
	// true
}

func ExampleMap_AsBuilder() {
	b := Empty[int, int]().AsBuilder()
	for i := 0; i < 5; i++ {
		b.AddOrUpdate(i, i*i)
	}
	fmt.Println(b.Map())
	// Output: { [0 0] [1 1] [2 4] [3 9] [4 16] }
}

func ExampleMap_MarshalJSON() {
	m := Empty[int, string]().AddOrUpdate(123, "abc")
	data, _ := json.Marshal(m)
	fmt.Println(string(data))
	// Output: [{"Key":123,"Value":"abc"}]
}
