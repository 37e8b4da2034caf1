package main

import (
	"fmt"

	"github.com/aglyzov/go-uintds/radix/dict"
	"github.com/aglyzov/go-uintds/radix/set"
)

func main() {
	d := dict.NewDict[string]()
	d.Set(0x1234, "a")
	d.Set(0xA001, "b")
	d.Set(0xA07F, "c")
	d.Set(0x0002, "d")
	d.Set(0xFFFF, "e")

	d.DebugDump()

	fmt.Println("------")
	fmt.Println("dict:", d)

	fmt.Println("entries with key >= 0xA000:")
	it := d.LowerBound(0xA000)
	for key, val, ok := it.Next(); ok; key, val, ok = it.Next() {
		fmt.Printf("  %#x: %v\n", key, val)
	}

	fmt.Println("descending walk, stop below 0x1000:")
	d.EachReverse(func(key uint, val string) bool {
		fmt.Printf("  %#x: %v\n", key, val)
		return key >= 0x1000
	})

	fmt.Println("------")

	a := set.NewSet(1, 2, 3)
	b := set.NewSet(3, 4, 5)

	fmt.Println("a:", a)
	fmt.Println("b:", b)
	fmt.Println("a-b:", a.Difference(b).Collect())
	fmt.Println("a^b:", a.SymmetricDifference(b).Collect())
	fmt.Println("a&b:", a.Intersection(b).Collect())
	fmt.Println("a|b:", a.Union(b).Collect())
}
