package bst_test

import (
	"fmt"

	"github.com/adtkit/adtkit/bst"
)

// ExampleTree indexes words by frequency rank and lists them in key order,
// regardless of insertion order.
func ExampleTree() {
	tr := bst.New[string, int]()
	tr.Insert("pear", 3)
	tr.Insert("apple", 1)
	tr.Insert("quince", 4)
	tr.Insert("mango", 2)

	for word, rank := range tr.InOrder() {
		fmt.Println(word, rank)
	}
	// Output:
	// apple 1
	// mango 2
	// pear 3
	// quince 4
}
