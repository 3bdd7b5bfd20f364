package pattern_test

import (
	"fmt"

	"github.com/katalvlaran/primespiral/pattern"
	"github.com/katalvlaran/primespiral/sweep"
)

// ExampleClassify sweeps three angles and prints each classification.
func ExampleClassify() {
	a, err := pattern.Analyze([]int{2, 2, 3, 3, 3}, sweep.Range{Start: 0, End: 90, Step: 45})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, c := range pattern.Classify(a) {
		fmt.Printf("%v° %s %v\n", c.Angle, c.Kind, c.Counts)
	}
	// Output:
	// 0° irregular [2 3]
	// 45° irregular [2 3]
	// 90° irregular [2 3]
}
