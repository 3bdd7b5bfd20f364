package spiral_test

import (
	"fmt"

	"github.com/katalvlaran/primespiral/spiral"
)

// ExampleGenerate walks the first four primes with a right-angle clockwise turn.
func ExampleGenerate() {
	path, err := spiral.Generate([]int{2, 3, 5, 7}, 90)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, v := range path {
		fmt.Printf("(%.0f, %.0f)\n", v.X, v.Y)
	}
	// Output:
	// (0, 0)
	// (2, 0)
	// (2, -3)
	// (-3, -3)
	// (-3, 4)
}

// ExamplePath_Bounds shows the padded view box a renderer would use.
func ExamplePath_Bounds() {
	path, _ := spiral.Generate([]int{2, 3, 5, 7}, 90)
	b := path.Bounds().Pad(1)
	fmt.Printf("x:[%.0f, %.0f] y:[%.0f, %.0f]\n", b.MinX, b.MaxX, b.MinY, b.MaxY)
	// Output:
	// x:[-4, 3] y:[-4, 5]
}
