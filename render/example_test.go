package render_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/primespiral/render"
	"github.com/katalvlaran/primespiral/spiral"
)

// ExampleTitle prints the caption drawn above a frame.
func ExampleTitle() {
	fmt.Println(render.Title(137.5))
	// Output:
	// Turn Angle: 137.5 degrees
}

// ExampleWriteSVG renders a three-prime spiral without rays or title.
func ExampleWriteSVG() {
	path, _ := spiral.Generate([]int{2, 3, 5}, 0)
	o := render.DefaultFrameOptions()
	o.Width, o.Height = 64, 64
	o.Rays, o.Title = false, false

	if err := render.WriteSVG(os.Stdout, path, 0, o); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// <?xml version="1.0" encoding="UTF-8"?>
	// <svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="64" height="64" viewBox="0 0 64 64">
	// <rect x="0" y="0" width="64" height="64" fill="#ffffff"/>
	// <polyline fill="none" stroke="#0000ff" stroke-width="1.5" stroke-linejoin="round" points="5.33,32 16,32 32,32 58.67,32"/>
	// </svg>
}
