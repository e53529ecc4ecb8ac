// Command svgxform rewrites SVG transform attributes in their shortest form.
//
// Usage:
//
//	svgxform normalize "translate(10,50) scale(2) rotate(-45)"
//	svgxform decompose 0 1 -1 0 0 0
//	svgxform arc --matrix 2,0,0,1,0,0 5 5 0 0 1 10 0
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "svgxform: %v\n", err)
		os.Exit(1)
	}
}
