// Package transform reads, simplifies and rewrites SVG transform attributes.
//
// # Overview
//
// An SVG transform attribute is a list of primitives applied right to left:
//
//	transform="translate(10,50) scale(2) rotate(-45)"
//
// Every primitive is an affine map and compiles to a [Matrix]. A list
// compiles to the product of its matrices. The package goes both ways:
// [Parse] and [Compose] turn text into one matrix, [Decompose] turns a
// matrix back into the shortest list of simple primitives it can find.
//
// # Quick Start
//
//	import "github.com/gogpu/transform"
//
//	// Rewrite an attribute in its shortest form
//	s := transform.Normalize("translate(10,50) scale(2) rotate(-45)")
//	// s == "rotate(-45 65.355 12.929) scale(2)"
//
//	// Work with the matrix directly
//	m := transform.Compose(transform.Parse("rotate(30) scale(2)")).Matrix()
//	p := m.TransformPoint(transform.Pt(1, 0))
//
// # Arcs
//
// Arc path segments carry their own ellipse geometry. When a transform is
// applied to path data, [TransformArc] re-fits the ellipse radii, rotation
// and sweep flag so the segment stays an arc.
//
// # Interoperability
//
// [Matrix.Aff3] and [FromAff3] convert to and from the row-major
// f64.Aff3 of golang.org/x/image/math/f64, so a composed transform can
// drive golang.org/x/image/draw directly:
//
//	m := transform.Compose(transform.Parse("rotate(30) scale(2)")).Matrix()
//	draw.BiLinear.Transform(dst, m.Aff3(), src, src.Bounds(), draw.Over, nil)
//
// The conversion is exact in both directions.
//
// # Coordinate System
//
// Uses SVG user coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, positive angles turn clockwise on screen
//
// # Precision
//
// Decomposition rounds scale factors to the transform precision (5 digits
// by default) and angles to the float precision (3 digits). Angles are
// computed from the unrounded factors, and a rotation center is solved for
// the rounded angle so the translation is kept exactly. See
// [WithTransformPrecision] and [WithFloatPrecision].
package transform

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
