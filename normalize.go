package transform

import (
	"github.com/gogpu/transform/internal/cache"
)

// normalizeKey identifies one Normalize call for memoization.
type normalizeKey struct {
	text string
	opts options
}

var normalizeCache = cache.NewSharded[normalizeKey, string](256, func(k normalizeKey) uint64 {
	return cache.StringHasher(k.text)
})

// Normalize rewrites transform attribute text into its shortest equivalent
// form, for example
//
//	"translate(10,50) scale(2) rotate(-45)" → "rotate(-45 65.355 12.929) scale(2)"
//
// The list is multiplied into one matrix (unless WithCollapse(false)),
// decomposed back into primitives, shortened, stripped of no-op primitives
// and formatted. A matrix is kept when its decomposition would be longer
// text or the matrix is singular. Text that does not parse is returned
// unchanged.
//
// Normalize is safe for concurrent use. Results are memoized.
func Normalize(text string, opts ...Option) string {
	o := resolveOptions(opts)
	return normalizeCache.GetOrCreate(normalizeKey{text: text, opts: o}, func() string {
		return normalize(text, o)
	})
}

func normalize(text string, o options) string {
	ps := Parse(text)
	if len(ps) == 0 {
		return text
	}
	if o.collapse {
		ps = []Primitive{Compose(ps)}
	}

	out := make([]Primitive, 0, len(ps))
	for _, p := range ps {
		if p.Kind != KindMatrix {
			out = append(out, p)
			continue
		}
		out = append(out, shortestForm(p, o)...)
	}

	out = Shorten(out)
	for i, p := range out {
		out[i] = roundPrimitive(p, o)
	}
	return Format(RemoveUseless(out), withOptions(o))
}

// shortestForm returns the decomposition of a matrix primitive, or the
// matrix itself when that is shorter text or the matrix is singular.
func shortestForm(p Primitive, o options) []Primitive {
	apply := withOptions(o)

	ps, err := DecomposePrimitive(p, apply)
	if err != nil {
		Logger().Debug("transform: keeping matrix", "err", err)
		return []Primitive{p}
	}
	if len(ps) == 1 && ps[0].Kind == KindMatrix {
		return ps
	}
	ps = RemoveUseless(Shorten(ps))
	if len(Format(ps, apply)) > len(Format([]Primitive{p}, apply)) {
		return []Primitive{p}
	}
	return ps
}

// Shorten rewrites primitives into their short forms without changing the
// transformation:
//   - translate(x, 0) → translate(x)
//   - scale(s, s) → scale(s)
//   - translate(cx, cy) rotate(a) translate(-cx, -cy) → rotate(a, cx, cy)
func Shorten(ps []Primitive) []Primitive {
	out := make([]Primitive, 0, len(ps))
	for i := 0; i < len(ps); i++ {
		p := ps[i]
		switch {
		case p.Kind == KindTranslate && i+2 < len(ps) && isCenteredRotation(p, ps[i+1], ps[i+2]):
			cx, cy := p.arg(0, 0), p.arg(1, 0)
			p = RotateAround(ps[i+1].Data[0], cx, cy)
			i += 2
		case p.Kind == KindTranslate && len(p.Data) == 2 && p.Data[1] == 0:
			p = Primitive{Kind: KindTranslate, Data: []float64{p.Data[0]}}
		case p.Kind == KindScale && len(p.Data) == 2 && p.Data[0] == p.Data[1]:
			p = Primitive{Kind: KindScale, Data: []float64{p.Data[0]}}
		}
		out = append(out, p)
	}
	return out
}

// isCenteredRotation matches translate(cx, cy) rotate(a) translate(-cx, -cy).
func isCenteredRotation(t1, r, t2 Primitive) bool {
	if r.Kind != KindRotate || len(r.Data) != 1 || t2.Kind != KindTranslate {
		return false
	}
	return t1.arg(0, 0) == -t2.arg(0, 0) && t1.arg(1, 0) == -t2.arg(1, 0)
}

// RemoveUseless drops primitives that leave coordinates unchanged:
// zero translations, rotations and skews, unit scales and identity
// matrices.
func RemoveUseless(ps []Primitive) []Primitive {
	out := make([]Primitive, 0, len(ps))
	for _, p := range ps {
		if !isUseless(p) {
			out = append(out, p)
		}
	}
	return out
}

func isUseless(p Primitive) bool {
	if len(p.Data) == 0 {
		return true
	}
	switch p.Kind {
	case KindTranslate:
		return p.Data[0] == 0 && p.arg(1, 0) == 0
	case KindScale:
		return p.Data[0] == 1 && p.arg(1, 1) == 1
	case KindRotate, KindSkewX, KindSkewY:
		return p.Data[0] == 0
	case KindMatrix:
		return MatrixOf(p.Data).IsIdentity()
	}
	return false
}
