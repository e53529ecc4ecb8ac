package transform

// Kind identifies a transform primitive.
type Kind uint8

// Transform primitive kinds.
const (
	KindMatrix Kind = iota
	KindTranslate
	KindScale
	KindRotate
	KindSkewX
	KindSkewY
)

var kindNames = [...]string{
	KindMatrix:    "matrix",
	KindTranslate: "translate",
	KindScale:     "scale",
	KindRotate:    "rotate",
	KindSkewX:     "skewX",
	KindSkewY:     "skewY",
}

// String returns the name used in transform text.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind returns the Kind for a transform function name.
// Names are case-sensitive, as in the attribute syntax.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Primitive is one elementary transform with its numeric arguments.
//
// Data arity depends on Kind:
//   - translate: [tx] or [tx, ty]
//   - scale: [s] or [sx, sy]
//   - rotate: [deg] or [deg, cx, cy]
//   - skewX, skewY: [deg]
//   - matrix: [a, b, c, d, e, f]
type Primitive struct {
	Kind Kind
	Data []float64
}

// Translate returns a translate primitive. ty is omitted when zero.
func Translate(tx, ty float64) Primitive {
	if ty == 0 {
		return Primitive{Kind: KindTranslate, Data: []float64{tx}}
	}
	return Primitive{Kind: KindTranslate, Data: []float64{tx, ty}}
}

// Scale returns a scale primitive. A uniform scale carries a single value.
func Scale(sx, sy float64) Primitive {
	if sx == sy {
		return Primitive{Kind: KindScale, Data: []float64{sx}}
	}
	return Primitive{Kind: KindScale, Data: []float64{sx, sy}}
}

// Rotate returns a rotate primitive for an angle in degrees about the origin.
func Rotate(deg float64) Primitive {
	return Primitive{Kind: KindRotate, Data: []float64{deg}}
}

// RotateAround returns a rotate primitive about the point (cx, cy).
func RotateAround(deg, cx, cy float64) Primitive {
	return Primitive{Kind: KindRotate, Data: []float64{deg, cx, cy}}
}

// SkewX returns a skewX primitive for an angle in degrees.
func SkewX(deg float64) Primitive {
	return Primitive{Kind: KindSkewX, Data: []float64{deg}}
}

// SkewY returns a skewY primitive for an angle in degrees.
func SkewY(deg float64) Primitive {
	return Primitive{Kind: KindSkewY, Data: []float64{deg}}
}

// MatrixPrimitive wraps m as a matrix(...) primitive.
func MatrixPrimitive(m Matrix) Primitive {
	return Primitive{Kind: KindMatrix, Data: m.Data()}
}

// String formats the primitive with full float precision.
func (p Primitive) String() string {
	return formatPrimitive(p, -1, false)
}

// arg returns Data[i], or def when the argument was omitted.
func (p Primitive) arg(i int, def float64) float64 {
	if i < len(p.Data) {
		return p.Data[i]
	}
	return def
}
