package vector

// RitualVector is the in-memory tensor unit exchanged between the platform's
// components: an element type, an ordered shape, and a flat row-major value
// buffer. Instances are immutable value objects: constructed fresh per
// request or response, consumed once by the codec, then discarded.
//
// Invariant: Values.Len() == Shape.ElemCount(), always. The carrier kind is
// constrained by the dtype class (see Values).
type RitualVector struct {
	DType  DataType
	Shape  Shape
	Values Values
}

// New constructs a validated RitualVector. It is the preferred constructor;
// a vector built by struct literal should be passed through Validate before
// encoding.
func New(dtype DataType, shape Shape, values Values) (*RitualVector, error) {
	v := &RitualVector{DType: dtype, Shape: shape, Values: values}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate checks the vector's structural invariants: a known dtype, a wire-
// representable shape, a shape/value count agreement, and a carrier matching
// the dtype class. It does not inspect individual element domains; those are
// enforced by the scalar codec during encode.
func (v *RitualVector) Validate() error {
	if !v.DType.Known() {
		return newError(ErrCodeUnknownDataType, "dtype tag %d outside registry", uint8(v.DType))
	}
	if err := v.Shape.Validate(); err != nil {
		return err
	}
	valueLen := 0
	if v.Values != nil {
		valueLen = v.Values.Len()
	}
	if err := v.Shape.ValidateCount(valueLen); err != nil {
		return err
	}
	if valueLen > 0 && !carrierMatches(v.DType, v.Values) {
		return newError(ErrCodeValueKindMismatch,
			"carrier %T does not match dtype %s", v.Values, v.DType)
	}
	return nil
}

// ElemCount returns the number of scalar elements implied by the shape.
func (v *RitualVector) ElemCount() int64 {
	return v.Shape.ElemCount()
}
