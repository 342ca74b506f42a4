package payload

import (
	"encoding/json"
	"fmt"

	"github.com/ritual-net/infernet-go/internal/vector"
)

// VectorJSON is the human-facing JSON form of a RitualVector, used by the
// encode/decode HTTP endpoints and CLI input files.
//
// Values are a flat row-major array of JSON numbers. Boolean vectors use
// 0/1; complex vectors interleave real and imaginary parts, so their values
// array is twice the element count. Numbers stay json.Number end to end so
// int64 elements survive without float64 precision loss.
type VectorJSON struct {
	DType  string        `json:"dtype"`
	Shape  []int         `json:"shape"`
	Values []json.Number `json:"values"`
}

// ToVector converts the JSON form into a validated RitualVector.
func (vj *VectorJSON) ToVector() (*vector.RitualVector, error) {
	dtype, err := vector.ParseDataType(vj.DType)
	if err != nil {
		return nil, err
	}

	values, err := parseValues(dtype, vj.Values)
	if err != nil {
		return nil, err
	}
	return vector.New(dtype, vector.Shape(vj.Shape), values)
}

// FromVector converts a RitualVector into its JSON form.
func FromVector(v *vector.RitualVector) *VectorJSON {
	vj := &VectorJSON{
		DType: v.DType.String(),
		Shape: append([]int{}, v.Shape...),
	}

	switch vals := v.Values.(type) {
	case vector.Float64s:
		for _, f := range vals {
			vj.Values = append(vj.Values, formatFloat(f))
		}
	case vector.Int64s:
		for _, n := range vals {
			vj.Values = append(vj.Values, json.Number(fmt.Sprintf("%d", n)))
		}
	case vector.Bools:
		for _, b := range vals {
			if b {
				vj.Values = append(vj.Values, "1")
			} else {
				vj.Values = append(vj.Values, "0")
			}
		}
	case vector.Complex128s:
		for _, c := range vals {
			vj.Values = append(vj.Values, formatFloat(real(c)), formatFloat(imag(c)))
		}
	}
	return vj
}

func formatFloat(f float64) json.Number {
	return json.Number(fmt.Sprintf("%g", f))
}

// parseValues builds the carrier matching the dtype class. Complex dtypes
// consume interleaved [re, im] pairs.
func parseValues(dtype vector.DataType, nums []json.Number) (vector.Values, error) {
	switch {
	case dtype.IsFloat():
		out := make(vector.Float64s, len(nums))
		for i, n := range nums {
			f, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("values[%d]: %w", i, err)
			}
			out[i] = f
		}
		return out, nil

	case dtype.IsComplex():
		if len(nums)%2 != 0 {
			return nil, fmt.Errorf("complex values require interleaved [re, im] pairs, got %d numbers", len(nums))
		}
		out := make(vector.Complex128s, len(nums)/2)
		for i := range out {
			re, err := nums[2*i].Float64()
			if err != nil {
				return nil, fmt.Errorf("values[%d]: %w", 2*i, err)
			}
			im, err := nums[2*i+1].Float64()
			if err != nil {
				return nil, fmt.Errorf("values[%d]: %w", 2*i+1, err)
			}
			out[i] = complex(re, im)
		}
		return out, nil

	case dtype.IsBool():
		out := make(vector.Bools, len(nums))
		for i, n := range nums {
			switch n {
			case "0":
				out[i] = false
			case "1":
				out[i] = true
			default:
				return nil, fmt.Errorf("values[%d]: boolean element must be 0 or 1, got %s", i, n)
			}
		}
		return out, nil

	default:
		out := make(vector.Int64s, len(nums))
		for i, n := range nums {
			v, err := n.Int64()
			if err != nil {
				return nil, fmt.Errorf("values[%d]: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	}
}
