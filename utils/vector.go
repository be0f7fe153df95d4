package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

// NewVector allocates a zeroed vector, or wraps the optional data slice without copying
func NewVector(N int, dataO ...[]float64) Vector {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		data = dataO[0]
	} else {
		data = make([]float64, N)
	}
	return Vector{mat.NewVecDense(N, data)}
}

func NewVectorConstant(N int, val float64) Vector {
	return NewVector(N).Set(val)
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) DataP() []float64         { return v.V.RawVector().Data }

func (v Vector) Copy() Vector {
	return Vector{mat.VecDenseCopyOf(v.V)}
}

// Data returns a copy of the underlying values
func (v Vector) Data() (r []float64) {
	r = make([]float64, v.Len())
	copy(r, v.DataP())
	return
}

// Chainable methods, all of which change the receiver
func (v Vector) Set(val float64) Vector {
	var (
		data = v.DataP()
	)
	for i := range data {
		data[i] = val
	}
	return v
}

func (v Vector) Assign(a Vector) Vector {
	v.V.CopyVec(a.V)
	return v
}

func (v Vector) AssignScalar(I Index, val float64) Vector {
	var (
		data = v.DataP()
	)
	for _, ind := range I {
		data[ind] = val
	}
	return v
}

func (v Vector) Subtract(a Vector) Vector {
	v.V.SubVec(v.V, a.V)
	return v
}

func (v Vector) Scale(a float64) Vector {
	v.V.ScaleVec(a, v.V)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.DataP()
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

// Reductions
func (v Vector) Min() float64 { return floats.Min(v.DataP()) }
func (v Vector) Max() float64 { return floats.Max(v.DataP()) }
func (v Vector) Sum() float64 { return floats.Sum(v.DataP()) }

// Norm is the L-norm of the vector, use math.Inf(1) for the max norm
func (v Vector) Norm(L float64) float64 { return floats.Norm(v.DataP(), L) }

// Find returns the positions where op(val, target) holds, optionally comparing absolute values
func (v Vector) Find(op EvalOp, target float64, abs bool) (I Index) {
	I = Index{}
	for i, val := range v.DataP() {
		if abs {
			val = math.Abs(val)
		}
		if op.Compare(val, target) {
			I = append(I, i)
		}
	}
	return
}

func (v Vector) Equal(a Vector, tol float64) bool {
	if v.Len() != a.Len() {
		return false
	}
	return floats.EqualApprox(v.DataP(), a.DataP(), tol)
}

func (v Vector) Print(name string) string {
	return fmt.Sprintf("%s = \n%v\n", name, mat.Formatted(v.V.T(), mat.Squeeze()))
}
