package FD1D

import (
	"fmt"
	"io"

	"github.com/notargets/fdm1d/utils"
)

// Mesh1D is a uniformly spaced set of nodes on [XA, XB]
type Mesh1D struct {
	NX     int
	XA, XB float64
	x      utils.Vector
}

/*
NewMesh1D places NX nodes on [xa, xb] with node i at xa + i*(xb-xa)/(nx-1).
There is no validation, nx < 2 produces a degenerate mesh.
*/
func NewMesh1D(xa, xb float64, nx int) (m *Mesh1D) {
	var (
		dx = (xb - xa) / float64(nx-1)
		x  = make([]float64, nx)
	)
	x[0] = xa
	for i := 1; i < nx; i++ {
		x[i] = x[0] + float64(i)*dx
	}
	return &Mesh1D{
		NX: nx,
		XA: xa,
		XB: xb,
		x:  utils.NewVector(nx, x),
	}
}

// NewMeshLength builds a mesh of nx nodes on [0, length]
func NewMeshLength(nx int, length float64) *Mesh1D {
	return NewMesh1D(0, length, nx)
}

// X returns a copy of the node coordinates
func (m *Mesh1D) X() utils.Vector {
	return m.x.Copy()
}

func (m *Mesh1D) XData() []float64 {
	return m.x.Data()
}

// Dx is the spacing between the first two nodes
func (m *Mesh1D) Dx() float64 {
	x := m.x.DataP()
	return x[1] - x[0]
}

func (m *Mesh1D) Length() float64 {
	return m.XB - m.XA
}

func (m *Mesh1D) Print(w io.Writer) {
	for _, x := range m.x.DataP() {
		fmt.Fprintf(w, "%v\n", x)
	}
}
