package utils

// Index is a list of positions into a Vector
type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

// NewRange is an inclusive range of indices [rmin, rmax]
func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1
	)
	if size <= 0 {
		return Index{}
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

// Interior is the index range of a field with the two end points removed
func Interior(N int) (r Index) {
	return NewRange(1, N-2)
}
