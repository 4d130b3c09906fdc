package utils

type Index []int

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	if size < 0 {
		size = 0
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func (I Index) Copy() (r Index) {
	r = make(Index, len(I))
	copy(r, I)
	return
}

func (I Index) Add(val int) (r Index) {
	r = I.Copy()
	for i := range r {
		r[i] += val
	}
	return
}

func (I Index) Apply(f func(val int) int) (r Index) {
	r = I.Copy()
	for i, val := range r {
		r[i] = f(val)
	}
	return
}

// Wrap maps every index onto the ring [0, N)
func (I Index) Wrap(N int) (r Index) {
	return I.Apply(func(val int) int { return WrapIndex(val, N) })
}

// WrapIndex is i mod N with the result in [0, N) for negative i
func WrapIndex(i, N int) int {
	i %= N
	if i < 0 {
		i += N
	}
	return i
}
