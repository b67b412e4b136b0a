package analysis

// Aitken applies delta-squared acceleration to a partial-sum history and
// returns the accelerated sequence, two entries shorter than the input.
// Where the second difference vanishes the unaccelerated sum is kept, since
// the transform would divide by zero exactly when the sequence has already
// settled.
func Aitken(partials []float64) []float64 {
	if len(partials) < 3 {
		return nil
	}
	out := make([]float64, len(partials)-2)
	for i := range out {
		p0, p1, p2 := partials[i], partials[i+1], partials[i+2]
		d := (p2 - p1) - (p1 - p0)
		if d == 0 {
			out[i] = p2
			continue
		}
		out[i] = p2 - (p2-p1)*(p2-p1)/d
	}
	return out
}
