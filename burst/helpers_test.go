package burst_test

// scriptedRand replays a fixed sequence of draws, wrapping around at the end.
type scriptedRand struct {
	values []float64
	next   int
}

func newScriptedRand(values ...float64) *scriptedRand {
	return &scriptedRand{values: values}
}

func (r *scriptedRand) Float64() float64 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}
