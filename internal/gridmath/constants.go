package gridmath

// Approximate-equality parameters.
const (
	// machineEpsilon is the difference between 1.0 and the next
	// representable float64 (2^-52).
	machineEpsilon = 0x1p-52

	// approxEqualFactor widens the equality band beyond one ULP so that
	// values that drifted apart over a handful of operations still
	// compare equal.
	approxEqualFactor = 5.0
)
