package tfdrawer

// truncToByte truncates toward zero, clamped to [0,255]. Matches the
// behavior of casting a non-negative float to an 8-bit unsigned integer.
func truncToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// clampToByte rounds to nearest, clamped to [0,255].
func clampToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
