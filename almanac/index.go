package almanac

// WrapIndex maps any integer onto [0, n), modulo n, n must be positive
func WrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

// ClampIndex limits i to [0, n-1], n must be positive
func ClampIndex(i, n int) int {
	return max(0, min(i, n-1))
}
