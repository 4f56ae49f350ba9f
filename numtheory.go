package modclock

// GCD computes the greatest common divisor of a and b by the iterative
// Euclidean algorithm. The result is non-negative; GCD(0, 0) = 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ExtendedGCD returns (g, x, y) with g = a*x + b*y. The coefficient
// signs are whatever the recursion yields; callers normalize afterward.
func ExtendedGCD(a, b int64) (g, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := ExtendedGCD(b, a%b)
	return g, y1, x1 - (a/b)*y1
}

// ModInverse finds x in [0, m) with a*x ≡ 1 (mod m). It fails with a
// NoInverseError when gcd(a, m) ≠ 1.
func ModInverse(a, m int64) (int64, error) {
	if err := validateModulus(m); err != nil {
		return 0, err
	}
	reduced := normalize(a, m)
	g, x, _ := ExtendedGCD(reduced, m)
	if g != 1 {
		return 0, &NoInverseError{Value: a, Modulus: m}
	}
	return normalize(x, m), nil
}

// IsPrime reports whether n is prime by trial division up to √n,
// skipping even candidates after 2. Intentionally naive: the engine's
// inputs are small, so O(√n) is acceptable.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
