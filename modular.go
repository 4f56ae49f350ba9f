package modclock

import "fmt"

// MaxModulus is the largest supported modulus, ⌊√(2⁶³−1)⌋. Capping every
// modulus here guarantees that the product of two reduced residues fits
// in an int64, so no operation can silently wrap.
const MaxModulus int64 = 3037000499

// validateModulus rejects moduli outside (0, MaxModulus].
func validateModulus(m int64) error {
	if m <= 0 {
		return &InvalidModulusError{Modulus: m, Reason: "must be positive"}
	}
	if m > MaxModulus {
		return &InvalidModulusError{Modulus: m, Reason: fmt.Sprintf("exceeds MaxModulus (%d)", MaxModulus)}
	}
	return nil
}

// normalize reduces a into [0, m). The caller has already validated m.
func normalize(a, m int64) int64 {
	return (a%m + m) % m
}

// ModAdd computes (a + b) mod m, normalized into [0, m).
func ModAdd(a, b, m int64) (int64, error) {
	if err := validateModulus(m); err != nil {
		return 0, err
	}
	return normalize(normalize(a, m)+normalize(b, m), m), nil
}

// ModSub computes (a - b) mod m, normalized into [0, m).
func ModSub(a, b, m int64) (int64, error) {
	if err := validateModulus(m); err != nil {
		return 0, err
	}
	return normalize(normalize(a, m)-normalize(b, m), m), nil
}

// ModMul computes (a * b) mod m, normalized into [0, m). Operands are
// reduced before multiplying so the product fits in an int64.
func ModMul(a, b, m int64) (int64, error) {
	if err := validateModulus(m); err != nil {
		return 0, err
	}
	return normalize(a, m) * normalize(b, m) % m, nil
}

// ModPow computes base^exp mod m by binary exponentiation, using
// O(log exp) modular multiplications. exp must be non-negative.
// For m = 1 the result is 0 for any base and exponent.
func ModPow(base, exp, m int64) (int64, error) {
	if err := validateModulus(m); err != nil {
		return 0, err
	}
	if exp < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNegativeExponent, exp)
	}
	return modpow(base, exp, m), nil
}

// modpow is the square-and-multiply core. Preconditions (exp >= 0,
// 0 < m <= MaxModulus) are enforced by the exported callers.
func modpow(base, exp, m int64) int64 {
	if m == 1 {
		return 0
	}
	result := int64(1)
	base = normalize(base, m)
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % m
		}
		exp >>= 1
		base = base * base % m
	}
	return result
}
