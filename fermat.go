package modclock

// fermatTraceLimit caps the illustrative step trace so it stays short
// for large primes.
const fermatTraceLimit = 10

// FermatStep is one entry of the illustrative trace: a^Exponent mod p.
type FermatStep struct {
	Exponent int64
	Result   int64
}

// FermatResult holds a^(p-1) mod p and the ordered step trace.
type FermatResult struct {
	Result int64
	Steps  []FermatStep
}

// VerifyFermat computes a^(p-1) mod p for a prime p, together with a
// trace of a^i mod p for i = 1..min(10, p-1). When gcd(a, p) = 1 the
// result is 1 by Fermat's Little Theorem; when p divides a the result
// is 0, and callers must not assume the theorem's conclusion.
func VerifyFermat(a, p int64) (*FermatResult, error) {
	if err := validateModulus(p); err != nil {
		return nil, err
	}
	if !IsPrime(p) {
		return nil, &NotPrimeError{Value: p}
	}

	result := modpow(a, p-1, p)

	limit := int64(fermatTraceLimit)
	if p-1 < limit {
		limit = p - 1
	}
	steps := make([]FermatStep, 0, limit)
	for i := int64(1); i <= limit; i++ {
		steps = append(steps, FermatStep{Exponent: i, Result: modpow(a, i, p)})
	}

	return &FermatResult{Result: result, Steps: steps}, nil
}
