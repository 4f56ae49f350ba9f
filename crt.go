package modclock

import "fmt"

// CRTSolution is the unique solution of a congruence system modulo the
// product of its moduli.
type CRTSolution struct {
	X int64 // solution, in [0, M)
	M int64 // product of the moduli
}

// SolveCongruences solves x ≡ remainders[i] (mod moduli[i]) for all i
// by the Chinese Remainder Theorem. The moduli must be pairwise
// coprime; a non-coprime pair is rejected up front rather than
// producing a silently wrong solution. The product of the moduli must
// not exceed MaxModulus.
func SolveCongruences(remainders, moduli []int64) (*CRTSolution, error) {
	if len(remainders) != len(moduli) {
		return nil, &LengthMismatchError{Remainders: len(remainders), Moduli: len(moduli)}
	}
	if len(moduli) == 0 {
		return nil, fmt.Errorf("at least one congruence is required")
	}
	for _, m := range moduli {
		if err := validateModulus(m); err != nil {
			return nil, err
		}
	}
	for i := 0; i < len(moduli); i++ {
		for j := i + 1; j < len(moduli); j++ {
			if GCD(moduli[i], moduli[j]) != 1 {
				return nil, fmt.Errorf("%w: moduli %d and %d are not coprime", ErrNoInverse, moduli[i], moduli[j])
			}
		}
	}

	bigM := int64(1)
	for _, m := range moduli {
		product := bigM * m
		if product/m != bigM || product > MaxModulus {
			return nil, fmt.Errorf("%w: product of moduli exceeds MaxModulus (%d)", ErrOverflow, MaxModulus)
		}
		bigM = product
	}

	// x = Σ rᵢ * Mᵢ * yᵢ, accumulated mod M. Every factor is reduced
	// below M ≤ MaxModulus, so the products fit in an int64.
	x := int64(0)
	for i := range moduli {
		mi := bigM / moduli[i]
		yi, err := ModInverse(mi, moduli[i])
		if err != nil {
			return nil, err
		}
		r := normalize(remainders[i], moduli[i])
		term := r * mi % bigM * yi % bigM
		x = (x + term) % bigM
	}

	return &CRTSolution{X: x, M: bigM}, nil
}
