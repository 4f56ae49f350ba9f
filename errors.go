package modclock

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrNotPrime is returned when a required prime argument fails primality.
	ErrNotPrime = errors.New("argument must be prime")

	// ErrNoInverse is returned when a modular inverse does not exist.
	ErrNoInverse = errors.New("modular inverse does not exist")

	// ErrLengthMismatch is returned when a congruence system has unequal
	// remainder and modulus counts.
	ErrLengthMismatch = errors.New("remainders and moduli must have the same length")

	// ErrInvalidKey is returned when a cipher key is unusable.
	ErrInvalidKey = errors.New("invalid cipher key")

	// ErrInvalidModulus is returned when a modulus is non-positive or out
	// of the supported range.
	ErrInvalidModulus = errors.New("invalid modulus")

	// ErrNegativeExponent is returned when ModPow is given exp < 0.
	ErrNegativeExponent = errors.New("exponent must be non-negative")

	// ErrOverflow is returned when an intermediate product would exceed
	// the supported integer range.
	ErrOverflow = errors.New("result exceeds the supported integer range")
)

// EngineError is implemented by all engine errors.
type EngineError interface {
	error
	EngineError() // marker method
}

// NotPrimeError reports a composite (or sub-2) value where a prime was
// required.
type NotPrimeError struct {
	Value int64
}

func (e *NotPrimeError) Error() string {
	return fmt.Sprintf("%d is not prime", e.Value)
}

// Is implements errors.Is for sentinel error matching.
func (e *NotPrimeError) Is(target error) bool {
	return target == ErrNotPrime
}

// EngineError implements the EngineError interface.
func (e *NotPrimeError) EngineError() {}

// NoInverseError reports a value with no inverse under the given modulus.
type NoInverseError struct {
	Value   int64
	Modulus int64
}

func (e *NoInverseError) Error() string {
	return fmt.Sprintf("%d has no inverse modulo %d", e.Value, e.Modulus)
}

// Is implements errors.Is for sentinel error matching.
func (e *NoInverseError) Is(target error) bool {
	return target == ErrNoInverse
}

// EngineError implements the EngineError interface.
func (e *NoInverseError) EngineError() {}

// LengthMismatchError reports a congruence system whose remainder and
// modulus slices differ in length.
type LengthMismatchError struct {
	Remainders int
	Moduli     int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("got %d remainders and %d moduli", e.Remainders, e.Moduli)
}

// Is implements errors.Is for sentinel error matching.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// EngineError implements the EngineError interface.
func (e *LengthMismatchError) EngineError() {}

// InvalidKeyError reports an unusable cipher key.
type InvalidKeyError struct {
	Key    string
	Reason string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key %q: %s", e.Key, e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// EngineError implements the EngineError interface.
func (e *InvalidKeyError) EngineError() {}

// InvalidModulusError reports a modulus outside the supported range.
type InvalidModulusError struct {
	Modulus int64
	Reason  string
}

func (e *InvalidModulusError) Error() string {
	return fmt.Sprintf("invalid modulus %d: %s", e.Modulus, e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidModulusError) Is(target error) bool {
	return target == ErrInvalidModulus
}

// EngineError implements the EngineError interface.
func (e *InvalidModulusError) EngineError() {}
