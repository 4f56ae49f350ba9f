package modclock

import "fmt"

// KeyPair holds a textbook RSA key pair generated from two small
// distinct primes. It is immutable once returned; d*e ≡ 1 (mod Phi).
type KeyPair struct {
	N   int64 // modulus, p*q
	E   int64 // public exponent
	D   int64 // private exponent
	Phi int64 // Euler totient, (p-1)*(q-1)
}

// GenerateKeys builds an RSA key pair from two distinct primes p and q.
// The public exponent starts at 65537, falls back to 3 when 65537 ≥ phi,
// and then steps through odd candidates until one is coprime to phi.
func GenerateKeys(p, q int64) (*KeyPair, error) {
	if !IsPrime(p) {
		return nil, &NotPrimeError{Value: p}
	}
	if !IsPrime(q) {
		return nil, &NotPrimeError{Value: q}
	}
	if p == q {
		return nil, fmt.Errorf("p and q must be distinct primes, both are %d", p)
	}

	n := p * q
	if n/p != q || n > MaxModulus {
		return nil, fmt.Errorf("%w: p*q exceeds MaxModulus (%d)", ErrOverflow, MaxModulus)
	}
	phi := (p - 1) * (q - 1)

	e := int64(65537)
	if e >= phi {
		e = 3
	}
	for GCD(e, phi) != 1 {
		e += 2
	}

	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, err
	}

	return &KeyPair{N: n, E: e, D: d, Phi: phi}, nil
}

// Encrypt computes message^e mod n. The message must already be a
// single integer in [0, n); there is no chunking or padding.
func Encrypt(message int64, keys *KeyPair) (int64, error) {
	if err := validateModulus(keys.N); err != nil {
		return 0, err
	}
	if message < 0 || message >= keys.N {
		return 0, fmt.Errorf("message %d out of range [0, %d)", message, keys.N)
	}
	return modpow(message, keys.E, keys.N), nil
}

// Decrypt computes ciphertext^d mod n, inverting Encrypt for any
// message in [0, n) under a valid key pair.
func Decrypt(ciphertext int64, keys *KeyPair) (int64, error) {
	if err := validateModulus(keys.N); err != nil {
		return 0, err
	}
	if ciphertext < 0 || ciphertext >= keys.N {
		return 0, fmt.Errorf("ciphertext %d out of range [0, %d)", ciphertext, keys.N)
	}
	return modpow(ciphertext, keys.D, keys.N), nil
}
