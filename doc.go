// Package modclock implements a small number-theory and
// classical-cryptography computation engine: modular arithmetic,
// GCD/extended-GCD and modular inverses, trial-division primality,
// Caesar and Vigenère ciphers, textbook RSA key mechanics, the Chinese
// Remainder Theorem, and Fermat's Little Theorem.
//
// Every operation is a pure, deterministic function of its inputs; the
// engine holds no state between calls and is safe for concurrent use.
// Arithmetic is fixed-width int64 with every modulus capped at
// MaxModulus so intermediate products never overflow.
//
// Basic usage:
//
//	keys, err := modclock.GenerateKeys(61, 53)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cipher, err := modclock.Encrypt(42, keys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	message, err := modclock.Decrypt(cipher, keys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(message) // 42
//
// This is a teaching engine, not a production cryptography library: it
// uses small primes, no padding, and makes no attempt to resist timing
// side channels.
package modclock
