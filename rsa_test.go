package modclock

import (
	"errors"
	"testing"
)

func TestGenerateKeys(t *testing.T) {
	keys, err := GenerateKeys(61, 53)
	if err != nil {
		t.Fatalf("GenerateKeys(61, 53) error = %v", err)
	}

	if keys.N != 3233 {
		t.Errorf("N = %d, want 3233", keys.N)
	}
	if keys.Phi != 3120 {
		t.Errorf("Phi = %d, want 3120", keys.Phi)
	}
	// 65537 >= 3120 resets e to 3; 3 and 5 share factors with 3120, so
	// the first coprime odd candidate is 7.
	if keys.E != 7 {
		t.Errorf("E = %d, want 7", keys.E)
	}
	if keys.D != 1783 {
		t.Errorf("D = %d, want 1783", keys.D)
	}
	if keys.D*keys.E%keys.Phi != 1 {
		t.Errorf("d*e mod phi = %d, want 1", keys.D*keys.E%keys.Phi)
	}
}

func TestGenerateKeys_LargePhi(t *testing.T) {
	// phi = 330*256 = 84480 > 65537, so e keeps the standard starting
	// candidate, which is already coprime to phi.
	keys, err := GenerateKeys(331, 257)
	if err != nil {
		t.Fatalf("GenerateKeys(331, 257) error = %v", err)
	}
	if keys.Phi != 84480 {
		t.Errorf("Phi = %d, want 84480", keys.Phi)
	}
	if keys.E != 65537 {
		t.Errorf("E = %d, want 65537", keys.E)
	}
	if GCD(keys.E, keys.Phi) != 1 {
		t.Errorf("gcd(e, phi) = %d, want 1", GCD(keys.E, keys.Phi))
	}
}

func TestGenerateKeys_NotPrime(t *testing.T) {
	tests := []struct {
		name string
		p, q int64
	}{
		{"composite p", 60, 53},
		{"composite q", 61, 54},
		{"both composite", 4, 9},
		{"one", 1, 53},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateKeys(tt.p, tt.q)
			if !errors.Is(err, ErrNotPrime) {
				t.Errorf("GenerateKeys(%d, %d) error = %v, want ErrNotPrime", tt.p, tt.q, err)
			}
		})
	}
}

func TestGenerateKeys_EqualPrimes(t *testing.T) {
	if _, err := GenerateKeys(53, 53); err == nil {
		t.Error("GenerateKeys(53, 53) succeeded, want distinct-primes error")
	}
}

func TestGenerateKeys_Overflow(t *testing.T) {
	// Both prime, but p*q far exceeds MaxModulus.
	_, err := GenerateKeys(2147483647, 2147483629)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("GenerateKeys error = %v, want ErrOverflow", err)
	}
}

func TestRSA_RoundTrip(t *testing.T) {
	keys, err := GenerateKeys(61, 53)
	if err != nil {
		t.Fatalf("GenerateKeys error = %v", err)
	}

	messages := []int64{0, 1, 42, 61, 1234, 3232}
	for _, message := range messages {
		cipher, err := Encrypt(message, keys)
		if err != nil {
			t.Fatalf("Encrypt(%d) error = %v", message, err)
		}
		plain, err := Decrypt(cipher, keys)
		if err != nil {
			t.Fatalf("Decrypt(%d) error = %v", cipher, err)
		}
		if plain != message {
			t.Errorf("round trip of %d via %d gave %d", message, cipher, plain)
		}
	}
}

func TestRSA_EncryptChangesMessage(t *testing.T) {
	keys, err := GenerateKeys(61, 53)
	if err != nil {
		t.Fatalf("GenerateKeys error = %v", err)
	}
	cipher, err := Encrypt(42, keys)
	if err != nil {
		t.Fatalf("Encrypt error = %v", err)
	}
	if cipher == 42 {
		t.Error("Encrypt(42) returned the plaintext")
	}
}

func TestRSA_MessageRange(t *testing.T) {
	keys, err := GenerateKeys(61, 53)
	if err != nil {
		t.Fatalf("GenerateKeys error = %v", err)
	}

	if _, err := Encrypt(-1, keys); err == nil {
		t.Error("Encrypt(-1) succeeded, want range error")
	}
	if _, err := Encrypt(keys.N, keys); err == nil {
		t.Errorf("Encrypt(%d) succeeded, want range error", keys.N)
	}
	if _, err := Decrypt(keys.N+5, keys); err == nil {
		t.Errorf("Decrypt(%d) succeeded, want range error", keys.N+5)
	}
}
