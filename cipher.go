package modclock

import "strings"

const alphabetSize = 26

// Cipher is a classical substitution cipher over the Latin alphabet.
// Apply uppercases the text and transforms only A-Z; every other
// character passes through unchanged in its original position.
type Cipher interface {
	Apply(text string, decrypt bool) (string, error)
}

// Caesar shifts each letter by a fixed amount. Any integer shift is
// accepted, including negative values and values beyond 25.
type Caesar struct {
	Shift int
}

// Apply implements the Cipher interface.
func (c Caesar) Apply(text string, decrypt bool) (string, error) {
	shift := ((c.Shift % alphabetSize) + alphabetSize) % alphabetSize
	if decrypt {
		shift = (alphabetSize - shift) % alphabetSize
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToUpper(text) {
		if r >= 'A' && r <= 'Z' {
			r = 'A' + (r-'A'+rune(shift))%alphabetSize
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Vigenere shifts each letter by the next letter of a cycled keyword.
// The key position advances only when a letter is actually transformed,
// and the position counter is local to each Apply call.
type Vigenere struct {
	Keyword string
}

// Apply implements the Cipher interface. It fails with an
// InvalidKeyError when the keyword is empty or contains non-letters.
func (v Vigenere) Apply(text string, decrypt bool) (string, error) {
	key := strings.ToUpper(v.Keyword)
	if key == "" {
		return "", &InvalidKeyError{Key: v.Keyword, Reason: "keyword must not be empty"}
	}
	for _, r := range key {
		if r < 'A' || r > 'Z' {
			return "", &InvalidKeyError{Key: v.Keyword, Reason: "keyword must contain only letters"}
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	keyIndex := 0
	for _, r := range strings.ToUpper(text) {
		if r >= 'A' && r <= 'Z' {
			shift := int(key[keyIndex%len(key)] - 'A')
			if decrypt {
				shift = -shift
			}
			r = 'A' + rune(((int(r-'A')+shift)%alphabetSize+alphabetSize)%alphabetSize)
			keyIndex++
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// CaesarCipher encrypts (or, with decrypt set, decrypts) text with a
// Caesar shift.
func CaesarCipher(text string, shift int, decrypt bool) (string, error) {
	return Caesar{Shift: shift}.Apply(text, decrypt)
}

// VigenereCipher encrypts (or, with decrypt set, decrypts) text with a
// Vigenère keyword.
func VigenereCipher(text, keyword string, decrypt bool) (string, error) {
	return Vigenere{Keyword: keyword}.Apply(text, decrypt)
}
