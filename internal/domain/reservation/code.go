package reservation

import (
	"crypto/rand"
	"errors"
	"io"
	"strings"
)

const (
	// CodeLength keeps confirmation codes short enough to read over a
	// counter and type on a register.
	CodeLength = 6

	// codeAlphabet omits 0/O/1/I/L to avoid transcription mistakes.
	codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
)

var ErrInvalidCode = errors.New("invalid confirmation code")

// Code is a short human-enterable confirmation code. Comparison is
// case-insensitive; codes are stored normalized to upper case.
type Code struct {
	value string
}

func NewCode(raw string) (Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if len(normalized) != CodeLength {
		return Code{}, ErrInvalidCode
	}
	for _, r := range normalized {
		if !strings.ContainsRune(codeAlphabet, r) {
			return Code{}, ErrInvalidCode
		}
	}
	return Code{value: normalized}, nil
}

func (c Code) String() string {
	return c.value
}

func (c Code) Equals(other Code) bool {
	return c.value == other.value
}

// GenerateCode draws a fresh random code. The draw space (31^6 ≈ 887M)
// keeps collisions among live reservations rare; callers still retry on
// collision with a bounded attempt count.
func GenerateCode() (Code, error) {
	return generateCode(rand.Reader)
}

func generateCode(r io.Reader) (Code, error) {
	// Rejection sampling keeps every symbol equally likely: 248 is the
	// largest multiple of the 31-symbol alphabet below 256, so bytes past
	// it are redrawn instead of wrapping onto the first symbols.
	const limit = 256 - 256%len(codeAlphabet)

	chars := make([]byte, 0, CodeLength)
	buf := make([]byte, CodeLength)
	for len(chars) < CodeLength {
		if _, err := io.ReadFull(r, buf); err != nil {
			return Code{}, err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			chars = append(chars, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(chars) == CodeLength {
				break
			}
		}
	}
	return Code{value: string(chars)}, nil
}
