package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateISBN_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"9780306406157", "9780306406157"},
		{"978-0-306-40615-7", "9780306406157"},
		{"978 0 134 49416 6", "9780134494166"},
		{"0306406152", "0306406152"},
		{"0-306-40615-2", "0306406152"},
		{"097522980X", "097522980X"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			normalized, err := ValidateISBN(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, normalized)
		})
	}
}

func TestValidateISBN_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"too short", "12345", ErrISBNLength},
		{"empty", "", ErrISBNLength},
		{"eleven digits", "97803064061", ErrISBNLength},
		{"bad isbn13 check digit", "9780306406158", ErrISBNChecksum},
		{"bad isbn10 check digit", "0306406153", ErrISBNChecksum},
		{"letters in isbn13", "97803064061AB", ErrISBNChecksum},
		{"X not in final position", "030640X152", ErrISBNChecksum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateISBN(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// Any single-digit mutation of a valid ISBN-13 must fail the checksum.
func TestValidateISBN13_SingleDigitMutationRejected(t *testing.T) {
	const valid = "9780306406157"

	for i := 0; i < len(valid); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if valid[i] == d {
				continue
			}
			mutated := valid[:i] + string(d) + valid[i+1:]
			t.Run(fmt.Sprintf("pos%d_%c", i, d), func(t *testing.T) {
				_, err := ValidateISBN(mutated)
				assert.ErrorIs(t, err, ErrISBNChecksum)
			})
		}
	}
}

func TestNormalizeISBN(t *testing.T) {
	assert.Equal(t, "9780306406157", NormalizeISBN("978-0 306-40615 7"))
	assert.Equal(t, "abc", NormalizeISBN("a-b c"))
}
