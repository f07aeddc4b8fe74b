package utils

import (
	"errors"
	"strings"
)

var (
	ErrISBNLength   = errors.New("ISBN must be 10 or 13 digits")
	ErrISBNChecksum = errors.New("invalid ISBN check digit")
)

// NormalizeISBN strips hyphens and spaces from an ISBN string.
func NormalizeISBN(isbn string) string {
	isbn = strings.ReplaceAll(isbn, "-", "")
	return strings.ReplaceAll(isbn, " ", "")
}

// ValidateISBN normalizes the input and verifies the ISBN-10 or ISBN-13
// checksum depending on the detected length. Returns the normalized form.
func ValidateISBN(isbn string) (string, error) {
	normalized := NormalizeISBN(isbn)

	switch len(normalized) {
	case 10:
		if !validISBN10(normalized) {
			return "", ErrISBNChecksum
		}
	case 13:
		if !validISBN13(normalized) {
			return "", ErrISBNChecksum
		}
	default:
		return "", ErrISBNLength
	}

	return normalized, nil
}

// validISBN10 computes the weighted sum over all ten characters.
// 'X' is only valid as the final check digit and counts as 10.
func validISBN10(isbn string) bool {
	sum := 0
	for i, ch := range isbn {
		var digit int
		switch {
		case ch >= '0' && ch <= '9':
			digit = int(ch - '0')
		case ch == 'X' && i == 9:
			digit = 10
		default:
			return false
		}
		sum += (i + 1) * digit
	}
	return sum%11 == 0
}

// validISBN13 alternates 1/3 weights over the first twelve digits and
// compares the derived check digit against the last one.
func validISBN13(isbn string) bool {
	sum := 0
	for i := 0; i < 12; i++ {
		ch := isbn[i]
		if ch < '0' || ch > '9' {
			return false
		}
		digit := int(ch - '0')
		if i%2 == 0 {
			sum += digit
		} else {
			sum += digit * 3
		}
	}

	last := isbn[12]
	if last < '0' || last > '9' {
		return false
	}

	return (10-sum%10)%10 == int(last-'0')
}
