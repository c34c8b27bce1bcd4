package book

import (
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Format identifies the edition of a book a buyer can purchase. Each format
// carries its own catalog price; the chosen format is recorded on the order
// line as its version tag.
type Format int

const (
	// UnknownFormat represents an invalid or undefined format.
	// This value (0) helps catch uninitialized Format values.
	UnknownFormat Format = iota

	Hardcover
	Paperback
	Ebook
	Audiobook
)

func getFormatStrings() map[Format]string {
	return map[Format]string{
		UnknownFormat: "UNKNOWN",
		Hardcover:     "HARDCOVER",
		Paperback:     "PAPERBACK",
		Ebook:         "EBOOK",
		Audiobook:     "AUDIOBOOK",
	}
}

func getValidFormatStrings() map[Format]string {
	//nolint:exhaustive // UnknownFormat is intentionally excluded as it's invalid
	return map[Format]string{
		Hardcover: "HARDCOVER",
		Paperback: "PAPERBACK",
		Ebook:     "EBOOK",
		Audiobook: "AUDIOBOOK",
	}
}

// FormatFromString parses the wire/persistence label of a format.
// Returns an error for unrecognized labels.
func FormatFromString(s string) (Format, error) {
	for format, label := range getValidFormatStrings() {
		if label == s {
			return format, nil
		}
	}
	return UnknownFormat, errs.NewValueIsInvalidErrorWithCause(
		"format is invalid",
		fmt.Errorf("%q is not a valid format", s),
	)
}

// Validate checks if the Format value is one of the four sellable formats.
func (f Format) Validate() error {
	if _, ok := getValidFormatStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"format is invalid",
			fmt.Errorf("%d is not a valid format", f),
		)
	}
	return nil
}

// String returns the persistence label of the format.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (f Format) String() string {
	if str, ok := getFormatStrings()[f]; ok {
		return str
	}
	return "UNKNOWN"
}
