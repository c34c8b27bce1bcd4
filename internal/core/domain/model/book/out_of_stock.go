package book

import (
	"errors"
	"fmt"
	"strings"

	"bookstore/internal/core/domain/model/kernel"
)

// ErrOutOfStock classifies stock-sufficiency rejections for errors.Is.
var ErrOutOfStock = errors.New("out of stock")

// Shortage describes one book whose stock cannot cover a requested quantity.
type Shortage struct {
	BookID    kernel.UUID
	Requested int
	Available int
}

// OutOfStockError rejects a checkout commit whose line items exceed available
// stock. It carries every insufficient line, not just the first one, so the
// client can fix the whole cart in one pass. Nothing has been mutated when
// this error is returned.
type OutOfStockError struct {
	Shortages []Shortage
}

// NewOutOfStockError creates an OutOfStockError from one or more shortages.
func NewOutOfStockError(shortages ...Shortage) *OutOfStockError {
	return &OutOfStockError{Shortages: shortages}
}

func (e *OutOfStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("book %s: requested %d, available %d",
			s.BookID, s.Requested, s.Available))
	}
	return fmt.Sprintf("%s: %s", ErrOutOfStock, strings.Join(parts, "; "))
}

func (e *OutOfStockError) Unwrap() error {
	return ErrOutOfStock
}
