package book

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

// Prices is the per-format price list of a book. All four formats always
// carry a price; whether the ebook/audiobook editions are actually sellable
// is controlled by the availability flags on the Book.
type Prices struct {
	Hardcover kernel.Cents
	Paperback kernel.Cents
	Ebook     kernel.Cents
	Audiobook kernel.Cents
}

// Validate rejects negative amounts in any format.
func (p Prices) Validate() error {
	return errors.Join(
		p.Hardcover.Validate(),
		p.Paperback.Validate(),
		p.Ebook.Validate(),
		p.Audiobook.Validate(),
	)
}

// For returns the price of the given format.
func (p Prices) For(format Format) (kernel.Cents, error) {
	switch format {
	case Hardcover:
		return p.Hardcover, nil
	case Paperback:
		return p.Paperback, nil
	case Ebook:
		return p.Ebook, nil
	case Audiobook:
		return p.Audiobook, nil
	default:
		return 0, format.Validate()
	}
}

// Rating holds the aggregated review figures of a book: the running average,
// the total number of ratings, and the count per star bucket. It is a plain
// value object; recalculation happens outside the order pipeline.
type Rating struct {
	Average   float64
	Total     int
	OneStar   int
	TwoStar   int
	ThreeStar int
	FourStar  int
	FiveStar  int
}

// Validate rejects averages outside [0, 5] and negative bucket counts.
func (r Rating) Validate() error {
	if r.Average < 0 || r.Average > 5 {
		return errs.NewValueIsOutOfRangeError("rating average", r.Average, 0, 5)
	}
	for _, count := range []int{r.Total, r.OneStar, r.TwoStar, r.ThreeStar, r.FourStar, r.FiveStar} {
		if count < 0 {
			return errs.NewValueIsInvalidError("rating counts must not be negative")
		}
	}
	return nil
}
