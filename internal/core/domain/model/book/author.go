package book

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var (
	ErrAuthorIsNotConstructed = errors.New("Author must be created via NewAuthor")
	ErrGenreIsNotConstructed  = errors.New("Genre must be created via NewGenre")
)

// Author is a catalog reference entity. Authors link to books many-to-many;
// the (author, book) pair is unique at the persistence layer.
type Author struct {
	id    kernel.UUID
	name  string
	about string

	isConstructed bool
}

// NewAuthor creates an author. Name is required and unique across the catalog.
func NewAuthor(id kernel.UUID, name, about string) (*Author, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	return &Author{id: id, name: name, about: about, isConstructed: true}, nil
}

// Validate ensures the Author was created via NewAuthor.
func (a *Author) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAuthorIsNotConstructed
	}
	return nil
}

// ID returns the author's unique identifier.
func (a *Author) ID() kernel.UUID { return a.id }

// Name returns the author's display name.
func (a *Author) Name() string { return a.name }

// About returns the optional biography text.
func (a *Author) About() string { return a.about }

// Genre is a catalog reference entity. Genres link to books many-to-many;
// the (genre, book) pair is unique at the persistence layer.
type Genre struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewGenre creates a genre. Name is required and unique across the catalog.
func NewGenre(id kernel.UUID, name string) (*Genre, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	return &Genre{id: id, name: name, isConstructed: true}, nil
}

// Validate ensures the Genre was created via NewGenre.
func (g *Genre) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrGenreIsNotConstructed
	}
	return nil
}

// ID returns the genre's unique identifier.
func (g *Genre) ID() kernel.UUID { return g.id }

// Name returns the genre's display name.
func (g *Genre) Name() string { return g.name }
