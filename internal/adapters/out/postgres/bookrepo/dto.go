// Package bookrepo provides data transfer objects and mapping functions for
// book persistence. It implements the repository pattern for the catalog
// aggregate, handling conversion between domain entities and database rows.
package bookrepo

import (
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookDTO represents the database structure for persisting book aggregates.
// Authors and genres live in their own tables with many-to-many join tables.
type BookDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"index"`
	Publisher     string
	PublishedDate string
	Description   string
	Type          string `gorm:"index"`
	PageCount     int
	ISBN13        string `gorm:"column:isbn13"`
	Cover         string

	ReviewText   string
	ReviewDate   string
	ReviewAuthor string

	BestSeller bool `gorm:"index"`
	Ebook      bool
	Audiobook  bool
	OnOffer    bool
	OnDisplay  bool

	PriceHardcover int64
	PricePaperback int64
	PriceEbook     int64
	PriceAudiobook int64

	RatingAverage float64
	RatingTotal   int
	RatingOne     int
	RatingTwo     int
	RatingThree   int
	RatingFour    int
	RatingFive    int

	Stock int

	Authors []AuthorDTO `gorm:"many2many:book_authors;joinForeignKey:BookID;joinReferences:AuthorID"`
	Genres  []GenreDTO  `gorm:"many2many:book_genres;joinForeignKey:BookID;joinReferences:GenreID"`
}

// TableName overrides GORM's default naming convention.
func (BookDTO) TableName() string {
	return "books"
}

// AuthorDTO represents one author row. Names are unique.
type AuthorDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"uniqueIndex"`
	About string
}

// TableName overrides GORM's default naming convention.
func (AuthorDTO) TableName() string {
	return "authors"
}

// GenreDTO represents one genre row. Names are unique.
type GenreDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex"`
}

// TableName overrides GORM's default naming convention.
func (GenreDTO) TableName() string {
	return "genres"
}

// fromDomain converts a book aggregate to its database representation.
// Author and genre rows are resolved separately by the repository.
func fromDomain(aggregate *book.Book) BookDTO {
	attrs := aggregate.Attributes()
	prices := aggregate.Prices()
	rating := aggregate.Rating()

	return BookDTO{
		ID:            aggregate.ID().Bytes(),
		Title:         attrs.Title,
		Publisher:     attrs.Publisher,
		PublishedDate: attrs.PublishedDate,
		Description:   attrs.Description,
		Type:          attrs.Type,
		PageCount:     attrs.PageCount,
		ISBN13:        attrs.ISBN13,
		Cover:         attrs.Cover,

		ReviewText:   attrs.CuratedReview.Text,
		ReviewDate:   attrs.CuratedReview.Date,
		ReviewAuthor: attrs.CuratedReview.Author,

		BestSeller: attrs.Flags.BestSeller,
		Ebook:      attrs.Flags.Ebook,
		Audiobook:  attrs.Flags.Audiobook,
		OnOffer:    attrs.Flags.OnOffer,
		OnDisplay:  attrs.Flags.OnDisplay,

		PriceHardcover: int64(prices.Hardcover),
		PricePaperback: int64(prices.Paperback),
		PriceEbook:     int64(prices.Ebook),
		PriceAudiobook: int64(prices.Audiobook),

		RatingAverage: rating.Average,
		RatingTotal:   rating.Total,
		RatingOne:     rating.OneStar,
		RatingTwo:     rating.TwoStar,
		RatingThree:   rating.ThreeStar,
		RatingFour:    rating.FourStar,
		RatingFive:    rating.FiveStar,

		Stock: aggregate.Stock(),
	}
}

// toDomain converts a database DTO to a book aggregate using RestoreBook.
func toDomain(dto BookDTO) (*book.Book, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	authors := make([]string, 0, len(dto.Authors))
	for _, author := range dto.Authors {
		authors = append(authors, author.Name)
	}

	genres := make([]string, 0, len(dto.Genres))
	for _, genre := range dto.Genres {
		genres = append(genres, genre.Name)
	}

	attrs := book.Attributes{
		Title:         dto.Title,
		Publisher:     dto.Publisher,
		PublishedDate: dto.PublishedDate,
		Description:   dto.Description,
		Type:          dto.Type,
		PageCount:     dto.PageCount,
		ISBN13:        dto.ISBN13,
		Cover:         dto.Cover,
		Authors:       authors,
		Genres:        genres,
		CuratedReview: book.CuratedReview{
			Text:   dto.ReviewText,
			Date:   dto.ReviewDate,
			Author: dto.ReviewAuthor,
		},
		Flags: book.Flags{
			BestSeller: dto.BestSeller,
			Ebook:      dto.Ebook,
			Audiobook:  dto.Audiobook,
			OnOffer:    dto.OnOffer,
			OnDisplay:  dto.OnDisplay,
		},
	}

	prices := book.Prices{
		Hardcover: kernel.Cents(dto.PriceHardcover),
		Paperback: kernel.Cents(dto.PricePaperback),
		Ebook:     kernel.Cents(dto.PriceEbook),
		Audiobook: kernel.Cents(dto.PriceAudiobook),
	}

	rating := book.Rating{
		Average:   dto.RatingAverage,
		Total:     dto.RatingTotal,
		OneStar:   dto.RatingOne,
		TwoStar:   dto.RatingTwo,
		ThreeStar: dto.RatingThree,
		FourStar:  dto.RatingFour,
		FiveStar:  dto.RatingFive,
	}

	return book.RestoreBook(id, attrs, prices, rating, dto.Stock)
}
