package http

import (
	"net/http"
	"strconv"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type bookListItem struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Type           string   `json:"type"`
	Cover          string   `json:"cover"`
	Authors        []string `json:"authors"`
	PriceHardcover int64    `json:"price_hardcover"`
	RatingAverage  float64  `json:"rating_average"`
	BestSeller     bool     `json:"best_seller"`
	OnOffer        bool     `json:"on_offer"`
	Stock          int      `json:"stock"`
}

type bookDetail struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"published_date"`
	Description   string   `json:"description"`
	Type          string   `json:"type"`
	PageCount     int      `json:"page_count"`
	ISBN13        string   `json:"isbn13"`
	Cover         string   `json:"cover"`
	Authors       []string `json:"authors"`
	Genres        []string `json:"genres"`

	PriceHardcover int64 `json:"price_hardcover"`
	PricePaperback int64 `json:"price_paperback"`
	PriceEbook     int64 `json:"price_ebook"`
	PriceAudiobook int64 `json:"price_audiobook"`

	RatingAverage float64 `json:"rating_average"`
	RatingTotal   int     `json:"rating_total"`

	ReviewText   string `json:"review_text,omitempty"`
	ReviewDate   string `json:"review_date,omitempty"`
	ReviewAuthor string `json:"review_author,omitempty"`

	BestSeller bool `json:"best_seller"`
	Ebook      bool `json:"ebook"`
	Audiobook  bool `json:"audiobook"`
	OnOffer    bool `json:"on_offer"`
	OnDisplay  bool `json:"on_display"`

	Stock int `json:"stock"`
}

type createBookRequest struct {
	Title         string   `json:"title"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"published_date"`
	Description   string   `json:"description"`
	Type          string   `json:"type"`
	PageCount     int      `json:"page_count"`
	ISBN13        string   `json:"isbn13"`
	Cover         string   `json:"cover"`
	Authors       []string `json:"authors"`
	Genres        []string `json:"genres"`

	ReviewText   string `json:"review_text"`
	ReviewDate   string `json:"review_date"`
	ReviewAuthor string `json:"review_author"`

	BestSeller bool `json:"best_seller"`
	Ebook      bool `json:"ebook"`
	Audiobook  bool `json:"audiobook"`
	OnOffer    bool `json:"on_offer"`
	OnDisplay  bool `json:"on_display"`

	PriceHardcover int64 `json:"price_hardcover"`
	PricePaperback int64 `json:"price_paperback"`
	PriceEbook     int64 `json:"price_ebook"`
	PriceAudiobook int64 `json:"price_audiobook"`

	Stock int `json:"stock"`
}

// GetBooks handles GET /api/v1/books - lists the catalog with filters.
func (s *Server) GetBooks(ctx echo.Context) error {
	filter := queries.BookFilter{
		Author:     ctx.QueryParam("author"),
		Genre:      ctx.QueryParam("genre"),
		Type:       ctx.QueryParam("type"),
		Publisher:  ctx.QueryParam("publisher"),
		Search:     ctx.QueryParam("search"),
		Sort:       ctx.QueryParam("sort"),
		BestSeller: ctx.QueryParam("best_seller") == "true",
		OnOffer:    ctx.QueryParam("on_offer") == "true",
		OnDisplay:  ctx.QueryParam("on_display") == "true",
	}

	page := intQueryParam(ctx, "page", 1)
	pageSize := intQueryParam(ctx, "page_size", 0)

	query, err := queries.NewGetBooksQuery(filter, page, pageSize)
	if err != nil {
		return respond(ctx, err)
	}

	books, err := s.queries.GetBooks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respond(ctx, err)
	}

	response := make([]bookListItem, len(books))
	for i, item := range books {
		response[i] = bookListItem{
			ID:             item.ID.String(),
			Title:          item.Title,
			Type:           item.Type,
			Cover:          item.Cover,
			Authors:        item.Authors,
			PriceHardcover: int64(item.PriceHardcover),
			RatingAverage:  item.RatingAverage,
			BestSeller:     item.BestSeller,
			OnOffer:        item.OnOffer,
			Stock:          item.Stock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBook handles GET /api/v1/books/:bookID - one book's catalog page.
func (s *Server) GetBook(ctx echo.Context) error {
	bookID, err := kernel.UUIDFromString(ctx.Param("bookID"))
	if err != nil {
		return respond(ctx, err)
	}

	query, err := queries.NewGetBookQuery(bookID)
	if err != nil {
		return respond(ctx, err)
	}

	item, err := s.queries.GetBook.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respond(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bookDetail{
		ID:            item.ID.String(),
		Title:         item.Title,
		Publisher:     item.Publisher,
		PublishedDate: item.PublishedDate,
		Description:   item.Description,
		Type:          item.Type,
		PageCount:     item.PageCount,
		ISBN13:        item.ISBN13,
		Cover:         item.Cover,
		Authors:       item.Authors,
		Genres:        item.Genres,

		PriceHardcover: int64(item.PriceHardcover),
		PricePaperback: int64(item.PricePaperback),
		PriceEbook:     int64(item.PriceEbook),
		PriceAudiobook: int64(item.PriceAudiobook),

		RatingAverage: item.RatingAverage,
		RatingTotal:   item.RatingTotal,

		ReviewText:   item.ReviewText,
		ReviewDate:   item.ReviewDate,
		ReviewAuthor: item.ReviewAuthor,

		BestSeller: item.BestSeller,
		Ebook:      item.Ebook,
		Audiobook:  item.Audiobook,
		OnOffer:    item.OnOffer,
		OnDisplay:  item.OnDisplay,

		Stock: item.Stock,
	})
}

// GetAuthorStatistics handles GET /api/v1/authors/:name/statistics.
func (s *Server) GetAuthorStatistics(ctx echo.Context) error {
	query, err := queries.NewGetAuthorStatisticsQuery(ctx.Param("name"))
	if err != nil {
		return respond(ctx, err)
	}

	stats, err := s.queries.GetAuthorStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respond(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"author_name":    stats.AuthorName,
		"about":          stats.About,
		"total_books":    stats.TotalBooks,
		"best_sellers":   stats.BestSellers,
		"rating_average": stats.RatingAverage,
		"rating_total":   stats.RatingTotal,
	})
}

// GetSimilarBooks handles GET /api/v1/books/:bookID/similar - up to five
// other books sharing a genre with the given one.
func (s *Server) GetSimilarBooks(ctx echo.Context) error {
	bookID, err := kernel.UUIDFromString(ctx.Param("bookID"))
	if err != nil {
		return respond(ctx, err)
	}

	query, err := queries.NewGetSimilarBooksQuery(bookID)
	if err != nil {
		return respond(ctx, err)
	}

	books, err := s.queries.GetSimilarBooks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respond(ctx, err)
	}

	response := make([]bookListItem, len(books))
	for i, item := range books {
		response[i] = bookListItem{
			ID:             item.ID.String(),
			Title:          item.Title,
			Type:           item.Type,
			Cover:          item.Cover,
			Authors:        item.Authors,
			PriceHardcover: int64(item.PriceHardcover),
			RatingAverage:  item.RatingAverage,
			BestSeller:     item.BestSeller,
			OnOffer:        item.OnOffer,
			Stock:          item.Stock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPopularAuthors handles GET /api/v1/genres/:name/popular-authors.
func (s *Server) GetPopularAuthors(ctx echo.Context) error {
	query, err := queries.NewGetPopularAuthorsQuery(ctx.Param("name"))
	if err != nil {
		return respond(ctx, err)
	}

	authors, err := s.queries.GetPopularAuthors.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respond(ctx, err)
	}

	response := make([]echo.Map, len(authors))
	for i, author := range authors {
		response[i] = echo.Map{
			"name":           author.Name,
			"books":          author.Books,
			"average_rating": author.RatingAverage,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateBook handles POST /api/v1/books - adds a catalog entry (staff only).
func (s *Server) CreateBook(ctx echo.Context) error {
	var request createBookRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, "validation_error",
			"Invalid request body")
	}

	bookID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookCommand(bookID,
		book.Attributes{
			Title:         request.Title,
			Publisher:     request.Publisher,
			PublishedDate: request.PublishedDate,
			Description:   request.Description,
			Type:          request.Type,
			PageCount:     request.PageCount,
			ISBN13:        request.ISBN13,
			Cover:         request.Cover,
			Authors:       request.Authors,
			Genres:        request.Genres,
			CuratedReview: book.CuratedReview{
				Text:   request.ReviewText,
				Date:   request.ReviewDate,
				Author: request.ReviewAuthor,
			},
			Flags: book.Flags{
				BestSeller: request.BestSeller,
				Ebook:      request.Ebook,
				Audiobook:  request.Audiobook,
				OnOffer:    request.OnOffer,
				OnDisplay:  request.OnDisplay,
			},
		},
		book.Prices{
			Hardcover: kernel.Cents(request.PriceHardcover),
			Paperback: kernel.Cents(request.PricePaperback),
			Ebook:     kernel.Cents(request.PriceEbook),
			Audiobook: kernel.Cents(request.PriceAudiobook),
		},
		request.Stock,
	)
	if err != nil {
		return respond(ctx, err)
	}

	if err = s.commands.CreateBook.Handle(ctx.Request().Context(), cmd); err != nil {
		return respond(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"book_id": bookID.String()})
}

// intQueryParam parses an integer query parameter, falling back to a
// default for missing or malformed values.
func intQueryParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
