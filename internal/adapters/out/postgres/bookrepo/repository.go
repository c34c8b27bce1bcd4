package bookrepo

import (
	"bytes"
	"context"
	"errors"
	"sort"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBookRepository implements BookRepository using GORM.
type GormBookRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBookRepository creates a new GORM book repository.
func NewGormBookRepository(db *gorm.DB, tracker aggregateTracker) *GormBookRepository {
	return &GormBookRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new book to the database, creating author and genre rows
// that do not exist yet.
func (r *GormBookRepository) Add(ctx context.Context, aggregate *book.Book) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	var err error
	dto.Authors, err = r.resolveAuthors(ctx, aggregate.Attributes().Authors)
	if err != nil {
		return err
	}
	dto.Genres, err = r.resolveGenres(ctx, aggregate.Attributes().Genres)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing book to the database. Author and genre links
// are replaced with the aggregate's current set.
func (r *GormBookRepository) Update(ctx context.Context, aggregate *book.Book) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BookDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "Authors", "Genres").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	authors, err := r.resolveAuthors(ctx, aggregate.Attributes().Authors)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Model(&dto).Association("Authors").Replace(authors); err != nil {
		return err
	}

	genres, err := r.resolveGenres(ctx, aggregate.Attributes().Genres)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Model(&dto).Association("Genres").Replace(genres); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a book by ID.
func (r *GormBookRepository) Get(ctx context.Context, id kernel.UUID) (*book.Book, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookDTO
	err := r.db.WithContext(ctx).
		Preload("Authors").Preload("Genres").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("book", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves books by id with FOR UPDATE row locks. Rows are
// locked in ascending id order so concurrent callers acquire them in the
// same sequence. Every requested id must exist.
func (r *GormBookRepository) GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*book.Book, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}
	sort.Slice(raw, func(i, j int) bool {
		return bytes.Compare(raw[i][:], raw[j][:]) < 0
	})

	var dtos []BookDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", raw).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	if len(dtos) != len(raw) {
		found := make(map[uuid.UUID]struct{}, len(dtos))
		for _, dto := range dtos {
			found[dto.ID] = struct{}{}
		}
		for _, id := range raw {
			if _, ok := found[id]; !ok {
				return nil, errs.NewObjectNotFoundError("book", id.String())
			}
		}
	}

	// associations load after the locks are taken
	books := make([]*book.Book, 0, len(dtos))
	for _, dto := range dtos {
		if err = r.db.WithContext(ctx).Model(&dto).Association("Authors").Find(&dto.Authors); err != nil {
			return nil, err
		}
		if err = r.db.WithContext(ctx).Model(&dto).Association("Genres").Find(&dto.Genres); err != nil {
			return nil, err
		}

		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		books = append(books, aggregate)
	}

	return books, nil
}

// resolveAuthors maps author names to rows, inserting missing ones.
func (r *GormBookRepository) resolveAuthors(ctx context.Context, names []string) ([]AuthorDTO, error) {
	authors := make([]AuthorDTO, 0, len(names))
	for _, name := range names {
		dto := AuthorDTO{ID: uuid.New(), Name: name}
		err := r.db.WithContext(ctx).
			Where(AuthorDTO{Name: name}).
			Attrs(AuthorDTO{ID: dto.ID}).
			FirstOrCreate(&dto).Error
		if err != nil {
			return nil, err
		}
		authors = append(authors, dto)
	}
	return authors, nil
}

// resolveGenres maps genre names to rows, inserting missing ones.
func (r *GormBookRepository) resolveGenres(ctx context.Context, names []string) ([]GenreDTO, error) {
	genres := make([]GenreDTO, 0, len(names))
	for _, name := range names {
		dto := GenreDTO{ID: uuid.New(), Name: name}
		err := r.db.WithContext(ctx).
			Where(GenreDTO{Name: name}).
			Attrs(GenreDTO{ID: dto.ID}).
			FirstOrCreate(&dto).Error
		if err != nil {
			return nil, err
		}
		genres = append(genres, dto)
	}
	return genres, nil
}
