package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "bookstore/internal/adapters/out/postgres"
	"bookstore/internal/adapters/out/postgres/bookrepo"
	"bookstore/internal/adapters/out/postgres/cartrepo"
	"bookstore/internal/adapters/out/postgres/checkoutrepo"
	"bookstore/internal/adapters/out/postgres/newsletterrepo"
	"bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/adapters/out/postgres/userrepo"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts the PostgreSQL container and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&bookrepo.BookDTO{},
		&bookrepo.AuthorDTO{},
		&bookrepo.GenreDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
		&checkoutrepo.CheckoutDTO{},
		&newsletterrepo.SubscriptionDTO{},
		&userrepo.UserDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables so tests do not interfere.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		order_items, orders,
		cart_items, carts,
		checkouts,
		book_authors, book_genres, books, authors, genres,
		newsletter_subscriptions, users`).Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.BookRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.CartRepository())
	suite.NotNil(uow2.UserRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testBook := createTestBook(suite.T(), 5)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.BookRepository().Add(ctx, testBook)
	suite.Require().NoError(err)

	retrieved, err := uow.BookRepository().Get(ctx, testBook.ID())
	suite.Require().NoError(err)
	suite.Equal(testBook.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.BookRepository().Get(ctx, testBook.ID())
	suite.Require().NoError(err)
	suite.Equal(testBook.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testBook := createTestBook(suite.T(), 5)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.BookRepository().Add(ctx, testBook)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.BookRepository().Get(ctx, testBook.ID())
	suite.Require().Error(err, "Book should not exist after rollback")
}

// TestUnitOfWork_MultiRepositoryTransaction walks the checkout commit write
// set: decrement stock, create the order, all in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testBook := createTestBook(suite.T(), 5)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.BookRepository().Add(ctx, testBook)
	suite.Require().NoError(err)

	locked, err := uow.BookRepository().GetForUpdate(ctx, []kernel.UUID{testBook.ID()})
	suite.Require().NoError(err)
	suite.Require().Len(locked, 1)

	err = locked[0].Reserve(2)
	suite.Require().NoError(err)
	err = uow.BookRepository().Update(ctx, locked[0])
	suite.Require().NoError(err)

	line, err := order.NewLine(testBook.ID(), 2, "HARDCOVER", 3999)
	suite.Require().NoError(err)
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Customer{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Address: "12 Analytical Lane, London",
	}, "standard", 500, 660, []order.Line{line}, time.Now())
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	persistedBook, err := newUow.BookRepository().Get(ctx, testBook.ID())
	suite.Require().NoError(err)
	suite.Equal(3, persistedBook.Stock())

	persistedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, persistedOrder.Status())
	suite.Equal(testOrder.OrderAmount(), persistedOrder.OrderAmount())
}

// TestUnitOfWork_ConcurrentReservations_OnlyOneSucceeds drives two
// transactions against the same book at once: stock 5, one asking for 3
// and one for 4. The row lock taken by GetForUpdate must serialize them,
// so exactly one reservation lands and the loser sees the winner's
// decremented stock and fails sufficiency. A combined oversell (stock
// going negative) must be impossible.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentReservations_OnlyOneSucceeds() {
	ctx := context.Background()

	testBook := createTestBook(suite.T(), 5)

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.BookRepository().Add(ctx, testBook))
	suite.Require().NoError(setup.Commit(ctx))

	reserve := func(quantity int) error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		locked, err := uow.BookRepository().GetForUpdate(ctx, []kernel.UUID{testBook.ID()})
		if err != nil {
			return err
		}

		if shortage := locked[0].ShortageFor(quantity); shortage != nil {
			return book.NewOutOfStockError(*shortage)
		}
		if err = locked[0].Reserve(quantity); err != nil {
			return err
		}
		if err = uow.BookRepository().Update(ctx, locked[0]); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	quantities := []int{3, 4}
	results := make([]error, len(quantities))

	var wg sync.WaitGroup
	for i, quantity := range quantities {
		wg.Add(1)
		go func(i, quantity int) {
			defer wg.Done()
			results[i] = reserve(quantity)
		}(i, quantity)
	}
	wg.Wait()

	var succeeded []int
	var failed []error
	for i, err := range results {
		if err == nil {
			succeeded = append(succeeded, quantities[i])
		} else {
			failed = append(failed, err)
		}
	}

	suite.Require().Len(succeeded, 1, "Exactly one reservation should win")
	suite.Require().Len(failed, 1)
	suite.Require().ErrorIs(failed[0], book.ErrOutOfStock)

	verify := suite.factory.Create()
	persisted, err := verify.BookRepository().Get(ctx, testBook.ID())
	suite.Require().NoError(err)
	suite.Equal(5-succeeded[0], persisted.Stock())
}

func createTestBook(t *testing.T, stock int) *book.Book {
	t.Helper()
	b, err := book.NewBook(kernel.NewUUID(), book.Attributes{
		Title:     "The Go Programming Language",
		Publisher: "Addison-Wesley",
		Type:      "Programming",
		PageCount: 380,
		ISBN13:    "9780134190440",
		Authors:   []string{"Alan Donovan", "Brian Kernighan"},
		Genres:    []string{"Programming"},
	}, book.Prices{Hardcover: 3999, Paperback: 2999}, stock)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
