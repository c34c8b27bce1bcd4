package cmd

import (
	"time"

	"bookstore/internal/adapters/out/postgres"
	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
}

// NewCompositionRoot wires the application graph. publisher may be nil when
// no broker is configured; handlers treat a nil publisher as "don't publish".
func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.OrderEventPublisher) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateBeginCheckoutCommandHandler() commands.BeginCheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBeginCheckoutCommandHandler(f)
}

func (c *CompositionRoot) CreateCommitCheckoutCommandHandler() commands.CommitCheckoutCommandHandler {
	var f commands.CommitCheckoutUoWFactory = FuncCommitCheckoutUoWFactory(func() commands.CommitCheckoutUoW {
		return c.uowFactory.Create()
	})

	rates := make(commands.ShippingRates, len(c.config.ShippingRates))
	for method, amount := range c.config.ShippingRates {
		rates[method] = kernel.Cents(amount)
	}

	return commands.NewCommitCheckoutCommandHandler(f, c.publisher, rates, c.config.TaxRateBps)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCreateBookCommandHandler() commands.CreateBookCommandHandler {
	var f commands.BookUoWFactory = FuncBookUoWFactory(func() commands.BookUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookCommandHandler(f)
}

func (c *CompositionRoot) CreateSubscribeNewsletterCommandHandler() commands.SubscribeNewsletterCommandHandler {
	var f commands.NewsletterUoWFactory = FuncNewsletterUoWFactory(func() commands.NewsletterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubscribeNewsletterCommandHandler(f)
}

func (c *CompositionRoot) CreateUnsubscribeNewsletterCommandHandler() commands.UnsubscribeNewsletterCommandHandler {
	var f commands.NewsletterUoWFactory = FuncNewsletterUoWFactory(func() commands.NewsletterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnsubscribeNewsletterCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() commands.LoginUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginUserCommandHandler(f)
}

func (c *CompositionRoot) CreateToggleUserActiveCommandHandler() commands.ToggleUserActiveCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleUserActiveCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireCheckoutsCommandHandler() commands.ExpireCheckoutsCommandHandler {
	var f commands.CheckoutSweepUoWFactory = FuncCheckoutSweepUoWFactory(func() commands.CheckoutSweepUoW {
		return c.uowFactory.Create()
	})
	ttl := time.Duration(c.config.CheckoutTTLMinutes) * time.Minute
	return commands.NewExpireCheckoutsCommandHandler(f, ttl)
}

func (c *CompositionRoot) CreateGetBooksQueryHandler() queries.GetBooksQueryHandler {
	return queries.NewGetBooksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBookQueryHandler() queries.GetBookQueryHandler {
	return queries.NewGetBookQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSimilarBooksQueryHandler() queries.GetSimilarBooksQueryHandler {
	return queries.NewGetSimilarBooksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuthorStatisticsQueryHandler() queries.GetAuthorStatisticsQueryHandler {
	return queries.NewGetAuthorStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPopularAuthorsQueryHandler() queries.GetPopularAuthorsQueryHandler {
	return queries.NewGetPopularAuthorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDashboardQueryHandler() queries.GetOrderDashboardQueryHandler {
	return queries.NewGetOrderDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

type FuncBookUoWFactory func() commands.BookUoW

func (f FuncBookUoWFactory) Create() commands.BookUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncCommitCheckoutUoWFactory func() commands.CommitCheckoutUoW

func (f FuncCommitCheckoutUoWFactory) Create() commands.CommitCheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNewsletterUoWFactory func() commands.NewsletterUoW

func (f FuncNewsletterUoWFactory) Create() commands.NewsletterUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncCheckoutSweepUoWFactory func() commands.CheckoutSweepUoW

func (f FuncCheckoutSweepUoWFactory) Create() commands.CheckoutSweepUoW {
	return f()
}
