package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"bookstore/api"
	"bookstore/cmd"
	httpin "bookstore/internal/adapters/in/http"
	"bookstore/internal/adapters/out/postgres/bookrepo"
	"bookstore/internal/adapters/out/postgres/cartrepo"
	"bookstore/internal/adapters/out/postgres/checkoutrepo"
	"bookstore/internal/adapters/out/postgres/newsletterrepo"
	"bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/adapters/out/postgres/userrepo"
	"bookstore/internal/adapters/out/rabbit"
	"bookstore/internal/core/ports"
	"bookstore/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()

	if err := api.Validate(ctx); err != nil {
		log.Fatalf("openapi document is broken: %v", err)
	}

	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	publisher, closePublisher := connectPublisher(configs)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateExpireCheckoutsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file, reading configuration from the environment")
	}

	return cmd.Config{
		HTTPPort:           envString("HTTP_PORT", "8080"),
		DBHost:             envString("DB_HOST", "localhost"),
		DBPort:             envString("DB_PORT", "5432"),
		DBUser:             envString("DB_USER", "postgres"),
		DBPassword:         envString("DB_PASSWORD", ""),
		DBName:             envString("DB_NAME", "bookstore"),
		DBSslMode:          envString("DB_SSLMODE", "disable"),
		JWTSecret:          envString("JWT_SECRET", ""),
		TokenTTLMinutes:    envInt("TOKEN_TTL_MINUTES", 1440),
		RabbitMQURL:        envString("RABBITMQ_URL", ""),
		RabbitMQExchange:   envString("RABBITMQ_EXCHANGE", "bookstore.orders"),
		TaxRateBps:         envInt("TAX_RATE_BPS", 0),
		CheckoutTTLMinutes: envInt("CHECKOUT_TTL_MINUTES", 30),
		ShippingRates: map[string]int64{
			"standard": int64(envInt("SHIPPING_STANDARD_CENTS", 500)),
			"express":  int64(envInt("SHIPPING_EXPRESS_CENTS", 1500)),
			"pickup":   int64(envInt("SHIPPING_PICKUP_CENTS", 0)),
		},
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, raw)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to the database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
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
	if err != nil {
		log.Fatalf("failed to migrate the database: %v", err)
	}
}

// connectPublisher dials the broker when one is configured. Order events are
// informational fan-out, so an unset RABBITMQ_URL means running without them
// rather than refusing to start.
func connectPublisher(configs cmd.Config) (ports.OrderEventPublisher, func()) {
	if configs.RabbitMQURL == "" {
		return nil, func() {}
	}

	conn, err := amqp.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}

	publisher, err := rabbit.NewOrderEventPublisher(conn, configs.RabbitMQExchange)
	if err != nil {
		log.Fatalf("failed to set up the order event publisher: %v", err)
	}

	return publisher, func() {
		publisher.Close()
		_ = conn.Close()
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	if configs.JWTSecret == "" {
		log.Fatalf("JWT_SECRET must be set")
	}

	commands := httpin.Commands{
		AddCartItem:           app.CreateAddCartItemCommandHandler(),
		RemoveCartItem:        app.CreateRemoveCartItemCommandHandler(),
		BeginCheckout:         app.CreateBeginCheckoutCommandHandler(),
		CommitCheckout:        app.CreateCommitCheckoutCommandHandler(),
		UpdateOrderStatus:     app.CreateUpdateOrderStatusCommandHandler(),
		CreateBook:            app.CreateCreateBookCommandHandler(),
		SubscribeNewsletter:   app.CreateSubscribeNewsletterCommandHandler(),
		UnsubscribeNewsletter: app.CreateUnsubscribeNewsletterCommandHandler(),
		RegisterUser:          app.CreateRegisterUserCommandHandler(),
		LoginUser:             app.CreateLoginUserCommandHandler(),
		ToggleUserActive:      app.CreateToggleUserActiveCommandHandler(),
	}

	queries := httpin.Queries{
		GetBooks:            app.CreateGetBooksQueryHandler(),
		GetBook:             app.CreateGetBookQueryHandler(),
		GetSimilarBooks:     app.CreateGetSimilarBooksQueryHandler(),
		GetAuthorStatistics: app.CreateGetAuthorStatisticsQueryHandler(),
		GetPopularAuthors:   app.CreateGetPopularAuthorsQueryHandler(),
		GetCart:             app.CreateGetCartQueryHandler(),
		GetOrders:           app.CreateGetOrdersQueryHandler(),
		GetOrder:            app.CreateGetOrderQueryHandler(),
		GetOrderDashboard:   app.CreateGetOrderDashboardQueryHandler(),
		GetUser:             app.CreateGetUserQueryHandler(),
	}

	auth := httpin.NewAuth(configs.JWTSecret, time.Duration(configs.TokenTTLMinutes)*time.Minute)
	server := httpin.NewServer(commands, queries, auth, api.Spec)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
