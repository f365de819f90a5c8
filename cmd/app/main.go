package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"commerce/cmd"
	httpadapter "commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/postgres/cartrepo"
	"commerce/internal/adapters/out/postgres/inventoryrepo"
	"commerce/internal/adapters/out/postgres/notificationrepo"
	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/adapters/out/postgres/sequencestore"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/services"
	"commerce/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	pricing := mustBuildPricingEngine(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, pricing)

	jobManager := jobs.NewJobManager(
		app.CreateCompleteDeliveredOrdersCommandHandler(),
		confirmationWindow(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                    goDotEnvVariable("HTTP_PORT"),
		DBHost:                      goDotEnvVariable("DB_HOST"),
		DBPort:                      goDotEnvVariable("DB_PORT"),
		DBUser:                      goDotEnvVariable("DB_USER"),
		DBPassword:                  goDotEnvVariable("DB_PASSWORD"),
		DBName:                      goDotEnvVariable("DB_NAME"),
		DBSslMode:                   goDotEnvVariable("DB_SSLMODE"),
		TaxRate:                     goDotEnvVariable("TAX_RATE"),
		FreeShippingThreshold:       goDotEnvVariable("FREE_SHIPPING_THRESHOLD"),
		ShippingFee:                 goDotEnvVariable("SHIPPING_FEE"),
		OrderConfirmationWindowDays: goDotEnvVariable("ORDER_CONFIRMATION_WINDOW_DAYS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
		&inventoryrepo.TransactionDTO{},
		&notificationrepo.NotificationDTO{},
		&sequencestore.SequenceDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// mustBuildPricingEngine applies the configured pricing rules, falling back
// to the standard ones when the variables are unset.
func mustBuildPricingEngine(configs cmd.Config) services.PricingEngine {
	if configs.TaxRate == "" && configs.FreeShippingThreshold == "" && configs.ShippingFee == "" {
		return services.NewPricingEngine()
	}

	taxRate, err := decimal.NewFromString(configs.TaxRate)
	if err != nil {
		log.Fatalf("Invalid TAX_RATE: %v", err)
	}

	threshold, err := strconv.ParseInt(configs.FreeShippingThreshold, 10, 64)
	if err != nil {
		log.Fatalf("Invalid FREE_SHIPPING_THRESHOLD: %v", err)
	}

	fee, err := strconv.ParseInt(configs.ShippingFee, 10, 64)
	if err != nil {
		log.Fatalf("Invalid SHIPPING_FEE: %v", err)
	}

	engine, err := services.NewPricingEngineWithRules(
		taxRate, kernel.NewMoneyFromInt(threshold), kernel.NewMoneyFromInt(fee),
	)
	if err != nil {
		log.Fatalf("Invalid pricing rules: %v", err)
	}
	return engine
}

func confirmationWindow(configs cmd.Config) time.Duration {
	const defaultWindowDays = 7

	days := defaultWindowDays
	if configs.OrderConfirmationWindowDays != "" {
		parsed, err := strconv.Atoi(configs.OrderConfirmationWindowDays)
		if err != nil || parsed <= 0 {
			log.Fatalf("Invalid ORDER_CONFIRMATION_WINDOW_DAYS: %q", configs.OrderConfirmationWindowDays)
		}
		days = parsed
	}

	return time.Duration(days) * 24 * time.Hour
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:     app.CreateCreateOrderCommandHandler(),
		TransitionOrder: app.CreateTransitionOrderCommandHandler(),
		CancelOrder:     app.CreateCancelOrderCommandHandler(),
		PayOrder:        app.CreatePayOrderCommandHandler(),

		AddCartItem:            app.CreateAddCartItemCommandHandler(),
		UpdateCartItemQuantity: app.CreateUpdateCartItemQuantityCommandHandler(),
		RemoveCartItem:         app.CreateRemoveCartItemCommandHandler(),
		ClearCart:              app.CreateClearCartCommandHandler(),

		AppendInventory: app.CreateAppendInventoryCommandHandler(),

		MarkNotificationRead:     app.CreateMarkNotificationReadCommandHandler(),
		MarkAllNotificationsRead: app.CreateMarkAllNotificationsReadCommandHandler(),
		DeleteNotification:       app.CreateDeleteNotificationCommandHandler(),

		GetOrder:                  app.CreateGetOrderQueryHandler(),
		GetOrderByNumber:          app.CreateGetOrderByNumberQueryHandler(),
		ListOrders:                app.CreateListOrdersQueryHandler(),
		GetCart:                   app.CreateGetCartQueryHandler(),
		GetCurrentStock:           app.CreateGetCurrentStockQueryHandler(),
		GetInventoryStatistics:    app.CreateGetInventoryStatisticsQueryHandler(),
		ListInventoryTransactions: app.CreateListInventoryTransactionsQueryHandler(),
		ListNotifications:         app.CreateListNotificationsQueryHandler(),
		GetNotificationStatistics: app.CreateGetNotificationStatisticsQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
