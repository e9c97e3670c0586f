package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/Shantanu039/hotel-menu-order-app/docs"
	"github.com/Shantanu039/hotel-menu-order-app/internal/app"
	"github.com/Shantanu039/hotel-menu-order-app/internal/auth"
	"github.com/Shantanu039/hotel-menu-order-app/internal/config"
	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"
	"github.com/Shantanu039/hotel-menu-order-app/internal/handler"
	"github.com/Shantanu039/hotel-menu-order-app/internal/middleware"
	"github.com/Shantanu039/hotel-menu-order-app/internal/postgres"
	"github.com/Shantanu039/hotel-menu-order-app/internal/repo"
	"github.com/Shantanu039/hotel-menu-order-app/internal/service"
	"github.com/Shantanu039/hotel-menu-order-app/pkg/cache"
	"github.com/Shantanu039/hotel-menu-order-app/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Restaurant Ordering API
// @version         1.0
// @description     Menu browsing, ordering and order lifecycle management
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewOrderRepo(db)
	userRepo := repo.NewUserRepo(db)
	menuRepo := repo.NewMenuRepo(db)
	txManager := trm.NewManager(db)
	menuCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	tokens := auth.NewTokenManager(conf.JWT.Secret, conf.JWT.TTL)

	orderService := service.NewOrderService(logger, txManager, orderRepo)
	authService := service.NewAuthService(logger, userRepo, tokens)
	menuService := service.NewMenuService(logger, menuRepo, menuCache)

	authenticate := middleware.Authenticate(tokens)

	handler.RegisterMetrics()

	application := app.New(logger, conf)
	application.SetHTTPHandlers(
		handler.NewAuthHandler(logger, authService, authenticate),
		handler.NewMenuHandler(logger, menuService, authenticate),
		handler.NewOrderHandler(logger, orderService, authenticate),
	)
	application.SetStarters(menuCache, menuSeedAdapter{svc: menuService})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type menuSeeder interface {
	SeedMenu(ctx context.Context, items []entities.MenuItem) error
}

type menuSeedAdapter struct {
	svc menuSeeder
}

func (a menuSeedAdapter) Start(ctx context.Context) error {
	return a.svc.SeedMenu(ctx, initialMenu)
}

// initialMenu populates an empty catalog on first start.
var initialMenu = []entities.MenuItem{
	{Name: "Classic Burger", Price: 250.00, Type: "Main Course"},
	{Name: "Margherita Pizza", Price: 380.00, Type: "Main Course"},
	{Name: "Chicken Biryani", Price: 450.00, Type: "Main Course"},
	{Name: "Fish and Chips", Price: 420.00, Type: "Main Course"},
	{Name: "Masala Dosa", Price: 170.00, Type: "Main Course"},
	{Name: "Paneer Tikka", Price: 320.00, Type: "Appetizer"},
	{Name: "Samosa", Price: 90.00, Type: "Appetizer"},
	{Name: "Spring Rolls", Price: 150.00, Type: "Appetizer"},
	{Name: "French Fries", Price: 120.00, Type: "Side Dish"},
	{Name: "Garlic Bread", Price: 100.00, Type: "Side Dish"},
	{Name: "Coca-Cola", Price: 80.00, Type: "Beverage"},
	{Name: "Fresh Lime Soda", Price: 100.00, Type: "Beverage"},
	{Name: "Iced Coffee", Price: 150.00, Type: "Beverage"},
	{Name: "Chocolate Lava Cake", Price: 180.00, Type: "Dessert"},
	{Name: "Gulab Jamun", Price: 110.00, Type: "Dessert"},
	{Name: "Cheesecake", Price: 220.00, Type: "Dessert"},
}
