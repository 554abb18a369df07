package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YelzhanWeb/restaurant/internal/adapter/logger"
	"github.com/YelzhanWeb/restaurant/internal/adapter/postgres"
	"github.com/YelzhanWeb/restaurant/internal/adapter/rabbitmq"
	redisAdapter "github.com/YelzhanWeb/restaurant/internal/adapter/redis"
	"github.com/YelzhanWeb/restaurant/internal/app/auth"
	"github.com/YelzhanWeb/restaurant/internal/app/customer"
	"github.com/YelzhanWeb/restaurant/internal/app/menu"
	"github.com/YelzhanWeb/restaurant/internal/app/order"
	"github.com/YelzhanWeb/restaurant/internal/app/report"
	"github.com/YelzhanWeb/restaurant/internal/app/table"
	"github.com/YelzhanWeb/restaurant/internal/config"

	httpAdapter "github.com/YelzhanWeb/restaurant/internal/adapter/http"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	migrationsDir := flag.String("migrations", "migrations", "Path to SQL migrations")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	lgr := logger.New("restaurant-api")

	// Connect to PostgreSQL
	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	if err := postgres.RunMigrations(ctx, db, *migrationsDir, lgr); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Connect to Redis
	redisClient, err := redisAdapter.Connect(ctx, cfg.Redis.Host, cfg.Redis.Port)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	lgr.Info("redis_connected", "Connected to Redis", "startup", map[string]interface{}{
		"host": cfg.Redis.Host,
	})

	// Connect to RabbitMQ
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	// Repositories
	orderRepo := postgres.NewOrderRepository(db)
	menuRepo := postgres.NewMenuRepository(db)
	userRepo := postgres.NewUserRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	tableRepo := postgres.NewTableRepository(db)
	reportRepo := postgres.NewReportRepository(db)

	// Messaging and cache
	publisher := rabbitmq.NewPublisher(mqConn)
	menuCache := redisAdapter.NewMenuCache(redisClient, cfg.Redis.TTL())

	// Services
	orderService := order.NewService(orderRepo, menuRepo, publisher, order.NewNumberGenerator(), cfg.Orders.TaxRateDecimal(), lgr)
	authService := auth.NewService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), cfg.Auth.BcryptRounds, lgr)
	menuService := menu.NewService(menuRepo, menuCache, lgr)
	customerService := customer.NewService(customerRepo, lgr)
	tableService := table.NewService(tableRepo, lgr)
	reportService := report.NewService(reportRepo)

	router := httpAdapter.NewRouter(httpAdapter.Services{
		Auth:     authService,
		Orders:   orderService,
		Menu:     menuService,
		Customer: customerService,
		Table:    tableService,
		Report:   reportService,
	}, lgr)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("Restaurant API started on port %d", cfg.Server.Port), "startup", map[string]interface{}{
		"port": cfg.Server.Port,
	})

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down Restaurant API", "shutdown", nil)

		timeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}
