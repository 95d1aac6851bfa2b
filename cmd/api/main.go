package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bluespark/hospital-hr-backend-go/internal/config"
	appHTTP "github.com/bluespark/hospital-hr-backend-go/internal/handler/http"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/database"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/jwt"
	"github.com/bluespark/hospital-hr-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/bluespark/hospital-hr-backend-go/internal/service/auth"
	employeeService "github.com/bluespark/hospital-hr-backend-go/internal/service/employee"
	lifecycleService "github.com/bluespark/hospital-hr-backend-go/internal/service/lifecycle"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hospital-hr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	lifecycleRepo := postgresql.NewLifecycleRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, cfg.HR.Sectors)
	lifecycleSvc := lifecycleService.NewLifecycleService(db, employeeRepo, lifecycleRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, lifecycleSvc)
	lifecycleHandler := appHTTP.NewLifecycleHandler(lifecycleSvc)

	router := appHTTP.NewRouter(
		logger,
		cfg.App.CORSAllowedOrigins,
		JWTService,
		authHandler,
		employeeHandler,
		lifecycleHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
