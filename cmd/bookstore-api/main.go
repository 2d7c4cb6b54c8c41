package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/api/handlers"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/cache"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/config"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/health"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/metrics"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/queue"
	repository "github.com/aaravmahajanofficial/online-bookstore-platform/internal/repositories"
	service "github.com/aaravmahajanofficial/online-bookstore-platform/internal/services"
	"github.com/aaravmahajanofficial/online-bookstore-platform/pkg/payment"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)
	bookCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	// Queue setup. The API keeps serving when the broker is down, emails are
	// queued best effort.
	rabbit := queue.NewRabbitMQ(&cfg.RabbitMQ)
	if err := rabbit.Connect(context.Background()); err != nil {
		slog.Warn("⚠️ RabbitMQ is unreachable, email publishing will retry lazily", slog.Any("error", err))
	}

	defer func() {
		if err := rabbit.Close(); err != nil {
			slog.Error("⚠️ Error closing RabbitMQ connection", slog.String("error", err.Error()))
		}
	}()

	jwtKey := []byte(cfg.Security.JWTKey)
	gateway := payment.NewMockGateway()

	userService := service.NewUserService(repos.User, rateLimitRepo, rabbit, jwtKey, cfg.FrontendURL)
	userHandler := handlers.NewUserHandler(userService)
	bookService := service.NewBookService(repos.Book, bookCache)
	bookHandler := handlers.NewBookHandler(bookService)
	cartService := service.NewCartService(repos.Cart, repos.Book)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistService := service.NewWishlistService(repos.Wishlist, repos.Book)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	addressService := service.NewAddressService(repos.Address)
	addressHandler := handlers.NewAddressHandler(addressService)
	orderService := service.NewOrderService(repos.Order, repos.Cart, repos.Address, repos.Book, repos.User, gateway, rabbit)
	orderHandler := handlers.NewOrderHandler(orderService)
	reviewService := service.NewReviewService(repos.Review, repos.Book)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		DB:          repos.DB,
		RedisClient: redisClient,
		Queue:       rabbit,
	})
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("POST /api/v1/users/forgot-password", userHandler.ForgotPassword())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))
	routerMux.HandleFunc("PUT /api/v1/users/profile", authMiddleware.Authenticate(userHandler.UpdateProfile()))
	routerMux.HandleFunc("GET /api/v1/books", bookHandler.ListBooks())
	routerMux.HandleFunc("GET /api/v1/books/{id}", bookHandler.GetBook())
	routerMux.HandleFunc("POST /api/v1/books", authMiddleware.Authenticate(bookHandler.CreateBook()))
	routerMux.HandleFunc("GET /api/v1/books/{bookId}/reviews", reviewHandler.ListReviews())
	routerMux.HandleFunc("POST /api/v1/books/{bookId}/reviews", authMiddleware.Authenticate(reviewHandler.AddReview()))
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("DELETE /api/v1/cart", authMiddleware.Authenticate(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddToCart()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{bookId}", authMiddleware.Authenticate(cartHandler.RemoveFromCart()))
	routerMux.HandleFunc("GET /api/v1/wishlist", authMiddleware.Authenticate(wishlistHandler.GetWishlist()))
	routerMux.HandleFunc("POST /api/v1/wishlist/items", authMiddleware.Authenticate(wishlistHandler.AddToWishlist()))
	routerMux.HandleFunc("DELETE /api/v1/wishlist/items/{bookId}", authMiddleware.Authenticate(wishlistHandler.RemoveFromWishlist()))
	routerMux.HandleFunc("POST /api/v1/addresses", authMiddleware.Authenticate(addressHandler.CreateAddress()))
	routerMux.HandleFunc("GET /api/v1/addresses", authMiddleware.Authenticate(addressHandler.ListAddresses()))
	routerMux.HandleFunc("GET /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.GetAddress()))
	routerMux.HandleFunc("PUT /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.UpdateAddress()))
	routerMux.HandleFunc("DELETE /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.DeleteAddress()))
	routerMux.HandleFunc("POST /api/v1/orders", authMiddleware.Authenticate(orderHandler.PlaceOrder()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
