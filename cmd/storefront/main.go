package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Bhuvana30-web/my-waydukaan/internal/basket"
	"github.com/Bhuvana30-web/my-waydukaan/internal/cart"
	"github.com/Bhuvana30-web/my-waydukaan/internal/catalog"
	h "github.com/Bhuvana30-web/my-waydukaan/internal/http"
	"github.com/Bhuvana30-web/my-waydukaan/internal/order"
	"github.com/Bhuvana30-web/my-waydukaan/internal/profile"
	"github.com/Bhuvana30-web/my-waydukaan/internal/store"
)

type Config struct {
	HTTPPort        string
	StoreBackend    string
	RedisAddr       string
	RedisPassword   string
	MongoURI        string
	MongoDBName     string
	CatalogBaseURL  string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		StoreBackend:    getEnv("STORE_BACKEND", "redis"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "storefront"),
		CatalogBaseURL:  getEnv("CATALOG_BASE_URL", "https://dukaan-gkgu.onrender.com"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	kv, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up %s store: %v", cfg.StoreBackend, err)
	}
	defer closeStore()
	log.Printf("Using %s store backend", cfg.StoreBackend)

	cartEngine := cart.NewEngine(kv)
	basketEngine := basket.NewEngine(kv)
	recorder := order.NewRecorder(kv)
	profiles := profile.NewService(kv)
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL)

	cartHandler := h.NewCartHandler(cartEngine, cfg.RequestTimeout)
	basketHandler := h.NewBasketHandler(basketEngine, recorder, cfg.RequestTimeout)
	checkoutHandler := h.NewCheckoutHandler(cartEngine, recorder, cfg.RequestTimeout)
	ordersHandler := h.NewOrdersHandler(recorder, cfg.RequestTimeout)
	catalogHandler := h.NewCatalogHandler(catalogClient, cfg.RequestTimeout)
	profileHandler := h.NewProfileHandler(profiles, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.MockAuthMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/categories/{category_id}", catalogHandler.GetCategory)
		r.Get("/categories/{category_id}/subcategories/{subcategory_id}/products", catalogHandler.SubcategoryProducts)
		r.Get("/products", catalogHandler.ListProducts)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.ClearCart)
		})

		r.Route("/basket", func(r chi.Router) {
			r.Get("/", basketHandler.GetBasket)
			r.Post("/items", basketHandler.AddItem)
			r.Put("/items/{product_id}", basketHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", basketHandler.RemoveItem)
			r.Delete("/", basketHandler.ClearBasket)
			r.Post("/checkout", basketHandler.Checkout)
			r.Get("/orders", ordersHandler.ListBasketOrders)
		})

		r.Post("/checkout", checkoutHandler.PlaceOrder)
		r.Get("/orders", ordersHandler.ListCartOrders)

		r.Post("/auth/login", profileHandler.Login)
		r.Post("/auth/logout", profileHandler.Logout)
		r.Get("/profile", profileHandler.GetProfile)
		r.Put("/profile", profileHandler.UpdateProfile)
		r.Get("/settings", profileHandler.GetSettings)
		r.Put("/settings", profileHandler.UpdateSettings)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func buildStore(ctx context.Context, cfg *Config) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		log.Printf("Connected to Redis at %s", cfg.RedisAddr)
		return store.NewRedisStore(client), func() { client.Close() }, nil

	case "mongo":
		db, err := store.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Connected to MongoDB at %s", cfg.MongoURI)
		return store.NewMongoStore(db), func() { db.Client().Disconnect(ctx) }, nil

	case "memory":
		return store.NewMemoryStore(), func() {}, nil

	default:
		return nil, nil, errors.New("unknown store backend: " + cfg.StoreBackend)
	}
}
