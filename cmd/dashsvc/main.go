package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	configs "github.com/mgacha/dashboard-services/configs"
	mongodb "github.com/mgacha/dashboard-services/internal/db"

	"github.com/mgacha/dashboard-services/internal/dashsvc/config"
	pgdb "github.com/mgacha/dashboard-services/internal/dashsvc/db"
	"github.com/mgacha/dashboard-services/internal/dashsvc/handlers"
	"github.com/mgacha/dashboard-services/internal/dashsvc/service"
	"github.com/mgacha/dashboard-services/internal/dashsvc/store"
	mongostore "github.com/mgacha/dashboard-services/internal/dashsvc/store/mongo"
	pgstore "github.com/mgacha/dashboard-services/internal/dashsvc/store/postgres"
	"github.com/mgacha/dashboard-services/internal/dashsvc/view"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "dash"

func init() {
	configs.Logging(SERVICE_NAME + "_service")
	configs.LoadEnv(SERVICE_NAME)
	configs.CreateUniqueInstance(SERVICE_NAME)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var (
		userStore      store.UserStore
		cardStore      store.CardStore
		inventoryStore store.InventoryStore
		logStore       store.LogStore
	)

	switch cfg.Store.Driver {
	case "postgres":
		pool, err := pgdb.Connect(cfg.Store.PostgresURL)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer pool.Close()
		log.Printf("pg connection established successfully")

		userStore = pgstore.NewUserStore(pool)
		cardStore = pgstore.NewCardStore(pool)
		inventoryStore = pgstore.NewInventoryStore(pool)
		logStore = pgstore.NewLogStore(pool)
	default:
		db, closeFn, err := mongodb.Connect(cfg.Store.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer closeFn()
		log.Printf("mongo connection established successfully")

		userStore = mongostore.NewUserStore(db)
		cardStore = mongostore.NewCardStore(db)
		inventoryStore = mongostore.NewInventoryStore(db)
		logStore = mongostore.NewLogStore(db)
	}

	userService := service.NewUserService(userStore)
	collectionService := service.NewCollectionService(inventoryStore, cardStore)
	leaderboardService := service.NewLeaderboardService(userStore, cardStore)
	historyService := service.NewHistoryService(logStore)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to build renderer: %v", err)
	}

	// Setup router
	r := chi.NewRouter()
	c := configs.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(configs.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	r.Use(httprate.LimitByIP(cfg.Server.RateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(userService, collectionService,
		leaderboardService, historyService, renderer, cfg.Dashboard.LeaderboardSize)
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
