package api

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SundayYogurt/thesis_service/config"
	"github.com/SundayYogurt/thesis_service/infra/database"
	"github.com/SundayYogurt/thesis_service/infra/queue"
	"github.com/SundayYogurt/thesis_service/internal/api/rest/handlers"
	"github.com/SundayYogurt/thesis_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/thesis_service/internal/interfaces"
	"github.com/SundayYogurt/thesis_service/internal/repository"
	"github.com/SundayYogurt/thesis_service/internal/services"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber app around an already-wired service.
func NewApp(cfg config.Config, svc services.ThesisService) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	// ---------- Middleware ----------
	app.Use(recover.New())
	app.Use(middleware.RequestContext(cfg.RequestTimeout))
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Routes ----------
	var submitGuards, adminGuards []fiber.Handler
	if cfg.SubmitRateLimit > 0 {
		submitGuards = append(submitGuards, middleware.SubmitRateLimiter(cfg.SubmitRateLimit))
	}
	if guard := middleware.AdminGuard(cfg.AdminUsername, cfg.AdminPasswordHash); guard != nil {
		adminGuards = append(adminGuards, guard)
	}

	thesisHandler := handlers.NewThesisHandler(svc)
	thesisHandler.SetupRoutes(app, submitGuards, adminGuards)

	return app
}

func StartServer(cfg config.Config) {
	// ---------- DB ----------
	db, err := database.Connect(cfg.DatabaseDSN, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// ---------- Infra ----------
	log.Printf("KafkaBroker=%q KafkaTopic=%q", cfg.KafkaBroker, cfg.KafkaTopic)
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	defer func() { _ = kafkaProducer.Close() }()

	// ---------- Repository / Service ----------
	thesisRepo := repository.NewThesisRepository(db)
	var producer interfaces.ProducerHandler
	if kafkaProducer != nil {
		producer = kafkaProducer
	} else {
		log.Println("Warning: KAFKA_BROKER not set, thesis events are not published")
	}
	thesisSvc := services.NewThesisService(thesisRepo, producer)

	app := NewApp(cfg, thesisSvc)

	// ---------- Listen ----------
	go func() {
		log.Println("listening on", cfg.ServerPort)
		if err := app.Listen(cfg.ServerPort); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	log.Println("server stopped")
}
