package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"github.com/avetrov/contentpulse/internal/cache"
	"github.com/avetrov/contentpulse/internal/config"
	"github.com/avetrov/contentpulse/internal/handler"
	"github.com/avetrov/contentpulse/internal/llm"
	"github.com/avetrov/contentpulse/internal/metrics"
	"github.com/avetrov/contentpulse/internal/middleware"
	"github.com/avetrov/contentpulse/internal/platform"
	"github.com/avetrov/contentpulse/internal/resolver"
	"github.com/avetrov/contentpulse/internal/router"
	"github.com/avetrov/contentpulse/internal/service"
	"github.com/avetrov/contentpulse/internal/tablestore"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "contentpulse")
	metrics.Init()

	// Result cache: Redis when configured, in-process otherwise.
	var resultCache cache.Store = cache.NewMemoryStore(cache.DefaultTTL, cache.DefaultMaxEntries)
	if cfg.RedisURL != "" {
		if rs, err := cache.NewRedisStore(cfg.RedisURL, cache.DefaultTTL); err != nil {
			log.Printf("redis unavailable, using in-memory cache: %v", err)
		} else {
			resultCache = rs
			defer rs.Close()
		}
	}

	yt := platform.NewClient(cfg.YouTubeAPIKey)

	// Table store is optional: without it sync still fetches and chat falls
	// back to the platform.
	var store service.TableStore
	if ts, err := tablestore.NewClient(cfg.TableBaseURL, cfg.TableAPIToken, cfg.ContentTableID); err != nil {
		log.Printf("table store not configured, persistence disabled: %v", err)
	} else {
		store = ts
	}

	// Answering service is optional: without it every answer comes from the
	// deterministic generator.
	var answerer service.Answerer
	if c := llm.NewClient(cfg.OpenRouterAPIKey, cfg.OpenRouterModel); c != nil {
		answerer = c
	}

	res := resolver.New(yt, cfg.DefaultChannelID)
	contentSvc := service.NewContentService(yt, store, resultCache)
	chatSvc := service.NewChatService(contentSvc, store, res, answerer)

	app := fiber.New(fiber.Config{
		AppName:      "Content Pulse API",
		ServerHeader: "ContentPulse",
	})

	router.Setup(app, &router.Handlers{
		Sync:   handler.NewSyncHandler(contentSvc, res),
		Chat:   handler.NewChatHandler(chatSvc),
		Stats:  handler.NewStatsHandler(contentSvc, cfg.DefaultChannelID, answerer != nil),
		Health: handler.NewHealthHandler(resultCache.Name()),
	}, cfg.CORSOrigins)

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("shutting down")
		_ = app.Shutdown()
	}()

	log.Printf("contentpulse backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
