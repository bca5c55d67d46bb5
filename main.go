package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"Playhub/config"
	_ "Playhub/config/swagger"
	"Playhub/controllers"
	"Playhub/middleware"
	"Playhub/routes"
	"Playhub/services/api"
	"Playhub/services/identity"
	"Playhub/services/levels"
	"Playhub/services/poller"
	"Playhub/services/pushchannel"
	"Playhub/services/redis"
	"Playhub/services/socket_io"
	"Playhub/services/socket_io/handlers"
	"Playhub/utils"
	"Playhub/utils/logger"

	"github.com/gin-gonic/gin"
)

// @title Playhub API
// @version 1.0
// @description Gin-Gonic gateway serving the pages of the Playhub gaming platform
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in cookie
// @name playhub_session
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Setup(cfg.Production); err != nil {
		panic(err)
	}
	defer logger.Sync()
	logger.Info("Setting up server...")

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	levelRows, err := config.LoadLevels(cfg.LevelsFile)
	if err != nil {
		logger.Fatalf("Error loading level table: %v", err)
	}
	levelTable, err := levels.NewTable(levelRows)
	if err != nil {
		logger.Fatalf("Invalid level table: %v", err)
	}

	redisClient, err := config.Connect_redis(cfg.RedisURL)
	if err != nil {
		logger.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redis.CloseRedis(redisClient)

	// A nil *RedisClient must not end up inside the interface
	var cache api.Cache
	if redisClient != nil {
		cache = redisClient
	}
	apiClient := api.NewClient(cfg.APIBaseURL, cfg.GameServiceURL, &http.Client{Timeout: cfg.HTTPTimeout}, cache)

	provider := identity.NewKeycloak(cfg.IdentityURL, cfg.IdentityRealm, cfg.IdentityClientID, cfg.RedirectURL,
		&http.Client{Timeout: cfg.HTTPTimeout})
	initCtx, cancelInit := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	err = provider.Init(initCtx)
	cancelInit()
	if err != nil {
		logger.Fatalf("Error initializing identity provider: %v", err)
	}

	gate := identity.NewGate(provider, cfg.TokenMinValidity)
	gate.StartRefresher(cfg.TokenRefreshInterval)

	polls := poller.NewRegistry(cfg.PollMaxFailures)

	r := gin.New()
	r.Use(gin.Recovery(), utils.Logger())

	middleware.SetUpMiddleware(r, cfg)

	sio := &socket_io.MySocketServer{}
	deps := &handlers.Deps{
		Tokens: gate,
		API:    apiClient,
		Polls:  polls,
		NewChannel: func(token string) pushchannel.Channel {
			return pushchannel.New(pushchannel.Config{
				URL:  cfg.GameSocketURL,
				Auth: map[string]interface{}{"token": token},
			})
		},
		LobbyPollInterval:        cfg.LobbyPollInterval,
		NotificationPollInterval: cfg.NotificationPollInterval,
	}
	sio.Start(r, gate, deps, !cfg.Production)

	routes.SetupRoutes(r, &controllers.Env{
		Gate:              gate,
		API:               apiClient,
		Polls:             polls,
		Conns:             deps.Conns,
		Levels:            levelTable,
		LobbyPollInterval: cfg.LobbyPollInterval,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		var err error
		if cfg.UseHTTPS {
			err = srv.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()
	logger.Infof("Server started on port %s", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	<-ctx.Done()

	logger.Info("Shutting down...")
	polls.StopAll()
	sio.Close()
	gate.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
