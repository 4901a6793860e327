package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "yatube/internal/adapters/database"
	"yatube/internal/adapters/httpapi"
	redisadapter "yatube/internal/adapters/redis"
	"yatube/internal/adapters/storage"
	"yatube/internal/config"
	commentapp "yatube/internal/core/comment/service"
	followerapp "yatube/internal/core/follower/service"
	groupapp "yatube/internal/core/group/service"
	pagecacheapp "yatube/internal/core/pagecache/service"
	postapp "yatube/internal/core/post/service"
	userapp "yatube/internal/core/user/service"
	"yatube/web"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg.AppEnv)
	cfg.MustValidate()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	config.InitDB(cfg)
	if err := config.Migrate(config.DB); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	config.InitRedis(cfg)
	defer closeResources(config.Logger)

	if err := os.MkdirAll(cfg.MediaRoot, 0o755); err != nil {
		config.Logger.Fatal("Cannot create media root", zap.String("root", cfg.MediaRoot), zap.Error(err))
	}

	userRepo := dbadapter.NewUserRepositoryDatabase(config.DB)
	groupRepo := dbadapter.NewGroupRepositoryDatabase(config.DB)
	postRepo := dbadapter.NewPostRepositoryDatabase(config.DB)
	commentRepo := dbadapter.NewCommentRepositoryDatabase(config.DB)
	followerRepo := dbadapter.NewFollowerRepositoryDatabase(config.DB)
	pageCache := redisadapter.NewPageCacheRedis(config.RedisClient)

	renderer, err := httpapi.NewRenderer(web.Templates)
	if err != nil {
		config.Logger.Fatal("Cannot parse templates", zap.Error(err))
	}

	r := httpapi.SetupRoutes(httpapi.Dependencies{
		Users:     userapp.NewUserService(userRepo, []byte(cfg.JWTSecret), cfg.SessionLifetime),
		Groups:    groupapp.NewGroupService(groupRepo),
		Posts:     postapp.NewPostService(postRepo, groupRepo),
		Comments:  commentapp.NewCommentService(commentRepo, postRepo),
		Followers: followerapp.NewFollowerService(followerRepo),
		PageCache: pagecacheapp.NewPageCacheService(pageCache),
		Media:     storage.NewMediaStorage(cfg.MediaRoot),
		Renderer:  renderer,
		Logger:    config.Logger,

		MediaRoot:       cfg.MediaRoot,
		IndexCacheTTL:   cfg.IndexCacheTTL,
		SessionLifetime: cfg.SessionLifetime,
		CORSOrigins:     cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.Info("App is running", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		config.Logger.Error("Forced shutdown", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
	_ = logger.Sync()
}
