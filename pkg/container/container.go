package container

import (
	"context"
	"fmt"

	"bookhub-backend/internal/config"
	"bookhub-backend/internal/infrastructure/cache"
	"bookhub-backend/internal/infrastructure/database"
	"bookhub-backend/internal/infrastructure/queue"
	"bookhub-backend/pkg/jwt"
	"bookhub-backend/pkg/logger"

	authorhandler "bookhub-backend/internal/domains/author/handler"
	authorrepo "bookhub-backend/internal/domains/author/repository"
	authorservice "bookhub-backend/internal/domains/author/service"

	bookhandler "bookhub-backend/internal/domains/book/handler"
	bookrepo "bookhub-backend/internal/domains/book/repository"
	bookservice "bookhub-backend/internal/domains/book/service"

	userhandler "bookhub-backend/internal/domains/user/handler"
	userrepo "bookhub-backend/internal/domains/user/repository"
	userservice "bookhub-backend/internal/domains/user/service"

	libraryhandler "bookhub-backend/internal/domains/library/handler"
	libraryrepo "bookhub-backend/internal/domains/library/repository"
	libraryservice "bookhub-backend/internal/domains/library/service"

	posthandler "bookhub-backend/internal/domains/post/handler"
	postrepo "bookhub-backend/internal/domains/post/repository"
	postservice "bookhub-backend/internal/domains/post/service"

	followhandler "bookhub-backend/internal/domains/follow/handler"
	followrepo "bookhub-backend/internal/domains/follow/repository"
	followservice "bookhub-backend/internal/domains/follow/service"

	"bookhub-backend/internal/domains/notification"
	notificationhandler "bookhub-backend/internal/domains/notification/handler"
	notificationrepo "bookhub-backend/internal/domains/notification/repository"
	notificationservice "bookhub-backend/internal/domains/notification/service"

	pkgcache "bookhub-backend/pkg/cache"
)

// Container wires configuration, infrastructure, services and handlers
// for the API process.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      pkgcache.Cache
	Queue      *queue.Client
	JWTManager *jwt.Manager

	NotificationService notification.Service

	AuthorHandler       *authorhandler.AuthorHandler
	BookHandler         *bookhandler.BookHandler
	UserHandler         *userhandler.UserHandler
	LibraryHandler      *libraryhandler.LibraryHandler
	PostHandler         *posthandler.PostHandler
	FollowHandler       *followhandler.FollowHandler
	NotificationHandler *notificationhandler.NotificationHandler
}

// New builds the container: config, database, cache, queue, then the
// domain layers bottom-up.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	c.Cache = cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Ping(ctx); err != nil {
		// The API degrades gracefully without Redis; only cached reads
		// and queued notifications are affected.
		logger.Warn("redis unavailable at startup", map[string]interface{}{"error": err.Error()})
	}

	c.Queue = queue.NewClient(&cfg.Redis)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	pool := c.DB.Pool

	authorRepo := authorrepo.NewPostgresRepository(pool)
	bookRepo := bookrepo.NewPostgresRepository(pool)
	userRepo := userrepo.NewPostgresRepository(pool)
	libraryRepo := libraryrepo.NewPostgresRepository(pool)
	postRepo := postrepo.NewPostgresRepository(pool)
	followRepo := followrepo.NewPostgresRepository(pool)
	notificationRepo := notificationrepo.NewPostgresRepository(pool)

	authorService := authorservice.NewAuthorService(authorRepo)
	bookService := bookservice.NewBookService(bookRepo, c.Cache)
	userService := userservice.NewUserService(userRepo, c.JWTManager)
	libraryService := libraryservice.NewLibraryService(libraryRepo)
	postService := postservice.NewPostService(postRepo, c.Queue)
	followService := followservice.NewFollowService(followRepo)
	c.NotificationService = notificationservice.NewNotificationService(notificationRepo)

	c.AuthorHandler = authorhandler.NewAuthorHandler(authorService)
	c.BookHandler = bookhandler.NewBookHandler(bookService)
	c.UserHandler = userhandler.NewUserHandler(userService)
	c.LibraryHandler = libraryhandler.NewLibraryHandler(libraryService)
	c.PostHandler = posthandler.NewPostHandler(postService)
	c.FollowHandler = followhandler.NewFollowHandler(followService)
	c.NotificationHandler = notificationhandler.NewNotificationHandler(c.NotificationService)

	return c, nil
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Error("failed to close queue client", err)
		}
	}
	if closer, ok := c.Cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close cache", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
