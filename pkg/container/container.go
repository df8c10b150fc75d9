package container

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"publishing-crm/internal/config"
	infraCache "publishing-crm/internal/infrastructure/cache"
	"publishing-crm/internal/infrastructure/database"
	"publishing-crm/pkg/cache"
	"publishing-crm/pkg/logger"

	"publishing-crm/internal/domains/activity"
	activityHandler "publishing-crm/internal/domains/activity/handler"
	activityRepo "publishing-crm/internal/domains/activity/repository"
	activityService "publishing-crm/internal/domains/activity/service"

	"publishing-crm/internal/domains/author"
	authorHandler "publishing-crm/internal/domains/author/handler"
	authorRepo "publishing-crm/internal/domains/author/repository"
	authorService "publishing-crm/internal/domains/author/service"

	"publishing-crm/internal/domains/agent"
	agentHandler "publishing-crm/internal/domains/agent/handler"
	agentRepo "publishing-crm/internal/domains/agent/repository"
	agentService "publishing-crm/internal/domains/agent/service"

	"publishing-crm/internal/domains/publisher"
	publisherHandler "publishing-crm/internal/domains/publisher/handler"
	publisherRepo "publishing-crm/internal/domains/publisher/repository"
	publisherService "publishing-crm/internal/domains/publisher/service"

	"publishing-crm/internal/domains/book"
	bookHandler "publishing-crm/internal/domains/book/handler"
	bookRepo "publishing-crm/internal/domains/book/repository"
	bookService "publishing-crm/internal/domains/book/service"

	"publishing-crm/internal/domains/deal"
	dealHandler "publishing-crm/internal/domains/deal/handler"
	dealRepo "publishing-crm/internal/domains/deal/repository"
	dealService "publishing-crm/internal/domains/deal/service"

	"publishing-crm/internal/domains/prospect"
	prospectHandler "publishing-crm/internal/domains/prospect/handler"
	prospectRepo "publishing-crm/internal/domains/prospect/repository"
	prospectService "publishing-crm/internal/domains/prospect/service"

	"publishing-crm/internal/domains/representation"
	representationHandler "publishing-crm/internal/domains/representation/handler"
	representationRepo "publishing-crm/internal/domains/representation/repository"
	representationService "publishing-crm/internal/domains/representation/service"

	"publishing-crm/internal/domains/note"
	noteHandler "publishing-crm/internal/domains/note/handler"
	noteRepo "publishing-crm/internal/domains/note/repository"
	noteService "publishing-crm/internal/domains/note/service"

	"publishing-crm/internal/domains/search"
	searchHandler "publishing-crm/internal/domains/search/handler"
	searchRepo "publishing-crm/internal/domains/search/repository"
	searchService "publishing-crm/internal/domains/search/service"

	"publishing-crm/internal/domains/dashboard"
	dashboardHandler "publishing-crm/internal/domains/dashboard/handler"
	dashboardRepo "publishing-crm/internal/domains/dashboard/repository"
	dashboardService "publishing-crm/internal/domains/dashboard/service"
)

// Container holds the whole dependency graph, built once at startup in
// dependency order: config, infrastructure, repositories, services,
// handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	redisClient *redis.Client

	ActivityRepo       activity.Repository
	Recorder           activity.Recorder
	AuthorRepo         author.Repository
	AgentRepo          agent.Repository
	PublisherRepo      publisher.Repository
	BookRepo           book.Repository
	DealRepo           deal.Repository
	ProspectRepo       prospect.Repository
	RepresentationRepo representation.Repository
	NoteRepo           note.Repository
	SearchRepo         search.Repository
	DashboardRepo      dashboard.Repository

	ActivityService       activity.Service
	AuthorService         author.Service
	AgentService          agent.Service
	PublisherService      publisher.Service
	BookService           book.Service
	DealService           deal.Service
	ProspectService       prospect.Service
	RepresentationService representation.Service
	NoteService           note.Service
	SearchService         search.Service
	DashboardService      dashboard.Service

	ActivityHandler       *activityHandler.ActivityHandler
	AuthorHandler         *authorHandler.AuthorHandler
	AgentHandler          *agentHandler.AgentHandler
	PublisherHandler      *publisherHandler.PublisherHandler
	BookHandler           *bookHandler.BookHandler
	DealHandler           *dealHandler.DealHandler
	ProspectHandler       *prospectHandler.ProspectHandler
	RepresentationHandler *representationHandler.RepresentationHandler
	NoteHandler           *noteHandler.NoteHandler
	SearchHandler         *searchHandler.SearchHandler
	DashboardHandler      *dashboardHandler.DashboardHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	db := database.NewPostgresDB(dbConfig)
	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache, redisClient := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.Cache = redisCache
	c.redisClient = redisClient

	pool := db.Pool

	c.ActivityRepo = activityRepo.NewPostgresRepository(pool)
	c.Recorder = activityService.NewRecorder(c.ActivityRepo)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.AgentRepo = agentRepo.NewPostgresRepository(pool)
	c.PublisherRepo = publisherRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.DealRepo = dealRepo.NewPostgresRepository(pool)
	c.ProspectRepo = prospectRepo.NewPostgresRepository(pool)
	c.RepresentationRepo = representationRepo.NewPostgresRepository(pool)
	c.NoteRepo = noteRepo.NewPostgresRepository(pool)
	c.SearchRepo = searchRepo.NewPostgresRepository(pool)
	c.DashboardRepo = dashboardRepo.NewPostgresRepository(pool)

	c.ActivityService = activityService.NewActivityService(c.ActivityRepo)
	c.AuthorService = authorService.NewAuthorService(pool, c.AuthorRepo, c.Recorder)
	c.AgentService = agentService.NewAgentService(pool, c.AgentRepo, c.Recorder)
	c.PublisherService = publisherService.NewPublisherService(pool, c.PublisherRepo, c.Recorder)
	c.BookService = bookService.NewBookService(pool, c.BookRepo, c.Recorder)
	c.DealService = dealService.NewDealService(pool, c.DealRepo, c.Recorder)
	c.ProspectService = prospectService.NewProspectService(pool, c.ProspectRepo, c.AuthorRepo, c.Recorder)
	c.RepresentationService = representationService.NewRepresentationService(pool, c.RepresentationRepo, c.Recorder)
	c.NoteService = noteService.NewNoteService(pool, c.NoteRepo, c.Recorder)
	c.SearchService = searchService.NewSearchService(c.SearchRepo)
	c.DashboardService = dashboardService.NewDashboardService(c.DashboardRepo, c.Cache)

	c.ActivityHandler = activityHandler.NewActivityHandler(c.ActivityService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.AgentHandler = agentHandler.NewAgentHandler(c.AgentService)
	c.PublisherHandler = publisherHandler.NewPublisherHandler(c.PublisherService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.DealHandler = dealHandler.NewDealHandler(c.DealService)
	c.ProspectHandler = prospectHandler.NewProspectHandler(c.ProspectService)
	c.RepresentationHandler = representationHandler.NewRepresentationHandler(c.RepresentationService)
	c.NoteHandler = noteHandler.NewNoteHandler(c.NoteService)
	c.SearchHandler = searchHandler.NewSearchHandler(c.SearchService)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(c.DashboardService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})
	return c, nil
}

// HealthCheck pings the backing services.
func (c *Container) HealthCheck(ctx context.Context) error {
	if err := c.DB.Ping(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	if err := c.Cache.Ping(ctx); err != nil {
		return fmt.Errorf("cache unreachable: %w", err)
	}
	return nil
}

// Close releases infrastructure resources.
func (c *Container) Close() {
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			logger.Warn("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Warn("failed to close database pool", err)
		}
	}
}
