package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fleet-field-api/internal/events"
	"fleet-field-api/internal/handler"
	"fleet-field-api/internal/metrics"
	"fleet-field-api/internal/middleware"
	"fleet-field-api/internal/repository"
	"fleet-field-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	AllowedOrigins []string
	Metrics        *metrics.Metrics

	// Broker feeds the websocket stream. Created when nil.
	Broker *events.Broker
	// Publisher receives change events from services. Defaults to Broker.
	Publisher events.Publisher
	// Gatherer backs /metrics. Defaults to the global prometheus registry.
	Gatherer prometheus.Gatherer
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Broker == nil {
		cfg.Broker = events.NewBroker(cfg.Logger)
	}
	if cfg.Publisher == nil {
		cfg.Publisher = cfg.Broker
	}

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	metricsHandler := gin.WrapH(promhttp.Handler())
	if cfg.Gatherer != nil {
		metricsHandler = gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	// Probes and metrics at the root and under the base path
	r.GET("/metrics", metricsHandler)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	// Initialize repositories
	fieldRepo := repository.NewCustomFieldRepository(cfg.DB)
	optionRepo := repository.NewFieldOptionRepository(cfg.DB)
	valueRepo := repository.NewFieldValueRepository(cfg.DB)
	entityRepo := repository.NewEntityRepository(cfg.DB)
	viewRepo := repository.NewSavedViewRepository(cfg.DB)

	// Initialize services
	fieldRegistry := service.NewFieldRegistry(fieldRepo, cfg.Publisher, cfg.Metrics, cfg.Logger)
	optionCatalog := service.NewOptionCatalog(fieldRepo, optionRepo, cfg.Publisher, cfg.Metrics, cfg.Logger)
	valueStore := service.NewValueStore(fieldRepo, valueRepo, entityRepo, cfg.Publisher, cfg.Metrics, cfg.Logger)
	editCoordinator := service.NewEditCoordinator(fieldRepo, optionRepo, valueStore, cfg.Metrics, cfg.Logger)
	projection := service.NewProjection(fieldRepo, optionRepo, valueRepo, entityRepo, viewRepo, cfg.Logger)
	entityService := service.NewEntityService(entityRepo, cfg.Publisher, cfg.Metrics, cfg.Logger)
	viewService := service.NewSavedViewService(viewRepo, cfg.Publisher, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	fieldHandler := handler.NewCustomFieldHandler(fieldRegistry)
	optionHandler := handler.NewFieldOptionHandler(optionCatalog)
	valueHandler := handler.NewFieldValueHandler(valueStore, editCoordinator)
	projectionHandler := handler.NewProjectionHandler(projection)
	entityHandler := handler.NewEntityHandler(entityService)
	viewHandler := handler.NewSavedViewHandler(viewService)
	eventHandler := handler.NewEventHandler(cfg.Broker, cfg.Metrics, cfg.Logger)

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		api.GET("/metrics", metricsHandler)
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)
	}
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Reads stay public; writes need a bearer token once a secret is configured
	if cfg.JWTSecret != "" {
		api.Use(middleware.AuthWrites(cfg.JWTSecret))
	}

	fields := api.Group("/custom-fields")
	{
		fields.GET("", fieldHandler.ListCustomFields)
		fields.POST("", fieldHandler.CreateCustomField)
		fields.GET("/:fieldId", fieldHandler.GetCustomField)
		fields.PATCH("/:fieldId", fieldHandler.UpdateCustomField)
		fields.DELETE("/:fieldId", fieldHandler.DeleteCustomField)

		fields.GET("/:fieldId/options", optionHandler.GetFieldOptions)
		fields.POST("/:fieldId/options", optionHandler.CreateFieldOption)

		fields.GET("/:fieldId/values", valueHandler.GetFieldValues)
		fields.PUT("/:fieldId/cells/:entityId", valueHandler.SubmitCellEdit)
	}

	options := api.Group("/custom-field-options")
	{
		options.PATCH("/:optionId", optionHandler.UpdateFieldOption)
		options.DELETE("/:optionId", optionHandler.DeleteFieldOption)
	}

	values := api.Group("/field-values")
	{
		values.POST("", valueHandler.SetFieldValue)
		values.DELETE("", valueHandler.DeleteFieldValue)
	}

	entities := api.Group("/entities")
	{
		entities.GET("", entityHandler.ListEntities)
		entities.PUT("/:entityId", entityHandler.UpsertEntity)
		entities.DELETE("/:entityId", entityHandler.DeleteEntity)
		entities.GET("/:entityId/field-values", valueHandler.GetEntityValues)
	}

	api.GET("/projections/:entityType", projectionHandler.GetProjection)

	views := api.Group("/saved-views")
	{
		views.GET("", viewHandler.ListSavedViews)
		views.POST("", viewHandler.CreateSavedView)
		views.GET("/:viewId", viewHandler.GetSavedView)
		views.PATCH("/:viewId", viewHandler.UpdateSavedView)
		views.DELETE("/:viewId", viewHandler.DeleteSavedView)
	}

	api.GET("/events/ws", eventHandler.StreamEvents)

	return r
}
