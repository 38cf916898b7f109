package app

import (
	"context"
	"fmt"
	"net/http"

	"kkotdam/app/controller"
	"kkotdam/app/router"
	"kkotdam/config"
	"kkotdam/db"
	"kkotdam/logging"
	"kkotdam/repository"
	"kkotdam/service"
)

// Initialize initializes the application and returns its HTTP handler.
// Background work started here stops when ctx is done.
func Initialize(ctx context.Context, cfg *config.Config) (http.Handler, error) {
	connStr, err := cfg.Database.ConnString()
	if err != nil {
		return nil, err
	}

	// Initialize database connection
	if err := db.InitDB(ctx, connStr); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Drive is optional; without it image sync answers 503 and images are fetched over HTTP
	var driveService service.DriveServiceInterface
	if cfg.Drive.CredentialsFile != "" {
		ds, err := service.NewDriveService(ctx, cfg.Drive.CredentialsFile)
		if err != nil {
			return nil, err
		}
		driveService = ds
	} else {
		logging.Warn().Msg("⚠️  GOOGLE_APPLICATION_CREDENTIALS is not set, Drive features are disabled")
	}

	// Initialize repository
	flowerRepo := repository.NewFlowerRepository(db.DB)

	// Initialize services
	recommendationService := service.NewRecommendationService(flowerRepo, nil)
	flowerService := service.NewFlowerService(flowerRepo)
	cardService := service.NewCardService(cfg.Card.ChromePath, cfg.Card.RenderTimeout)
	imageCache := service.NewImageCache(cfg.Images.CacheDir)
	if err := imageCache.EnsureDir(); err != nil {
		return nil, err
	}
	imageFetcher := service.NewImageFetcher(service.ImageFetcherConfig{
		Timeout:     cfg.Images.FetchTimeout,
		MaxFailures: cfg.Images.MaxFailures,
		OpenTimeout: cfg.Images.OpenTimeout,
	}, driveService)
	imageService := service.NewImageService(flowerService, imageFetcher, imageCache)
	imageSyncService := service.NewImageSyncService(driveService, flowerRepo, cfg.Drive.FolderID)
	seedService := service.NewSeedService(flowerRepo, cfg.Catalog.SeedFile)

	if cfg.Catalog.SeedFile != "" {
		if _, err := seedService.Import(ctx); err != nil {
			return nil, fmt.Errorf("failed to import catalog seed: %w", err)
		}
		if cfg.Catalog.WatchSeed {
			watcher := service.NewSeedWatcher(seedService, cfg.Catalog.SeedFile)
			go func() {
				if err := watcher.Watch(ctx); err != nil {
					logging.Error().Err(err).Msg("❌ Seed watcher stopped")
				}
			}()
		}
	}

	// Create controllers
	controllers := &router.Controllers{
		Recommendation: controller.NewRecommendationController(recommendationService, cardService),
		Flower:         controller.NewFlowerController(flowerService, imageService),
		Option:         controller.NewOptionController(),
		Admin:          controller.NewAdminController(imageSyncService, seedService),
	}

	return router.SetupRoutes(controllers, cfg), nil
}
