package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/doodle-alley/go-backend/internal/cfg"
	v1Http "github.com/doodle-alley/go-backend/internal/delivery/v1/http"
	minioInfra "github.com/doodle-alley/go-backend/internal/infrastructure/minio"
	s3Repo "github.com/doodle-alley/go-backend/internal/repository/minio"
	"github.com/doodle-alley/go-backend/internal/repository/redis"
	"github.com/doodle-alley/go-backend/internal/usecase"
	"github.com/doodle-alley/go-backend/pkg/clients"
	"github.com/doodle-alley/go-backend/pkg/closer"
	"github.com/doodle-alley/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// Run собирает зависимости, поднимает HTTP-сервер и блокируется
// до сигнала остановки или фатальной ошибки сервера.
func Run(cfg *config.Config, log logger.Logger) error {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
	defer shutdownCancel()

	c := closer.NewCloser(2 * time.Second)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(redisCtx); err != nil {
		redisCancel()
		log.Errorf(err, "failed to connect to redis")
		return err
	}
	redisCancel()

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		return err
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		log.Errorf(err, "failed to initialize MinIO bucket")
		return err
	}
	minioCancel()

	productRepo := redis.NewProductRepo(redisClient, cfg.Redis, log)
	orderRepo := redis.NewOrderRepo(redisClient, log)
	credsRepo := redis.NewCredentialsRepo(redisClient)
	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, shutdownCtx)

	productUC := usecase.NewProductUC(productRepo, imagesInfra, log)
	orderUC := usecase.NewOrderUC(orderRepo, productRepo, log)
	catalogUC := usecase.NewCatalogUC(productRepo, log)
	authUC := usecase.NewAuthUC(credsRepo, cfg.Auth, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(productUC, orderUC, catalogUC, authUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// Порядок LIFO: сначала останавливается сервер, затем дожидаемся
	// фоновой очистки MinIO, последним закрывается redis.
	c.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	c.Add(imagesInfra.WaitForCleanup)
	c.Add(httpSrv.Stop)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer closeCancel()

	if err := c.Close(closeCtx); err != nil {
		log.Warnf("shutdown finished with errors: %v", err)
	} else {
		log.Infof("Application shutdown complete")
	}

	return appErr
}
