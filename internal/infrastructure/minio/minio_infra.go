package minio

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/doodle-alley/go-backend/internal/cfg"
	"github.com/doodle-alley/go-backend/internal/domain"
	"github.com/doodle-alley/go-backend/internal/infrastructure"
	"github.com/doodle-alley/go-backend/internal/usecase"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/doodle-alley/go-backend/pkg/jitter"
	"github.com/doodle-alley/go-backend/pkg/logger"

	"github.com/google/uuid"
)

// MinioInfrastructure управляет загрузкой и удалением изображений товаров в MinIO.
type MinioInfrastructure struct {
	minioRepo         usecase.ImageRepository
	cfg               *cfg.MinIOCfg
	logger            logger.Logger
	shutdownCtx       context.Context
	wg                sync.WaitGroup
	uploadImagesLimit int
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:         minioRepo,
		cfg:               cfg,
		logger:            logger,
		shutdownCtx:       shutdownCtx,
		wg:                sync.WaitGroup{},
		uploadImagesLimit: cfg.UploadImagesLimit,
	}
}

// UploadImages загружает изображения в MinIO параллельно с ограничением
// одновременных операций и возвращает публичные URL в порядке завершения.
// В случае ошибки отменяет остальные загрузки и запускает фоновую очистку
// уже загруженных объектов.
func (m *MinioInfrastructure) UploadImages(ctx context.Context, req *usecase.UploadImagesReq) (*usecase.UploadImagesRes, error) {
	const op = "MinioInfrastructure.UploadImages"

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keyCh := make(chan string, len(req.Images))
	errCh := make(chan error, len(req.Images))
	sem := make(chan struct{}, m.uploadImagesLimit)

	var uploadWg sync.WaitGroup
	for _, image := range req.Images {
		uploadWg.Add(1)
		go func(image usecase.ProductImage) {
			defer uploadWg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			imageID := uuid.NewString()
			ext, err := infrastructure.GetExtensionFromMIME(image.MimeType)
			if err != nil {
				errCh <- fmt.Errorf("invalid mime type %s for %s: %w", image.MimeType, image.Name, err)
				return
			}
			objKey := fmt.Sprintf("%s/%s-%s.%s", sanitizeName(req.Name), sanitizeName(image.Name), imageID, ext)
			newImage := domain.NewImage(imageID, m.cfg.BucketName, objKey, image.Data, &image.Size, &image.MimeType)

			key, err := m.minioRepo.Upload(ctx, newImage)
			if err != nil {
				errCh <- fmt.Errorf("upload %s failed: %w", image.Name, err)
				return
			}

			keyCh <- key
		}(image)
	}

	go func() {
		uploadWg.Wait()
		close(errCh)
		close(keyCh)
	}()

	keys := make([]string, 0, len(req.Images))
	done := false
	defer func() {
		if !done && len(keys) > 0 {
			m.CleanupImages(keys)
		}
	}()

	for completed := 0; completed < len(req.Images); {
		select {
		case key, ok := <-keyCh:
			if ok {
				keys = append(keys, key)
				completed++
			}
		case err, ok := <-errCh:
			if ok {
				cancel()
				return nil, e.Wrap(op, err)
			}
		case <-ctx.Done():
			cancel()
			return nil, e.Wrap(op, ctx.Err())
		}
	}

	done = true
	return usecase.NewUploadImagesRes(m.publicURLs(keys)), nil
}

// RemoveImages синхронно удаляет объекты бакета по их публичным URL.
// URL, не указывающие в бакет, пропускаются. Первая ошибка прерывает операцию.
func (m *MinioInfrastructure) RemoveImages(ctx context.Context, urls []string) error {
	const op = "MinioInfrastructure.RemoveImages"

	for _, url := range urls {
		key, ok := m.objectKeyFromURL(url)
		if !ok {
			m.logger.Debugf("skipping foreign image url: %s", url)
			continue
		}

		if err := m.minioRepo.Delete(ctx, key); err != nil {
			return e.Wrap(op, err)
		}
	}

	return nil
}

// CleanupImages запускает фоновую очистку указанных ключей MinIO
func (m *MinioInfrastructure) CleanupImages(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// cleanupUploadedKeys удаляет указанные объекты из MinIO с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done()
	const (
		op          = "MinioInfrastructure.cleanupUploadedKeys"
		maxAttempts = 3
		baseBackoff = time.Second
		maxBackoff  = 10 * time.Second
	)
	m.logger.Infof("%s: Cleaning up uploaded keys", op)

	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for _, key := range keys {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			if err := m.minioRepo.Delete(ctx, key); err == nil {
				break
			}

			select {
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			default:
			}

			if attempt < maxAttempts-1 {
				sleepTime := jitter.ExponentialBackoff(baseBackoff, maxBackoff, attempt, jitter.DefaultJitter)

				select {
				case <-time.After(sleepTime):
				case <-ctx.Done():
					m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
					return
				}
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}

// publicURLs строит публичные URL вида <publicURL>/<bucket>/<key>.
func (m *MinioInfrastructure) publicURLs(keys []string) []string {
	urls := make([]string, 0, len(keys))
	for _, key := range keys {
		urls = append(urls, m.cfg.PublicURL+"/"+m.cfg.BucketName+"/"+key)
	}

	return urls
}

// objectKeyFromURL извлекает ключ объекта из публичного URL: суффикс
// после "/<bucket>/". Чужие URL (другой бакет, внешний хостинг) не распознаются.
func (m *MinioInfrastructure) objectKeyFromURL(url string) (string, bool) {
	marker := "/" + m.cfg.BucketName + "/"

	idx := strings.Index(url, marker)
	if idx < 0 {
		return "", false
	}

	key := url[idx+len(marker):]
	if key == "" {
		return "", false
	}

	return key, true
}

// sanitizeName приводит имя к безопасному виду для ключа объекта.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" {
		name = "image"
	}

	return name
}
