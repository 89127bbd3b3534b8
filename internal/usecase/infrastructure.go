package usecase

import "context"

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	// RemoveImages удаляет объекты бакета, на которые ссылаются публичные URL.
	// URL, не относящиеся к бакету, молча пропускаются.
	RemoveImages(ctx context.Context, urls []string) error
	CleanupImages(keys []string)
}
