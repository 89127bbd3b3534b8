package http

import (
	"net/http"

	"github.com/doodle-alley/go-backend/internal/usecase"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/doodle-alley/go-backend/pkg/logger"
)

type ImageHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewImageHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ImageHandler {
	return &ImageHandler{productUsecase: productUsecase, logger: logger}
}

// uploadImages
//
//	@Summary	Загрузка изображений товара (только администратор)
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		name	formData	string	false	"Название товара (префикс ключа объекта)"
//	@Param		images	formData	file	true	"Файлы изображений"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	ErrorResponse
//	@Router		/images [post]
func (i *ImageHandler) uploadImages(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		i.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrExpectedMultipart.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		i.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := i.productUsecase.UploadProductImages(r.Context(), usecase.NewUploadImagesReq(r.FormValue("name"), images))
	if err != nil {
		i.logger.Warnf("failed to upload images: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"images": res.ImageURLs,
	})
}
