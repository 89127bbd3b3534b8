package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/doodle-alley/go-backend/internal/usecase"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// ErrorResponse — тело ответа об ошибке: { "error": "..." }
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse — тело ответа логина и удаления: { "success": ..., "message": ... }
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// ToHTTPResponse переводит ошибку бизнес-слоя в HTTP-код и сообщение.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, e.ErrInvalidCredentials.Error()
	case errors.Is(err, e.ErrTokenRequired):
		return http.StatusUnauthorized, e.ErrTokenRequired.Error()
	case errors.Is(err, e.ErrInvalidToken):
		return http.StatusUnauthorized, e.ErrInvalidToken.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrCustomerNameRequired):
		return http.StatusBadRequest, e.ErrCustomerNameRequired.Error()
	case errors.Is(err, e.ErrPhoneNumberRequired):
		return http.StatusBadRequest, e.ErrPhoneNumberRequired.Error()
	case errors.Is(err, e.ErrDeliveryAddressRequired):
		return http.StatusBadRequest, e.ErrDeliveryAddressRequired.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrNoImages):
		return http.StatusBadRequest, e.ErrNoImages.Error()
	case errors.Is(err, e.ErrTooManyImages):
		return http.StatusBadRequest, e.ErrTooManyImages.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusBadRequest, e.ErrUnsupportedMediaType.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON разбирает JSON-тело запроса. Любая ошибка разбора — 400.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

func parseImages(files []*multipart.FileHeader) ([]usecase.ProductImage, error) {
	const (
		maxImageCount = 10
		maxFileSize   = 15 << 20
	)

	if len(files) == 0 {
		return nil, e.ErrNoImages
	}
	if len(files) > maxImageCount {
		return nil, e.ErrTooManyImages
	}

	images := make([]usecase.ProductImage, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}
		images = append(images, *usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename))
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
