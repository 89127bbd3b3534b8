package http

import (
	"net/http"

	"github.com/doodle-alley/go-backend/internal/usecase"
	"github.com/doodle-alley/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// listProducts
//
//	@Summary	Список всех товаров (включая неактивные)
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.ListProducts(r.Context())
	if err != nil {
		p.logger.Errorf(err, "failed to list products")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products": toProductResponses(products),
	})
}

// getProduct
//
//	@Summary	Товар по идентификатору
//	@Produce	json
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := p.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		p.logger.Warnf("failed to get product %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"product": toProductResponse(product),
	})
}

// createProduct
//
//	@Summary	Создание товара (только администратор)
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	map[string]interface{}
//	@Failure	400	{object}	ErrorResponse
//	@Router		/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		p.logger.Warnf("%d invalid product body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.CreateProduct(r.Context(), req.toCreateReq())
	if err != nil {
		p.logger.Warnf("failed to create product: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"product": toProductResponse(product),
	})
}

// updateProduct
//
//	@Summary	Частичное обновление товара (только администратор)
//	@Accept		json
//	@Produce	json
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		p.logger.Warnf("%d invalid product body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.UpdateProduct(r.Context(), id, req.toPatch())
	if err != nil {
		p.logger.Warnf("failed to update product %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"product": toProductResponse(product),
	})
}

// deleteProduct
//
//	@Summary	Удаление товара вместе с объектами изображений (только администратор)
//	@Produce	json
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	StatusResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := p.productUsecase.DeleteProduct(r.Context(), id); err != nil {
		p.logger.Warnf("failed to delete product %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, StatusResponse{Success: true})
}
