package http

import (
	"net/http"

	"github.com/doodle-alley/go-backend/internal/usecase"
	"github.com/doodle-alley/go-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// browse
//
//	@Summary	Публичная витрина: активные товары после фильтров и фасеты категорий
//	@Produce	json
//	@Param		category	query		string	false	"Категория; пусто или 'all' — без фильтра"
//	@Param		query		query		string	false	"Поисковая строка по имени и описанию"
//	@Success	200			{object}	map[string]interface{}
//	@Router		/catalog [get]
func (c *CatalogHandler) browse(w http.ResponseWriter, r *http.Request) {
	req := usecase.NewBrowseCatalogReq(
		r.URL.Query().Get("category"),
		r.URL.Query().Get("query"),
	)

	res, err := c.catalogUsecase.Browse(r.Context(), req)
	if err != nil {
		c.logger.Errorf(err, "failed to browse catalog")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products":   toProductResponses(res.Products),
		"categories": res.Categories,
	})
}
