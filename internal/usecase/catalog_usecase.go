package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/doodle-alley/go-backend/internal/domain"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/doodle-alley/go-backend/pkg/logger"
)

// AllCategories — значение фильтра категории, означающее его отсутствие.
const AllCategories = "all"

// CatalogUseCase отдаёт публичную витрину: активные товары,
// отфильтрованные по категории и поисковой строке, плюс набор фасетов.
type CatalogUseCase struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Browse возвращает витрину. Фасеты считаются по всем активным товарам,
// до применения фильтров, чтобы выбор категории не сужал сам список категорий.
func (c *CatalogUseCase) Browse(ctx context.Context, req *BrowseCatalogReq) (*BrowseCatalogRes, error) {
	const op = "CatalogUseCase.Browse"

	products, err := c.productRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	active := ActiveProducts(products)

	return NewBrowseCatalogRes(
		FilterProducts(active, req.Category, req.Query),
		CategoryFacets(active),
	), nil
}

// ActiveProducts оставляет только товары, видимые на публичной витрине.
func ActiveProducts(products []domain.Product) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.IsActive {
			result = append(result, p)
		}
	}

	return result
}

// FilterProducts применяет к списку фильтр категории и поисковую строку.
// Фильтры соединяются по И: категория — точное совпадение ("" и "all"
// пропускают все), запрос — регистронезависимая подстрока в имени или описании.
func FilterProducts(products []domain.Product, category, query string) []domain.Product {
	result := make([]domain.Product, 0, len(products))

	query = strings.ToLower(strings.TrimSpace(query))

	for _, p := range products {
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}

		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}

		result = append(result, p)
	}

	return result
}

// CategoryFacets возвращает отсортированное множество непустых категорий.
func CategoryFacets(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	result := make([]string, 0, len(products))

	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		result = append(result, p.Category)
	}

	sort.Strings(result)
	return result
}
