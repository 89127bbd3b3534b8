package usecase

import (
	"context"
	"strings"

	"github.com/doodle-alley/go-backend/internal/domain"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/doodle-alley/go-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// ProductUseCase реализует бизнес-логику управления товарами каталога.
type ProductUseCase struct {
	productRepo ProductRepository
	imagesInfra ImagesInfra
	logger      logger.Logger
}

func NewProductUC(productRepo ProductRepository, imagesInfra ImagesInfra, logger logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		imagesInfra: imagesInfra,
		logger:      logger,
	}
}

// ListProducts возвращает все товары без пагинации и без гарантии порядка.
func (p *ProductUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.ListProducts"

	products, err := p.productRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProduct возвращает товар по идентификатору. Неактивные товары
// остаются доступными по прямой ссылке.
func (p *ProductUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "ProductUseCase.GetProduct"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// CreateProduct валидирует и сохраняет новый товар.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.CreateProduct"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrProductNameRequired)
	}

	if err := validatePrice(req.Price); err != nil {
		return nil, e.Wrap(op, err)
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	product, err := p.productRepo.Create(ctx, domain.NewProduct(
		req.Name, req.Description, req.Category, req.Price, images, req.IsActive,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// UpdateProduct накладывает частичное обновление на существующую запись.
// ID и CreatedAt сохраняются, UpdatedAt обновляется.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, id string, patch *domain.ProductPatch) (*domain.Product, error) {
	const op = "ProductUseCase.UpdateProduct"

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, e.Wrap(op, e.ErrProductNameRequired)
	}

	if patch.Price != nil {
		if err := validatePrice(*patch.Price); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	product, err := p.productRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// DeleteProduct удаляет товар в два этапа: сначала объекты изображений из
// бакета, затем запись. Перед удалением запись помечается меткой
// product_delete:<id>; при сбое удаления объектов запись остаётся на месте,
// метка истекает по TTL. Ошибка снятия метки после успешного удаления
// не считается ошибкой операции.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	const op = "ProductUseCase.DeleteProduct"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := p.productRepo.MarkForDeletion(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if len(product.Images) > 0 {
		if err := p.imagesInfra.RemoveImages(ctx, product.Images); err != nil {
			return e.Wrap(op, err)
		}
	}

	if err := p.productRepo.Delete(ctx, id); err != nil {
		// Объекты уже удалены, запись осталась с битыми ссылками;
		// автоматического восстановления нет, метка укажет на обрыв.
		return e.Wrap(op, err)
	}

	if err := p.productRepo.ClearDeletionMark(ctx, id); err != nil {
		p.logger.Warnf("failed to clear deletion mark, it will expire by TTL: product_id=%s, err=%v", id, err)
	}

	return nil
}

// UploadProductImages загружает изображения в бакет и возвращает публичные URL.
func (p *ProductUseCase) UploadProductImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error) {
	const op = "ProductUseCase.UploadProductImages"

	if len(req.Images) == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}

	res, err := p.imagesInfra.UploadImages(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

// validatePrice проверяет, что цена неотрицательна и имеет не больше
// двух знаков после запятой.
func validatePrice(price float64) error {
	d := decimal.NewFromFloat(price)

	if d.IsNegative() {
		return e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return e.ErrPricePrecision
	}

	return nil
}
