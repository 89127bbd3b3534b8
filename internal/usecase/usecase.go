package usecase

import (
	"context"

	"github.com/doodle-alley/go-backend/internal/domain"
)

type ProductUC interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch *domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	UploadProductImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
}

type OrderUC interface {
	SubmitOrder(ctx context.Context, req *SubmitOrderReq) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type CatalogUC interface {
	Browse(ctx context.Context, req *BrowseCatalogReq) (*BrowseCatalogRes, error)
}

type AuthUC interface {
	Login(ctx context.Context, req *LoginReq) (string, error)
	VerifyToken(token string) error
}
