package usecase

import (
	"context"

	"github.com/doodle-alley/go-backend/internal/domain"
)

type ProductRepository interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, patch *domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error

	// Метки двухфазного удаления: товар помечается до удаления объектов
	// из хранилища и очищается после удаления записи.
	MarkForDeletion(ctx context.Context, id string) error
	ClearDeletionMark(ctx context.Context, id string) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}

type CredentialsRepository interface {
	Get(ctx context.Context) (*domain.AdminCredentials, error)
	// Seed атомарно записывает пару по умолчанию, если записи ещё нет.
	// Возвращает true, если запись была создана этим вызовом.
	Seed(ctx context.Context, creds *domain.AdminCredentials) (bool, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
