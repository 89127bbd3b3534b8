package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/doodle-alley/go-backend/internal/domain"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/doodle-alley/go-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// OrderUseCase реализует оформление и просмотр заказов.
// Заказы append-only: операций обновления и удаления нет.
type OrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	logger      logger.Logger
}

func NewOrderUC(orderRepo OrderRepository, productRepo ProductRepository, logger logger.Logger) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// SubmitOrder сохраняет заказ с денормализованным снимком товара.
// Присланные клиентом ProductName/ProductPrice/TotalPrice принимаются как
// есть; отсутствующие значения восстанавливаются по текущему товару.
func (o *OrderUseCase) SubmitOrder(ctx context.Context, req *SubmitOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.SubmitOrder"

	if err := validateOrder(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	name, price, err := o.productSnapshot(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	totalPrice := mulPrice(price, quantity)
	if req.TotalPrice != nil {
		totalPrice = *req.TotalPrice
	}

	order, err := o.orderRepo.Create(ctx, &domain.Order{
		ProductID:       req.ProductID,
		ProductName:     name,
		ProductPrice:    price,
		CustomerName:    req.CustomerName,
		PhoneNumber:     req.PhoneNumber,
		DeliveryAddress: req.DeliveryAddress,
		Quantity:        quantity,
		Notes:           req.Notes,
		TotalPrice:      totalPrice,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// ListOrders возвращает все заказы, новые первыми.
func (o *OrderUseCase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Репозиторий порядок не гарантирует, сортировка — здесь.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

// productSnapshot возвращает имя и цену товара для записи в заказ.
// Если клиент прислал снимок сам, товар не перечитывается.
func (o *OrderUseCase) productSnapshot(ctx context.Context, req *SubmitOrderReq) (string, float64, error) {
	if req.ProductName != "" && req.ProductPrice != nil {
		return req.ProductName, *req.ProductPrice, nil
	}

	product, err := o.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return "", 0, err
	}

	name := req.ProductName
	if name == "" {
		name = product.Name
	}

	price := product.Price
	if req.ProductPrice != nil {
		price = *req.ProductPrice
	}

	return name, price, nil
}

func validateOrder(req *SubmitOrderReq) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return e.ErrCustomerNameRequired
	}

	if strings.TrimSpace(req.PhoneNumber) == "" {
		return e.ErrPhoneNumberRequired
	}

	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return e.ErrDeliveryAddressRequired
	}

	if req.Quantity < 0 {
		return e.ErrInvalidQuantity
	}

	return nil
}

// mulPrice перемножает цену и количество без накопления двоичной погрешности.
func mulPrice(price float64, quantity int) float64 {
	total := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
	return total.InexactFloat64()
}
