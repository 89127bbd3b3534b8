package redis

import (
	"time"

	"github.com/doodle-alley/go-backend/internal/domain"
)

// Модели хранения: JSON-представление записей в key-value store.
// Ключи полей — camelCase, как их видят клиенты API.

type productModel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Images      []string  `json:"images"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type orderModel struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	ProductPrice    float64   `json:"productPrice"`
	CustomerName    string    `json:"customerName"`
	PhoneNumber     string    `json:"phoneNumber"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Quantity        int       `json:"quantity"`
	Notes           string    `json:"notes,omitempty"`
	TotalPrice      float64   `json:"totalPrice"`
	CreatedAt       time.Time `json:"createdAt"`
}

type credentialsModel struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func toProductModel(p *domain.Product) *productModel {
	return &productModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Images:      p.Images,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *productModel) toDomain() *domain.Product {
	return &domain.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Price:       m.Price,
		Images:      m.Images,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toOrderModel(o *domain.Order) *orderModel {
	return &orderModel{
		ID:              o.ID,
		ProductID:       o.ProductID,
		ProductName:     o.ProductName,
		ProductPrice:    o.ProductPrice,
		CustomerName:    o.CustomerName,
		PhoneNumber:     o.PhoneNumber,
		DeliveryAddress: o.DeliveryAddress,
		Quantity:        o.Quantity,
		Notes:           o.Notes,
		TotalPrice:      o.TotalPrice,
		CreatedAt:       o.CreatedAt,
	}
}

func (m *orderModel) toDomain() *domain.Order {
	return &domain.Order{
		ID:              m.ID,
		ProductID:       m.ProductID,
		ProductName:     m.ProductName,
		ProductPrice:    m.ProductPrice,
		CustomerName:    m.CustomerName,
		PhoneNumber:     m.PhoneNumber,
		DeliveryAddress: m.DeliveryAddress,
		Quantity:        m.Quantity,
		Notes:           m.Notes,
		TotalPrice:      m.TotalPrice,
		CreatedAt:       m.CreatedAt,
	}
}
