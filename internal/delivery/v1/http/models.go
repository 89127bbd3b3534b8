package http

import (
	"time"

	"github.com/doodle-alley/go-backend/internal/domain"
	"github.com/doodle-alley/go-backend/internal/usecase"
)

// Запросы и ответы API. Формат полей — camelCase, как их ожидают клиенты.

// productRequest используется и для создания, и для частичного обновления:
// nil-поля в PUT не трогают запись.
type productRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price"`
	Images      *[]string `json:"images"`
	IsActive    *bool     `json:"isActive"`
}

func (r *productRequest) toCreateReq() *usecase.CreateProductReq {
	req := &usecase.CreateProductReq{}
	if r.Name != nil {
		req.Name = *r.Name
	}
	if r.Description != nil {
		req.Description = *r.Description
	}
	if r.Category != nil {
		req.Category = *r.Category
	}
	if r.Price != nil {
		req.Price = *r.Price
	}
	if r.Images != nil {
		req.Images = *r.Images
	}
	if r.IsActive != nil {
		req.IsActive = *r.IsActive
	}

	return req
}

func (r *productRequest) toPatch() *domain.ProductPatch {
	return &domain.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Images:      r.Images,
		IsActive:    r.IsActive,
	}
}

type orderRequest struct {
	ProductID       string   `json:"productId"`
	ProductName     string   `json:"productName"`
	ProductPrice    *float64 `json:"productPrice"`
	CustomerName    string   `json:"customerName"`
	PhoneNumber     string   `json:"phoneNumber"`
	DeliveryAddress string   `json:"deliveryAddress"`
	Quantity        int      `json:"quantity"`
	Notes           string   `json:"notes"`
	TotalPrice      *float64 `json:"totalPrice"`
}

func (r *orderRequest) toSubmitReq() *usecase.SubmitOrderReq {
	return &usecase.SubmitOrderReq{
		ProductID:       r.ProductID,
		ProductName:     r.ProductName,
		ProductPrice:    r.ProductPrice,
		CustomerName:    r.CustomerName,
		PhoneNumber:     r.PhoneNumber,
		DeliveryAddress: r.DeliveryAddress,
		Quantity:        r.Quantity,
		Notes:           r.Notes,
		TotalPrice:      r.TotalPrice,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type productResponse struct {
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

type orderResponse struct {
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

func toProductResponse(p *domain.Product) productResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Images:      images,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	result := make([]productResponse, 0, len(products))
	for i := range products {
		result = append(result, toProductResponse(&products[i]))
	}

	return result
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
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

func toOrderResponses(orders []domain.Order) []orderResponse {
	result := make([]orderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, toOrderResponse(&orders[i]))
	}

	return result
}
