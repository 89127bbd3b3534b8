package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       float64
	Images      []string // публичные URL в порядке отображения
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProduct(name, description, category string, price float64, images []string, isActive bool) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		Images:      images,
		IsActive:    isActive,
	}
}

// ProductPatch — частичное обновление товара. nil-поля не трогают запись.
// ID и CreatedAt не патчатся принципиально.
type ProductPatch struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Images      *[]string
	IsActive    *bool
}

// Apply накладывает заполненные поля патча на существующую запись.
func (p *ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Images != nil {
		product.Images = *p.Images
	}
	if p.IsActive != nil {
		product.IsActive = *p.IsActive
	}
}
