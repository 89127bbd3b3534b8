package usecase

import "github.com/doodle-alley/go-backend/internal/domain"

// PRODUCT USECASE

// CreateProductReq — запрос на добавление нового товара.
type CreateProductReq struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Images      []string
	IsActive    bool
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// UploadImagesRes — результат загрузки (публичные URL).
type UploadImagesRes struct {
	ImageURLs []string
}

// ORDER USECASE

// SubmitOrderReq — запрос на оформление заказа. Поля снимка товара
// (ProductName, ProductPrice, TotalPrice) опциональны: отсутствующие
// значения восстанавливаются по товару на стороне сервера, присланные
// принимаются как есть.
type SubmitOrderReq struct {
	ProductID       string
	ProductName     string
	ProductPrice    *float64
	CustomerName    string
	PhoneNumber     string
	DeliveryAddress string
	Quantity        int
	Notes           string
	TotalPrice      *float64
}

// CATALOG USECASE

// BrowseCatalogReq — параметры публичной витрины.
// Category == "" или "all" означает отсутствие фильтра по категории.
type BrowseCatalogReq struct {
	Category string
	Query    string
}

// BrowseCatalogRes — активные товары после фильтров и набор фасетов категорий.
type BrowseCatalogRes struct {
	Products   []domain.Product
	Categories []string
}

// AUTH USECASE

type LoginReq struct {
	Username string
	Password string
}

// MAPPERS

func NewCreateProductReq(name, description, category string, price float64, images []string, isActive bool) *CreateProductReq {
	return &CreateProductReq{
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		Images:      images,
		IsActive:    isActive,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(urls []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImageURLs: urls,
	}
}

func NewBrowseCatalogReq(category, query string) *BrowseCatalogReq {
	return &BrowseCatalogReq{
		Category: category,
		Query:    query,
	}
}

func NewBrowseCatalogRes(products []domain.Product, categories []string) *BrowseCatalogRes {
	return &BrowseCatalogRes{
		Products:   products,
		Categories: categories,
	}
}

func NewLoginReq(username, password string) *LoginReq {
	return &LoginReq{
		Username: username,
		Password: password,
	}
}
