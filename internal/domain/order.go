package domain

import "time"

// Order описывает заказ. Поля ProductName и ProductPrice — денормализованный
// снимок товара на момент оформления: последующие правки товара не
// затрагивают историю заказов.
type Order struct {
	ID              string
	ProductID       string
	ProductName     string
	ProductPrice    float64
	CustomerName    string
	PhoneNumber     string
	DeliveryAddress string
	Quantity        int
	Notes           string
	TotalPrice      float64
	CreatedAt       time.Time
}
