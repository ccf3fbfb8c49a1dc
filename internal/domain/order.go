package domain

import "time"

// OrderStatus — состояние заказа на кухонной доске.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING" // зарезервировано, текущий поток его не использует
	StatusPaid      OrderStatus = "PAID"
	StatusPrepared  OrderStatus = "PREPARED"
	StatusDelivered OrderStatus = "DELIVERED"
)

// Valid сообщает, известен ли статус.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusPrepared, StatusDelivered:
		return true
	}
	return false
}

// PaymentMethod — метка способа оплаты. Реальной обработки платежа нет.
type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "CASH"
	PaymentCard    PaymentMethod = "CARD"
	PaymentGeneric PaymentMethod = "GENERIC"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentGeneric:
		return true
	}
	return false
}

// OrderLine — строка корзины или заказа: снимок полей продукта плюс количество.
// Цена копируется в момент добавления, последующие изменения каталога её не трогают.
type OrderLine struct {
	ProductID string
	Name      string
	Category  string
	Price     int64 // евроценты на момент добавления
	Quantity  int
}

// LineTotal возвращает стоимость строки в евроцентах.
func (l OrderLine) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Order — финализированный заказ. Items и Total неизменяемы после создания,
// меняться может только Status (и его отметка времени).
type Order struct {
	ID              string
	Number          int
	Lines           []OrderLine
	Total           int64 // евроценты, сумма строк на момент финализации
	Status          OrderStatus
	CreatedAt       time.Time
	StatusUpdatedAt time.Time
	Payment         PaymentMethod
	WaiterID        string
	WaiterName      string
}
