package store

import "github.com/comptoir-pos/backend/internal/domain"

// DefaultCatalog возвращает каталог по умолчанию. Применяется, когда в
// хранилище ещё нет снапшота каталога.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Espresso", Category: "Café", Price: 250},
		{ID: "2", Name: "Cappuccino", Category: "Café", Price: 350},
		{ID: "3", Name: "Latte", Category: "Café", Price: 400},
		{ID: "4", Name: "Croissant", Category: "Boulangerie", Price: 200},
		{ID: "5", Name: "Pain au Chocolat", Category: "Boulangerie", Price: 220},
		{ID: "6", Name: "Avocado Toast", Category: "Nourriture", Price: 850},
		{ID: "7", Name: "Thé Glacé Maison", Category: "Boissons", Price: 350},
		{ID: "8", Name: "Cheesecake", Category: "Dessert", Price: 500},
	}
}

// DefaultWaiters возвращает статический ростер терминала.
func DefaultWaiters() []domain.Waiter {
	return []domain.Waiter{
		{ID: "w1", Name: "Jean Dupont", PIN: "123"},
		{ID: "w2", Name: "Sarah Martin", PIN: "000"},
		{ID: "w3", Name: "Michel Roux", PIN: "111"},
	}
}
