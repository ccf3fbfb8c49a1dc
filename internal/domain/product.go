package domain

// Product описывает позицию каталога
type Product struct {
	ID       string
	Name     string
	Category string // свободная текстовая метка, не закрытый перечень
	Price    int64  // Цена хранится в евроцентах
}

func NewProduct(id, name, category string, price int64) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    price,
	}
}
