// Package store держит всё состояние терминала в одном месте: каталог,
// открытую корзину, журнал заказов и активного официанта. Любая операция
// над состоянием выполняется под общим мьютексом, поэтому ни одна мутация
// не наблюдаема наполовину применённой.
package store

import (
	"sync"

	"github.com/comptoir-pos/backend/internal/domain"
)

// Store — единственный владелец состояния процесса. Usecase-слой обязан
// брать Lock перед любым доступом к полям.
type Store struct {
	mu sync.Mutex

	// Catalog хранится в порядке добавления.
	Catalog []domain.Product
	// Cart — строки открытой корзины. Не переживает перезапуск процесса.
	Cart []domain.OrderLine
	// Orders — журнал заказов, самый свежий первым.
	Orders []domain.Order
	// Waiters — статический ростер.
	Waiters []domain.Waiter
	// Current — активный официант, nil если никто не вошёл.
	Current *domain.Waiter
}

// New создаёт пустое состояние с ростером по умолчанию.
func New() *Store {
	return &Store{
		Waiters: DefaultWaiters(),
	}
}

func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

// Reset возвращает состояние к начальному: засеянный каталог, пустые
// корзина и журнал, никто не вошёл. Используется в тестах.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Catalog = DefaultCatalog()
	s.Cart = nil
	s.Orders = nil
	s.Waiters = DefaultWaiters()
	s.Current = nil
}

// FindProduct ищет продукт каталога по ID. Вызывается под Lock.
func (s *Store) FindProduct(id string) *domain.Product {
	for i := range s.Catalog {
		if s.Catalog[i].ID == id {
			return &s.Catalog[i]
		}
	}
	return nil
}

// FindOrder ищет заказ журнала по ID. Вызывается под Lock.
func (s *Store) FindOrder(id string) *domain.Order {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return &s.Orders[i]
		}
	}
	return nil
}

// FindWaiter ищет официанта ростера по ID. Вызывается под Lock.
func (s *Store) FindWaiter(id string) *domain.Waiter {
	for i := range s.Waiters {
		if s.Waiters[i].ID == id {
			return &s.Waiters[i]
		}
	}
	return nil
}
