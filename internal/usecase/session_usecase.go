package usecase

import (
	"context"

	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/internal/store"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/logger"
)

// SessionUsecase отслеживает активного официанта терминала.
// Проверка PIN — простое сравнение строк без хеширования и без ограничения
// попыток: это идентификация оператора, а не защита от злоумышленника.
type SessionUsecase struct {
	store  *store.Store
	logger logger.Logger
}

func NewSessionUC(store *store.Store, logger logger.Logger) *SessionUsecase {
	return &SessionUsecase{
		store:  store,
		logger: logger,
	}
}

// Login сверяет PIN официанта и делает его активным. Несовпадение PIN или
// неизвестный ID — обычный отказ аутентификации, не фатальный.
func (s *SessionUsecase) Login(ctx context.Context, waiterID, pin string) (*domain.Waiter, error) {
	const op = "SessionUsecase.Login"

	s.store.Lock()
	defer s.store.Unlock()

	waiter := s.store.FindWaiter(waiterID)
	if waiter == nil || waiter.PIN != pin {
		return nil, e.Wrap(op, e.ErrAuthenticationFailed)
	}

	w := *waiter
	s.store.Current = &w
	s.logger.Infof("waiter %s logged in", w.Name)
	return &w, nil
}

// Logout снимает активного официанта.
func (s *SessionUsecase) Logout(ctx context.Context) {
	s.store.Lock()
	defer s.store.Unlock()

	if s.store.Current != nil {
		s.logger.Infof("waiter %s logged out", s.store.Current.Name)
	}
	s.store.Current = nil
}

// Current возвращает активного официанта либо nil.
func (s *SessionUsecase) Current(ctx context.Context) *domain.Waiter {
	s.store.Lock()
	defer s.store.Unlock()

	if s.store.Current == nil {
		return nil
	}
	w := *s.store.Current
	return &w
}

// Waiters возвращает ростер.
func (s *SessionUsecase) Waiters(ctx context.Context) []domain.Waiter {
	s.store.Lock()
	defer s.store.Unlock()

	out := make([]domain.Waiter, len(s.store.Waiters))
	copy(out, s.store.Waiters)
	return out
}
