package card

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ListByDeckFunc      func(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error)
	ListIDsByDeckFunc   func(ctx context.Context, deckID uuid.UUID) ([]uuid.UUID, error)
	CreateFunc          func(ctx context.Context, c *domain.Card) error
	UpdateFunc          func(ctx context.Context, c *domain.Card) error
	UpdateDeckFunc      func(ctx context.Context, id uuid.UUID, deckID uuid.UUID, now time.Time) error
	UpdateCreatedAtFunc func(ctx context.Context, id uuid.UUID, createdAt time.Time) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByDeck []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
		ListIDsByDeck []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Card
		}
		Update []struct {
			Ctx context.Context
			C   *domain.Card
		}
		UpdateDeck []struct {
			Ctx    context.Context
			ID     uuid.UUID
			DeckID uuid.UUID
			Now    time.Time
		}
		UpdateCreatedAt []struct {
			Ctx       context.Context
			ID        uuid.UUID
			CreatedAt time.Time
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID         sync.RWMutex
	lockListByDeck      sync.RWMutex
	lockListIDsByDeck   sync.RWMutex
	lockCreate          sync.RWMutex
	lockUpdate          sync.RWMutex
	lockUpdateDeck      sync.RWMutex
	lockUpdateCreatedAt sync.RWMutex
	lockDelete          sync.RWMutex
}

func (mock *cardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *cardRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *cardRepoMock) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error) {
	if mock.ListByDeckFunc == nil {
		panic("cardRepoMock.ListByDeckFunc: method is nil but cardRepo.ListByDeck was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
	}{Ctx: ctx, DeckID: deckID}
	mock.lockListByDeck.Lock()
	mock.calls.ListByDeck = append(mock.calls.ListByDeck, callInfo)
	mock.lockListByDeck.Unlock()
	return mock.ListByDeckFunc(ctx, deckID)
}

func (mock *cardRepoMock) ListByDeckCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
} {
	mock.lockListByDeck.RLock()
	calls := mock.calls.ListByDeck
	mock.lockListByDeck.RUnlock()
	return calls
}

func (mock *cardRepoMock) ListIDsByDeck(ctx context.Context, deckID uuid.UUID) ([]uuid.UUID, error) {
	if mock.ListIDsByDeckFunc == nil {
		panic("cardRepoMock.ListIDsByDeckFunc: method is nil but cardRepo.ListIDsByDeck was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
	}{Ctx: ctx, DeckID: deckID}
	mock.lockListIDsByDeck.Lock()
	mock.calls.ListIDsByDeck = append(mock.calls.ListIDsByDeck, callInfo)
	mock.lockListIDsByDeck.Unlock()
	return mock.ListIDsByDeckFunc(ctx, deckID)
}

func (mock *cardRepoMock) ListIDsByDeckCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
} {
	mock.lockListIDsByDeck.RLock()
	calls := mock.calls.ListIDsByDeck
	mock.lockListIDsByDeck.RUnlock()
	return calls
}

func (mock *cardRepoMock) Create(ctx context.Context, c *domain.Card) error {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Card
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Card
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Update(ctx context.Context, c *domain.Card) error {
	if mock.UpdateFunc == nil {
		panic("cardRepoMock.UpdateFunc: method is nil but cardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Card
	}{Ctx: ctx, C: c}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *cardRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   *domain.Card
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *cardRepoMock) UpdateDeck(ctx context.Context, id uuid.UUID, deckID uuid.UUID, now time.Time) error {
	if mock.UpdateDeckFunc == nil {
		panic("cardRepoMock.UpdateDeckFunc: method is nil but cardRepo.UpdateDeck was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		DeckID uuid.UUID
		Now    time.Time
	}{Ctx: ctx, ID: id, DeckID: deckID, Now: now}
	mock.lockUpdateDeck.Lock()
	mock.calls.UpdateDeck = append(mock.calls.UpdateDeck, callInfo)
	mock.lockUpdateDeck.Unlock()
	return mock.UpdateDeckFunc(ctx, id, deckID, now)
}

func (mock *cardRepoMock) UpdateDeckCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	DeckID uuid.UUID
	Now    time.Time
} {
	mock.lockUpdateDeck.RLock()
	calls := mock.calls.UpdateDeck
	mock.lockUpdateDeck.RUnlock()
	return calls
}

func (mock *cardRepoMock) UpdateCreatedAt(ctx context.Context, id uuid.UUID, createdAt time.Time) error {
	if mock.UpdateCreatedAtFunc == nil {
		panic("cardRepoMock.UpdateCreatedAtFunc: method is nil but cardRepo.UpdateCreatedAt was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		CreatedAt time.Time
	}{Ctx: ctx, ID: id, CreatedAt: createdAt}
	mock.lockUpdateCreatedAt.Lock()
	mock.calls.UpdateCreatedAt = append(mock.calls.UpdateCreatedAt, callInfo)
	mock.lockUpdateCreatedAt.Unlock()
	return mock.UpdateCreatedAtFunc(ctx, id, createdAt)
}

func (mock *cardRepoMock) UpdateCreatedAtCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	CreatedAt time.Time
} {
	mock.lockUpdateCreatedAt.RLock()
	calls := mock.calls.UpdateCreatedAt
	mock.lockUpdateCreatedAt.RUnlock()
	return calls
}

func (mock *cardRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *cardRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ deckRepo = &deckRepoMock{}

type deckRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Deck, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *deckRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	if mock.GetByIDFunc == nil {
		panic("deckRepoMock.GetByIDFunc: method is nil but deckRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *deckRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ mediaStore = &mediaStoreMock{}

type mediaStoreMock struct {
	DeleteFunc func(ref string) error

	calls struct {
		Delete []struct {
			Ref string
		}
	}
	lockDelete sync.RWMutex
}

func (mock *mediaStoreMock) Delete(ref string) error {
	if mock.DeleteFunc == nil {
		panic("mediaStoreMock.DeleteFunc: method is nil but mediaStore.Delete was just called")
	}
	callInfo := struct{ Ref string }{Ref: ref}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ref)
}

func (mock *mediaStoreMock) DeleteCalls() []struct{ Ref string } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
