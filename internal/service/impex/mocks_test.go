package impex

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

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

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	ListByDeckFunc       func(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error)
	FrontTextsByDeckFunc func(ctx context.Context, deckID uuid.UUID) ([]string, error)
	CreateFunc           func(ctx context.Context, c *domain.Card) error

	calls struct {
		ListByDeck []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
		FrontTextsByDeck []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Card
		}
	}
	lockListByDeck       sync.RWMutex
	lockFrontTextsByDeck sync.RWMutex
	lockCreate           sync.RWMutex
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

func (mock *cardRepoMock) FrontTextsByDeck(ctx context.Context, deckID uuid.UUID) ([]string, error) {
	if mock.FrontTextsByDeckFunc == nil {
		panic("cardRepoMock.FrontTextsByDeckFunc: method is nil but cardRepo.FrontTextsByDeck was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
	}{Ctx: ctx, DeckID: deckID}
	mock.lockFrontTextsByDeck.Lock()
	mock.calls.FrontTextsByDeck = append(mock.calls.FrontTextsByDeck, callInfo)
	mock.lockFrontTextsByDeck.Unlock()
	return mock.FrontTextsByDeckFunc(ctx, deckID)
}

func (mock *cardRepoMock) FrontTextsByDeckCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
} {
	mock.lockFrontTextsByDeck.RLock()
	calls := mock.calls.FrontTextsByDeck
	mock.lockFrontTextsByDeck.RUnlock()
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

var _ mediaStore = &mediaStoreMock{}

type mediaStoreMock struct {
	SaveFunc   func(data []byte) (string, error)
	LoadFunc   func(ref string) ([]byte, error)
	DeleteFunc func(ref string) error

	calls struct {
		Save []struct {
			Data []byte
		}
		Load []struct {
			Ref string
		}
		Delete []struct {
			Ref string
		}
	}
	lockSave   sync.RWMutex
	lockLoad   sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *mediaStoreMock) Save(data []byte) (string, error) {
	if mock.SaveFunc == nil {
		panic("mediaStoreMock.SaveFunc: method is nil but mediaStore.Save was just called")
	}
	callInfo := struct{ Data []byte }{Data: data}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(data)
}

func (mock *mediaStoreMock) SaveCalls() []struct{ Data []byte } {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *mediaStoreMock) Load(ref string) ([]byte, error) {
	if mock.LoadFunc == nil {
		panic("mediaStoreMock.LoadFunc: method is nil but mediaStore.Load was just called")
	}
	callInfo := struct{ Ref string }{Ref: ref}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ref)
}

func (mock *mediaStoreMock) LoadCalls() []struct{ Ref string } {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
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

var _ imageEncoder = &imageEncoderMock{}

type imageEncoderMock struct {
	EncodeFunc func(data []byte) ([]byte, error)

	calls struct {
		Encode []struct {
			Data []byte
		}
	}
	lockEncode sync.RWMutex
}

func (mock *imageEncoderMock) Encode(data []byte) ([]byte, error) {
	if mock.EncodeFunc == nil {
		panic("imageEncoderMock.EncodeFunc: method is nil but imageEncoder.Encode was just called")
	}
	callInfo := struct{ Data []byte }{Data: data}
	mock.lockEncode.Lock()
	mock.calls.Encode = append(mock.calls.Encode, callInfo)
	mock.lockEncode.Unlock()
	return mock.EncodeFunc(data)
}

func (mock *imageEncoderMock) EncodeCalls() []struct{ Data []byte } {
	mock.lockEncode.RLock()
	calls := mock.calls.Encode
	mock.lockEncode.RUnlock()
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
