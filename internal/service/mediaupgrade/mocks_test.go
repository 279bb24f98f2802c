package mediaupgrade

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	ListLegacyMediaFunc   func(ctx context.Context, limit int) ([]domain.LegacyCardMedia, error)
	SaveUpgradedMediaFunc func(ctx context.Context, id uuid.UUID, params domain.CardMediaParams, now time.Time) error

	calls struct {
		ListLegacyMedia []struct {
			Ctx   context.Context
			Limit int
		}
		SaveUpgradedMedia []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.CardMediaParams
			Now    time.Time
		}
	}
	lockListLegacyMedia   sync.RWMutex
	lockSaveUpgradedMedia sync.RWMutex
}

func (mock *cardRepoMock) ListLegacyMedia(ctx context.Context, limit int) ([]domain.LegacyCardMedia, error) {
	if mock.ListLegacyMediaFunc == nil {
		panic("cardRepoMock.ListLegacyMediaFunc: method is nil but cardRepo.ListLegacyMedia was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListLegacyMedia.Lock()
	mock.calls.ListLegacyMedia = append(mock.calls.ListLegacyMedia, callInfo)
	mock.lockListLegacyMedia.Unlock()
	return mock.ListLegacyMediaFunc(ctx, limit)
}

func (mock *cardRepoMock) ListLegacyMediaCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListLegacyMedia.RLock()
	calls := mock.calls.ListLegacyMedia
	mock.lockListLegacyMedia.RUnlock()
	return calls
}

func (mock *cardRepoMock) SaveUpgradedMedia(ctx context.Context, id uuid.UUID, params domain.CardMediaParams, now time.Time) error {
	if mock.SaveUpgradedMediaFunc == nil {
		panic("cardRepoMock.SaveUpgradedMediaFunc: method is nil but cardRepo.SaveUpgradedMedia was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.CardMediaParams
		Now    time.Time
	}{Ctx: ctx, ID: id, Params: params, Now: now}
	mock.lockSaveUpgradedMedia.Lock()
	mock.calls.SaveUpgradedMedia = append(mock.calls.SaveUpgradedMedia, callInfo)
	mock.lockSaveUpgradedMedia.Unlock()
	return mock.SaveUpgradedMediaFunc(ctx, id, params, now)
}

func (mock *cardRepoMock) SaveUpgradedMediaCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.CardMediaParams
	Now    time.Time
} {
	mock.lockSaveUpgradedMedia.RLock()
	calls := mock.calls.SaveUpgradedMedia
	mock.lockSaveUpgradedMedia.RUnlock()
	return calls
}

var _ mediaStore = &mediaStoreMock{}

type mediaStoreMock struct {
	SaveFunc   func(data []byte) (string, error)
	AdoptFunc  func(ref string) (string, error)
	DeleteFunc func(ref string) error

	calls struct {
		Save []struct {
			Data []byte
		}
		Adopt []struct {
			Ref string
		}
		Delete []struct {
			Ref string
		}
	}
	lockSave   sync.RWMutex
	lockAdopt  sync.RWMutex
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

func (mock *mediaStoreMock) Adopt(ref string) (string, error) {
	if mock.AdoptFunc == nil {
		panic("mediaStoreMock.AdoptFunc: method is nil but mediaStore.Adopt was just called")
	}
	callInfo := struct{ Ref string }{Ref: ref}
	mock.lockAdopt.Lock()
	mock.calls.Adopt = append(mock.calls.Adopt, callInfo)
	mock.lockAdopt.Unlock()
	return mock.AdoptFunc(ref)
}

func (mock *mediaStoreMock) AdoptCalls() []struct{ Ref string } {
	mock.lockAdopt.RLock()
	calls := mock.calls.Adopt
	mock.lockAdopt.RUnlock()
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
