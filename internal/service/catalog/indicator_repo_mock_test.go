package catalog

import (
	"context"
	"github.com/pgic/pgic-backend/internal/domain"
	"sync"
)

var _ indicatorRepo = &indicatorRepoMock{}

type indicatorRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.Indicator, error)
	GetForUpdateFunc func(ctx context.Context, id int64) (*domain.Indicator, error)
	ListFunc         func(ctx context.Context, filter domain.IndicatorFilter) ([]domain.Indicator, error)
	CreateFunc       func(ctx context.Context, ind domain.Indicator) (*domain.Indicator, error)
	UpdateFunc       func(ctx context.Context, id int64, params domain.IndicatorUpdateParams) (*domain.Indicator, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.IndicatorFilter
		}
		Create []struct {
			Ctx context.Context
			Ind domain.Indicator
		}
		Update []struct {
			Ctx    context.Context
			Id     int64
			Params domain.IndicatorUpdateParams
		}
	}
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockList         sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
}

func (mock *indicatorRepoMock) GetByID(ctx context.Context, id int64) (*domain.Indicator, error) {
	if mock.GetByIDFunc == nil {
		panic("indicatorRepoMock.GetByIDFunc: method is nil but indicatorRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *indicatorRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *indicatorRepoMock) GetForUpdate(ctx context.Context, id int64) (*domain.Indicator, error) {
	if mock.GetForUpdateFunc == nil {
		panic("indicatorRepoMock.GetForUpdateFunc: method is nil but indicatorRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *indicatorRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *indicatorRepoMock) List(ctx context.Context, filter domain.IndicatorFilter) ([]domain.Indicator, error) {
	if mock.ListFunc == nil {
		panic("indicatorRepoMock.ListFunc: method is nil but indicatorRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.IndicatorFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *indicatorRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.IndicatorFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *indicatorRepoMock) Create(ctx context.Context, ind domain.Indicator) (*domain.Indicator, error) {
	if mock.CreateFunc == nil {
		panic("indicatorRepoMock.CreateFunc: method is nil but indicatorRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ind domain.Indicator
	}{Ctx: ctx, Ind: ind}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ind)
}

func (mock *indicatorRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ind domain.Indicator
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *indicatorRepoMock) Update(ctx context.Context, id int64, params domain.IndicatorUpdateParams) (*domain.Indicator, error) {
	if mock.UpdateFunc == nil {
		panic("indicatorRepoMock.UpdateFunc: method is nil but indicatorRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     int64
		Params domain.IndicatorUpdateParams
	}{Ctx: ctx, Id: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *indicatorRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     int64
	Params domain.IndicatorUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
