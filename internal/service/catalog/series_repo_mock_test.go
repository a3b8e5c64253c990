package catalog

import (
	"context"
	"github.com/pgic/pgic-backend/internal/domain"
	"sync"
)

var _ seriesRepo = &seriesRepoMock{}

type seriesRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.DataSeries, error)
	ListFunc    func(ctx context.Context, filter domain.SeriesFilter) ([]domain.DataSeries, error)
	CreateFunc  func(ctx context.Context, s domain.DataSeries) (*domain.DataSeries, error)
	UpdateFunc  func(ctx context.Context, id int64, params domain.SeriesUpdateParams) (*domain.DataSeries, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.SeriesFilter
		}
		Create []struct {
			Ctx context.Context
			S   domain.DataSeries
		}
		Update []struct {
			Ctx    context.Context
			Id     int64
			Params domain.SeriesUpdateParams
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *seriesRepoMock) GetByID(ctx context.Context, id int64) (*domain.DataSeries, error) {
	if mock.GetByIDFunc == nil {
		panic("seriesRepoMock.GetByIDFunc: method is nil but seriesRepo.GetByID was just called")
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

func (mock *seriesRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *seriesRepoMock) List(ctx context.Context, filter domain.SeriesFilter) ([]domain.DataSeries, error) {
	if mock.ListFunc == nil {
		panic("seriesRepoMock.ListFunc: method is nil but seriesRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SeriesFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *seriesRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.SeriesFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *seriesRepoMock) Create(ctx context.Context, s domain.DataSeries) (*domain.DataSeries, error) {
	if mock.CreateFunc == nil {
		panic("seriesRepoMock.CreateFunc: method is nil but seriesRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.DataSeries
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *seriesRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.DataSeries
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *seriesRepoMock) Update(ctx context.Context, id int64, params domain.SeriesUpdateParams) (*domain.DataSeries, error) {
	if mock.UpdateFunc == nil {
		panic("seriesRepoMock.UpdateFunc: method is nil but seriesRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     int64
		Params domain.SeriesUpdateParams
	}{Ctx: ctx, Id: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *seriesRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     int64
	Params domain.SeriesUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
