package observation

import (
	"context"
	"github.com/pgic/pgic-backend/internal/domain"
	"sync"
)

var _ seriesRepo = &seriesRepoMock{}

type seriesRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.DataSeries, error)
	LockTargetFunc func(ctx context.Context, seriesID int64) (*domain.SeriesTarget, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		LockTarget []struct {
			Ctx      context.Context
			SeriesID int64
		}
	}
	lockGetByID    sync.RWMutex
	lockLockTarget sync.RWMutex
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

func (mock *seriesRepoMock) LockTarget(ctx context.Context, seriesID int64) (*domain.SeriesTarget, error) {
	if mock.LockTargetFunc == nil {
		panic("seriesRepoMock.LockTargetFunc: method is nil but seriesRepo.LockTarget was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SeriesID int64
	}{Ctx: ctx, SeriesID: seriesID}
	mock.lockLockTarget.Lock()
	mock.calls.LockTarget = append(mock.calls.LockTarget, callInfo)
	mock.lockLockTarget.Unlock()
	return mock.LockTargetFunc(ctx, seriesID)
}

func (mock *seriesRepoMock) LockTargetCalls() []struct {
	Ctx      context.Context
	SeriesID int64
} {
	mock.lockLockTarget.RLock()
	calls := mock.calls.LockTarget
	mock.lockLockTarget.RUnlock()
	return calls
}
