package observation

import (
	"context"
	"github.com/pgic/pgic-backend/internal/domain"
	"sync"
)

var _ indicatorRepo = &indicatorRepoMock{}

type indicatorRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Indicator, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
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
