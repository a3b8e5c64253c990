package workflow

import (
	"context"
	"sync"
)

var _ observationRepo = &observationRepoMock{}

type observationRepoMock struct {
	PromoteValidatedFunc func(ctx context.Context, indicatorID int64) (int64, error)

	calls struct {
		PromoteValidated []struct {
			Ctx         context.Context
			IndicatorID int64
		}
	}
	lockPromoteValidated sync.RWMutex
}

func (mock *observationRepoMock) PromoteValidated(ctx context.Context, indicatorID int64) (int64, error) {
	if mock.PromoteValidatedFunc == nil {
		panic("observationRepoMock.PromoteValidatedFunc: method is nil but observationRepo.PromoteValidated was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		IndicatorID int64
	}{Ctx: ctx, IndicatorID: indicatorID}
	mock.lockPromoteValidated.Lock()
	mock.calls.PromoteValidated = append(mock.calls.PromoteValidated, callInfo)
	mock.lockPromoteValidated.Unlock()
	return mock.PromoteValidatedFunc(ctx, indicatorID)
}

func (mock *observationRepoMock) PromoteValidatedCalls() []struct {
	Ctx         context.Context
	IndicatorID int64
} {
	mock.lockPromoteValidated.RLock()
	calls := mock.calls.PromoteValidated
	mock.lockPromoteValidated.RUnlock()
	return calls
}
