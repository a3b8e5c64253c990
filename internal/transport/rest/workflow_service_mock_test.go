package rest

import (
	"context"
	"github.com/pgic/pgic-backend/internal/domain"
	"sync"
)

var _ workflowService = &workflowServiceMock{}

type workflowServiceMock struct {
	TransitionFunc func(ctx context.Context, indicatorID int64, target domain.WorkflowState) (*domain.Indicator, error)

	calls struct {
		Transition []struct {
			Ctx         context.Context
			IndicatorID int64
			Target      domain.WorkflowState
		}
	}
	lockTransition sync.RWMutex
}

func (mock *workflowServiceMock) Transition(ctx context.Context, indicatorID int64, target domain.WorkflowState) (*domain.Indicator, error) {
	if mock.TransitionFunc == nil {
		panic("workflowServiceMock.TransitionFunc: method is nil but workflowService.Transition was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		IndicatorID int64
		Target      domain.WorkflowState
	}{Ctx: ctx, IndicatorID: indicatorID, Target: target}
	mock.lockTransition.Lock()
	mock.calls.Transition = append(mock.calls.Transition, callInfo)
	mock.lockTransition.Unlock()
	return mock.TransitionFunc(ctx, indicatorID, target)
}

func (mock *workflowServiceMock) TransitionCalls() []struct {
	Ctx         context.Context
	IndicatorID int64
	Target      domain.WorkflowState
} {
	mock.lockTransition.RLock()
	calls := mock.calls.Transition
	mock.lockTransition.RUnlock()
	return calls
}
