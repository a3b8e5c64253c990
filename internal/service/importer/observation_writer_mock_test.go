package importer

import (
	"context"
	"github.com/pgic/pgic-backend/internal/domain"
	"github.com/pgic/pgic-backend/internal/service/observation"
	"sync"
)

var _ observationWriter = &observationWriterMock{}

type observationWriterMock struct {
	AppendInTxFunc func(ctx context.Context, input observation.AppendInput, action domain.AuditAction) (*domain.Observation, error)

	calls struct {
		AppendInTx []struct {
			Ctx    context.Context
			Input  observation.AppendInput
			Action domain.AuditAction
		}
	}
	lockAppendInTx sync.RWMutex
}

func (mock *observationWriterMock) AppendInTx(ctx context.Context, input observation.AppendInput, action domain.AuditAction) (*domain.Observation, error) {
	if mock.AppendInTxFunc == nil {
		panic("observationWriterMock.AppendInTxFunc: method is nil but observationWriter.AppendInTx was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Input  observation.AppendInput
		Action domain.AuditAction
	}{Ctx: ctx, Input: input, Action: action}
	mock.lockAppendInTx.Lock()
	mock.calls.AppendInTx = append(mock.calls.AppendInTx, callInfo)
	mock.lockAppendInTx.Unlock()
	return mock.AppendInTxFunc(ctx, input, action)
}

func (mock *observationWriterMock) AppendInTxCalls() []struct {
	Ctx    context.Context
	Input  observation.AppendInput
	Action domain.AuditAction
} {
	mock.lockAppendInTx.RLock()
	calls := mock.calls.AppendInTx
	mock.lockAppendInTx.RUnlock()
	return calls
}
