package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/pgic/pgic-backend/internal/domain"
	"sync"
)

var _ auditService = &auditServiceMock{}

type auditServiceMock struct {
	HistoryFunc    func(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.AuditEntry, error)
	CorrelatedFunc func(ctx context.Context, correlationID uuid.UUID) ([]domain.AuditEntry, error)

	calls struct {
		History []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   string
			Limit      int
		}
		Correlated []struct {
			Ctx           context.Context
			CorrelationID uuid.UUID
		}
	}
	lockHistory    sync.RWMutex
	lockCorrelated sync.RWMutex
}

func (mock *auditServiceMock) History(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.AuditEntry, error) {
	if mock.HistoryFunc == nil {
		panic("auditServiceMock.HistoryFunc: method is nil but auditService.History was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   string
		Limit      int
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID, Limit: limit}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, entityType, entityID, limit)
}

func (mock *auditServiceMock) HistoryCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   string
	Limit      int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *auditServiceMock) Correlated(ctx context.Context, correlationID uuid.UUID) ([]domain.AuditEntry, error) {
	if mock.CorrelatedFunc == nil {
		panic("auditServiceMock.CorrelatedFunc: method is nil but auditService.Correlated was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		CorrelationID uuid.UUID
	}{Ctx: ctx, CorrelationID: correlationID}
	mock.lockCorrelated.Lock()
	mock.calls.Correlated = append(mock.calls.Correlated, callInfo)
	mock.lockCorrelated.Unlock()
	return mock.CorrelatedFunc(ctx, correlationID)
}

func (mock *auditServiceMock) CorrelatedCalls() []struct {
	Ctx           context.Context
	CorrelationID uuid.UUID
} {
	mock.lockCorrelated.RLock()
	calls := mock.calls.Correlated
	mock.lockCorrelated.RUnlock()
	return calls
}
