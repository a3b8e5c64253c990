package rest

import (
	"context"
	"github.com/pgic/pgic-backend/internal/domain"
	"github.com/pgic/pgic-backend/internal/service/observation"
	"iter"
	"sync"
	"time"
)

var _ observationService = &observationServiceMock{}

type observationServiceMock struct {
	AppendFunc        func(ctx context.Context, input observation.AppendInput) (*domain.Observation, error)
	CurrentValueFunc  func(ctx context.Context, seriesID int64, period time.Time, vis domain.Visibility) (*domain.Observation, bool, error)
	RevisionsFunc     func(ctx context.Context, seriesID int64, period time.Time) ([]domain.Observation, error)
	RangeFunc         func(ctx context.Context, input observation.RangeInput) (iter.Seq2[domain.Point, error], error)
	IndicatorDataFunc func(ctx context.Context, input observation.RangeInput) (iter.Seq2[domain.SeriesPoint, error], error)

	calls struct {
		Append []struct {
			Ctx   context.Context
			Input observation.AppendInput
		}
		CurrentValue []struct {
			Ctx      context.Context
			SeriesID int64
			Period   time.Time
			Vis      domain.Visibility
		}
		Revisions []struct {
			Ctx      context.Context
			SeriesID int64
			Period   time.Time
		}
		Range []struct {
			Ctx   context.Context
			Input observation.RangeInput
		}
		IndicatorData []struct {
			Ctx   context.Context
			Input observation.RangeInput
		}
	}
	lockAppend        sync.RWMutex
	lockCurrentValue  sync.RWMutex
	lockRevisions     sync.RWMutex
	lockRange         sync.RWMutex
	lockIndicatorData sync.RWMutex
}

func (mock *observationServiceMock) Append(ctx context.Context, input observation.AppendInput) (*domain.Observation, error) {
	if mock.AppendFunc == nil {
		panic("observationServiceMock.AppendFunc: method is nil but observationService.Append was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input observation.AppendInput
	}{Ctx: ctx, Input: input}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, input)
}

func (mock *observationServiceMock) AppendCalls() []struct {
	Ctx   context.Context
	Input observation.AppendInput
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *observationServiceMock) CurrentValue(ctx context.Context, seriesID int64, period time.Time, vis domain.Visibility) (*domain.Observation, bool, error) {
	if mock.CurrentValueFunc == nil {
		panic("observationServiceMock.CurrentValueFunc: method is nil but observationService.CurrentValue was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SeriesID int64
		Period   time.Time
		Vis      domain.Visibility
	}{Ctx: ctx, SeriesID: seriesID, Period: period, Vis: vis}
	mock.lockCurrentValue.Lock()
	mock.calls.CurrentValue = append(mock.calls.CurrentValue, callInfo)
	mock.lockCurrentValue.Unlock()
	return mock.CurrentValueFunc(ctx, seriesID, period, vis)
}

func (mock *observationServiceMock) CurrentValueCalls() []struct {
	Ctx      context.Context
	SeriesID int64
	Period   time.Time
	Vis      domain.Visibility
} {
	mock.lockCurrentValue.RLock()
	calls := mock.calls.CurrentValue
	mock.lockCurrentValue.RUnlock()
	return calls
}

func (mock *observationServiceMock) Revisions(ctx context.Context, seriesID int64, period time.Time) ([]domain.Observation, error) {
	if mock.RevisionsFunc == nil {
		panic("observationServiceMock.RevisionsFunc: method is nil but observationService.Revisions was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SeriesID int64
		Period   time.Time
	}{Ctx: ctx, SeriesID: seriesID, Period: period}
	mock.lockRevisions.Lock()
	mock.calls.Revisions = append(mock.calls.Revisions, callInfo)
	mock.lockRevisions.Unlock()
	return mock.RevisionsFunc(ctx, seriesID, period)
}

func (mock *observationServiceMock) RevisionsCalls() []struct {
	Ctx      context.Context
	SeriesID int64
	Period   time.Time
} {
	mock.lockRevisions.RLock()
	calls := mock.calls.Revisions
	mock.lockRevisions.RUnlock()
	return calls
}

func (mock *observationServiceMock) Range(ctx context.Context, input observation.RangeInput) (iter.Seq2[domain.Point, error], error) {
	if mock.RangeFunc == nil {
		panic("observationServiceMock.RangeFunc: method is nil but observationService.Range was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input observation.RangeInput
	}{Ctx: ctx, Input: input}
	mock.lockRange.Lock()
	mock.calls.Range = append(mock.calls.Range, callInfo)
	mock.lockRange.Unlock()
	return mock.RangeFunc(ctx, input)
}

func (mock *observationServiceMock) RangeCalls() []struct {
	Ctx   context.Context
	Input observation.RangeInput
} {
	mock.lockRange.RLock()
	calls := mock.calls.Range
	mock.lockRange.RUnlock()
	return calls
}

func (mock *observationServiceMock) IndicatorData(ctx context.Context, input observation.RangeInput) (iter.Seq2[domain.SeriesPoint, error], error) {
	if mock.IndicatorDataFunc == nil {
		panic("observationServiceMock.IndicatorDataFunc: method is nil but observationService.IndicatorData was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input observation.RangeInput
	}{Ctx: ctx, Input: input}
	mock.lockIndicatorData.Lock()
	mock.calls.IndicatorData = append(mock.calls.IndicatorData, callInfo)
	mock.lockIndicatorData.Unlock()
	return mock.IndicatorDataFunc(ctx, input)
}

func (mock *observationServiceMock) IndicatorDataCalls() []struct {
	Ctx   context.Context
	Input observation.RangeInput
} {
	mock.lockIndicatorData.RLock()
	calls := mock.calls.IndicatorData
	mock.lockIndicatorData.RUnlock()
	return calls
}
