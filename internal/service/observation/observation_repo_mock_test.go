package observation

import (
	"context"
	"github.com/pgic/pgic-backend/internal/domain"
	"iter"
	"sync"
	"time"
)

var _ observationRepo = &observationRepoMock{}

type observationRepoMock struct {
	AppendFunc         func(ctx context.Context, in domain.NewObservation) (*domain.Observation, error)
	CurrentValueFunc   func(ctx context.Context, seriesID int64, period time.Time, vis domain.Visibility) (*domain.Observation, bool, error)
	RevisionsFunc      func(ctx context.Context, seriesID int64, period time.Time) ([]domain.Observation, error)
	RangeFunc          func(ctx context.Context, seriesID int64, start *time.Time, end *time.Time, vis domain.Visibility) iter.Seq2[domain.Point, error]
	IndicatorRangeFunc func(ctx context.Context, indicatorID int64, start *time.Time, end *time.Time, vis domain.Visibility) iter.Seq2[domain.SeriesPoint, error]

	calls struct {
		Append []struct {
			Ctx context.Context
			In  domain.NewObservation
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
			Ctx      context.Context
			SeriesID int64
			Start    *time.Time
			End      *time.Time
			Vis      domain.Visibility
		}
		IndicatorRange []struct {
			Ctx         context.Context
			IndicatorID int64
			Start       *time.Time
			End         *time.Time
			Vis         domain.Visibility
		}
	}
	lockAppend         sync.RWMutex
	lockCurrentValue   sync.RWMutex
	lockRevisions      sync.RWMutex
	lockRange          sync.RWMutex
	lockIndicatorRange sync.RWMutex
}

func (mock *observationRepoMock) Append(ctx context.Context, in domain.NewObservation) (*domain.Observation, error) {
	if mock.AppendFunc == nil {
		panic("observationRepoMock.AppendFunc: method is nil but observationRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.NewObservation
	}{Ctx: ctx, In: in}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, in)
}

func (mock *observationRepoMock) AppendCalls() []struct {
	Ctx context.Context
	In  domain.NewObservation
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *observationRepoMock) CurrentValue(ctx context.Context, seriesID int64, period time.Time, vis domain.Visibility) (*domain.Observation, bool, error) {
	if mock.CurrentValueFunc == nil {
		panic("observationRepoMock.CurrentValueFunc: method is nil but observationRepo.CurrentValue was just called")
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

func (mock *observationRepoMock) CurrentValueCalls() []struct {
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

func (mock *observationRepoMock) Revisions(ctx context.Context, seriesID int64, period time.Time) ([]domain.Observation, error) {
	if mock.RevisionsFunc == nil {
		panic("observationRepoMock.RevisionsFunc: method is nil but observationRepo.Revisions was just called")
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

func (mock *observationRepoMock) RevisionsCalls() []struct {
	Ctx      context.Context
	SeriesID int64
	Period   time.Time
} {
	mock.lockRevisions.RLock()
	calls := mock.calls.Revisions
	mock.lockRevisions.RUnlock()
	return calls
}

func (mock *observationRepoMock) Range(ctx context.Context, seriesID int64, start *time.Time, end *time.Time, vis domain.Visibility) iter.Seq2[domain.Point, error] {
	if mock.RangeFunc == nil {
		panic("observationRepoMock.RangeFunc: method is nil but observationRepo.Range was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SeriesID int64
		Start    *time.Time
		End      *time.Time
		Vis      domain.Visibility
	}{Ctx: ctx, SeriesID: seriesID, Start: start, End: end, Vis: vis}
	mock.lockRange.Lock()
	mock.calls.Range = append(mock.calls.Range, callInfo)
	mock.lockRange.Unlock()
	return mock.RangeFunc(ctx, seriesID, start, end, vis)
}

func (mock *observationRepoMock) RangeCalls() []struct {
	Ctx      context.Context
	SeriesID int64
	Start    *time.Time
	End      *time.Time
	Vis      domain.Visibility
} {
	mock.lockRange.RLock()
	calls := mock.calls.Range
	mock.lockRange.RUnlock()
	return calls
}

func (mock *observationRepoMock) IndicatorRange(ctx context.Context, indicatorID int64, start *time.Time, end *time.Time, vis domain.Visibility) iter.Seq2[domain.SeriesPoint, error] {
	if mock.IndicatorRangeFunc == nil {
		panic("observationRepoMock.IndicatorRangeFunc: method is nil but observationRepo.IndicatorRange was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		IndicatorID int64
		Start       *time.Time
		End         *time.Time
		Vis         domain.Visibility
	}{Ctx: ctx, IndicatorID: indicatorID, Start: start, End: end, Vis: vis}
	mock.lockIndicatorRange.Lock()
	mock.calls.IndicatorRange = append(mock.calls.IndicatorRange, callInfo)
	mock.lockIndicatorRange.Unlock()
	return mock.IndicatorRangeFunc(ctx, indicatorID, start, end, vis)
}

func (mock *observationRepoMock) IndicatorRangeCalls() []struct {
	Ctx         context.Context
	IndicatorID int64
	Start       *time.Time
	End         *time.Time
	Vis         domain.Visibility
} {
	mock.lockIndicatorRange.RLock()
	calls := mock.calls.IndicatorRange
	mock.lockIndicatorRange.RUnlock()
	return calls
}
