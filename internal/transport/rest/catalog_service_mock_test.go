package rest

import (
	"context"
	"github.com/pgic/pgic-backend/internal/domain"
	"github.com/pgic/pgic-backend/internal/service/catalog"
	"sync"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	CreateIndicatorFunc func(ctx context.Context, input catalog.CreateIndicatorInput) (*domain.Indicator, error)
	UpdateIndicatorFunc func(ctx context.Context, input catalog.UpdateIndicatorInput) (*domain.Indicator, error)
	GetIndicatorFunc    func(ctx context.Context, id int64) (*domain.Indicator, error)
	ListIndicatorsFunc  func(ctx context.Context, filter domain.IndicatorFilter) ([]domain.Indicator, error)
	CreateCategoryFunc  func(ctx context.Context, input catalog.CreateTermInput) (*domain.Category, error)
	ListCategoriesFunc  func(ctx context.Context) ([]domain.Category, error)
	CreateSectorFunc    func(ctx context.Context, input catalog.CreateTermInput) (*domain.Sector, error)
	ListSectorsFunc     func(ctx context.Context) ([]domain.Sector, error)
	CreateSeriesFunc    func(ctx context.Context, input catalog.CreateSeriesInput) (*domain.DataSeries, error)
	UpdateSeriesFunc    func(ctx context.Context, input catalog.UpdateSeriesInput) (*domain.DataSeries, error)
	GetSeriesFunc       func(ctx context.Context, id int64) (*domain.DataSeries, error)
	ListSeriesFunc      func(ctx context.Context, filter domain.SeriesFilter) ([]domain.DataSeries, error)

	calls struct {
		CreateIndicator []struct {
			Ctx   context.Context
			Input catalog.CreateIndicatorInput
		}
		UpdateIndicator []struct {
			Ctx   context.Context
			Input catalog.UpdateIndicatorInput
		}
		GetIndicator []struct {
			Ctx context.Context
			Id  int64
		}
		ListIndicators []struct {
			Ctx    context.Context
			Filter domain.IndicatorFilter
		}
		CreateCategory []struct {
			Ctx   context.Context
			Input catalog.CreateTermInput
		}
		ListCategories []struct{ Ctx context.Context }
		CreateSector   []struct {
			Ctx   context.Context
			Input catalog.CreateTermInput
		}
		ListSectors  []struct{ Ctx context.Context }
		CreateSeries []struct {
			Ctx   context.Context
			Input catalog.CreateSeriesInput
		}
		UpdateSeries []struct {
			Ctx   context.Context
			Input catalog.UpdateSeriesInput
		}
		GetSeries []struct {
			Ctx context.Context
			Id  int64
		}
		ListSeries []struct {
			Ctx    context.Context
			Filter domain.SeriesFilter
		}
	}
	lockCreateIndicator sync.RWMutex
	lockUpdateIndicator sync.RWMutex
	lockGetIndicator    sync.RWMutex
	lockListIndicators  sync.RWMutex
	lockCreateCategory  sync.RWMutex
	lockListCategories  sync.RWMutex
	lockCreateSector    sync.RWMutex
	lockListSectors     sync.RWMutex
	lockCreateSeries    sync.RWMutex
	lockUpdateSeries    sync.RWMutex
	lockGetSeries       sync.RWMutex
	lockListSeries      sync.RWMutex
}

func (mock *catalogServiceMock) CreateIndicator(ctx context.Context, input catalog.CreateIndicatorInput) (*domain.Indicator, error) {
	if mock.CreateIndicatorFunc == nil {
		panic("catalogServiceMock.CreateIndicatorFunc: method is nil but catalogService.CreateIndicator was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateIndicatorInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateIndicator.Lock()
	mock.calls.CreateIndicator = append(mock.calls.CreateIndicator, callInfo)
	mock.lockCreateIndicator.Unlock()
	return mock.CreateIndicatorFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateIndicatorCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateIndicatorInput
} {
	mock.lockCreateIndicator.RLock()
	calls := mock.calls.CreateIndicator
	mock.lockCreateIndicator.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateIndicator(ctx context.Context, input catalog.UpdateIndicatorInput) (*domain.Indicator, error) {
	if mock.UpdateIndicatorFunc == nil {
		panic("catalogServiceMock.UpdateIndicatorFunc: method is nil but catalogService.UpdateIndicator was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.UpdateIndicatorInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateIndicator.Lock()
	mock.calls.UpdateIndicator = append(mock.calls.UpdateIndicator, callInfo)
	mock.lockUpdateIndicator.Unlock()
	return mock.UpdateIndicatorFunc(ctx, input)
}

func (mock *catalogServiceMock) UpdateIndicatorCalls() []struct {
	Ctx   context.Context
	Input catalog.UpdateIndicatorInput
} {
	mock.lockUpdateIndicator.RLock()
	calls := mock.calls.UpdateIndicator
	mock.lockUpdateIndicator.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetIndicator(ctx context.Context, id int64) (*domain.Indicator, error) {
	if mock.GetIndicatorFunc == nil {
		panic("catalogServiceMock.GetIndicatorFunc: method is nil but catalogService.GetIndicator was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetIndicator.Lock()
	mock.calls.GetIndicator = append(mock.calls.GetIndicator, callInfo)
	mock.lockGetIndicator.Unlock()
	return mock.GetIndicatorFunc(ctx, id)
}

func (mock *catalogServiceMock) GetIndicatorCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetIndicator.RLock()
	calls := mock.calls.GetIndicator
	mock.lockGetIndicator.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListIndicators(ctx context.Context, filter domain.IndicatorFilter) ([]domain.Indicator, error) {
	if mock.ListIndicatorsFunc == nil {
		panic("catalogServiceMock.ListIndicatorsFunc: method is nil but catalogService.ListIndicators was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.IndicatorFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockListIndicators.Lock()
	mock.calls.ListIndicators = append(mock.calls.ListIndicators, callInfo)
	mock.lockListIndicators.Unlock()
	return mock.ListIndicatorsFunc(ctx, filter)
}

func (mock *catalogServiceMock) ListIndicatorsCalls() []struct {
	Ctx    context.Context
	Filter domain.IndicatorFilter
} {
	mock.lockListIndicators.RLock()
	calls := mock.calls.ListIndicators
	mock.lockListIndicators.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateCategory(ctx context.Context, input catalog.CreateTermInput) (*domain.Category, error) {
	if mock.CreateCategoryFunc == nil {
		panic("catalogServiceMock.CreateCategoryFunc: method is nil but catalogService.CreateCategory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateTermInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCategory.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, callInfo)
	mock.lockCreateCategory.Unlock()
	return mock.CreateCategoryFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateCategoryCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateTermInput
} {
	mock.lockCreateCategory.RLock()
	calls := mock.calls.CreateCategory
	mock.lockCreateCategory.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("catalogServiceMock.ListCategoriesFunc: method is nil but catalogService.ListCategories was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx)
}

func (mock *catalogServiceMock) ListCategoriesCalls() []struct{ Ctx context.Context } {
	mock.lockListCategories.RLock()
	calls := mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateSector(ctx context.Context, input catalog.CreateTermInput) (*domain.Sector, error) {
	if mock.CreateSectorFunc == nil {
		panic("catalogServiceMock.CreateSectorFunc: method is nil but catalogService.CreateSector was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateTermInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateSector.Lock()
	mock.calls.CreateSector = append(mock.calls.CreateSector, callInfo)
	mock.lockCreateSector.Unlock()
	return mock.CreateSectorFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateSectorCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateTermInput
} {
	mock.lockCreateSector.RLock()
	calls := mock.calls.CreateSector
	mock.lockCreateSector.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListSectors(ctx context.Context) ([]domain.Sector, error) {
	if mock.ListSectorsFunc == nil {
		panic("catalogServiceMock.ListSectorsFunc: method is nil but catalogService.ListSectors was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListSectors.Lock()
	mock.calls.ListSectors = append(mock.calls.ListSectors, callInfo)
	mock.lockListSectors.Unlock()
	return mock.ListSectorsFunc(ctx)
}

func (mock *catalogServiceMock) ListSectorsCalls() []struct{ Ctx context.Context } {
	mock.lockListSectors.RLock()
	calls := mock.calls.ListSectors
	mock.lockListSectors.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateSeries(ctx context.Context, input catalog.CreateSeriesInput) (*domain.DataSeries, error) {
	if mock.CreateSeriesFunc == nil {
		panic("catalogServiceMock.CreateSeriesFunc: method is nil but catalogService.CreateSeries was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateSeriesInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateSeries.Lock()
	mock.calls.CreateSeries = append(mock.calls.CreateSeries, callInfo)
	mock.lockCreateSeries.Unlock()
	return mock.CreateSeriesFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateSeriesCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateSeriesInput
} {
	mock.lockCreateSeries.RLock()
	calls := mock.calls.CreateSeries
	mock.lockCreateSeries.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateSeries(ctx context.Context, input catalog.UpdateSeriesInput) (*domain.DataSeries, error) {
	if mock.UpdateSeriesFunc == nil {
		panic("catalogServiceMock.UpdateSeriesFunc: method is nil but catalogService.UpdateSeries was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.UpdateSeriesInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateSeries.Lock()
	mock.calls.UpdateSeries = append(mock.calls.UpdateSeries, callInfo)
	mock.lockUpdateSeries.Unlock()
	return mock.UpdateSeriesFunc(ctx, input)
}

func (mock *catalogServiceMock) UpdateSeriesCalls() []struct {
	Ctx   context.Context
	Input catalog.UpdateSeriesInput
} {
	mock.lockUpdateSeries.RLock()
	calls := mock.calls.UpdateSeries
	mock.lockUpdateSeries.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetSeries(ctx context.Context, id int64) (*domain.DataSeries, error) {
	if mock.GetSeriesFunc == nil {
		panic("catalogServiceMock.GetSeriesFunc: method is nil but catalogService.GetSeries was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetSeries.Lock()
	mock.calls.GetSeries = append(mock.calls.GetSeries, callInfo)
	mock.lockGetSeries.Unlock()
	return mock.GetSeriesFunc(ctx, id)
}

func (mock *catalogServiceMock) GetSeriesCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetSeries.RLock()
	calls := mock.calls.GetSeries
	mock.lockGetSeries.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListSeries(ctx context.Context, filter domain.SeriesFilter) ([]domain.DataSeries, error) {
	if mock.ListSeriesFunc == nil {
		panic("catalogServiceMock.ListSeriesFunc: method is nil but catalogService.ListSeries was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SeriesFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockListSeries.Lock()
	mock.calls.ListSeries = append(mock.calls.ListSeries, callInfo)
	mock.lockListSeries.Unlock()
	return mock.ListSeriesFunc(ctx, filter)
}

func (mock *catalogServiceMock) ListSeriesCalls() []struct {
	Ctx    context.Context
	Filter domain.SeriesFilter
} {
	mock.lockListSeries.RLock()
	calls := mock.calls.ListSeries
	mock.lockListSeries.RUnlock()
	return calls
}
