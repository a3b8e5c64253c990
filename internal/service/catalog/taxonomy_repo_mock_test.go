package catalog

import (
	"context"
	"github.com/pgic/pgic-backend/internal/domain"
	"sync"
)

var _ taxonomyRepo = &taxonomyRepoMock{}

type taxonomyRepoMock struct {
	CreateCategoryFunc func(ctx context.Context, code string, name string) (*domain.Category, error)
	ListCategoriesFunc func(ctx context.Context) ([]domain.Category, error)
	CreateSectorFunc   func(ctx context.Context, code string, name string) (*domain.Sector, error)
	ListSectorsFunc    func(ctx context.Context) ([]domain.Sector, error)

	calls struct {
		CreateCategory []struct {
			Ctx  context.Context
			Code string
			Name string
		}
		ListCategories []struct{ Ctx context.Context }
		CreateSector   []struct {
			Ctx  context.Context
			Code string
			Name string
		}
		ListSectors []struct{ Ctx context.Context }
	}
	lockCreateCategory sync.RWMutex
	lockListCategories sync.RWMutex
	lockCreateSector   sync.RWMutex
	lockListSectors    sync.RWMutex
}

func (mock *taxonomyRepoMock) CreateCategory(ctx context.Context, code string, name string) (*domain.Category, error) {
	if mock.CreateCategoryFunc == nil {
		panic("taxonomyRepoMock.CreateCategoryFunc: method is nil but taxonomyRepo.CreateCategory was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
		Name string
	}{Ctx: ctx, Code: code, Name: name}
	mock.lockCreateCategory.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, callInfo)
	mock.lockCreateCategory.Unlock()
	return mock.CreateCategoryFunc(ctx, code, name)
}

func (mock *taxonomyRepoMock) CreateCategoryCalls() []struct {
	Ctx  context.Context
	Code string
	Name string
} {
	mock.lockCreateCategory.RLock()
	calls := mock.calls.CreateCategory
	mock.lockCreateCategory.RUnlock()
	return calls
}

func (mock *taxonomyRepoMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("taxonomyRepoMock.ListCategoriesFunc: method is nil but taxonomyRepo.ListCategories was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx)
}

func (mock *taxonomyRepoMock) ListCategoriesCalls() []struct{ Ctx context.Context } {
	mock.lockListCategories.RLock()
	calls := mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

func (mock *taxonomyRepoMock) CreateSector(ctx context.Context, code string, name string) (*domain.Sector, error) {
	if mock.CreateSectorFunc == nil {
		panic("taxonomyRepoMock.CreateSectorFunc: method is nil but taxonomyRepo.CreateSector was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
		Name string
	}{Ctx: ctx, Code: code, Name: name}
	mock.lockCreateSector.Lock()
	mock.calls.CreateSector = append(mock.calls.CreateSector, callInfo)
	mock.lockCreateSector.Unlock()
	return mock.CreateSectorFunc(ctx, code, name)
}

func (mock *taxonomyRepoMock) CreateSectorCalls() []struct {
	Ctx  context.Context
	Code string
	Name string
} {
	mock.lockCreateSector.RLock()
	calls := mock.calls.CreateSector
	mock.lockCreateSector.RUnlock()
	return calls
}

func (mock *taxonomyRepoMock) ListSectors(ctx context.Context) ([]domain.Sector, error) {
	if mock.ListSectorsFunc == nil {
		panic("taxonomyRepoMock.ListSectorsFunc: method is nil but taxonomyRepo.ListSectors was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListSectors.Lock()
	mock.calls.ListSectors = append(mock.calls.ListSectors, callInfo)
	mock.lockListSectors.Unlock()
	return mock.ListSectorsFunc(ctx)
}

func (mock *taxonomyRepoMock) ListSectorsCalls() []struct{ Ctx context.Context } {
	mock.lockListSectors.RLock()
	calls := mock.calls.ListSectors
	mock.lockListSectors.RUnlock()
	return calls
}
