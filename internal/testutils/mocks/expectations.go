// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"github.com/KirkDiggler/hero-planner/internal/entities"
	herocatalog "github.com/KirkDiggler/hero-planner/internal/repositories/hero_catalog"
	herocatalogmock "github.com/KirkDiggler/hero-planner/internal/repositories/hero_catalog/mock"
	heroprogress "github.com/KirkDiggler/hero-planner/internal/repositories/hero_progress"
	heroprogressmock "github.com/KirkDiggler/hero-planner/internal/repositories/hero_progress/mock"
)

// ExpectCatalogList sets up a single catalog listing returning heroes
func ExpectCatalogList(ctx context.Context, mockCatalog *herocatalogmock.MockRepository, heroes []entities.HeroSpec) {
	mockCatalog.EXPECT().
		List(ctx, herocatalog.ListInput{}).
		Return(&herocatalog.ListOutput{Heroes: heroes}, nil)
}

// ExpectCatalogGet sets up a single catalog lookup of spec by name
func ExpectCatalogGet(ctx context.Context, mockCatalog *herocatalogmock.MockRepository, spec *entities.HeroSpec) {
	mockCatalog.EXPECT().
		Get(ctx, herocatalog.GetInput{Name: spec.Name}).
		Return(&herocatalog.GetOutput{Hero: spec}, nil)
}

// ExpectTracked sets up a single progress lookup returning the stored record.
// The record handed back is a copy so tests can compare against the original.
func ExpectTracked(ctx context.Context, mockProgress *heroprogressmock.MockRepository, progress *entities.HeroProgress) {
	mockProgress.EXPECT().
		Get(ctx, heroprogress.GetInput{UserID: progress.UserID, HeroName: progress.HeroName}).
		Return(&heroprogress.GetOutput{Progress: progress.Clone()}, nil)
}

// ExpectLoadTracked sets up the progress and catalog lookups that precede
// every operation on a tracked hero
func ExpectLoadTracked(
	ctx context.Context,
	mockProgress *heroprogressmock.MockRepository,
	mockCatalog *herocatalogmock.MockRepository,
	progress *entities.HeroProgress,
	spec *entities.HeroSpec,
) {
	ExpectTracked(ctx, mockProgress, progress)
	ExpectCatalogGet(ctx, mockCatalog, spec)
}
