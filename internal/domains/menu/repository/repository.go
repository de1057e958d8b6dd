package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"aisle/infras/otel"
	"aisle/infras/postgres"
	"aisle/internal/domains/menu/model"
	gDto "aisle/shared/dto"
	gRepo "aisle/shared/repository"
)

type Menu interface {
	InsertMenuItem(ctx context.Context, model model.MenuItem) error
	GetMenuItem(ctx context.Context, filter gDto.FilterGroup) (model.MenuItem, error)
	GetAllMenuItems(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.MenuItem, error)
	CountMenuItems(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateMenuItem(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteMenuItem(ctx context.Context, filter gDto.FilterGroup) error

	InsertDrink(ctx context.Context, model model.Drink) error
	GetDrink(ctx context.Context, filter gDto.FilterGroup) (model.Drink, error)
	GetAllDrinks(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Drink, error)
	CountDrinks(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateDrink(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteDrink(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	menuItems gRepo.Repository[model.MenuItem]
	drinks    gRepo.Repository[model.Drink]
}

func New(db *postgres.Connection, otel otel.Otel) Menu {
	return &repositoryImpl{
		menuItems: gRepo.NewRepository[model.MenuItem](model.MenuItemEntityName, model.MenuItemTableName, model.FieldID, db, otel),
		drinks:    gRepo.NewRepository[model.Drink](model.DrinkEntityName, model.DrinkTableName, model.FieldID, db, otel),
	}
}

func (repo *repositoryImpl) InsertMenuItem(ctx context.Context, mod model.MenuItem) error {
	return repo.menuItems.Insert(ctx, mod) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetMenuItem(ctx context.Context, filter gDto.FilterGroup) (model.MenuItem, error) {
	return repo.menuItems.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllMenuItems(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.MenuItem, error) {
	return repo.menuItems.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountMenuItems(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.menuItems.Count(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdateMenuItem(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return repo.menuItems.Update(ctx, req, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteMenuItem(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.menuItems.Delete(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertDrink(ctx context.Context, mod model.Drink) error {
	return repo.drinks.Insert(ctx, mod) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetDrink(ctx context.Context, filter gDto.FilterGroup) (model.Drink, error) {
	return repo.drinks.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllDrinks(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Drink, error) {
	return repo.drinks.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountDrinks(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.drinks.Count(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdateDrink(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return repo.drinks.Update(ctx, req, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteDrink(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.drinks.Delete(ctx, filter) //nolint:wrapcheck
}
