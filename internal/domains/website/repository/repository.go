package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aisle/infras/otel"
	"aisle/infras/postgres"
	"aisle/internal/domains/website/model"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/logger"
	gRepo "aisle/shared/repository"
)

type Website interface {
	Insert(ctx context.Context, model model.WeddingWebsite) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.WeddingWebsite, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteCascade(ctx context.Context, websiteID string) error

	InsertRegistryLink(ctx context.Context, model model.RegistryLink) error
	GetAllRegistryLinks(ctx context.Context, filter gDto.FilterGroup) ([]model.RegistryLink, error)
	DeleteRegistryLink(ctx context.Context, filter gDto.FilterGroup) error

	InsertFAQItem(ctx context.Context, model model.FAQItem) error
	GetAllFAQItems(ctx context.Context, filter gDto.FilterGroup) ([]model.FAQItem, error)
	DeleteFAQItem(ctx context.Context, filter gDto.FilterGroup) error

	InsertPhoto(ctx context.Context, model model.WebsitePhoto) error
	GetAllPhotos(ctx context.Context, filter gDto.FilterGroup) ([]model.WebsitePhoto, error)
	DeletePhoto(ctx context.Context, filter gDto.FilterGroup) error
}

// Children are listed ordered by order_index, never paginated; a
// wedding site carries at most a few dozen rows of each kind.
var childParams = gDto.QueryParams{SortBy: "order_index", SortDir: "ASC"}

type repositoryImpl struct {
	websites gRepo.Repository[model.WeddingWebsite]
	links    gRepo.Repository[model.RegistryLink]
	faqs     gRepo.Repository[model.FAQItem]
	photos   gRepo.Repository[model.WebsitePhoto]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Website {
	return &repositoryImpl{
		websites: gRepo.NewRepository[model.WeddingWebsite](model.WebsiteEntityName, model.WebsiteTableName, model.FieldID, db, otel),
		links:    gRepo.NewRepository[model.RegistryLink](model.RegistryLinkEntityName, model.RegistryLinkTableName, model.FieldID, db, otel),
		faqs:     gRepo.NewRepository[model.FAQItem](model.FAQItemEntityName, model.FAQItemTableName, model.FieldID, db, otel),
		photos:   gRepo.NewRepository[model.WebsitePhoto](model.PhotoEntityName, model.PhotoTableName, model.FieldID, db, otel),
		db:       db,
		otel:     otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, mod model.WeddingWebsite) error {
	return repo.websites.Insert(ctx, mod) //nolint:wrapcheck
}

func (repo *repositoryImpl) Get(ctx context.Context, filter gDto.FilterGroup) (model.WeddingWebsite, error) {
	return repo.websites.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.websites.Exist(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return repo.websites.Update(ctx, req, filter) //nolint:wrapcheck
}

// DeleteCascade removes the site and its children in one transaction.
func (repo *repositoryImpl) DeleteCascade(ctx context.Context, websiteID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".website.DeleteCascade")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (website): %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, query := range []string{
		`DELETE FROM registry_links WHERE website_id = $1`,
		`DELETE FROM faq_items WHERE website_id = $1`,
		`DELETE FROM website_photos WHERE website_id = $1`,
		`DELETE FROM wedding_websites WHERE id = $1`,
	} {
		if _, err = tx.ExecContext(ctx, query, websiteID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to delete website: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (website): %w", err)
	}

	return nil
}

func (repo *repositoryImpl) InsertRegistryLink(ctx context.Context, mod model.RegistryLink) error {
	return repo.links.Insert(ctx, mod) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllRegistryLinks(ctx context.Context, filter gDto.FilterGroup) ([]model.RegistryLink, error) {
	return repo.links.GetAll(ctx, childParams, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteRegistryLink(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.links.Delete(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertFAQItem(ctx context.Context, mod model.FAQItem) error {
	return repo.faqs.Insert(ctx, mod) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllFAQItems(ctx context.Context, filter gDto.FilterGroup) ([]model.FAQItem, error) {
	return repo.faqs.GetAll(ctx, childParams, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteFAQItem(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.faqs.Delete(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertPhoto(ctx context.Context, mod model.WebsitePhoto) error {
	return repo.photos.Insert(ctx, mod) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllPhotos(ctx context.Context, filter gDto.FilterGroup) ([]model.WebsitePhoto, error) {
	return repo.photos.GetAll(ctx, childParams, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeletePhoto(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.photos.Delete(ctx, filter) //nolint:wrapcheck
}
