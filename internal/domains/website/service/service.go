package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aisle/config"
	"aisle/infras/otel"
	eventService "aisle/internal/domains/event/service"
	"aisle/internal/domains/website/model"
	"aisle/internal/domains/website/model/dto"
	"aisle/internal/domains/website/repository"
	"aisle/shared"
	"aisle/shared/cache"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetPublicSite = "website:public"
)

type Website interface {
	Create(ctx context.Context, req dto.CreateWebsiteRequest) error
	GetByEvent(ctx context.Context, eventID string) (dto.WebsiteDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateWebsiteRequest, eventID string) error
	Delete(ctx context.Context, eventID string) error
	GetBySlug(ctx context.Context, slug string) (dto.PublicWebsiteResponse, error)

	AddRegistryLink(ctx context.Context, eventID string, req dto.AddRegistryLinkRequest) error
	DeleteRegistryLink(ctx context.Context, eventID, linkID string) error
	AddFAQItem(ctx context.Context, eventID string, req dto.AddFAQItemRequest) error
	DeleteFAQItem(ctx context.Context, eventID, faqID string) error
	AddPhoto(ctx context.Context, eventID string, req dto.AddPhotoRequest) error
	DeletePhoto(ctx context.Context, eventID, photoID string) error
}

type serviceImpl struct {
	repo     repository.Website
	eventSvc eventService.Event
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Website, eventSvc eventService.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Website {
	return &serviceImpl{
		repo:     repo,
		eventSvc: eventSvc,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateWebsiteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".website.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, req.EventID); err != nil {
		return err
	}

	exists, err := s.repo.Exist(ctx, shared.FilterByID(req.EventID, model.FieldEventID, model.WebsiteTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check website")

		return fmt.Errorf("failed to check website: %w", err)
	}

	if exists {
		return failure.Conflict("event already has a website") // nolint:wrapcheck
	}

	if err = s.ensureSlugFree(ctx, req.Slug); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create website")

		return fmt.Errorf("failed to create website: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetByEvent(ctx context.Context, eventID string) (res dto.WebsiteDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".website.GetByEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	site, err := s.getAuthorized(ctx, eventID)
	if err != nil {
		return res, err
	}

	links, faqs, photos, err := s.children(ctx, site.ID)
	if err != nil {
		return res, err
	}

	res.WebsiteResponse.FromModel(site)

	res.RegistryLinks = make([]dto.RegistryLinkResponse, len(links))
	for i, link := range links {
		res.RegistryLinks[i].FromModel(link)
	}

	res.FAQItems = make([]dto.FAQItemResponse, len(faqs))
	for i, faq := range faqs {
		res.FAQItems[i].FromModel(faq)
	}

	res.Photos = make([]dto.PhotoResponse, len(photos))
	for i, photo := range photos {
		res.Photos[i].FromModel(photo)
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateWebsiteRequest, eventID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".website.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateWebsiteRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	site, err := s.getAuthorized(ctx, eventID)
	if err != nil {
		return err
	}

	if req.Slug != "" && req.Slug != site.Slug {
		if err = s.ensureSlugFree(ctx, req.Slug); err != nil {
			return err
		}
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(site.ID, model.FieldID, model.WebsiteTableName)); err != nil {
		log.Error().Err(err).Msg("failed to update website")

		return fmt.Errorf("failed to update website: %w", err)
	}

	s.invalidate(ctx, site.Slug, req.Slug)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, eventID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".website.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	site, err := s.getAuthorized(ctx, eventID)
	if err != nil {
		return err
	}

	if err = s.repo.DeleteCascade(ctx, site.ID); err != nil {
		log.Error().Err(err).Msg("failed to delete website")

		return fmt.Errorf("failed to delete website: %w", err)
	}

	s.invalidate(ctx, site.Slug, "")

	return nil
}

// GetBySlug serves the anonymous wedding site. Unpublished and unknown
// slugs are indistinguishable to the caller.
func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.PublicWebsiteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".website.GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPublicSite, slug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	site, err := s.repo.Get(ctx, shared.FilterByID(slug, model.FieldSlug, model.WebsiteTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get website")

		return res, fmt.Errorf("failed to get website: %w", err)
	}

	if site.ID == constant.Empty || !site.Published {
		return res, failure.NotFound("website not found") // nolint:wrapcheck
	}

	links, faqs, photos, err := s.children(ctx, site.ID)
	if err != nil {
		return res, err
	}

	res.FromModels(site, links, faqs, photos)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save website to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) AddRegistryLink(ctx context.Context, eventID string, req dto.AddRegistryLinkRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".website.AddRegistryLink")
	defer scope.End()
	defer scope.TraceIfError(err)

	site, err := s.getAuthorized(ctx, eventID)
	if err != nil {
		return err
	}

	link := model.RegistryLink{
		ID:         uuid.NewString(),
		WebsiteID:  site.ID,
		Title:      req.Title,
		URL:        req.URL,
		OrderIndex: req.OrderIndex,
		Metadata:   s.newMetadata(ctx),
	}

	if err = s.repo.InsertRegistryLink(ctx, link); err != nil {
		log.Error().Err(err).Msg("failed to add registry link")

		return fmt.Errorf("failed to add registry link: %w", err)
	}

	s.invalidate(ctx, site.Slug, "")

	return nil
}

func (s *serviceImpl) DeleteRegistryLink(ctx context.Context, eventID, linkID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".website.DeleteRegistryLink")
	defer scope.End()
	defer scope.TraceIfError(err)

	site, err := s.getAuthorized(ctx, eventID)
	if err != nil {
		return err
	}

	if err = s.repo.DeleteRegistryLink(ctx, s.childFilter(linkID, site.ID, model.RegistryLinkTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete registry link")

		return fmt.Errorf("failed to delete registry link: %w", err)
	}

	s.invalidate(ctx, site.Slug, "")

	return nil
}

func (s *serviceImpl) AddFAQItem(ctx context.Context, eventID string, req dto.AddFAQItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".website.AddFAQItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	site, err := s.getAuthorized(ctx, eventID)
	if err != nil {
		return err
	}

	faq := model.FAQItem{
		ID:         uuid.NewString(),
		WebsiteID:  site.ID,
		Question:   req.Question,
		Answer:     req.Answer,
		OrderIndex: req.OrderIndex,
		Metadata:   s.newMetadata(ctx),
	}

	if err = s.repo.InsertFAQItem(ctx, faq); err != nil {
		log.Error().Err(err).Msg("failed to add faq item")

		return fmt.Errorf("failed to add faq item: %w", err)
	}

	s.invalidate(ctx, site.Slug, "")

	return nil
}

func (s *serviceImpl) DeleteFAQItem(ctx context.Context, eventID, faqID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".website.DeleteFAQItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	site, err := s.getAuthorized(ctx, eventID)
	if err != nil {
		return err
	}

	if err = s.repo.DeleteFAQItem(ctx, s.childFilter(faqID, site.ID, model.FAQItemTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete faq item")

		return fmt.Errorf("failed to delete faq item: %w", err)
	}

	s.invalidate(ctx, site.Slug, "")

	return nil
}

func (s *serviceImpl) AddPhoto(ctx context.Context, eventID string, req dto.AddPhotoRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".website.AddPhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	site, err := s.getAuthorized(ctx, eventID)
	if err != nil {
		return err
	}

	photo := model.WebsitePhoto{
		ID:         uuid.NewString(),
		WebsiteID:  site.ID,
		URL:        req.URL,
		Caption:    req.Caption,
		OrderIndex: req.OrderIndex,
		Metadata:   s.newMetadata(ctx),
	}

	if err = s.repo.InsertPhoto(ctx, photo); err != nil {
		log.Error().Err(err).Msg("failed to add photo")

		return fmt.Errorf("failed to add photo: %w", err)
	}

	s.invalidate(ctx, site.Slug, "")

	return nil
}

func (s *serviceImpl) DeletePhoto(ctx context.Context, eventID, photoID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".website.DeletePhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	site, err := s.getAuthorized(ctx, eventID)
	if err != nil {
		return err
	}

	if err = s.repo.DeletePhoto(ctx, s.childFilter(photoID, site.ID, model.PhotoTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete photo")

		return fmt.Errorf("failed to delete photo: %w", err)
	}

	s.invalidate(ctx, site.Slug, "")

	return nil
}

func (s *serviceImpl) getAuthorized(ctx context.Context, eventID string) (model.WeddingWebsite, error) {
	var site model.WeddingWebsite

	if err := s.eventSvc.Authorize(ctx, eventID); err != nil {
		return site, err
	}

	site, err := s.repo.Get(ctx, shared.FilterByID(eventID, model.FieldEventID, model.WebsiteTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get website")

		return site, fmt.Errorf("failed to get website: %w", err)
	}

	if site.ID == constant.Empty {
		return site, failure.NotFound("website not found") // nolint:wrapcheck
	}

	return site, nil
}

func (s *serviceImpl) children(ctx context.Context, websiteID string) ([]model.RegistryLink, []model.FAQItem, []model.WebsitePhoto, error) {
	links, err := s.repo.GetAllRegistryLinks(ctx, shared.FilterByID(websiteID, model.FieldWebsiteID, model.RegistryLinkTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get registry links")

		return nil, nil, nil, fmt.Errorf("failed to get registry links: %w", err)
	}

	faqs, err := s.repo.GetAllFAQItems(ctx, shared.FilterByID(websiteID, model.FieldWebsiteID, model.FAQItemTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get faq items")

		return nil, nil, nil, fmt.Errorf("failed to get faq items: %w", err)
	}

	photos, err := s.repo.GetAllPhotos(ctx, shared.FilterByID(websiteID, model.FieldWebsiteID, model.PhotoTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get photos")

		return nil, nil, nil, fmt.Errorf("failed to get photos: %w", err)
	}

	return links, faqs, photos, nil
}

func (s *serviceImpl) ensureSlugFree(ctx context.Context, slug string) error {
	taken, err := s.repo.Exist(ctx, shared.FilterByID(slug, model.FieldSlug, model.WebsiteTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check slug")

		return fmt.Errorf("failed to check slug: %w", err)
	}

	if taken {
		return failure.Conflict("slug already in use") // nolint:wrapcheck
	}

	return nil
}

// childFilter scopes a child row to its website so an id from another
// site can never be deleted through this event.
func (s *serviceImpl) childFilter(id, websiteID, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id, Table: table},
			gDto.Filter{Field: model.FieldWebsiteID, ArgName: "website_id", Operator: gDto.FilterOperatorEq, Value: websiteID, Table: table},
		},
	}
}

func (s *serviceImpl) newMetadata(ctx context.Context) gModel.Metadata {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, slugs ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, slug := range slugs {
			if slug == "" {
				continue
			}

			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPublicSite, slug)); err != nil {
				log.Error().Err(err).Msg("failed to delete website from cache")
			}
		}
	}()
}
