package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"time"

	"aisle/config"
	"aisle/infras/kafka"
	"aisle/infras/otel"
	eventService "aisle/internal/domains/event/service"
	"aisle/internal/domains/guest/model"
	"aisle/internal/domains/guest/model/dto"
	"aisle/internal/domains/guest/repository"
	"aisle/shared"
	"aisle/shared/cache"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	"aisle/shared/timezone"
	"aisle/shared/token"
	"aisle/shared/validator"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
	cacheCountGuest  = "guest:count"
	cacheStatsGuest  = "guest:stats"
)

const (
	lifecycleRSVPResponded = "guest.rsvp.responded"
	lifecycleRSVPSubmitted = "guest.rsvp.submitted"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) error
	ImportCSV(ctx context.Context, eventID string, csvFile io.Reader) (dto.ImportGuestsResponse, error)
	GetAll(ctx context.Context, eventID string, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id string) error
	Delete(ctx context.Context, id string) error
	SendInvitation(ctx context.Context, id string) error
	RespondSaveTheDate(ctx context.Context, id string, req dto.SaveTheDateRequest) (dto.RespondSaveTheDateResponse, error)
	GetByToken(ctx context.Context, rsvpToken string) (dto.PublicGuestResponse, error)
	SubmitRSVP(ctx context.Context, rsvpToken string, req dto.SubmitRSVPRequest) error
	Stats(ctx context.Context, eventID string) (model.Stats, error)
}

type serviceImpl struct {
	repo     repository.Guest
	eventSvc eventService.Event
	cfg      *config.Config
	cache    cache.RedisCache
	kafka    kafka.Client
	otel     otel.Otel
}

func New(repo repository.Guest, eventSvc eventService.Event, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:     repo,
		eventSvc: eventSvc,
		cfg:      cfg,
		cache:    cache,
		kafka:    kafkaClient,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, req.EventID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return fmt.Errorf("failed to create guest: %w", err)
	}

	s.invalidateLists(ctx, req.EventID)

	return nil
}

// ImportCSV bulk-creates guests from a CSV with first_name, last_name,
// email and phone columns. The whole file is validated before anything
// is written, and the insert is a single statement, so a bad row never
// leaves a partial import behind.
func (s *serviceImpl) ImportCSV(ctx context.Context, eventID string, csvFile io.Reader) (res dto.ImportGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.ImportCSV")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, eventID); err != nil {
		return res, err
	}

	var rows []dto.ImportGuestRow

	if err = gocsv.Unmarshal(csvFile, &rows); err != nil {
		log.Error().Err(err).Msg("failed to parse guest csv")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid csv: %v", err)) // nolint:wrapcheck
	}

	if len(rows) == 0 {
		return res, failure.BadRequestFromString("csv contains no guests") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	models := make([]model.Guest, len(rows))

	for i := range rows {
		if err = validator.ValidateStruct(&rows[i]); err != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("row %d: %v", i+1, err)) // nolint:wrapcheck
		}

		models[i] = rows[i].ToModel(eventID, user)
	}

	if err = s.repo.InsertBulk(ctx, models); err != nil {
		log.Error().Err(err).Msg("failed to import guests")

		return res, fmt.Errorf("failed to import guests: %w", err)
	}

	s.invalidateLists(ctx, eventID)

	res.Imported = len(models)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, eventID string, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, eventID); err != nil {
		return res, err
	}

	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldEventID,
		Operator: gDto.FilterOperatorEq,
		Value:    eventID,
		Table:    model.TableName,
	})

	if filter.Operator == "" {
		filter.Operator = gDto.FilterGroupOperatorAnd
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.getAuthorized(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateGuestRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	guest, err := s.getAuthorized(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	s.invalidate(ctx, guest)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.getAuthorized(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	s.invalidate(ctx, guest)

	return nil
}

// SendInvitation marks the invitation as dispatched and promotes a
// draft guest to invited. Actual delivery belongs to the notification
// consumer on the lifecycle topic, not to this service.
func (s *serviceImpl) SendInvitation(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.SendInvitation")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.getAuthorized(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldInvitationSent: true,
		constant.FieldModifiedAt:  timezone.Now(),
		constant.FieldModifiedBy:  user,
	}

	if guest.RSVPStatus == constant.RSVPStatusDraft {
		fields[model.FieldRSVPStatus] = constant.RSVPStatusInvited
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to send invitation")

		return fmt.Errorf("failed to send invitation: %w", err)
	}

	s.invalidate(ctx, guest)

	return nil
}

// RespondSaveTheDate records the save-the-date answer. A yes moves the
// guest into the RSVP stage and issues a fresh token; answering yes
// again rotates it. The guard clause in the update filter keeps a
// concurrent finalization from being overwritten.
func (s *serviceImpl) RespondSaveTheDate(ctx context.Context, id string, req dto.SaveTheDateRequest) (res dto.RespondSaveTheDateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.RespondSaveTheDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.getAuthorized(ctx, id)
	if err != nil {
		return res, err
	}

	if guest.Stage >= constant.StageFinalized {
		return res, failure.Conflict("rsvp already finalized") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldSaveTheDateResponse: req.Response,
		constant.FieldModifiedAt:       timezone.Now(),
		constant.FieldModifiedBy:       user,
	}

	res.GuestID = guest.ID
	res.Stage = guest.Stage

	if req.Response == constant.SaveTheDateYes {
		rsvpToken, tokenErr := token.NewRSVPToken()
		if tokenErr != nil {
			log.Error().Err(tokenErr).Msg("failed to issue rsvp token")

			return res, fmt.Errorf("failed to issue rsvp token: %w", tokenErr)
		}

		fields[model.FieldStage] = constant.StageRSVP
		fields[model.FieldRSVPToken] = rsvpToken

		if guest.RSVPStatus == constant.RSVPStatusDraft {
			fields[model.FieldRSVPStatus] = constant.RSVPStatusInvited
		}

		res.Stage = constant.StageRSVP
		res.RSVPToken = &rsvpToken
	} else {
		fields[model.FieldRSVPToken] = nil
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	filter.Operator = gDto.FilterGroupOperatorAnd
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldStage,
		ArgName:  "max_stage",
		Operator: gDto.FilterOperatorLessEq,
		Value:    constant.StageRSVP,
		Table:    model.TableName,
	})

	updated, err := s.repo.UpdateGuarded(ctx, fields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to record save-the-date response")

		return res, fmt.Errorf("failed to record save-the-date response: %w", err)
	}

	if !updated {
		return dto.RespondSaveTheDateResponse{}, failure.Conflict("rsvp already finalized") // nolint:wrapcheck
	}

	s.invalidate(ctx, guest)
	s.publishLifecycle(ctx, lifecycleRSVPResponded, guest.ID, guest.EventID, res.Stage, guest.RSVPStatus)

	return res, nil
}

// GetByToken is the anonymous lookup behind the public RSVP page. Every
// miss, malformed input included, answers NotFound so callers cannot
// probe which tokens exist.
func (s *serviceImpl) GetByToken(ctx context.Context, rsvpToken string) (res dto.PublicGuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetByToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.getByToken(ctx, rsvpToken)
	if err != nil {
		return res, err
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) SubmitRSVP(ctx context.Context, rsvpToken string, req dto.SubmitRSVPRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.SubmitRSVP")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.getByToken(ctx, rsvpToken)
	if err != nil {
		return err
	}

	if guest.Stage != constant.StageRSVP {
		return failure.Conflict("rsvp is not open for this guest") // nolint:wrapcheck
	}

	fields, status, err := buildRSVPFields(req)
	if err != nil {
		return err
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = guest.ID

	filter := shared.FilterByID(guest.ID, model.FieldID, model.TableName)
	filter.Operator = gDto.FilterGroupOperatorAnd
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldStage,
		ArgName:  "current_stage",
		Operator: gDto.FilterOperatorEq,
		Value:    constant.StageRSVP,
		Table:    model.TableName,
	})

	updated, err := s.repo.UpdateGuarded(ctx, fields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to submit rsvp")

		return fmt.Errorf("failed to submit rsvp: %w", err)
	}

	if !updated {
		return failure.Conflict("rsvp is not open for this guest") // nolint:wrapcheck
	}

	s.invalidate(ctx, guest)
	s.publishLifecycle(ctx, lifecycleRSVPSubmitted, guest.ID, guest.EventID, constant.StageFinalized, status)

	return nil
}

// buildRSVPFields maps one submission onto column updates. Confirmed
// needs the full meal selection; declined wipes meals and dietary info;
// maybe finalizes the stage but leaves the status as invited.
func buildRSVPFields(req dto.SubmitRSVPRequest) (map[string]any, string, error) {
	fields := map[string]any{
		model.FieldStage: constant.StageFinalized,
	}

	switch req.Status {
	case constant.RSVPSubmitConfirmed:
		if req.StarterSelection == nil || req.MainSelection == nil || req.DessertSelection == nil {
			return nil, "", failure.BadRequestFromString("confirmed rsvp requires starter, main and dessert selections") // nolint:wrapcheck
		}

		fields[model.FieldRSVPStatus] = constant.RSVPStatusConfirmed
		fields[model.FieldStarterSelection] = req.StarterSelection
		fields[model.FieldMainSelection] = req.MainSelection
		fields[model.FieldDessertSelection] = req.DessertSelection
		fields[model.FieldHasDietaryReqs] = req.HasDietaryRequirements
		fields[model.FieldDietaryRestrictions] = req.DietaryRestrictions
		fields[model.FieldAllergySeverity] = req.AllergySeverity
		fields[model.FieldCanConsumeNearby] = req.CanOthersConsumeNearby
		fields[model.FieldDietaryDetails] = req.DietaryDetails

		return fields, constant.RSVPStatusConfirmed, nil
	case constant.RSVPSubmitDeclined:
		fields[model.FieldRSVPStatus] = constant.RSVPStatusDeclined
		fields[model.FieldStarterSelection] = nil
		fields[model.FieldMainSelection] = nil
		fields[model.FieldDessertSelection] = nil
		fields[model.FieldHasDietaryReqs] = false
		fields[model.FieldDietaryRestrictions] = nil
		fields[model.FieldAllergySeverity] = nil
		fields[model.FieldCanConsumeNearby] = nil
		fields[model.FieldDietaryDetails] = nil

		return fields, constant.RSVPStatusDeclined, nil
	case constant.RSVPSubmitMaybe:
		fields[model.FieldHasDietaryReqs] = req.HasDietaryRequirements
		fields[model.FieldDietaryRestrictions] = req.DietaryRestrictions
		fields[model.FieldAllergySeverity] = req.AllergySeverity
		fields[model.FieldCanConsumeNearby] = req.CanOthersConsumeNearby
		fields[model.FieldDietaryDetails] = req.DietaryDetails

		return fields, constant.RSVPStatusInvited, nil
	default:
		return nil, "", failure.BadRequestFromString("invalid rsvp status") // nolint:wrapcheck
	}
}

func (s *serviceImpl) Stats(ctx context.Context, eventID string) (res model.Stats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, eventID); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheStatsGuest, eventID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.GetStats(ctx, eventID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest stats")

		return res, fmt.Errorf("failed to get guest stats: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest stats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getAuthorized(ctx context.Context, id string) (model.Guest, error) {
	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return guest, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return guest, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	if err = s.eventSvc.Authorize(ctx, guest.EventID); err != nil {
		return model.Guest{}, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	return guest, nil
}

func (s *serviceImpl) getByToken(ctx context.Context, rsvpToken string) (model.Guest, error) {
	var guest model.Guest

	if !token.IsRSVPToken(rsvpToken) {
		return guest, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRSVPToken,
				Operator: gDto.FilterOperatorEq,
				Value:    rsvpToken,
				Table:    model.TableName,
			},
		},
	}

	guest, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest by token")

		return guest, fmt.Errorf("failed to get guest by token: %w", err)
	}

	if guest.ID == constant.Empty {
		return guest, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	return guest, nil
}

type lifecycleEvent struct {
	Type       string    `json:"type"`
	GuestID    string    `json:"guest_id"`
	EventID    string    `json:"event_id"`
	Stage      int       `json:"stage"`
	RSVPStatus string    `json:"rsvp_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (s *serviceImpl) publishLifecycle(ctx context.Context, eventType, guestID, eventID string, stage int, status string) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: guestID,
			Value: lifecycleEvent{
				Type:       eventType,
				GuestID:    guestID,
				EventID:    eventID,
				Stage:      stage,
				RSVPStatus: status,
				OccurredAt: timezone.Now(),
			},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.GuestLifecycle, message); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish guest lifecycle event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, guest model.Guest) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuest, guest.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheStatsGuest, guest.EventID)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest stats from cache")
		}
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context, eventID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheStatsGuest, eventID)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest stats from cache")
		}
	}()
}
