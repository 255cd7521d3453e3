package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"eventzone/infras/otel"
	"eventzone/infras/postgres"
	"eventzone/internal/domains/event/model"
	"eventzone/shared"
	"eventzone/shared/constant"
	gDto "eventzone/shared/dto"
	gRepo "eventzone/shared/repository"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Event interface {
	Create(ctx context.Context, event model.Event) error
	Get(ctx context.Context, id string) (model.Event, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Event, error)
	GetByProfile(ctx context.Context, profileID string, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Event, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountByProfile(ctx context.Context, profileID string, filter gDto.FilterGroup) (int, error)
	Replace(ctx context.Context, id string, fields map[string]any, profileIDs []string) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	events   gRepo.Repository[model.Event]
	links    gRepo.Repository[model.EventProfile]
	profiles gRepo.Repository[model.ProfileEvent]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Event {
	return &repositoryImpl{
		events:   gRepo.NewRepository[model.Event](model.EntityName, model.TableName, model.FieldID, db, otel),
		links:    gRepo.NewRepository[model.EventProfile](model.LinkEntityName, model.LinkTableName, model.FieldEventID, db, otel),
		profiles: gRepo.NewRepository[model.ProfileEvent](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:       db,
		otel:     otel,
	}
}

func byEventIDs(ids ...string) gDto.FilterGroup {
	return gDto.And(gDto.Filter{
		Field:    model.FieldEventID,
		Value:    ids,
		Operator: gDto.FilterOperatorIn,
		Table:    model.LinkTableName,
	})
}

func byProfileID(profileID string) gDto.FilterGroup {
	return shared.FilterByID(profileID, model.FieldProfileID, model.LinkTableName)
}

// Create inserts the event and its profile links in one transaction.
func (r *repositoryImpl) Create(ctx context.Context, event model.Event) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.Create")
	defer scope.End()

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.events.InsertTx(ctx, tx, event); err != nil {
			return err //nolint:wrapcheck
		}

		return r.links.InsertBulkTx(ctx, tx, event.Links()) //nolint:wrapcheck
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// Get returns the event with its profile ids, or a zero Event when it does not exist.
func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Event, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.Get")
	defer scope.End()

	event, err := r.events.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil || event.ID == constant.Empty {
		return event, err //nolint:wrapcheck
	}

	events := []model.Event{event}
	if err = r.attachProfileIDs(ctx, events); err != nil {
		return model.Event{}, err
	}

	return events[0], nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Event, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.GetAll")
	defer scope.End()

	events, err := r.events.GetAll(ctx, params, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = r.attachProfileIDs(ctx, events); err != nil {
		return nil, err
	}

	return events, nil
}

// GetByProfile lists the events linked to profileID that match filter, using the ordering and page in params.
func (r *repositoryImpl) GetByProfile(ctx context.Context, profileID string, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Event, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.GetByProfile")
	defer scope.End()

	rows, err := r.profiles.GetAll(ctx, params, gDto.And(byProfileID(profileID), filter))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	events := make([]model.Event, len(rows))
	for i, row := range rows {
		events[i] = row.ToEvent()
	}

	if err = r.attachProfileIDs(ctx, events); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.events.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountByProfile(ctx context.Context, profileID string, filter gDto.FilterGroup) (int, error) {
	return r.profiles.Count(ctx, gDto.And(byProfileID(profileID), filter)) //nolint:wrapcheck
}

// Replace overwrites the event columns in fields and swaps its profile links for profileIDs.
func (r *repositoryImpl) Replace(ctx context.Context, id string, fields map[string]any, profileIDs []string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.Replace")
	defer scope.End()

	links := model.Event{ID: id, ProfileIDs: profileIDs}.Links()

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.events.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err //nolint:wrapcheck
		}

		if err := r.links.DeleteTx(ctx, tx, byEventIDs(id)); err != nil {
			return err //nolint:wrapcheck
		}

		return r.links.InsertBulkTx(ctx, tx, links) //nolint:wrapcheck
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to replace event: %w", err)
	}

	return nil
}

// Delete removes the event; its links go with it through ON DELETE CASCADE.
func (r *repositoryImpl) Delete(ctx context.Context, id string) error {
	return r.events.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) attachProfileIDs(ctx context.Context, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]string, len(events))
	for i, event := range events {
		ids[i] = event.ID
	}

	params := gDto.QueryParams{SortBy: model.FieldProfileID, SortDir: gDto.SortDirAsc}

	links, err := r.links.GetAll(ctx, params, byEventIDs(ids...))
	if err != nil {
		return fmt.Errorf("failed to load event profiles: %w", err)
	}

	grouped := make(map[string][]string, len(events))
	for _, link := range links {
		grouped[link.EventID] = append(grouped[link.EventID], link.ProfileID)
	}

	for i := range events {
		events[i].ProfileIDs = grouped[events[i].ID]
		if events[i].ProfileIDs == nil {
			events[i].ProfileIDs = []string{}
		}
	}

	return nil
}
