package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"eventzone/infras/otel"
	"eventzone/infras/postgres"
	"eventzone/internal/domains/profile/model"
	"eventzone/shared/constant"
	gDto "eventzone/shared/dto"
	gRepo "eventzone/shared/repository"
	"fmt"
)

type Profile interface {
	Insert(ctx context.Context, model model.Profile) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Profile, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Profile, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Profile, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Profile]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Profile {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Profile](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByIDs loads the profiles whose id is in ids. Unknown ids are simply absent from the result.
func (r *repositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]model.Profile, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".profile.GetByIDs")
	defer scope.End()

	if len(ids) == 0 {
		return []model.Profile{}, nil
	}

	filter := gDto.And(gDto.Filter{
		Field:    model.FieldID,
		Value:    ids,
		Operator: gDto.FilterOperatorIn,
		Table:    model.TableName,
	})

	profiles, err := r.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get profiles by ids: %w", err)
	}

	return profiles, nil
}
