package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"autocare/infras/otel"
	"autocare/infras/postgres"
	"autocare/internal/domains/vehicle/model"
	gDto "autocare/shared/dto"
	gRepo "autocare/shared/repository"
)

type Vehicle interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Vehicle, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Vehicle]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Vehicle {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Vehicle](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
