package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"autocare/infras/otel"
	"autocare/infras/postgres"
	"autocare/internal/domains/catalog/model"
	gDto "autocare/shared/dto"
	gRepo "autocare/shared/repository"
)

type ServiceCenter interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceCenter, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type Service interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Service, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type CenterService interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CenterService, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type centerRepositoryImpl struct {
	gRepo.Repository[model.ServiceCenter]
	db   *postgres.Connection
	otel otel.Otel
}

func NewServiceCenter(db *postgres.Connection, otel otel.Otel) ServiceCenter {
	return &centerRepositoryImpl{
		Repository: gRepo.NewRepository[model.ServiceCenter](model.CenterEntityName, model.CenterTableName, model.CenterFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type serviceRepositoryImpl struct {
	gRepo.Repository[model.Service]
	db   *postgres.Connection
	otel otel.Otel
}

func NewService(db *postgres.Connection, otel otel.Otel) Service {
	return &serviceRepositoryImpl{
		Repository: gRepo.NewRepository[model.Service](model.ServiceEntityName, model.ServiceTableName, model.ServiceFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type centerServiceRepositoryImpl struct {
	gRepo.Repository[model.CenterService]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCenterService(db *postgres.Connection, otel otel.Otel) CenterService {
	return &centerServiceRepositoryImpl{
		Repository: gRepo.NewRepository[model.CenterService](model.CenterServiceEntityName, model.CenterServiceTableName, model.CenterServiceFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
