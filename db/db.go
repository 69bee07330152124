package db

import "context"

type StoreType string

const (
	CSV      StoreType = "csv"
	Postgres StoreType = "postgres"
	Mongo    StoreType = "mongo"
)

type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
