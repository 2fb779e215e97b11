package db

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/config"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Store bundles the MySQL repositories into a complete backend.
type Store struct {
	*TaskRepository
	*TimeBlockRepository
	*PreferenceRepository
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		TaskRepository:       NewTaskRepository(db),
		TimeBlockRepository:  NewTimeBlockRepository(db),
		PreferenceRepository: NewPreferenceRepository(db),
		db:                   db,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Name() string {
	return "mysql"
}

var _ ports.Store = (*Store)(nil)
