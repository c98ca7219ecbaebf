package database

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trezcool/examdesk/core"
	"github.com/trezcool/examdesk/core/exam"
	"github.com/trezcool/examdesk/core/fixture"
	"github.com/trezcool/examdesk/core/user"
	inmemdb "github.com/trezcool/examdesk/storage/database/inmem"
	sqlitedb "github.com/trezcool/examdesk/storage/database/sqlite"
)

// DB bundles the repositories the apps run on.
// Users and exams always live in memory, seeded from the fixtures; only the session slot may outlive the process.
type DB struct {
	Users    user.Repository
	Exams    exam.Repository
	Sessions user.SessionStore

	sql *gorm.DB // nil with the memory session driver
}

func Open(conf *core.Config) (*DB, error) {
	set, err := fixture.Load()
	if err != nil {
		return nil, errors.Wrap(err, "loading fixtures")
	}
	mem, err := inmemdb.Open(set)
	if err != nil {
		return nil, errors.Wrap(err, "opening in-memory database")
	}

	db := &DB{
		Users: inmemdb.NewUserRepository(mem),
		Exams: inmemdb.NewExamRepository(mem),
	}

	switch conf.Session.Driver {
	case core.SessionDriverMemory:
		db.Sessions = inmemdb.NewSessionStore()
	case core.SessionDriverSQLite:
		if db.sql, err = sqlitedb.Open(conf.Session.Path); err != nil {
			return nil, errors.Wrap(err, "opening session database")
		}
		db.Sessions = sqlitedb.NewSessionStore(db.sql)
	default:
		return nil, errors.Errorf("unknown session driver %q", conf.Session.Driver)
	}
	return db, nil
}

func (db *DB) Close() error {
	if db.sql == nil {
		return nil
	}
	return sqlitedb.Close(db.sql)
}
