package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"simplecrm/cmd/internal/domain/entity"
)

// dsnParams turns on foreign key enforcement for every pooled connection.
const dsnParams = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Models lists every table in dependency order, leaves first.
func Models() []any {
	return []any{
		&entity.ClientType{},
		&entity.Client{},
		&entity.Executor{},
		&entity.SampleContract{},
		&entity.SampleAttach{},
		&entity.Service{},
		&entity.Deal{},
		&entity.Attachment{},
	}
}

// Open connects to the database file at path without touching the schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+dsnParams), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates missing tables, columns and constraints. It is safe to run
// on every start. Foreign keys are off while it runs: the sqlite migrator
// rebuilds a table to change it, and dropping a parent with enforcement on
// would fire the cascades on its children.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		if err := conn.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
			return fmt.Errorf("disable foreign keys: %w", err)
		}
		defer conn.Exec("PRAGMA foreign_keys = ON")

		if err := conn.AutoMigrate(Models()...); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
		return checkForeignKeys(conn)
	})
}

// fkViolation is one row of PRAGMA foreign_key_check.
type fkViolation struct {
	Table  string `gorm:"column:table"`
	RowID  *int64 `gorm:"column:rowid"`
	Parent string `gorm:"column:parent"`
	FKID   int    `gorm:"column:fkid"`
}

func checkForeignKeys(conn *gorm.DB) error {
	var violations []fkViolation
	if err := conn.Raw("PRAGMA foreign_key_check").Scan(&violations).Error; err != nil {
		return fmt.Errorf("check foreign keys: %w", err)
	}

	if len(violations) > 0 {
		v := violations[0]
		return fmt.Errorf("migrate schema: %d rows break foreign keys, first in %s referencing %s",
			len(violations), v.Table, v.Parent)
	}
	return nil
}

// Init opens the database and brings the schema up to date.
func Init(ctx context.Context, path string) (*gorm.DB, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, db); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
