package database

import (
	"errors"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type Manager struct {
	ConnectionString  string
	Db                *gorm.DB
	CreateIfNotExists bool
	Debug             bool
}

func NewDatabase(connectionString string, createIfNotExists bool, debug bool) Manager {
	return Manager{
		ConnectionString:  connectionString,
		Db:                nil,
		CreateIfNotExists: createIfNotExists,
		Debug:             debug,
	}
}

func (dbMgr *Manager) Open() error {
	level := logger.Silent
	if dbMgr.Debug {
		level = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dbMgr.ConnectionString), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return err
	}
	dbMgr.Db = db
	if dbMgr.CreateIfNotExists {
		err = dbMgr.createDatabaseIfNotExists()
		if err != nil {
			return err
		}
	}
	return nil
}

func (dbMgr *Manager) Close() error {
	if dbMgr.Db == nil {
		return nil
	}
	sql, err := dbMgr.Db.DB()
	if err != nil {
		return err
	}
	err = sql.Close()
	if err != nil {
		return err
	}
	dbMgr.Db = nil
	return nil
}

// Settings returns every stored setting by name.
func (dbMgr *Manager) Settings() (map[string]string, error) {
	var settings []Setting
	result := dbMgr.Db.Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Name] = s.Value
	}
	return values, nil
}

func (dbMgr *Manager) GetSetting(name string) (string, bool, error) {
	var setting Setting
	result := dbMgr.Db.Where("name = ?", name).Take(&setting)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return "", false, nil
	} else if result.Error != nil {
		return "", false, result.Error
	}
	return setting.Value, true, nil
}

// SaveSettings upserts all values in one transaction. A new setting keeps
// its first value as default.
func (dbMgr *Manager) SaveSettings(values map[string]string) error {
	return dbMgr.Db.Transaction(func(tx *gorm.DB) error {
		for name, value := range values {
			setting := NewSetting(name, value)
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&setting)
			if result.Error != nil {
				return result.Error
			}
			log.Debug().Str("Name", name).Str("Value", value).Msg("Saved setting")
		}
		return nil
	})
}

func (dbMgr *Manager) createDatabaseIfNotExists() error {
	err := dbMgr.Db.AutoMigrate(&Setting{})
	return err
}
