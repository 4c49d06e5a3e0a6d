package mirror

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// mirrorEntry fila de la tabla local_mirror.
type mirrorEntry struct {
	Key       string `gorm:"column:mirror_key;primaryKey;size:255"`
	Payload   string `gorm:"column:payload;type:text;not null"`
	UpdatedAt time.Time
}

func (mirrorEntry) TableName() string {
	return "local_mirror"
}

// SQLiteStorage almacenamiento persistente sobre un archivo SQLite (vía GORM).
type SQLiteStorage struct {
	db    *gorm.DB
	quota int64
}

var _ Storage = (*SQLiteStorage)(nil)

// OpenSQLite abre (o crea) la base en path; ":memory:" sirve para tests.
func OpenSQLite(path string, quotaBytes int64) (*SQLiteStorage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}
	// Una sola conexión: con ":memory:" cada conexión nueva vería una base vacía.
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&mirrorEntry{}); err != nil {
		return nil, fmt.Errorf("migrar local_mirror: %w", err)
	}
	return &SQLiteStorage{db: db, quota: quotaBytes}, nil
}

func (s *SQLiteStorage) Get(key string) (string, bool, error) {
	var e mirrorEntry
	err := s.db.Where("mirror_key = ?", key).Take(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("leer %s: %w", key, err)
	}
	return e.Payload, true, nil
}

func (s *SQLiteStorage) Set(key, value string) error {
	if s.quota > 0 {
		var used int64
		err := s.db.Model(&mirrorEntry{}).
			Where("mirror_key <> ?", key).
			Select("COALESCE(SUM(LENGTH(mirror_key) + LENGTH(payload)), 0)").
			Scan(&used).Error
		if err != nil {
			return fmt.Errorf("calcular uso: %w", err)
		}
		if used+int64(len(key)+len(value)) > s.quota {
			return ErrQuotaExceeded
		}
	}
	e := mirrorEntry{Key: key, Payload: value, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "mirror_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Remove(key string) error {
	if err := s.db.Where("mirror_key = ?", key).Delete(&mirrorEntry{}).Error; err != nil {
		return fmt.Errorf("borrar %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Keys() ([]string, error) {
	var keys []string
	if err := s.db.Model(&mirrorEntry{}).Order("mirror_key").Pluck("mirror_key", &keys).Error; err != nil {
		return nil, fmt.Errorf("listar claves: %w", err)
	}
	return keys, nil
}

// Close cierra la conexión subyacente.
func (s *SQLiteStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
