package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRecord kv_records 表，一行对应一个 (实体种类, 用户) 键
type KVRecord struct {
	RecordKey string `gorm:"primaryKey;size:191;column:record_key"`
	Value     string `gorm:"type:longtext"`
}

func (KVRecord) TableName() string {
	return "kv_records"
}

// GormBackend MySQL 持久化后端
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) (*GormBackend, error) {
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, err
	}
	return &GormBackend{db: db}, nil
}

func (b *GormBackend) Get(key string) (string, bool, error) {
	var rec KVRecord
	err := b.db.First(&rec, "record_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

func (b *GormBackend) Set(key, value string) error {
	rec := KVRecord{RecordKey: key, Value: value}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

func (b *GormBackend) Remove(key string) error {
	return b.db.Delete(&KVRecord{}, "record_key = ?", key).Error
}
