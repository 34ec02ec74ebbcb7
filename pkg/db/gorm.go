package db

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenGorm wraps an open postgres pool in a gorm handle. Driver errors stay
// lib/pq errors so the repositories can inspect their SQLSTATE codes.
func OpenGorm(sqlDB *sql.DB, logger *logrus.Logger) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: NewGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialise gorm: %w", err)
	}
	return gdb, nil
}
