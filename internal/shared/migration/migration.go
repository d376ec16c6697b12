package migration

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionDrop    = "drop"
	ActionVersion = "version"
)

// SourceURL turns a migrations directory into a file:// source URL.
func SourceURL(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve path for %s: %w", dir, err)
	}
	return "file://" + filepath.ToSlash(absDir), nil
}

// Run applies action to the database at dbURL using the SQL files in dir.
func Run(action, dir, dbURL string, logger *zap.Logger) error {
	log := logger.Named("migration")

	if !IsSupported(action) {
		return fmt.Errorf("unsupported action %q", action)
	}

	source, err := SourceURL(dir)
	if err != nil {
		return err
	}

	m, err := migrate.New(source, dbURL)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch action {
	case ActionUp:
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
	case ActionDown:
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
	case ActionDrop:
		return m.Drop()
	case ActionVersion:
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				log.Info("no migration applied")
				return nil
			}
			return err
		}
		log.Info("migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	}

	log.Info("migration completed", zap.String("action", action))
	return nil
}

func IsSupported(action string) bool {
	switch action {
	case ActionUp, ActionDown, ActionDrop, ActionVersion:
		return true
	default:
		return false
	}
}
