package migration

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator aplica as migrações embutidas no binário usando golang-migrate.
type Migrator struct {
	migrate *migrate.Migrate
	log     zerolog.Logger
}

// New cria o Migrator a partir do connection string postgres:// (ou postgresql://).
func New(databaseURL string, log zerolog.Logger) (*Migrator, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("abrir migrações embutidas: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, driverURL(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("criar instância de migração: %w", err)
	}
	return &Migrator{migrate: m, log: log}, nil
}

// driverURL troca o esquema para o driver pgx/v5 do golang-migrate.
func driverURL(databaseURL string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(databaseURL, prefix) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, prefix)
		}
	}
	return databaseURL
}

// Up aplica todas as migrações pendentes.
func (m *Migrator) Up() error {
	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.log.Info().Msg("nenhuma migração pendente")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migração up: %w", err)
	}
	version, dirty, _ := m.Version()
	m.log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migrações aplicadas")
	return nil
}

// Down desfaz todas as migrações.
func (m *Migrator) Down() error {
	err := m.migrate.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		m.log.Info().Msg("nenhuma migração para desfazer")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migração down: %w", err)
	}
	m.log.Info().Msg("migrações desfeitas")
	return nil
}

// Steps aplica n migrações (positivo = up, negativo = down).
func (m *Migrator) Steps(n int) error {
	err := m.migrate.Steps(n)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migração steps %d: %w", n, err)
	}
	return nil
}

// Version devolve a versão atual; 0 se nenhuma migração foi aplicada.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("versão da migração: %w", err)
	}
	return version, dirty, nil
}

// Force define a versão sem executar migrações (corrige estado dirty).
func (m *Migrator) Force(version int) error {
	m.log.Warn().Int("version", version).Msg("forçando versão de migração")
	if err := m.migrate.Force(version); err != nil {
		return fmt.Errorf("forçar versão %d: %w", version, err)
	}
	return nil
}

// Close libera a fonte e a conexão.
func (m *Migrator) Close() error {
	sourceErr, dbErr := m.migrate.Close()
	return errors.Join(sourceErr, dbErr)
}
