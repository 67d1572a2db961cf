// migrate aplica ou desfaz as migrações embutidas contra o banco configurado (DATABASE_URL / DB_*).
//
// Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
//	go run ./cmd/migrate steps -n -1
//	go run ./cmd/migrate version
//	go run ./cmd/migrate force -n 2
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/gerenciamento-clientes/internal/infrastructure/migration"
	"github.com/jhoicas/gerenciamento-clientes/pkg/config"
	"github.com/jhoicas/gerenciamento-clientes/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executa o subcomando e devolve o código de saída; o migrador é sempre fechado.
func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "uso: migrate <up|down|steps|version|force> [-n N]")
		return 2
	}
	cmd := args[0]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	n := fs.Int("n", 0, "quantidade de passos (steps) ou versão alvo (force)")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		return 1
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	m, err := migration.New(cfg.DB.ConnectionString(), log.Component("migration"))
	if err != nil {
		log.Error().Err(err).Msg("preparar migrações")
		return 1
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn().Err(err).Msg("fechar migrador")
		}
	}()

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "steps":
		if *n == 0 {
			err = fmt.Errorf("steps exige -n diferente de zero")
			break
		}
		err = m.Steps(*n)
	case "force":
		err = m.Force(*n)
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = m.Version()
		if err == nil {
			log.Info().Uint("version", version).Bool("dirty", dirty).Msg("versão atual")
		}
	default:
		err = fmt.Errorf("comando desconhecido %q", cmd)
	}
	if err != nil {
		log.Error().Err(err).Str("cmd", cmd).Msg("migração falhou")
		return 1
	}
	return 0
}
