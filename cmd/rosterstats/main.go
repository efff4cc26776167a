// Package main - точка входа консольной утилиты статистики реестра ИСУ.
//
// Утилита загружает табличный реестр студентов (CSV или XLSX), прогоняет
// по нему набор аналитических запросов и печатает текстовый отчёт.
//
// Архитектура следует принципам Clean Architecture и DDD:
// - Domain: реестр, классификатор пола, поиск серий номеров
// - Application: запросы-отчёты (CQRS, read-only)
// - Infrastructure: загрузчики CSV/XLSX, генератор тестовых данных
// - Interface: консольный презентер
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/isu-hub/isu-roster-stats/config"
	"github.com/isu-hub/isu-roster-stats/pkg/logger"
)

var (
	// Global flags
	rosterPath   string
	rosterFormat string
	verbose      bool

	// Shared state, initialized in PersistentPreRunE
	cfg *config.Config
	log *logger.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "rosterstats",
	Short: "Descriptive statistics over a university student roster",
	Long: `rosterstats reads a tabular student roster (CSV or XLSX) and answers
a fixed set of analytical questions about it: faculty populations,
namesakes, patronymic-based gender counts, grade leaders and runs of
consecutively issued ISU numbers.

Configuration comes from ROSTER_* environment variables; flags override
the data source settings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		// Флаги важнее переменных окружения.
		if rosterPath != "" {
			cfg.Roster.Path = rosterPath
		}
		if rosterFormat != "" {
			cfg.Roster.Format = rosterFormat
		}

		level := logger.ParseLevel(cfg.Observability.LogLevel)
		if verbose {
			level = logger.LevelDebug
		}
		log = logger.New(logger.Options{
			Output: os.Stderr,
			Level:  level,
		}).WithRunID(uuid.NewString())

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rosterPath, "file", "", "path to the roster file (overrides ROSTER_PATH)")
	rootCmd.PersistentFlags().StringVar(&rosterFormat, "format", "", "roster format: csv or xlsx (default: by extension)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
