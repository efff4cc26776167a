package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/isu-hub/isu-roster-stats/internal/application/query"
	"github.com/isu-hub/isu-roster-stats/internal/domain/roster"
	"github.com/isu-hub/isu-roster-stats/internal/infrastructure/persistence/csvfile"
	"github.com/isu-hub/isu-roster-stats/internal/infrastructure/persistence/xlsxfile"
	"github.com/isu-hub/isu-roster-stats/internal/interface/console"
	"github.com/isu-hub/isu-roster-stats/pkg/logger"
)

var (
	reportFaculty string
	reportCourse  string
	reportPrefix  string
	reportMinRun  int
)

// reportCmd runs every analytical query and prints the report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Load the roster and print the full analytical report",
	Long: `Loads the roster file, runs the full set of analytical queries and
prints a formatted report to stdout.

The target faculty, grade course, rare-name prefix and minimum run
length come from ROSTER_* environment variables and can be overridden
with flags.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFaculty, "faculty", "", "faculty for the detailed subset (overrides ROSTER_TARGET_FACULTY)")
	reportCmd.Flags().StringVar(&reportCourse, "course", "", "course for the grade leader query (overrides ROSTER_GRADE_COURSE)")
	reportCmd.Flags().StringVar(&reportPrefix, "prefix", "", "given-name prefix for the rare names query (overrides ROSTER_RARE_NAME_PREFIX)")
	reportCmd.Flags().IntVar(&reportMinRun, "min-run", 0, "minimum consecutive ISU run length (overrides ROSTER_MIN_RUN_LENGTH)")
}

// newLoader выбирает загрузчик по формату источника.
func newLoader() roster.Loader {
	switch cfg.Roster.DetectFormat() {
	case "xlsx":
		return xlsxfile.NewLoader(cfg.Roster.Path, xlsxfile.WithSheet(cfg.Roster.Sheet))
	default:
		return csvfile.NewLoader(cfg.Roster.Path, csvfile.WithComma(cfg.Roster.Delimiter))
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Флаги важнее переменных окружения.
	if reportFaculty != "" {
		cfg.Report.TargetFaculty = reportFaculty
	}
	if reportCourse != "" {
		cfg.Report.GradeCourse = reportCourse
	}
	if reportPrefix != "" {
		cfg.Report.RareNamePrefix = reportPrefix
	}
	if reportMinRun > 0 {
		cfg.Report.MinRunLength = reportMinRun
	}

	start := time.Now()
	log.Info("loading roster",
		logger.SourcePath(cfg.Roster.Path),
		logger.String("format", cfg.Roster.DetectFormat()),
	)

	rs, err := newLoader().Load(ctx)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	log.Info("roster loaded",
		logger.RowCount(rs.Len()),
		logger.Latency(time.Since(start)),
	)

	out := cmd.OutOrStdout()
	p := console.NewReportPresenter()
	fmt.Fprint(out, p.FormatHeader(cfg.Roster.Path, rs.Len()))

	// Задача 1: выборка целевого факультета. Однофамильцы и отчества
	// считаются по этой выборке, остальные запросы - по всему реестру.
	subsetRes, err := query.NewFacultySubsetHandler(rs).Handle(ctx, query.FacultySubsetQuery{
		Faculty: cfg.Report.TargetFaculty,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(out, p.FormatFacultySubset(subsetRes))

	homonyms, err := query.NewFindHomonymsHandler(subsetRes.Subset).Handle(ctx, query.FindHomonymsQuery{})
	if err != nil {
		return err
	}
	fmt.Fprint(out, p.FormatHomonyms(homonyms))

	patronymics, err := query.NewAnalyzePatronymicsHandler(subsetRes.Subset).Handle(ctx, query.AnalyzePatronymicsQuery{})
	if err != nil {
		return err
	}
	fmt.Fprint(out, p.FormatPatronymics(patronymics))

	if err := runRosterQueries(ctx, rs, p, out); err != nil {
		return err
	}

	log.Info("report complete", logger.Latency(time.Since(start)))
	return nil
}

// runRosterQueries выполняет запросы, работающие по всему реестру.
func runRosterQueries(ctx context.Context, rs *roster.Roster, p *console.ReportPresenter, out io.Writer) error {
	population, err := query.NewFacultyPopulationHandler(rs).Handle(ctx, query.FacultyPopulationQuery{})
	if err != nil {
		return err
	}
	fmt.Fprint(out, p.FormatFacultyPopulation(population))

	courseStats, err := query.NewCourseStatisticsHandler(rs).Handle(ctx, query.CourseStatisticsQuery{})
	if err != nil {
		return err
	}
	fmt.Fprint(out, p.FormatCourseStatistics(courseStats))

	popular, err := query.NewMostPopularNameHandler(rs).Handle(ctx, query.MostPopularNameQuery{})
	if err != nil {
		return err
	}
	fmt.Fprint(out, p.FormatMostPopularName(popular))

	rare, err := query.NewRareNamesHandler(rs).Handle(ctx, query.RareNamesQuery{
		Prefix: cfg.Report.RareNamePrefix,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(out, p.FormatRareNames(cfg.Report.RareNamePrefix, rare))

	topGrade, err := query.NewTopGradeFacultyHandler(rs).Handle(ctx, query.TopGradeFacultyQuery{
		Course: cfg.Report.GradeCourse,
	})
	switch {
	case errors.Is(err, roster.ErrEmptyRoster):
		// На этом курсе никто не учится - секции в отчёте не будет.
		log.Warn("no students on the requested course",
			logger.QueryName("top_grade_faculty"),
			logger.Course(cfg.Report.GradeCourse),
		)
	case err != nil:
		return err
	default:
		fmt.Fprint(out, p.FormatTopGradeFaculty(topGrade))
	}

	consecutive, err := query.NewConsecutiveISUHandler(rs).Handle(ctx, query.ConsecutiveISUQuery{
		MinRunLength: cfg.Report.MinRunLength,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(out, p.FormatConsecutiveISU(cfg.Report.MinRunLength, consecutive))

	groups, err := query.NewGroupSummaryHandler(rs).Handle(ctx, query.GroupSummaryQuery{})
	if err != nil {
		return err
	}
	fmt.Fprint(out, p.FormatGroupSummary(groups))

	extremes, err := query.NewFacultyCourseExtremesHandler(rs).Handle(ctx, query.FacultyCourseExtremesQuery{})
	if err != nil {
		return err
	}
	fmt.Fprint(out, p.FormatFacultyCourseExtremes(extremes))

	return nil
}
