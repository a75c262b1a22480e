package main

import (
	"context"
	"flag"

	"unwrapped/internal/core/version"
	"unwrapped/internal/platform/config"
	"unwrapped/internal/platform/logger"
	"unwrapped/internal/platform/store"

	msgrepo "unwrapped/internal/services/messages/repo"
	msgsvc "unwrapped/internal/services/messages/service"
	repsvc "unwrapped/internal/services/report/service"
)

func main() {
	root := config.New()
	arcCfg := root.Prefix("ARCHIVE_")
	repCfg := root.Prefix("REPORT_")
	l := logger.Get()

	var (
		year = flag.Int("year", 0, "year to analyze, 0 analyzes every archive year")
		out  = flag.String("out", "", "export directory, overrides REPORT_EXPORT_DIR")
	)
	flag.Parse()

	build := version.Info("unwrapped-analyze")
	l.Info().Str("version", build.Version).Str("commit", build.Commit).Msg("starting")

	ctx := context.Background()

	st, err := store.Open(ctx, store.Config{
		Path:   arcCfg.MayString("DB_PATH", "telegram_messages.db"),
		LogSQL: arcCfg.MayBool("LOG_SQL", false),
		SlowMs: arcCfg.MayInt("SLOW_MS", 500),
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(ctx); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if err := msgrepo.EnsureSchema(ctx, st.DB); err != nil {
		l.Panic().Err(err).Msg("schema setup failed")
	}

	msgs := msgsvc.New(st.DB, msgrepo.NewSQLite(), msgsvc.Config{
		Channel: arcCfg.MayString("CHANNEL", ""),
	})

	exportDir := *out
	if exportDir == "" {
		exportDir = repCfg.MayString("EXPORT_DIR", "data")
	}
	rep := repsvc.New(msgs, repsvc.Config{
		ExportDir: exportDir,
		Timezone:  repCfg.MayString("TZ", ""),
	})

	if *year != 0 {
		if _, err := rep.RunYear(ctx, *year); err != nil {
			l.Fatal().Err(err).Int("year", *year).Msg("analysis failed")
		}
		return
	}

	done, err := rep.RunAll(ctx)
	if err != nil {
		l.Fatal().Err(err).Msg("analysis failed")
	}
	l.Info().Ints("years", done).Msg("analysis complete")
}
