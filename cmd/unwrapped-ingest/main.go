package main

import (
	"context"
	"flag"

	"unwrapped/internal/core/version"
	"unwrapped/internal/platform/config"
	"unwrapped/internal/platform/logger"
	"unwrapped/internal/platform/store"

	ingsvc "unwrapped/internal/services/ingest/service"
	msgrepo "unwrapped/internal/services/messages/repo"
	msgsvc "unwrapped/internal/services/messages/service"
)

func main() {
	root := config.New()
	arcCfg := root.Prefix("ARCHIVE_")
	ingCfg := root.Prefix("INGEST_")
	l := logger.Get()

	var (
		file = flag.String("file", "result.json", "Telegram channel export to import")
	)
	flag.Parse()

	build := version.Info("unwrapped-ingest")
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
	ing := ingsvc.New(msgs, ingsvc.Config{
		Timezone: ingCfg.MayString("TZ", ""),
	})

	stats, err := ing.Run(ctx, *file)
	if err != nil {
		l.Fatal().Err(err).Str("file", *file).Msg("ingest failed")
	}
	l.Info().
		Str("file", *file).
		Int("seen", stats.Seen).
		Int("stored", stats.Stored).
		Int("skipped", stats.Skipped).
		Int("invalid", stats.Invalid).
		Msg("ingest complete")
}
