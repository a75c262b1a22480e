package main

import (
	"context"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"unwrapped/internal/core/version"
	"unwrapped/internal/platform/config"
	"unwrapped/internal/platform/logger"
	phttp "unwrapped/internal/platform/net/http"
	"unwrapped/internal/platform/net/middleware"
	"unwrapped/internal/platform/store"

	msgrepo "unwrapped/internal/services/messages/repo"
	msgsvc "unwrapped/internal/services/messages/service"
	rephttp "unwrapped/internal/services/report/http"
	repsvc "unwrapped/internal/services/report/service"
)

func main() {
	root := config.New()
	arcCfg := root.Prefix("ARCHIVE_")
	apiCfg := root.Prefix("API_")
	repCfg := root.Prefix("REPORT_")
	l := logger.Get()

	build := version.Info("unwrapped-api")
	l.Info().Str("version", build.Version).Str("commit", build.Commit).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{
		Path:   arcCfg.MayString("DB_PATH", "telegram_messages.db"),
		LogSQL: arcCfg.MayBool("LOG_SQL", false),
		SlowMs: arcCfg.MayInt("SLOW_MS", 500),
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if err := st.Guard(ctx); err != nil {
		l.Panic().Err(err).Msg("store not ready")
	}

	msgs := msgsvc.New(st.DB, msgrepo.NewSQLite(), msgsvc.Config{
		Channel: arcCfg.MayString("CHANNEL", ""),
	})
	rep := repsvc.New(msgs, repsvc.Config{
		ExportDir: repCfg.MayString("EXPORT_DIR", "data"),
		Timezone:  repCfg.MayString("TZ", ""),
	})

	srv := phttp.NewServer(apiCfg)
	r := srv.Router()
	r.Use(
		middleware.RealIP(),
		middleware.RequestID(),
		middleware.RecoverJSON,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: 2 * time.Second}),
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Timeout(30*time.Second),
		middleware.Heartbeat("/healthz"),
	)
	r.Route("/api", func(api phttp.Router) {
		rephttp.Register(api, rep)
		api.Get("/version", func(w nethttp.ResponseWriter, req *nethttp.Request) {
			phttp.RespondOK(w, req, build)
		})
	})

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
