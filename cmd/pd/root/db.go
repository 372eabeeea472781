package root

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/config"
	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/storage"
	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/tracker"
)

func newLogger() *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func openService(ctx context.Context) (*tracker.Service, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	catalog, err := config.LoadCatalog()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	svc, err := tracker.NewService(
		storage.NewDayRepo(db),
		storage.NewAchievementRepo(db),
		storage.NewMetaRepo(db),
		catalog,
		tracker.NewSystemClock(),
		newLogger(),
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
