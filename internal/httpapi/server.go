package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dharmayuga/dharmayuga/pkg/config"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"go.uber.org/fx"
)

type ServerOpts struct {
	fx.In

	LC      fx.Lifecycle
	Handler *Handler
	Config  *config.Config
	Logger  logger.Logger
}

func NewServer(opts ServerOpts) *http.Server {
	log := opts.Logger.WithComponent("HTTPServer")
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.App.Port),
		Handler:           opts.Handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				log.Info("Starting server", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping server")
			return srv.Shutdown(ctx)
		},
	})
	return srv
}

var Module = fx.Module("httpapi",
	fx.Provide(NewHandler),
	fx.Provide(NewServer),
	fx.Invoke(func(*http.Server) {}),
)
