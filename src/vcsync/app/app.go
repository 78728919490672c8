package app

import (
	"context"
	"time"

	tally "github.com/uber-go/tally"
	"github.com/voicecode/vcsync/src/vcsync/gateway"
	"github.com/voicecode/vcsync/src/vcsync/handler"
	"github.com/voicecode/vcsync/src/vcsync/internal/clientinfofile"
	"github.com/voicecode/vcsync/src/vcsync/internal/clock"
	"github.com/voicecode/vcsync/src/vcsync/internal/core"
	"github.com/voicecode/vcsync/src/vcsync/internal/socketfx"
	"github.com/voicecode/vcsync/src/vcsync/internal/statepub"
	"go.uber.org/fx"
)

// Module defines the vcsync daemon application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	socketfx.Module,
	statepub.Module,
	clientinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(clock.New),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "vcsync",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateConfigProvider),
)
