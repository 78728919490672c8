package handler

import (
	controller "github.com/voicecode/vcsync/src/vcsync/controller"
	syncengine "github.com/voicecode/vcsync/src/vcsync/controller/sync-engine"
	handler "github.com/voicecode/vcsync/src/vcsync/handler/sync-engine"
	"github.com/voicecode/vcsync/src/vcsync/repository/workstream"
	"go.uber.org/fx"
)

// Module provides the vcsync daemon into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(workstream.New),
	fx.Provide(handler.New),
	fx.Invoke(func(m handler.Handler) {}),
	fx.Invoke(func(m syncengine.Controller) {}),
)
