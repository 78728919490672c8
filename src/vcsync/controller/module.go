package controller

import (
	contextclear "github.com/voicecode/vcsync/src/vcsync/controller/context-clear"
	"github.com/voicecode/vcsync/src/vcsync/controller/recipes"
	"github.com/voicecode/vcsync/src/vcsync/controller/resources"
	syncengine "github.com/voicecode/vcsync/src/vcsync/controller/sync-engine"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(syncengine.New),
	fx.Provide(recipes.New),
	fx.Provide(resources.New),
	fx.Provide(contextclear.New),
)
