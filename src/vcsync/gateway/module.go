package gateway

import (
	backendclient "github.com/voicecode/vcsync/src/vcsync/gateway/backend-client"
	"go.uber.org/fx"
)

// Module provides the daemon's outbound gateways.
var Module = fx.Options(
	fx.Provide(backendclient.New),
)
