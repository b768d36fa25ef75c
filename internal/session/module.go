package session

import "go.uber.org/fx"

// Module provides the session issuer.
var Module = fx.Provide(newIssuerFromConfig)
