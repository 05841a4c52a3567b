package invoice

import "go.uber.org/fx"

// Module provides the invoice FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPDFRenderer),
)
