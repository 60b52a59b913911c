// Package packs ships the built-in industry packs and their explicit
// registration entry point. Packs are instance data conforming to the
// pack data model; they carry no behavior of their own.
//
// Like component registration elsewhere in the platform, pack
// registration is EXPLICIT: main (or a test) constructs a registry and
// calls RegisterAll, keeping tests isolated and the set of active packs
// visible at the call site.
package packs

import (
	"errors"

	pkgerrors "github.com/efeecllk/game-insights-sub001/errors"
	"github.com/efeecllk/game-insights-sub001/registry"
)

// RegisterAll registers every built-in industry pack with the provided
// registry:
//
//   - Gaming (puzzle / idle / gacha)
//   - SaaS (b2b / b2c / plg)
//   - E-commerce (marketplace / d2c / subscription_box)
//   - Fintech (banking / lending / trading)
//
// Custom and third-party packs are registered separately by the caller,
// typically after import through the export package.
func RegisterAll(reg *registry.Registry) error {
	if reg == nil {
		return pkgerrors.WrapInvalid(
			errors.New("registry cannot be nil"),
			"Packs", "RegisterAll", "registry validation")
	}

	if err := reg.RegisterPack(Gaming()); err != nil {
		return pkgerrors.Wrap(err, "Packs", "RegisterAll", "gaming pack registration")
	}
	if err := reg.RegisterPack(SaaS()); err != nil {
		return pkgerrors.Wrap(err, "Packs", "RegisterAll", "saas pack registration")
	}
	if err := reg.RegisterPack(Ecommerce()); err != nil {
		return pkgerrors.Wrap(err, "Packs", "RegisterAll", "ecommerce pack registration")
	}
	if err := reg.RegisterPack(Fintech()); err != nil {
		return pkgerrors.Wrap(err, "Packs", "RegisterAll", "fintech pack registration")
	}

	return nil
}
