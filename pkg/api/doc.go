// Package api holds the public types of the guidepost tour engine: step
// options and their tagged configuration variants, placements, lifecycle
// events and the emitter, the tooltip engine contract, the progress store
// contract, and the observability subscribers.
//
// Most users import the root guidepost package, which re-exports everything
// here; api exists so the internal packages and external integrations share
// one set of types.
package api
