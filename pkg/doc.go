// Package pkg provides the core libraries for pubplot.
//
// # Overview
//
// Pubplot makes vector figures import at the correct physical size into
// graphics editors by computing destination-specific rendering parameters.
// The pkg directory is organized by concern:
//
//  1. [destinations] - Destination registry, parameter tables, scoped overrides
//  2. [rcparams] - The process-wide rendering-configuration store
//  3. [scaling] - Scale factors and shape-preserving scaling helpers
//  4. [canvascfg] - Adapters onto the tdewolff/canvas rendering backend
//  5. [export] - Parameter-table file output (JSON/TOML)
//
// # Data Flow
//
// The typical flow through pubplot:
//
//	destination name
//	       ↓
//	destinations.RenderParams  →  rcparams.Params + scaling.Scaler
//	       ↓ (destinations.Enter)
//	rcparams store override + context scale factor
//	       ↓
//	plotting code (scaling.Scale, canvascfg adapters)
//	       ↓ (Scope.Exit)
//	prior configuration restored
//
// Supporting packages: [errors] (coded errors), [observability] (hooks),
// [buildinfo] (version stamping).
package pkg
