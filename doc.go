// Package gameinsights provides the industry detection and pack registry
// core for a product-analytics platform.
//
// # Overview
//
// Datasets arrive as tabular rows with column headers. Upstream schema
// analysis annotates each column with a best-guess meaning; this module
// takes those annotations and classifies the dataset into an analytics
// vertical ("industry") by scoring it against registered industry packs.
// An industry pack bundles everything one vertical needs: semantic column
// types, detection indicators, metric and funnel definitions, chart
// configuration, insight templates, terminology, and a theme.
//
// The module is organized as flat top-level packages:
//
//	┌─────────────────────────────────────┐
//	│            cmd/packkit              │  CLI for pack authoring
//	└─────────────────────────────────────┘
//	           ↓ drives
//	┌──────────┬──────────┬───────────────┐
//	│  devkit  │  export  │    detect     │  Builder, transport, scoring
//	└──────────┴──────────┴───────────────┘
//	           ↓ all read through
//	┌─────────────────────────────────────┐
//	│             registry                │  Validated pack catalog
//	│      (events, scoped lookups)       │  with change notification
//	└─────────────────────────────────────┘
//	           ↓ stores
//	┌─────────────────────────────────────┐
//	│               pack                  │  Data model + validation
//	└─────────────────────────────────────┘
//
// Built-in packs for gaming, SaaS, e-commerce, and fintech live in the
// packs package and are registered explicitly via packs.RegisterAll.
// Registration is EXPLICIT rather than init() based: callers construct a
// registry.Registry, register the packs they want, and hand the registry
// to a detect.Detector. A process-wide default registry is available via
// registry.Default() for applications that do not need isolation.
//
// Downstream evaluation of metric formulas and funnel conditions is out
// of scope: expressions are stored and validated for presence only.
package gameinsights
