// Package domain contains the core catalog entities and types used by the
// application: entity URNs, catalog domains (both the hydrated form and the
// identifier-only stub handed to batch resolution), caller sessions, and
// platform privileges. These types are free of infrastructure concerns so they
// can be shared across packages.
package domain
