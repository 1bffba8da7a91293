// Package hyp models a HyperLynx board description: units, board outline,
// stackup, devices, padstacks and per-net geometric primitives.
//
// Documents are built once through the builders in this package
// (OutlineBuilder, Library, NetEmitter), checked with Document.Validate and
// rendered by the writer subpackage. Every invariant violation is reported
// as an error wrapping one of the sentinel errors below, so callers can use
// errors.Is.
package hyp
