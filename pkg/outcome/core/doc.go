// Package core contains pipeline plumbing utilities: channel helpers,
// track configuration via context, and the driver loop that moves
// outcomes through a stage. It does not define business logic; instead
// it provides the scaffolding for package pipe to run pipelines with
// controlled concurrency.
package core
