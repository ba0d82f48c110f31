// Package chain provides a fluent wrapper over flow combinators for
// single-value pipelines. A chain carries its context and the current
// Outcome[T, E]; the error type is fixed for the whole chain.
//
// Common usage:
// - Start/FromValue: begin a chain
// - Then/Map/Ensure: compose steps on the success track
// - RepeatUntil/While: loop steps with a condition
// - Or/And: combine alternative or required chains
// - Switch/MapTo/Try: type-changing steps (free functions)
// - WidenTo: move to a broader error type via an explicit hook
// - Finally: collapse to a final value
package chain
