// Package types defines the core type constraints and sweep-engine enums
// shared across this module: SignedNumber restricts generic coordinate
// types to signed integers and floats, and Orientation, Operation,
// Operand, and EdgeKind classify the values the sweep engine and its
// primitive providers pass between each other.
package types
