// Package controller holds the two state machines behind the keylock
// screens.
//
// [SubmissionController] drives the creation form through Idle, Loading,
// Success and Failed. [RedemptionController] drives a single redemption
// through Loading, Found and NotFound. Each controller owns exactly one
// state value; the states are sealed interfaces so that an impossible mix
// such as "loading and failed" cannot be represented.
//
// Network calls are not made under the controller lock. Submit and Start
// hand back an exchange function; the caller runs it wherever it likes (a
// bubbletea command, a goroutine, inline in the CLI) and feeds the outcome
// to Resolve. Outcomes that arrive after Close, or that belong to an older
// attempt, are dropped.
package controller
