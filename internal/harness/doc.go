// Package harness provides conformance testing for the pattern matcher.
//
// The harness loads a knowledge base, grounds a named pattern, and
// validates the accepted groundings against declared expectations.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	kb: path/to/kb/dir
//	pattern: pattern_name
//	expect:
//	  matched: true
//	  groundings: 2
//	  bindings:
//	    - '(Variable "$x")': '(Concept "dog")'
//
// # Expectations
//
// The following expectation fields are supported:
//
//   - matched: whether at least one grounding must be accepted
//   - groundings: the exact number of accepted groundings (omit to skip)
//   - bindings: per-grounding subset matches over variable bindings;
//     every listed map must match some accepted grounding
//
// # Deterministic Testing
//
// Accepted groundings are rendered in canonical form and sorted before
// comparison, so scenario results and golden snapshots are stable across
// runs regardless of enumeration order.
package harness
