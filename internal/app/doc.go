// Package app wires the cmtail pipeline together for one invocation.
//
// # Pipeline
//
//	source.Open()        resolve mode, fail fast on a missing path
//	  └─> src.Lines()    raw lines in file order
//	        └─> parse.Line()      one Record per line, total
//	              └─> criteria.Match()  AND of level / since / component
//	                    └─> renderer.Render()  text or JSON, per line
//
// Emission is strictly incremental: each surviving record is written as it
// arrives, never batched, so follow mode behaves like a live feed. Blank
// lines are dropped before parsing.
//
// # Errors
//
// Filter construction errors (an invalid component pattern) and path errors
// surface before any line is processed. Read failures mid-stream, including
// truncation under follow, end the run with an error; everything already
// written stands. Content-level irregularities are not errors at all, they
// flow through as fallback records.
package app
