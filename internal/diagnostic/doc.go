// Package diagnostic provides structured errors, warnings, and notes
// produced while validating rules and rewriting component files.
//
// Key capabilities:
//   - Invalid rule reports (bad identifiers, duplicate names)
//   - Rewrite warnings for blocks the pattern matched but could not reshape
//   - Heuristic warnings where the match may have spanned too far
package diagnostic
