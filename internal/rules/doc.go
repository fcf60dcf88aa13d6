// Package rules defines the rewrite rules applied to stage component files
// and loads them from YAML or TOML.
//
// A rule names the collection that backs a stage table, the empty-state
// message shown when it is empty, and the column list whose length sizes the
// generated spanning cell.
//
// # File format
//
//	version: "1"
//	rules:
//	  - name: pending
//	    collection: pendingItems
//	    message: No pending items
//	    columns: config.pendingColumns
//	  - name: history
//	    collection: historyItems
//	    message: No history items
//	    columns: config.historyColumns
//
// The same structure is accepted as TOML using [[rules]] tables.
//
// Rules are applied in file order; each rule sees the output of the previous
// one. When no file is given, [Default] supplies the two rules above.
package rules
