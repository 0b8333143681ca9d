// Package todo loads, mutates, and saves personal task lists.
//
// A task file is a JSON array of task records:
//
//	[
//	  {"task": "Buy milk", "completed": false},
//	  {"task": "Pay bills", "completed": true, "due_date": "2024-05-01"}
//	]
//
// The due_date key is only written by dated stores (the full-screen
// front end). It holds a YYYY-MM-DD date or the sentinel "N/A".
//
// # Loading
//
// Loading never fails. A missing file, an empty file, invalid JSON, or a
// document that does not match the embedded schema (tasks.schema.json)
// all produce an empty list. The reason is logged at warn level.
//
// # Addressing
//
// Tasks have no identifier. MarkCompleted, Remove, and Edit take a 1-based
// task number as shown to the user. Move takes 0-based positions, the way
// list widgets report rows.
//
// # File Format
//
// When writing task files, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - "[]" for an empty list
package todo
