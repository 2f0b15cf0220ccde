// Package checkbook reconciles a personal checkbook kept in an xlsx
// workbook. It is designed to be local-first and auditable: the workbook
// is the single source of truth, and every save keeps the previous file
// as a timestamped backup.
//
// The core functionalities include:
//   - Ledger Management: a keyed collection of posted transactions and of
//     recurring schedule entries, loaded wholesale from the workbook's
//     "Ledger" and "Schedule" sheets.
//   - Reconciliation: marking every ledger record posted and recomputing
//     the running balance in id order, anchored on the first record's
//     stored balance.
//   - Data Persistence: round-tripping both collections to the workbook's
//     fixed column layout, rotating the previous file to a
//     "{stem}_bak_{timestamp}.xlsx" sibling before every write.
//
// This package serves as the foundational logic for the `cbk`
// command-line tool.
package checkbook
