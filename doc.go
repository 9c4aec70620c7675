// Package cashbook provides the types and functions to keep a personal
// income and expense ledger in a single, human-readable JSON file.
//
// The core functionalities include:
//   - Records: a dated Income or Expense entry with a signed amount and a
//     free-text description. Incomes are stored positive, expenses negative.
//   - Ledger Management: appending, editing and deleting records, which are
//     addressed by their 1-based position in the current ledger.
//   - Balance and Listing: the signed total of the ledger, and lazy
//     sequences of records by category.
//   - Search: composable filters on date, category, amount and description.
//   - Data Persistence: the whole ledger is rewritten to disk after each
//     mutation (see Store), and a missing or corrupt file reads as an empty
//     ledger.
//
// This package serves as the foundational logic for the `cb` command-line
// tool and its interactive menu.
package cashbook
