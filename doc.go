// Package camdash provides the functions and types behind a local-first
// dashboard for collections account managers. All state lives in a small
// directory of JSON documents, and every view is recomputed from a fresh
// in-memory snapshot of the stored collections.
//
// The core functionalities include:
//   - Account Repository: CRUD-style operations over the account book, the
//     manager roster, and the weekly review ledger, with whole-collection
//     writes so one logical change is one storage commit.
//   - Derived Views: pure computations producing filtered and sorted account
//     lists, dashboard aggregate statistics, decision timelines correlated
//     with health score history, and the set of accounts still needing a
//     decision in the current week.
//   - Decision Review Workflow: team-lead pass/fail judgments applied to
//     recorded decisions, with per-manager rollups over a time window.
//   - Backup Codec: whole-dataset export to a single human-readable JSON
//     document, and tolerant import back from it.
//
// This package serves as the foundational logic for the `cab` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package camdash
