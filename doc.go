// Package workledger manages the projects, workers and salaries of a small
// company. It is local-first: the whole state is a handful of keyed
// documents persisted through a storage.Backend after every mutation.
//
// The core functionalities include:
//   - Entity Store: the authoritative lists of Projects and Workers, with
//     mutations that keep the project/worker cross-references consistent.
//   - Allocation Engine: salary-by-project and cost-by-project views derived
//     on demand from the store, rounding each split to whole units.
//   - Event Aggregator: deadlines and milestones merged into a time-sorted
//     list of events, filtered for the upcoming widget and bucketed by day
//     for a calendar grid.
//   - Timeline: the ordered milestones owned by each project, with a default
//     set synthesized from the project's status until it is first edited.
//
// This package serves as the foundational logic for the `wl` command-line
// tool.
package workledger
