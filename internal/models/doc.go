// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

/*
Package models defines shared response data structures for the HTTP API.

These are plain data types with JSON tags and no behavior. Domain types
that already serialize cleanly (catalog.Movie, graph.Stats, the
recommend response types) are returned by handlers directly; this
package only holds the payloads that belong to no single domain
package, such as health and system status reports.

The package imports nothing from the rest of the application so it can
be used anywhere without creating dependency cycles.
*/
package models
