// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

// Package catalog holds the in-memory movie catalog and its loading sources.
//
// The catalog is the root data structure of Kinograph: every movie known to
// the system lives in a Store keyed by movie ID. The similarity graph is
// built from a full catalog snapshot, and the recommendation engine resolves
// request movies against the same store.
//
// # Store
//
// Store is a thread-safe map from movie ID to Movie. Writes happen during
// startup population; after the graph is built the store is effectively
// read-only and serves concurrent lookups from API handlers:
//
//	store := catalog.NewStore()
//	store.Insert(catalog.Movie{ID: 1, Title: "Heat", Genre: "Crime", Rating: 8.3, Director: "Mann"})
//	m, ok := store.Lookup(1)
//
// Inserting a duplicate ID replaces the stored record (last write wins), but
// the insert counter still advances. Inserted() therefore reports how many
// records arrived, while Len() reports how many distinct movies remain.
//
// # Sources
//
// Records arrive through the Source interface. Two implementations exist:
//
//   - FileSource parses a delimited text file (header line plus one record
//     per line: id, title, genre, rating, director).
//   - MongoSource fetches documents from a MongoDB collection using the
//     official driver.
//
// The server selects a source from configuration (catalog.source) and calls
// Populate once at boot. Malformed file records are skipped and counted
// rather than failing the load; an unreadable file or unreachable database
// is an error.
package catalog
