// Package storage provides key/value backends for persisted form snapshots
// and binds them to the stepform.Store contract.
//
// Available backends:
//
//   - Memory: process local map, used by tests and one-shot sessions.
//   - File: one JSON file per key under a directory, the closest analogue to
//     browser local storage for terminal hosts.
//   - SQLite: a single kv table in a modernc.org/sqlite database.
//   - Redis: GET/SET/DEL on a go-redis client, with optional key prefix and
//     expiry.
//
// Open selects a backend from a Config:
//
//	backend, closeFn, err := storage.Open(ctx, storage.Config{Driver: "file", Dir: ".stepform"})
//	if err != nil {
//		return err
//	}
//	defer closeFn()
//	ctrl := stepform.New(ctx, stepform.WithStore(storage.Bind(backend, "")))
package storage
