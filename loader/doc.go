// Package loader fetches API discovery documents and caches their normalized
// schemas per API version.
//
// A [Loader] owns an in-memory table from [Identity] ("<name>_<version>") to
// [SchemaSet]. The first Load for an identity fetches
// https://{name}.googleapis.com/$discovery/rest?version={version}, decodes
// its "schemas" section and runs the normalizer over it; every later Load
// returns the same SchemaSet without touching the network.
//
// # Concurrency
//
// Loading is serialized by one mutex per Loader, so concurrent callers for
// the same identity trigger exactly one fetch and all observe the same
// SchemaSet. Reads of an identity that is already cached never take the lock.
// A failed fetch or parse caches nothing; the next Load tries again.
//
// Schema sets are shared between callers and must be treated as read-only.
//
// # Usage
//
//	l := loader.New(
//	    loader.WithLogger(loader.NewSlogAdapter(slog.Default())),
//	    loader.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
//	)
//	schemas, err := l.Load(ctx, loader.NewIdentity("sheets", "v4"))
//	if errors.Is(err, discoveryerrors.ErrFetch) {
//	    // non-2xx status or transport failure
//	}
//	cell := schemas["cell_data"]
package loader
