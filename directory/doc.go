// Package directory lists the APIs published by the Google API Discovery
// Service.
//
// The directory answers which name and version pairs have a discovery
// document, and which version of each API is preferred. Entries carry the
// loader.Identity used to load that API's schemas:
//
//	c, err := directory.New(ctx)
//	entries, err := c.List(ctx, directory.WithName("sheets"), directory.PreferredOnly())
//	names, err := l.SchemaNames(ctx, entries[0].Identity())
//
// Requests are unauthenticated; the directory is public.
package directory
