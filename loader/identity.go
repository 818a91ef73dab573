package loader

import (
	"net/url"
)

// DefaultHost is the domain discovery documents are served from.
const DefaultHost = "googleapis.com"

// Identity names one version of one API. It is the cache key for loaded schemas.
type Identity struct {
	Name    string
	Version string
}

// NewIdentity returns the identity of API name at version.
func NewIdentity(name, version string) Identity {
	return Identity{Name: name, Version: version}
}

// String returns the canonical name, "<name>_<version>".
func (id Identity) String() string {
	return id.Name + "_" + id.Version
}

// IsZero reports whether either the name or the version is missing.
func (id Identity) IsZero() bool {
	return id.Name == "" || id.Version == ""
}

// URL returns the discovery document URL for this identity on host.
func (id Identity) URL(host string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     id.Name + "." + host,
		Path:     "/$discovery/rest",
		RawQuery: url.Values{"version": {id.Version}}.Encode(),
	}
	return u.String()
}
