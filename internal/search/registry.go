package search

import (
	"net/http"
	"sort"
)

// Constructor builds an engine from its credentials and a shared HTTP
// client.
type Constructor func(cred Credentials, client *http.Client) Engine

// engines maps provider display names to constructors. Read-only
// after process startup.
var engines = map[string]Constructor{
	"Bing": func(cred Credentials, client *http.Client) Engine {
		return NewBing(cred, client)
	},
	"Yahoo! BOSS": func(cred Credentials, client *http.Client) Engine {
		return NewBoss(cred, client)
	},
}

// Lookup returns the constructor registered under name. Unknown names
// are the caller's configuration problem, not an engine failure.
func Lookup(name string) (Constructor, bool) {
	c, ok := engines[name]
	return c, ok
}

// Names returns the registered provider names, sorted.
func Names() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
