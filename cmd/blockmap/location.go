package main

import (
	"strings"

	"github.com/gwillem/urlfilecache"
)

// blockmapPath returns a local path for p. Blockmaps published on a web
// server are fetched into the user cache first.
func blockmapPath(p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return urlfilecache.ToPath(p)
	}
	return p
}
