// Package offline implements the cache-first shell worker: installing
// the static app shell into the cache, activating a new cache version,
// and serving requests from cache before the network.
package offline

// CacheVersion names the current shell cache. Bump it when the shell
// asset set changes; Activate drops every other version.
const CacheVersion = "notepal-cache-v1"

// ShellPath is the navigation fallback served when the network is down
// and the exact page is not cached.
const ShellPath = "/index.html"

// ShellManifest lists the static assets that make up the app shell.
// Install stages all of them; a single failure fails the install.
func ShellManifest() []string {
	return []string{
		"/",
		"/index.html",
		"/manifest.json",
		"/css/style.css",
		"/css/themes.css",
		"/js/utils.js",
		"/js/app.js",
		"/assets/icons/favicon.ico",
		"/assets/icons/icon-192x192.png",
		"/assets/icons/icon-512x512.png",
	}
}
