// Command flixapi serves scraped per-locale catalog data over HTTP.
//
// It refreshes the in-memory catalog cache once at startup, on a fixed
// interval, and on demand via GET /refresh. Readers are never blocked on
// outbound fetches; they always see the most recently installed snapshot.
package main
