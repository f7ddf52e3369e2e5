// Cartographer is a tool to draw a map of outbound requests of a
// captured browser network trace.
//
// Idea is simple: you export a HAR file from the network tab of your
// browser's dev tools. Every request in it went somewhere: a CDN, an
// ad exchange, an analytics endpoint. Cartographer resolves each
// contacted host to a geographical point and renders an HTML map
// with an arc from you to every one of them, sized by transferred
// bytes and colored by request order.
//
// Tool itself is organized into a few logical parts:
//
// Cartolib
//
// cartolib is a main package of the application: the Resolver
// contract, its error taxonomy, address arithmetic, memoization and
// a rate-limited HTTP client. It also can expose any resolver as an
// http.Handler.
//
// Geodb
//
// geodb loads an offline file of IP ranges (IP2Location LITE DB5
// CSV layout) into a binary-searchable in-memory index.
//
// Resolvers
//
// This package has backend implementations of the resolver
// contract: one over the offline range database, one over a remote
// geolocation HTTP API. Both are interchangeable, callers depend
// only on the contract.
//
// A main package itself wires everything together and provides the
// CLI: the "map" command renders a trace, the "serve" command
// exposes the configured resolver as an HTTP API another
// cartographer can use as its remote backend.
package main
