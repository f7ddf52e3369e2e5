// Package cartolib contains the core geolocation contracts of the
// application: the GeoPoint type, the Resolver interface with its
// error taxonomy, dotted-quad address arithmetic, the memoizing
// decorator and a rate-limited HTTP client for remote backends.
//
// Backends themselves live in the resolvers package; this package
// only defines what a backend looks like and the machinery shared by
// all of them.
package cartolib
