// Package venture provides composable building blocks for the
// request/response pattern.
//
// A Request describes one logical call against an opaque client handle and
// produces a Response, the single in-flight computation for that call. On top
// of these two contracts the package supplies a retry combinator, which
// re-issues a failed request after a backoff interval, and a paginator, which
// re-issues a page-shaped request until the pages run out. Both combinators
// are themselves requests, so they compose freely: a paginator can walk a
// retry-wrapped request and a retry wrapper can guard a paged one.
//
// The package never talks to the network itself. Callers adapt their concrete
// clients to the Request contract and plug in a backoff strategy from the
// retry subpackage.
package venture
