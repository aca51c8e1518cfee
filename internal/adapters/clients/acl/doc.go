// Package acl is the anti-corruption layer between the quote service's
// wire format and the domain.
//
// The quote service stores quotes in a single-table layout and leaks its
// index keys (PK, SK, GSI1PK, ...) into every payload. Those keys are
// carried through untouched on [domain.Quote] but never interpreted, and
// the search results only ever see the projected form.
//
// # Error mapping
//
// Reads and writes fail differently on purpose:
//
//   - A failed read ([MapHTTPError]) becomes NotFound, Forbidden,
//     Validation or Unavailable depending on status. Pages treat all of
//     them as "nothing to show".
//   - A write that reaches the service and gets a non-2xx answer
//     ([MapWriteError]) is always a [domain.RejectedError], whatever the
//     status. A write that never got an answer is Unavailable. The add
//     quote form shows a different message for each.
//
// Client-level errors ([clients.ErrCircuitOpen],
// [clients.ErrMaxRetriesExceeded]) are Unavailable in both cases.
package acl
