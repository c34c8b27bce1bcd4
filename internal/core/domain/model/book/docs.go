// Package book contains the catalog aggregate: the Book with its per-format
// prices, rating aggregates, availability flags and stock counter, plus the
// Author and Genre reference entities linked to it.
//
// Stock is the contended piece of shared state in the system. The aggregate
// never lets it go negative: every decrement goes through Reserve, which
// fails with OutOfStockError when the requested quantity exceeds what is on
// hand, and every increment goes through Release. Callers are responsible for
// running check-and-decrement under a per-book lock (the postgres adapter
// uses SELECT ... FOR UPDATE) so that concurrent checkouts cannot both pass
// the sufficiency check.
package book
