// Package inventory contains the append-only stock ledger.
//
// Every stock-affecting event is recorded as an immutable Transaction; the
// current stock of a (product, variant) key is the fold of its transactions
// in creation order. Each transaction carries the stock level before and
// after the change, and afterQuantity of one transaction must equal
// beforeQuantity of the next one for the same key. No component may keep a
// stock counter of its own outside this log.
package inventory
