// Package service contains the transactional command and query handlers of
// the ledger.
//
// Each handler is a plain input struct with a Handle method that runs one
// business transaction against an open storage.Tx: load state, validate,
// mutate, persist. The caller owns the transaction (storage.Store.InTx) and
// commits on success or discards on error.
//
// Failure modes are closed, matchable sets of sentinel errors declared next
// to each handler. Every domain-level error is detected by an explicit
// precondition check before any write; once a write is issued, failures are
// infrastructure errors (storage.ErrDatabase) and pass through unchanged.
// Precondition reads do not take row locks, so two writers can both pass a
// check and race on the final write; the unique and foreign-key constraints
// at the persistence boundary are the backstop, and such violations surface
// as database errors, not domain conflicts.
package service
