package database

import "hash/fnv"

// LedgerWriteLock is the advisory-lock name every ledger write transaction
// takes. Serializing writers is what keeps a transaction from being admitted
// against a person a concurrent cascade delete is removing.
const LedgerWriteLock = "contas:ledger-write"

// LockKey derives a stable pg_advisory_xact_lock key from a name.
func LockKey(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))

	return int64(h.Sum64())
}
