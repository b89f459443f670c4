// Package persistence provides the GORM-backed repository implementations
// and database connection management. Repositories that move money pair the
// row update with the wallet ledger write in a single database transaction.
package persistence
