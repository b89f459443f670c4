// Package wallet contains the wallet, ledger and top-up entities plus the
// service and repository contracts for balance management. All monetary
// amounts are decimals; the wallet balance is never allowed to go negative.
package wallet
