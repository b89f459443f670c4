// Package bookings contains the service catalog, the price quoting rules for
// the four billing types (per-day, per-hour, per-session, per-minute) and the
// booking lifecycle entities and contracts.
package bookings
