// Package calls contains the per-minute call session entity with its
// lifecycle rules (ringing → active/declined/missed → ended) and the
// signaling service contracts. Initiating a call places a wallet hold for
// the maximum billable amount; every terminal transition either settles the
// hold (ended) or releases it in full (declined, missed).
package calls
