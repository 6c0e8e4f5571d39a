// Package coinselect implements the coin-selection core of a Bitcoin
// wallet: choosing a subset of UTXOs to fund a payment at a given fee
// rate and deciding whether the leftover is worth turning into a
// change output.
//
// The package is deliberately I/O-free. Callers classify UTXOs as
// local or foreign, compute the target amount (recipient value plus
// already-accumulated output/header fees), and propose a change
// script; this package only adds the fees for whichever inputs it
// selects.
package coinselect
