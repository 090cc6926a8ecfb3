// Package normalize converts loosely typed upstream rows into the gateway's
// stable JSON records.
//
// Optional fields resolve to fixed defaults. Numeric fields follow the
// upstream's truthiness rule: a value of 0 takes the same path as a missing
// value, so a player who scored 0 points and a row without PTS both yield
// points == 0. Missing required identifiers fail the record with
// ErrMalformedRecord. Every function here is pure.
package normalize
