// Package search locates orders by number or by fuzzy customer name.
//
// Name search is exact-then-fuzzy: a case-insensitive substring phase that,
// when non-empty, always wins, and a fuzzy phase consulted only when the
// substring phase found nothing. The precedence is a hard invariant; a
// fuzzy candidate never outranks or joins a substring match.
package search
