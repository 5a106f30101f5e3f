// Package schema validates prompt configuration trees before they are saved
// or generated from: bracket-range ordering, probability bounds, counts,
// content/type consistency and node-ID uniqueness.
package schema
