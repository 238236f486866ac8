// Package flagtory provides a small command-line flag registry. Callers register named, typed flags
// with default values and receive a live pointer to each value; parsing the process arguments then
// mutates those values in place.
//
// Flag names follow a fixed convention:
//
//   - a name of exactly one character is given with a single dash: -w, -p, -v.
//   - a longer name is given with a double dash: --bin, --lib, --http.
//   - a multi-word name is given with dashes between the words: --allow-net matches a flag
//     registered as "allow net" (stored as "allownet").
//
// A flag followed by a value token is set from that token. A flag at the end of the arguments, or
// followed by another flag token, is treated as a boolean toggle and inverted.
package flagtory
