// Package errcode decodes hexadecimal Windows error codes.
//
// A Resolver applies a fixed fallback chain:
//
//  1. the static table loaded from error_codes.txt
//  2. the platform system message facility (FormatMessage on Windows,
//     errno names elsewhere)
//  3. the sentinel "Could not decode error: <code>"
//
// Table lookups fold case, so 0xdeadbeef and 0xDEADBEEF are the same key.
// Table keys are always eight digits; shorter codes go straight to the
// system facility.
//
// A missing table file is reported as ErrResourceMissing but Load still
// returns a working resolver.
package errcode
