// Package scan pulls error lines out of a log file and decodes the error
// codes they carry.
//
// A line is an error line when MatchesError accepts it: "error" or "fail"
// in any case, unless the line contains the literal ".fail". Only the last
// maxLines matches are kept, in file order. For each kept line the first
// 0x-prefixed six to eight digit hex run (FirstHexCode) is resolved through
// an errcode.Resolver and rendered as
//
//	<trimmed line>
//	Error Code: <code>
//	Message: <description>
//
// Scan returns a Result with Found=false and an empty Summary when nothing
// matches. Failing to read the file is a different outcome and is returned
// as an error wrapping ErrSourceUnreadable.
package scan
