// Package logs reads the aspectsort log file for the `aspectsort log`
// command.
//
// Last returns the final lines of the file with bounded memory, optionally
// narrowed to one run through a Filter, and reports the offset to resume
// from. Follow polls from that offset and streams new lines until its context
// is cancelled, starting over when the file is truncated.
package logs
