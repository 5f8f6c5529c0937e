// Package sorter drives one sorting run: it checks the scan root, walks it,
// measures each media file, approximates its aspect ratio, and copies or
// moves the file into a folder named after the ratio label.
//
// Files are handled one at a time. A file that cannot be measured or
// relocated is recorded in the Summary and the run continues; only preflight
// and lock failures abort a run. Cancelling the context stops the run between
// files and leaves everything already relocated where it is.
package sorter
