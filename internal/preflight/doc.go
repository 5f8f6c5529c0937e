// Package preflight provides readiness checks for the directories and
// external programs aspectsort depends on.
//
// These checks run in two contexts:
//   - The sorter calls CheckDirectoryAccess on the scan root before touching
//     any file. A failure aborts the run.
//   - The CLI "aspectsort doctor" command uses RunAll to display the state of
//     the configured log directory and the ffprobe binary.
package preflight
