// Package probe reads pixel dimensions from media files.
//
// A Probe is a capability over a set of file extensions: ImageProbe decodes
// only the image header (JPEG, PNG, GIF, WebP, BMP, TIFF) and can apply the
// EXIF orientation, while VideoProbe asks ffprobe for the primary video
// stream and applies its rotation metadata. Extractor picks the probes that
// claim a file by extension, falls back to a secondary probe when they all
// fail, and reports every failure as ErrUnreadable so callers can skip the
// file and keep going.
package probe
