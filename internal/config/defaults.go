package config

const (
	defaultLogDirFallback    = "~/.local/state/aspectsort/logs"
	defaultLimiter           = 10
	defaultFFprobeBinary     = "ffprobe"
	defaultFFprobeTimeout    = 30
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultHonorOrientation  = true
	defaultFFprobeFallback   = true
	defaultLogFileEnabled    = true
	defaultRecursiveTraverse = false
)

const (
	// LayoutInPlace sorts into <directory>/<label>/.
	LayoutInPlace = "in_place"
	// LayoutSibling sorts into <parent>/<directory>_sorted_L<limiter>/<label>/.
	LayoutSibling = "sibling"
)

var (
	defaultImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
	defaultVideoExtensions = []string{".mp4", ".mkv", ".mov", ".m4v", ".avi", ".webm"}
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir(),
		},
		Sort: Sort{
			Limiter:   defaultLimiter,
			Recursive: defaultRecursiveTraverse,
			Layout:    LayoutInPlace,
		},
		Media: Media{
			ImageExtensions:      append([]string(nil), defaultImageExtensions...),
			VideoExtensions:      append([]string(nil), defaultVideoExtensions...),
			HonorEXIFOrientation: defaultHonorOrientation,
			FFprobeFallback:      defaultFFprobeFallback,
		},
		FFprobe: FFprobe{
			Binary:         defaultFFprobeBinary,
			TimeoutSeconds: defaultFFprobeTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			File:   defaultLogFileEnabled,
		},
	}
}
