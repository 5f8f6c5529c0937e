package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeSort(); err != nil {
		return err
	}
	c.normalizeMedia()
	c.normalizeFFprobe()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir()
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSort() error {
	c.Sort.Layout = strings.ToLower(strings.TrimSpace(c.Sort.Layout))
	if c.Sort.Layout == "" {
		c.Sort.Layout = LayoutInPlace
	}
	c.Sort.Layout = strings.ReplaceAll(c.Sort.Layout, "-", "_")
	if strings.TrimSpace(c.Sort.OutputDir) != "" {
		var err error
		if c.Sort.OutputDir, err = expandPath(strings.TrimSpace(c.Sort.OutputDir)); err != nil {
			return fmt.Errorf("sort.output_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeMedia() {
	c.Media.ImageExtensions = normalizeExtensions(c.Media.ImageExtensions)
	c.Media.VideoExtensions = normalizeExtensions(c.Media.VideoExtensions)
}

func (c *Config) normalizeFFprobe() {
	c.FFprobe.Binary = strings.TrimSpace(c.FFprobe.Binary)
	if value, ok := os.LookupEnv("FFPROBE_PATH"); ok && strings.TrimSpace(value) != "" {
		if c.FFprobe.Binary == "" || c.FFprobe.Binary == defaultFFprobeBinary {
			c.FFprobe.Binary = strings.TrimSpace(value)
		}
	}
	if c.FFprobe.Binary == "" {
		c.FFprobe.Binary = defaultFFprobeBinary
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// normalizeExtensions lower-cases entries, adds the leading dot, and drops
// blanks and duplicates while keeping order.
func normalizeExtensions(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		ext := strings.ToLower(strings.TrimSpace(value))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}
