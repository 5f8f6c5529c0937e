package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSort(); err != nil {
		return err
	}
	if err := c.validateMedia(); err != nil {
		return err
	}
	if err := c.validateFFprobe(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSort() error {
	if c.Sort.Limiter <= 0 {
		return errors.New("sort.limiter must be positive")
	}
	switch c.Sort.Layout {
	case LayoutInPlace, LayoutSibling:
	default:
		return fmt.Errorf("sort.layout: unsupported value %q (expected %q or %q)", c.Sort.Layout, LayoutInPlace, LayoutSibling)
	}
	return nil
}

func (c *Config) validateMedia() error {
	if len(c.Media.ImageExtensions) == 0 && len(c.Media.VideoExtensions) == 0 {
		return errors.New("media.image_extensions and media.video_extensions cannot both be empty")
	}
	images := make(map[string]struct{}, len(c.Media.ImageExtensions))
	for _, ext := range c.Media.ImageExtensions {
		images[ext] = struct{}{}
	}
	for _, ext := range c.Media.VideoExtensions {
		if _, ok := images[ext]; ok {
			return fmt.Errorf("media: extension %q listed as both image and video", ext)
		}
	}
	return nil
}

func (c *Config) validateFFprobe() error {
	if strings.TrimSpace(c.FFprobe.Binary) == "" {
		return errors.New("ffprobe.binary must be set")
	}
	if c.FFprobe.TimeoutSeconds <= 0 {
		return errors.New("ffprobe.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
