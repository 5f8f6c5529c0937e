package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index        int               `json:"index"`
	CodecName    string            `json:"codec_name"`
	CodecType    string            `json:"codec_type"`
	Width        int               `json:"width"`
	Height       int               `json:"height"`
	SampleAspect string            `json:"sample_aspect_ratio"`
	Duration     string            `json:"duration"`
	BitRate      string            `json:"bit_rate"`
	Disposition  map[string]int    `json:"disposition"`
	Tags         map[string]string `json:"tags"`
	SideDataList []SideData        `json:"side_data_list"`
}

// SideData captures per-stream side data; only the display matrix rotation is used.
type SideData struct {
	Type     string  `json:"side_data_type"`
	Rotation float64 `json:"rotation"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	NBStreams  int    `json:"nb_streams"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
	FormatName string `json:"format_name"`
}

// ErrNoVideoStream is returned when a container carries no usable picture.
var ErrNoVideoStream = errors.New("no video stream with dimensions")

// Inspect executes ffprobe against the provided path and decodes the JSON response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return Result{}, fmt.Errorf("ffprobe inspect: %w", err)
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// VideoStreamCount returns the number of video streams discovered.
func (r Result) VideoStreamCount() int {
	count := 0
	for _, stream := range r.Streams {
		if stream.IsVideo() {
			count++
		}
	}
	return count
}

// AudioStreamCount returns the number of audio streams discovered.
func (r Result) AudioStreamCount() int {
	count := 0
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "audio") {
			count++
		}
	}
	return count
}

// PrimaryVideo returns the first video stream with positive dimensions,
// skipping embedded cover art.
func (r Result) PrimaryVideo() (Stream, error) {
	for _, stream := range r.Streams {
		if !stream.IsVideo() || stream.Disposition["attached_pic"] == 1 {
			continue
		}
		if stream.Width > 0 && stream.Height > 0 {
			return stream, nil
		}
	}
	return Stream{}, ErrNoVideoStream
}

// DurationSeconds returns the container duration in seconds, or 0 when unavailable.
func (r Result) DurationSeconds() float64 {
	return parseFloat(r.Format.Duration)
}

// SizeBytes returns the reported container size in bytes, or 0 when unavailable.
func (r Result) SizeBytes() int64 {
	size := parseFloat(r.Format.Size)
	if math.IsNaN(size) || size < 0 {
		return 0
	}
	return int64(size)
}

// BitRate returns the container bitrate in bits per second, or 0 when unavailable.
func (r Result) BitRate() int64 {
	rate := parseFloat(r.Format.BitRate)
	if math.IsNaN(rate) || rate < 0 {
		return 0
	}
	return int64(rate)
}

// IsVideo reports whether the stream carries pictures.
func (s Stream) IsVideo() bool {
	return strings.EqualFold(s.CodecType, "video")
}

// Rotation returns the clockwise display rotation in degrees, normalized to
// [0, 360). The legacy "rotate" tag wins over display matrix side data.
func (s Stream) Rotation() int {
	if tag, ok := s.Tags["rotate"]; ok {
		if deg, err := strconv.Atoi(strings.TrimSpace(tag)); err == nil {
			return normalizeDegrees(deg)
		}
	}
	for _, side := range s.SideDataList {
		if strings.EqualFold(side.Type, "Display Matrix") {
			// Display matrix rotation is counter-clockwise.
			return normalizeDegrees(-int(math.Round(side.Rotation)))
		}
	}
	return 0
}

// DisplayDimensions returns width and height as the stream is presented:
// the coded width is stretched by the sample aspect ratio, then the pair is
// swapped for quarter-turn rotations.
func (s Stream) DisplayDimensions() (int, int) {
	width, height := s.Width, s.Height
	if num, den, ok := parseSampleAspect(s.SampleAspect); ok && num != den && width > 0 {
		width = max(1, int(math.Round(float64(width)*float64(num)/float64(den))))
	}
	switch s.Rotation() {
	case 90, 270:
		return height, width
	default:
		return width, height
	}
}

// parseSampleAspect reads "N:D". ffprobe reports "0:1" when the sample
// aspect is unknown, which is treated as square pixels.
func parseSampleAspect(value string) (int, int, bool) {
	numText, denText, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found {
		return 0, 0, false
	}
	num, errN := strconv.Atoi(numText)
	den, errD := strconv.Atoi(denText)
	if errN != nil || errD != nil || num <= 0 || den <= 0 {
		return 0, 0, false
	}
	return num, den, true
}

func normalizeDegrees(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}
