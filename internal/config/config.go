// Package config loads the drop zone's selection rules from a config file
// and XDROPZONE_ environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexballas/xdropzone/upload"
)

// ErrInvalidSize is returned for a max_file_size that is neither a byte
// count nor a number with a KB, MB or GB suffix.
var ErrInvalidSize = errors.New("invalid file size")

const (
	keyAcceptedExtensions = "accepted_extensions"
	keyMaxFileSize        = "max_file_size"
	keyAllowMultiple      = "allow_multiple"
	keyDisabled           = "disabled"
)

// Load reads the selection config. An explicit path must exist; without
// one, $XDROPZONE_CONFIG and then ~/.config/xdropzone/config.{yaml,toml,json}
// are tried and a missing file is not an error. Env vars override the file.
func Load(path string) (upload.SelectionConfig, error) {
	v := viper.New()

	def := upload.DefaultSelectionConfig()
	v.SetDefault(keyAcceptedExtensions, def.AcceptedExtensions)
	v.SetDefault(keyMaxFileSize, def.MaxFileSizeBytes)
	v.SetDefault(keyAllowMultiple, def.AllowMultiple)
	v.SetDefault(keyDisabled, def.Disabled)

	v.SetEnvPrefix("XDROPZONE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("XDROPZONE_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return upload.SelectionConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "xdropzone"))
		}
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return upload.SelectionConfig{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	size, err := sizeValue(v.Get(keyMaxFileSize))
	if err != nil {
		return upload.SelectionConfig{}, fmt.Errorf("%s: %w", keyMaxFileSize, err)
	}

	cfg := upload.SelectionConfig{
		AcceptedExtensions: extensionList(v.Get(keyAcceptedExtensions)),
		MaxFileSizeBytes:   size,
		AllowMultiple:      v.GetBool(keyAllowMultiple),
		Disabled:           v.GetBool(keyDisabled),
	}
	return cfg.Normalized(), nil
}

// extensionList accepts a list from a file or a comma separated string
// from the environment.
func extensionList(raw any) []string {
	var items []string
	switch val := raw.(type) {
	case string:
		items = strings.Split(val, ",")
	case []string:
		items = val
	case []any:
		for _, item := range val {
			items = append(items, fmt.Sprint(item))
		}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func sizeValue(raw any) (int64, error) {
	switch val := raw.(type) {
	case int:
		return checkSize(float64(val))
	case int64:
		return checkSize(float64(val))
	case float64:
		return checkSize(val)
	case string:
		return ParseSize(val)
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidSize, raw)
	}
}

var sizeSuffixes = []struct {
	suffix string
	factor float64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// ParseSize reads "1048576", "512KB", "1.5 MB" or "2gb". Units are powers
// of 1024, matching upload.FormatFileSize. Zero means no limit.
func ParseSize(s string) (int64, error) {
	text := strings.ToUpper(strings.TrimSpace(s))
	if text == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidSize)
	}

	factor := 1.0
	for _, u := range sizeSuffixes {
		if strings.HasSuffix(text, u.suffix) {
			text = strings.TrimSpace(strings.TrimSuffix(text, u.suffix))
			factor = u.factor
			break
		}
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return checkSize(n * factor)
}

func checkSize(n float64) (int64, error) {
	if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) || n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSize, n)
	}
	return int64(math.Round(n)), nil
}
