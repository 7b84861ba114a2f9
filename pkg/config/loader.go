package config

import (
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/mizuki0629/rrcm/pkg/errors"
)

//go:embed default.yaml
var defaultConfig []byte

// DefaultPath returns the conventional location of the configuration
// file: <user config dir>/rrcm/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "rrcm", "config.yaml")
}

// parserFor picks a koanf parser by file extension. YAML is the default;
// TOML is accepted for users who prefer it.
func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Parser()
	}
	return yaml.Parser()
}

// Load reads and validates the configuration file at path.
func Load(path string) (*AppConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s does not exist (run \"rrcm init\" to create one)", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to parse %s", path)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to decode %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in starter configuration.
func Default() (*AppConfig, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultConfig), yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "built-in default config is invalid")
	}
	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "built-in default config is invalid")
	}
	return &cfg, nil
}

// Init writes the starter configuration to path. It refuses to overwrite
// an existing file.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, defaultConfig, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path)
	}
	return nil
}

// Download fetches a configuration file over HTTP and stores it at path.
// Like Init it refuses to overwrite an existing file, and it validates
// the document before writing so a bad URL never clobbers the config dir
// with garbage.
func Download(path, url string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists", path)
	}

	resp, err := http.Get(url)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf(errors.ErrConfigLoad, "failed to fetch %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read response from %s", url)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(body), parserFor(path)); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "downloaded config from %s is not valid", url)
	}
	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "downloaded config from %s is not valid", url)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("downloaded config from %s: %w", url, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path)
	}
	return nil
}
