// Package config provides the configuration loader for crossgrade.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/crossgrade/crossgrade/internal/core/domain"
	"github.com/crossgrade/crossgrade/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only config schema version this build accepts.
// Zero means the file does not declare one, which is treated the same.
const supportedVersion = 1

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load builds the runtime settings. Discovery walks from cwd toward the
// filesystem root looking for crossgrade.yaml; no hit is not an error, the
// defaults and the built-in distribution table apply.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	settings := defaultSettings()

	configPath := findConfiguration(cwd)
	if configPath == "" {
		return settings, nil
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "config", configPath)
	}

	if err := l.apply(settings, &file, configPath); err != nil {
		return nil, zerr.With(err, "config", configPath)
	}

	return settings, nil
}

// findConfiguration returns the path of the nearest crossgrade.yaml, or ""
// when no ancestor directory has one.
func findConfiguration(cwd string) string {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return ""
}

func defaultSettings() *domain.Settings {
	return &domain.Settings{
		Targets:           domain.BuiltinDistros(),
		CacheDir:          defaultCacheDir(),
		CacheTTL:          domain.DefaultCacheTTL,
		LookupBaseURL:     domain.DefaultLookupBaseURL,
		LookupMinInterval: domain.DefaultLookupMinInterval,
	}
}

// defaultCacheDir resolves to $XDG_CACHE_HOME/crossgrade on Linux via
// os.UserCacheDir.
func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), domain.AppDirName)
	}

	return filepath.Join(base, domain.AppDirName)
}

//nolint:cyclop // sequential field-by-field application
func (l *Loader) apply(settings *domain.Settings, file *File, configPath string) error {
	if file.Version != 0 && file.Version != supportedVersion {
		return zerr.With(domain.ErrConfigVersionUnsupported, "version", strconv.Itoa(file.Version))
	}

	for id, dto := range file.Targets {
		d, err := mergeDistro(id, settings.Targets[id], dto)
		if err != nil {
			return err
		}
		settings.Targets[id] = d
	}

	if file.Target != "" {
		settings.DefaultTarget = file.Target
	}

	if file.Source != "" {
		source, ok := settings.Targets[file.Source]
		if !ok {
			err := zerr.With(domain.ErrUnknownSource, "source", file.Source)
			return zerr.With(err, "known", strings.Join(settings.TargetIDs(), ", "))
		}
		if source.Family == "" {
			l.Logger.Warn(fmt.Sprintf("source %q has no package manager family, host inventory will not work", file.Source))
		}
		settings.Source = source
	}

	if file.Cache.Dir != "" {
		settings.CacheDir = resolveCacheDir(configPath, file.Cache.Dir)
	}

	if file.Cache.TTL != "" {
		ttl, err := parsePositiveDuration(file.Cache.TTL, "cache.ttl")
		if err != nil {
			return err
		}
		settings.CacheTTL = ttl
	}

	if file.Lookup.BaseURL != "" {
		settings.LookupBaseURL = file.Lookup.BaseURL
	}

	if file.Lookup.MinInterval != "" {
		interval, err := parsePositiveDuration(file.Lookup.MinInterval, "lookup.min_interval")
		if err != nil {
			return err
		}
		settings.LookupMinInterval = interval
	}

	settings.LookupContact = file.Lookup.Contact

	return nil
}

// mergeDistro overlays an override onto the matching built-in entry. New IDs
// start from a zero base, so they must carry at least one repository.
func mergeDistro(id string, base domain.Distro, dto DistroDTO) (domain.Distro, error) {
	d := base
	d.ID = id

	if dto.Family != "" {
		family, err := parseFamily(dto.Family)
		if err != nil {
			return domain.Distro{}, zerr.With(err, "target", id)
		}
		d.Family = family
	}

	if dto.Official != "" {
		d.OfficialRepo = dto.Official
	}

	if dto.Community != "" {
		d.CommunityRepo = dto.Community
	}

	if d.OfficialRepo == "" && d.CommunityRepo == "" {
		err := zerr.With(domain.ErrConfigInvalid, "target", id)
		return domain.Distro{}, zerr.With(err, "reason", "no repositories configured")
	}

	return d, nil
}

func parseFamily(value string) (domain.Family, error) {
	family := domain.Family(value)
	switch family {
	case domain.FamilyRPM, domain.FamilyDeb, domain.FamilyPacman, domain.FamilyAPK:
		return family, nil
	}

	return "", zerr.With(domain.ErrUnknownFamily, "family", value)
}

func parsePositiveDuration(value, field string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		parseErr := zerr.Wrap(err, domain.ErrConfigInvalid.Error())
		return 0, zerr.With(parseErr, "field", field)
	}

	if d <= 0 {
		err := zerr.With(domain.ErrConfigInvalid, "field", field)
		return 0, zerr.With(err, "reason", "must be positive")
	}

	return d, nil
}

// resolveCacheDir interprets the configured cache directory. "~/" expands to
// the home directory; relative paths are anchored at the config file's
// directory.
func resolveCacheDir(configPath, configured string) string {
	if strings.HasPrefix(configured, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Clean(filepath.Join(home, configured[2:]))
		}
	}

	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}

	return filepath.Clean(filepath.Join(filepath.Dir(configPath), configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML(configPath string, target *File) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
