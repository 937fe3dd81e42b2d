// SPDX-License-Identifier: MIT

// Package bootstrap is the outermost layer: it decides whether the
// meta directory already holds a built index and, if not, drives
// BlockScanner, Indexer, and Dictionary.Build once to populate it.
package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/ini.v1"
)

// Config holds the resolved settings for one indexing or query run.
type Config struct {
	ArchivePath string
	MetaPath    string
	Workers     int
}

// LoadConfig resolves settings with this precedence, highest first:
// explicit arguments (typically already-parsed flags), environment
// variables (WIKIDUMP_ARCHIVE, WIKIDUMP_META, WIKIDUMP_WORKERS), and
// finally an optional ini file's [wikidump] section. An empty
// archivePath/metaPath or a zero workers argument means "not set by
// the caller, fall through to the next source".
func LoadConfig(iniPath, archivePath, metaPath string, workers int) (*Config, error) {
	cfg := &Config{ArchivePath: archivePath, MetaPath: metaPath, Workers: workers}

	if cfg.ArchivePath == "" {
		cfg.ArchivePath = os.Getenv("WIKIDUMP_ARCHIVE")
	}
	if cfg.MetaPath == "" {
		cfg.MetaPath = os.Getenv("WIKIDUMP_META")
	}
	if cfg.Workers == 0 {
		if w, err := strconv.Atoi(os.Getenv("WIKIDUMP_WORKERS")); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if iniPath != "" {
		f, err := ini.Load(iniPath)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: load config %s: %w", iniPath, err)
		}
		section := f.Section("wikidump")
		if cfg.ArchivePath == "" {
			cfg.ArchivePath = section.Key("archive_path").String()
		}
		if cfg.MetaPath == "" {
			cfg.MetaPath = section.Key("meta_path").String()
		}
		if cfg.Workers == 0 {
			if w, err := section.Key("workers").Int(); err == nil && w > 0 {
				cfg.Workers = w
			}
		}
	}

	if cfg.ArchivePath == "" {
		return nil, errors.New("bootstrap: no archive path (set -archive, WIKIDUMP_ARCHIVE, or archive_path in the config file)")
	}
	if cfg.MetaPath == "" {
		return nil, errors.New("bootstrap: no meta directory (set -meta, WIKIDUMP_META, or meta_path in the config file)")
	}

	return cfg, nil
}
