// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/antgroup/seqmatch/modules/strengthen"
)

func configSystemPath() string {
	if p, ok := os.LookupEnv(ENV_SEQMATCH_CONFIG_SYSTEM); ok {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	prefix := filepath.Dir(exe)
	if filepath.Base(prefix) == "bin" {
		prefix = filepath.Dir(prefix)
	}
	return filepath.Join(prefix, "etc", "seqmatch.toml")
}

func decodeFile(p string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(p, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadSystem() (*Config, error) {
	systemPath := configSystemPath()
	if len(systemPath) == 0 {
		return nil, os.ErrNotExist
	}
	if _, err := os.Stat(systemPath); err != nil {
		return nil, err
	}
	return decodeFile(systemPath)
}

func LoadGlobal() (*Config, error) {
	userPath := strengthen.ExpandPath("~/.seqmatch.toml")
	if _, err := os.Stat(userPath); err != nil && os.IsNotExist(err) {
		return &Config{}, nil
	}
	return decodeFile(userPath)
}

func LoadBaseline() (*Config, error) {
	gc, err := LoadGlobal()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadSystem()
	if os.IsNotExist(err) {
		return gc, nil
	}
	if err != nil {
		return nil, err
	}
	cfg.Overwrite(gc)
	return cfg, nil
}

// Load layers the system config, the user config, the explicit file (if any)
// and the environment, later sources winning.
func Load(explicit string) (*Config, error) {
	cfg, err := LoadBaseline()
	if err != nil {
		return nil, err
	}
	if len(explicit) != 0 {
		ec, err := decodeFile(strengthen.ExpandPath(explicit))
		if err != nil {
			return nil, err
		}
		cfg.Overwrite(ec)
	}
	if err := cfg.overwriteEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
