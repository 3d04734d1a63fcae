// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package credstore

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/lambdapush/lambdapush/internal/log"
)

// DefaultProfile is the profile written when none is named.
const DefaultProfile = "default"

// EnvSetter abstracts process-environment writes so tests can capture them
// with an in-memory map instead of mutating the real environment.
type EnvSetter interface {
	Setenv(key, value string) error
}

// OSEnv is the EnvSetter backed by the real process environment.
type OSEnv struct{}

// Setenv implements EnvSetter.
func (OSEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// Profile carries the credential and config fields to persist. Empty fields
// are left untouched on disk.
type Profile struct {
	Name         string
	AccessKey    string
	SecretKey    string
	SessionToken string
	Region       string
	Output       string
}

// Store writes AWS shared credentials and config files, merging values into
// the targeted profile section without disturbing sibling keys or unrelated
// sections. The whole file is always reloaded and rewritten; no in-place text
// edits.
type Store struct {
	Dir             string
	CredentialsPath string
	ConfigPath      string
	Env             EnvSetter
}

// NewStore returns a Store rooted at ~/.aws with the standard file names.
func NewStore() *Store {
	home, _ := os.UserHomeDir()
	dir := filepath.Join(home, ".aws")
	return &Store{
		Dir:             dir,
		CredentialsPath: filepath.Join(dir, "credentials"),
		ConfigPath:      filepath.Join(dir, "config"),
		Env:             OSEnv{},
	}
}

// Persist merges the provided profile fields into the credentials and config
// files, creating the store directory and the files as needed. It also exports
// the provided values to the process environment for immediate reuse in the
// same run.
func (s *Store) Persist(p Profile) error {
	if p.Name == "" {
		p.Name = DefaultProfile
	}

	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return err
	}

	if p.AccessKey != "" || p.SecretKey != "" || p.SessionToken != "" {
		if err := s.writeCredentials(p); err != nil {
			return err
		}
	}

	if p.Region != "" || p.Output != "" {
		if err := s.writeConfig(p); err != nil {
			return err
		}
	}

	return s.exportEnv(p)
}

// writeCredentials merges credential fields into section <name> of the
// credentials file.
func (s *Store) writeCredentials(p Profile) error {
	f, err := ini.LooseLoad(s.CredentialsPath)
	if err != nil {
		return err
	}

	sec := f.Section(p.Name)
	if p.AccessKey != "" {
		sec.Key("aws_access_key_id").SetValue(p.AccessKey)
	}
	if p.SecretKey != "" {
		sec.Key("aws_secret_access_key").SetValue(p.SecretKey)
	}
	if p.SessionToken != "" {
		sec.Key("aws_session_token").SetValue(p.SessionToken)
	}

	if err := f.SaveTo(s.CredentialsPath); err != nil {
		return err
	}
	log.Debugf("credentials written: profile=%s, path=%s", p.Name, s.CredentialsPath)

	// The file holds long-lived secrets.
	return os.Chmod(s.CredentialsPath, 0o600)
}

// writeConfig merges region/output into the config file. The AWS CLI names
// config sections "profile <name>", except for the default profile.
func (s *Store) writeConfig(p Profile) error {
	f, err := ini.LooseLoad(s.ConfigPath)
	if err != nil {
		return err
	}

	section := p.Name
	if p.Name != DefaultProfile {
		section = "profile " + p.Name
	}

	sec := f.Section(section)
	if p.Region != "" {
		sec.Key("region").SetValue(p.Region)
	}
	if p.Output != "" {
		sec.Key("output").SetValue(p.Output)
	}

	if err := f.SaveTo(s.ConfigPath); err != nil {
		return err
	}
	log.Debugf("config written: section=%q, path=%s", section, s.ConfigPath)
	return nil
}

// exportEnv mirrors the provided values into the environment so the rest of
// the run can resolve them without re-reading the files.
func (s *Store) exportEnv(p Profile) error {
	pairs := []struct{ key, value string }{
		{"AWS_ACCESS_KEY_ID", p.AccessKey},
		{"AWS_SECRET_ACCESS_KEY", p.SecretKey},
		{"AWS_SESSION_TOKEN", p.SessionToken},
		{"AWS_DEFAULT_REGION", p.Region},
	}

	for _, pair := range pairs {
		if pair.value == "" {
			continue
		}
		if err := s.Env.Setenv(pair.key, pair.value); err != nil {
			return err
		}
	}
	return nil
}
