// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points LAMBDAPUSH_CFG_FILE at a config file written with the
// given content and resets the global Config so the next access reloads it.
func setupTestConfig(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lambdapush.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("LAMBDAPUSH_CFG_FILE", path)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	setupTestConfig(t, "profile: staging\ninclude:\n  - '**/*.py'\n  - 'vendored/**/*.py'\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Source)
	assert.Contains(t, cfg.Data, "profile")
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("LAMBDAPUSH_CFG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := Load()
	assert.Error(t, err)
}

func TestGetString(t *testing.T) {
	setupTestConfig(t, "profile: staging\ndeploy:\n  s3-bucket: my-artifacts\n")

	tests := []struct {
		name     string
		key      string
		def      []string
		expected string
		wantErr  bool
	}{
		{
			name:     "top level key",
			key:      "profile",
			expected: "staging",
		},
		{
			name:     "nested key",
			key:      "deploy.s3-bucket",
			expected: "my-artifacts",
		},
		{
			name:     "missing key with default",
			key:      "region",
			def:      []string{"us-east-1"},
			expected: "us-east-1",
		},
		{
			name:    "missing key without default",
			key:     "region",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetString(tt.key, tt.def...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetStringSlice(t *testing.T) {
	setupTestConfig(t, "include:\n  - '**/*.py'\n  - 'lib/**/*.py'\nprofile: dev\n")

	t.Run("slice value", func(t *testing.T) {
		got, err := GetStringSlice("include")
		require.NoError(t, err)
		assert.Equal(t, []string{"**/*.py", "lib/**/*.py"}, got)
	})

	t.Run("missing key with default", func(t *testing.T) {
		got, err := GetStringSlice("exclude", []string{"*.pyc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"*.pyc"}, got)
	})

	t.Run("non-slice value", func(t *testing.T) {
		_, err := GetStringSlice("profile")
		assert.Error(t, err)
	})
}
