// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for lambdapush's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/lambdapush.yaml or
//     $HOME/.config/lambdapush.yaml
//   - Windows: %APPDATA%/lambdapush/lambdapush.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions. The LAMBDAPUSH_CFG_FILE environment variable overrides the
// search entirely.
package config
