// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package credstore persists AWS profiles to the shared credentials and
// config files (~/.aws/credentials and ~/.aws/config) using merge-on-write
// semantics: only the targeted section and keys change, everything else in
// the files is preserved.
package credstore
