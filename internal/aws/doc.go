// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws resolves and validates AWS credentials and carries out the
// Lambda code update. The SDK sits behind a narrow API interface so the rest
// of the tool (and the tests) never touch service clients directly.
package aws
