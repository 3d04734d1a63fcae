// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package prompt provides the interactive input capability used by setup and
// deploy confirmation. Reader, writer and exit behavior are injectable so the
// control flow is testable without a terminal.
package prompt
