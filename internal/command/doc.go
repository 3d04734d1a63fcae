// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the lambdapush CLI: flag wiring, the credential
// setup flow, and the package/deploy flow. Both flows run against injected
// collaborators so their control flow is testable without AWS or a terminal.
package command
