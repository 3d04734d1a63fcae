// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package archive builds and inspects the ZIP archives uploaded as Lambda
// function code.
package archive
