// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package collect expands glob patterns (with ** support) into the list of
// paths to package. Ordering follows filesystem enumeration and no
// deduplication is performed across patterns.
package collect
