// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"fmt"
	"strings"
)

const (
	kb = 1024
	mb = kb * 1024
)

// HumanSize renders a byte count the way the deploy summary shows it: plain
// bytes below 1 KB, KB below 1 MB, MB above that. Values carry at most one
// decimal place, with a trailing ".0" dropped.
func HumanSize(n int64) string {
	switch {
	case n < kb:
		return fmt.Sprintf("%d bytes", n)
	case n < mb:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/kb)) + " KB"
	default:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/mb)) + " MB"
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
