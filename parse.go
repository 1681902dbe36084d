// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

// splitQuoted extracts the double-quoted substrings from a checklist
// payload, in order. whiptail reports multi-selections on one line as
// `"tag1" "tag2"`; a payload with no quoted segment yields nil.
func splitQuoted(s string) []string {
	var tags []string
	start := -1
	for i, r := range s {
		if r != '"' {
			continue
		}
		if start < 0 {
			start = i + 1
			continue
		}
		tags = append(tags, s[start:i])
		start = -1
	}
	return tags
}
