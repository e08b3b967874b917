package shared

import "strings"

// CenterWithBottomHints renders content vertically centered in the available
// height, with hint text pinned to the very bottom line.
func CenterWithBottomHints(content, hints string, height int) string {
	content = strings.TrimRight(content, "\n")
	hints = strings.TrimRight(hints, "\n")

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}
	hintLines := strings.Split(hints, "\n")

	totalUsed := len(contentLines) + len(hintLines)
	if totalUsed >= height {
		if content == "" {
			return hints
		}
		return content + "\n" + hints
	}

	gap := height - totalUsed
	topPad := gap / 2

	lines := make([]string, 0, height)
	lines = append(lines, make([]string, topPad)...)
	lines = append(lines, contentLines...)
	lines = append(lines, make([]string, gap-topPad)...)
	lines = append(lines, hintLines...)

	return strings.Join(lines, "\n")
}

// Window returns the [start, end) slice bounds that keep cursor visible in a
// list of n rows shown height at a time, given the previous offset.
func Window(cursor, offset, n, height int) (start, end int) {
	if height <= 0 || n == 0 {
		return 0, 0
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+height {
		offset = cursor - height + 1
	}
	if offset < 0 {
		offset = 0
	}
	end = offset + height
	if end > n {
		end = n
	}
	return offset, end
}
