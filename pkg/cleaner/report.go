package cleaner

import "fmt"

// TruncationMarker suffixes reported lines that were cut to the configured
// length, and never appears in untruncated output, so a reader can always
// tell it apart from real content.
const TruncationMarker = "... [truncated]"

// FormatEntry renders one report entry as "LINE <n>: <content>". Content
// longer than maxLen bytes is cut to exactly maxLen bytes and suffixed with
// the truncation marker.
func FormatEntry(lineNo int64, text string, maxLen int) string {
	if len(text) > maxLen {
		return fmt.Sprintf("LINE %d: %s%s", lineNo, text[:maxLen], TruncationMarker)
	}
	return fmt.Sprintf("LINE %d: %s", lineNo, text)
}
