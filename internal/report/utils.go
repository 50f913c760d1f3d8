package report

import "strings"

var filenameReplacer = strings.NewReplacer(
	".", "_",
	":", "_",
	"%", "_",
	"/", "_",
	"\\", "_",
	" ", "_",
)

// sanitizeFilename replaces dots and special characters for safe filenames
func sanitizeFilename(s string) string {
	return filenameReplacer.Replace(s)
}
