package utils

import (
	"strconv"
	"strings"
)

// Slugify converts an ADR title to the filename component used on disk:
// lowercased, with every space replaced by an underscore. Other characters
// are kept as they are.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}

// RecordFileName builds "<ordinal>_<slug>.md".
func RecordFileName(ordinal int, title string) string {
	return strconv.Itoa(ordinal) + "_" + Slugify(title) + ".md"
}
