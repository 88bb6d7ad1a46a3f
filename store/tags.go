package store

import (
	"sort"
	"strings"
)

// tagSeparator joins functional-group tags in their stored string form.
const tagSeparator = ", "

// canonicalTags splits a functional-group string on the separator, sorts the
// tags lexicographically and rejoins them. Duplicates survive: write paths
// keep whatever the caller sent, only AllFunctionalGroups collapses the union.
func canonicalTags(groups string) string {
	tags := strings.Split(groups, tagSeparator)
	sort.Strings(tags)
	return strings.Join(tags, tagSeparator)
}

// splitTags returns the individual tags of a stored functional-group string.
func splitTags(groups string) []string {
	return strings.Split(groups, tagSeparator)
}

// removeTag removes the first occurrence of tag and rejoins the remainder.
// The second return reports whether the tag was associated at all.
func removeTag(groups, tag string) (string, bool) {
	tags := splitTags(groups)
	for i, t := range tags {
		if t == tag {
			tags = append(tags[:i], tags[i+1:]...)
			return strings.Join(tags, tagSeparator), true
		}
	}
	return groups, false
}
