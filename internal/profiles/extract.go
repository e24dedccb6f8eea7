package profiles

import "regexp"

// sectionPattern matches "[name]" and "[profile name]" headers. The name
// may span any characters up to the closing bracket.
var sectionPattern = regexp.MustCompile(`\[(?:profile\s+)?([^\]]+)\]`)

// Extract returns the profile names declared in text, in the order they
// appear. Duplicates are kept.
func Extract(text string) []string {
	names := []string{}
	for _, match := range sectionPattern.FindAllStringSubmatch(text, -1) {
		names = append(names, match[1])
	}

	return names
}
