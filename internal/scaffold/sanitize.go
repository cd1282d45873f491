package scaffold

import "strings"

// DefaultProjectName is used when the description yields no usable slug.
const DefaultProjectName = "generated-project"

// maxProjectNameLength caps the slug so a single very long word cannot
// produce an unbounded directory name.
const maxProjectNameLength = 64

// ProjectName derives a filesystem-legal directory name from a free-text
// description: the first three whitespace-separated tokens, joined with
// dashes, lowercased, with everything outside [a-z0-9-] stripped.
func ProjectName(description string) string {
	words := strings.Fields(description)
	if len(words) > 3 {
		words = words[:3]
	}

	joined := strings.ToLower(strings.Join(words, "-"))

	var b strings.Builder
	for _, r := range joined {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	name := b.String()
	if len(name) > maxProjectNameLength {
		name = name[:maxProjectNameLength]
	}
	name = strings.Trim(name, "-")

	if name == "" {
		return DefaultProjectName
	}
	return name
}
