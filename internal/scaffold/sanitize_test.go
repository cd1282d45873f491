package scaffold

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func TestProjectName(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        string
	}{
		{"three words", "Build a todo app with tags", "build-a-todo"},
		{"two words", "Todo App", "todo-app"},
		{"one word", "Portfolio", "portfolio"},
		{"punctuation stripped", "My C.R.M. (v2) dashboard!", "my-crm-v2"},
		{"unicode stripped", "caffè größe app", "caff-gre-app"},
		{"no alphanumeric tokens", "!!! ???", DefaultProjectName},
		{"empty", "", DefaultProjectName},
		{"whitespace only", "   \t\n ", DefaultProjectName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ProjectName(tc.description))
		})
	}
}

func TestProjectNameCapsLongInput(t *testing.T) {
	long := strings.Repeat("verylongword", 20) // single token, no spaces
	got := ProjectName(long)
	assert.LessOrEqual(t, len(got), maxProjectNameLength)
	assert.Regexp(t, slugPattern, got)
}

func TestProjectNameAlwaysYieldsValidSlug(t *testing.T) {
	inputs := []string{
		"Build a todo app",
		"---",
		"-leading and trailing-",
		"日本語のアプリ",
		"a",
		"42 things to do",
		"!!! mixed $% tokens ^^",
	}
	for _, in := range inputs {
		got := ProjectName(in)
		assert.NotEmpty(t, got, "input %q", in)
		assert.Regexp(t, slugPattern, got, "input %q", in)
	}
}
