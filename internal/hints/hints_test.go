package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests user config path when searched", func(t *testing.T) {
		t.Parallel()
		got := ForConfigNotFound([]string{
			"entrymd.yaml",
			"/home/u/.config/entrymd/entrymd.yaml",
		})
		if !strings.Contains(got, "--config") {
			t.Errorf("hint missing --config suggestion: %q", got)
		}
		if !strings.Contains(got, "/home/u/.config/entrymd/entrymd.yaml") {
			t.Errorf("hint missing user config path: %q", got)
		}
	})

	t.Run("works without user config path", func(t *testing.T) {
		t.Parallel()
		got := ForConfigNotFound([]string{"entrymd.yaml"})
		if !strings.Contains(got, "--config") {
			t.Errorf("hint missing --config suggestion: %q", got)
		}
	})
}

func TestHintFormatting(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"direction": ForDirection(),
		"output":    ForOutputDirectory(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s hint misformatted: %q", name, hint)
		}
	}
}
