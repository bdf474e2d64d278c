package rwplugin

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// LoadMessagesFile reads one broadcast message per line from path, skipping
// blank lines. A missing file is created empty, along with its directory,
// so admins know where to put their messages.
func LoadMessagesFile(path string) ([]string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating messages directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening messages file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading messages file: %w", err)
	}

	return lo.FilterMap(lines, func(l string, _ int) (string, bool) {
		l = strings.TrimSpace(l)
		return l, l != ""
	}), nil
}
