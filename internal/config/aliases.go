package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// AliasConfig maps short names typed at the counter ("chapati") to catalog
// item names ("Chapati & Beans"). Keys are stored lower-cased.
type AliasConfig struct {
	Aliases map[string]string
}

// LoadAliases reads {dir}/aliases, one "alias = Menu Item" per line. A missing
// file yields an empty config. Blank lines, comments and malformed lines are
// skipped.
func LoadAliases(dir string) (*AliasConfig, error) {
	cfg := &AliasConfig{
		Aliases: make(map[string]string),
	}

	path := filepath.Join(dir, "aliases")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Item names may contain "=" so split on the first one only.
		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		alias := strings.ToLower(strings.TrimSpace(line[:idx]))
		item := strings.TrimSpace(line[idx+1:])
		if alias == "" || item == "" {
			continue
		}

		cfg.Aliases[alias] = item
	}

	if err := scanner.Err(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Resolve returns the catalog name for name, or name itself when it is not
// an alias.
func (c *AliasConfig) Resolve(name string) string {
	trimmed := strings.TrimSpace(name)
	if c == nil {
		return trimmed
	}
	if item, ok := c.Aliases[strings.ToLower(trimmed)]; ok {
		return item
	}
	return trimmed
}
