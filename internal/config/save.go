package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveAtomic validates and writes cfg via a tmp file rename, keeping the
// previous version as .bak.
func SaveAtomic(path string, cfg Config) error {
	if _, vr := NormalizeAndValidate(cfg); !vr.OK() {
		return errors.New("config validation failed:\n- " + joinLines(vr.Errors))
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}

func joinLines(lines []string) string {
	out := ""
	for i, s := range lines {
		if i > 0 {
			out += "\n- "
		}
		out += s
	}
	return out
}
