package strengthen

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandPath expands a relative or home-relative path to an absolute path.
//
//	~/.seqmatch.toml -> /home/alec/.seqmatch.toml
//	~alec/data.txt   -> /home/alec/data.txt
func ExpandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~") {
		pos := strings.IndexAny(path, `/\`)
		switch {
		case path == "~":
			if homeDir, err := os.UserHomeDir(); err == nil {
				return homeDir
			}
		case pos == 1:
			if homeDir, err := os.UserHomeDir(); err == nil {
				return filepath.Join(homeDir, path[2:])
			}
		case pos > 1:
			if u, err := user.Lookup(path[1:pos]); err == nil {
				return filepath.Join(u.HomeDir, path[pos+1:])
			}
		}
	}
	abspath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abspath
}
