// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tr

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

//go:embed languages
var langFS embed.FS

var (
	langTable = make(map[string]any)
)

var (
	languagesSupported = []string{"en-US", "zh-CN"}
	languageMatcher    = language.NewMatcher([]language.Tag{
		language.AmericanEnglish,
		language.SimplifiedChinese,
	})
)

// localeFromEnv returns the first POSIX locale set in the environment, in
// BCP 47 form (zh_CN.UTF-8 -> zh-CN).
func localeFromEnv() string {
	for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(k)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i != -1 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}

func matchLanguage(name string) string {
	tag, err := language.Parse(name)
	if err != nil {
		return languagesSupported[0]
	}
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return languagesSupported[0]
	}
	return languagesSupported[index]
}

var (
	Language = sync.OnceValue(func() string {
		return matchLanguage(localeFromEnv())
	})
)

func load(lang string) error {
	fd, err := langFS.Open(path.Join("languages", lang+".toml"))
	if err != nil {
		return err
	}
	defer fd.Close() // nolint
	table := make(map[string]any)
	if _, err := toml.NewDecoder(fd).Decode(&table); err != nil {
		return err
	}
	langTable = table
	return nil
}

var (
	Initialize = sync.OnceValue(func() error {
		return load(Language())
	})
)

func translate(k string) string {
	if v, ok := langTable[k]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return k
}

func W(k string) string {
	return translate(k)
}

func Fprintf(w io.Writer, format string, a ...any) (n int, err error) {
	return fmt.Fprintf(w, translate(format), a...)
}

func Sprintf(format string, a ...any) string {
	return fmt.Sprintf(translate(format), a...)
}
