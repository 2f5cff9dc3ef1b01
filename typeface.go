// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"os"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
)

// typefaces holds the registered per-locale typefaces.
var typefaces struct {
	mu      sync.RWMutex
	tags    []language.Tag
	sources []*text.FontSource
}

var (
	fallbackOnce sync.Once
	fallback     *text.FontSource
)

var (
	defaultOnce sync.Once
	defaultFace *text.FontSource
)

// RegisterTypeface makes src the default typeface for charts shown to users
// of locale tag. Registering the same tag twice replaces the earlier source.
//
// Registration must happen before the first call to DefaultTypeface, which
// memoises its result.
//
// Example:
//
//	src, _ := text.NewFontSourceFromFile("/usr/share/fonts/NotoSansJP-Regular.otf")
//	ggchart.RegisterTypeface(language.Japanese, src)
func RegisterTypeface(tag language.Tag, src *text.FontSource) {
	typefaces.mu.Lock()
	defer typefaces.mu.Unlock()
	for i, t := range typefaces.tags {
		if t == tag {
			typefaces.sources[i] = src
			return
		}
	}
	typefaces.tags = append(typefaces.tags, tag)
	typefaces.sources = append(typefaces.sources, src)
}

// TypefaceFor returns the registered typeface that best matches tag, or the
// bundled Go Regular face when no registration matches with at least high
// confidence.
func TypefaceFor(tag language.Tag) *text.FontSource {
	typefaces.mu.RLock()
	defer typefaces.mu.RUnlock()
	if len(typefaces.tags) > 0 {
		_, idx, conf := language.NewMatcher(typefaces.tags).Match(tag)
		if conf >= language.High {
			return typefaces.sources[idx]
		}
	}
	return goRegular()
}

// DefaultTypeface returns the typeface for the user interface locale. The
// locale is read once from LC_ALL, LC_MESSAGES or LANG; the choice is
// memoised for the life of the process.
//
// DefaultTypeface is suitable for WithDefaultTypeface.
func DefaultTypeface() *text.FontSource {
	defaultOnce.Do(func() {
		tag := UILocale()
		defaultFace = TypefaceFor(tag)
		name := "<none>"
		if defaultFace != nil {
			name = defaultFace.Name()
		}
		Logger().Info("ggchart: default typeface", "locale", tag.String(), "font", name)
	})
	return defaultFace
}

// UILocale returns the user interface locale from the environment,
// defaulting to English.
func UILocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag, ok := parseLocale(os.Getenv(key)); ok {
			return tag
		}
	}
	return language.English
}

// parseLocale accepts POSIX locale names such as "ja_JP.UTF-8" or
// "zh_TW@stroke" as well as BCP 47 tags.
func parseLocale(v string) (language.Tag, bool) {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

func goRegular() *text.FontSource {
	fallbackOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			Logger().Warn("ggchart: bundled typeface unavailable", "err", err)
			return
		}
		fallback = src
	})
	return fallback
}
