// Package text holds the localised UI strings. Catalogs are gettext .po
// files embedded in the binary; lookups use uppercase message keys.
package text

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
	"github.com/pkg/errors"
)

//go:embed locales/*.po
var locales embed.FS

// DefaultLanguage is used when no language is configured
const DefaultLanguage = "en"

var (
	mu      sync.RWMutex
	current *gotext.Po
)

// Load parses the catalog for lang.
func Load(lang string) (*gotext.Po, error) {
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, errors.Errorf("no catalog for language %q (have %s)", lang, strings.Join(Languages(), ", "))
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}

// SetLanguage switches the active catalog.
func SetLanguage(lang string) error {
	po, err := Load(lang)
	if err != nil {
		return err
	}
	mu.Lock()
	current = po
	mu.Unlock()
	return nil
}

// Languages lists the embedded catalogs
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(out)
	return out
}

// Get translates key with the active catalog. Unknown keys come back
// unchanged.
func Get(key string) string {
	mu.RLock()
	po := current
	mu.RUnlock()

	if po == nil {
		if err := SetLanguage(DefaultLanguage); err != nil {
			return key
		}
		mu.RLock()
		po = current
		mu.RUnlock()
	}
	return po.Get(key)
}

// Getf translates key and formats args into the translation
func Getf(key string, args ...any) string {
	return fmt.Sprintf(Get(key), args...)
}
