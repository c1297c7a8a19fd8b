package renderer

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no catalog exists for the requested one
const DefaultLanguage = "en"

// ErrUnknownLanguage is returned by LoadCatalog for a language without a catalog
var ErrUnknownLanguage = errors.New("unknown language")

//go:embed locales/*.po
var locales embed.FS

// Catalog translates text keys into one language
type Catalog struct {
	lang string
	po   *gotext.Po
}

// LoadCatalog parses the embedded catalog for lang
func LoadCatalog(lang string) (*Catalog, error) {
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	po := gotext.NewPo()
	po.Parse(data)

	return &Catalog{lang: lang, po: po}, nil
}

// MustLoadCatalog loads lang, falling back to DefaultLanguage
func MustLoadCatalog(lang string) *Catalog {
	if cat, err := LoadCatalog(lang); err == nil {
		return cat
	}
	cat, err := LoadCatalog(DefaultLanguage)
	if err != nil {
		panic(err)
	}
	return cat
}

// Language returns the catalog's language code
func (c *Catalog) Language() string {
	return c.lang
}

// Get translates key and formats it with args. A key without a translation,
// or a nil catalog, yields the key itself.
func (c *Catalog) Get(key string, args ...any) string {
	if c == nil || c.po == nil {
		if len(args) > 0 {
			return fmt.Sprintf(key, args...)
		}
		return key
	}
	return c.po.Get(key, args...)
}

// Languages lists the embedded catalogs
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}

	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			langs = append(langs, name)
		}
	}
	sort.Strings(langs)
	return langs
}
