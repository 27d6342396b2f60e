package app

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Strategy selects how day cells are labelled
type Strategy int

const (
	// Localized labels carry a language-specific weekday abbreviation and the
	// day number, with the week number right-aligned.
	Localized Strategy = iota
	// Fixed labels carry a two-letter German abbreviation only, with the
	// week number left-aligned.
	Fixed
)

func (s Strategy) String() string {
	if s == Fixed {
		return "fixed"
	}
	return "localized"
}

// Labels is the immutable text table a render draws from
type Labels struct {
	Strategy Strategy
	Language string
	Locale   string // locale variant that resolved, empty for Fixed
	Months   [12]string
	Weekdays [7]string // Monday first
}

// MonthName returns the header for month 1-12
func (l Labels) MonthName(month int) string {
	return l.Months[month-1]
}

// DayLabel returns the text drawn in a day cell
func (l Labels) DayLabel(d CalendarDay) string {
	if l.Strategy == Fixed {
		return l.Weekdays[d.Weekday]
	}
	return fmt.Sprintf("%s %d", l.Weekdays[d.Weekday], d.Day)
}

// LocaleNames are month and weekday names as a platform locale spells them
type LocaleNames struct {
	Months   [12]string
	Weekdays [7]string // abbreviated, Monday first
}

// DefaultCatalog holds the names for every supported language, keyed by ISO 639-1 code
var DefaultCatalog = map[string]LocaleNames{
	"en": {
		Months:   [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		Weekdays: [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	},
	"de": {
		Months:   [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		Weekdays: [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"},
	},
	"fr": {
		Months:   [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		Weekdays: [7]string{"lun.", "mar.", "mer.", "jeu.", "ven.", "sam.", "dim."},
	},
	"it": {
		Months:   [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
		Weekdays: [7]string{"lun", "mar", "mer", "gio", "ven", "sab", "dom"},
	},
	"es": {
		Months:   [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		Weekdays: [7]string{"lun", "mar", "mié", "jue", "vie", "sáb", "dom"},
	},
}

// localeVariants are the locale names tried in order for each language
var localeVariants = map[string][]string{
	"en": {"en_US.UTF-8", "en_US.utf8", "en_US", "C"},
	"de": {"de_DE.UTF-8", "de_DE.utf8", "de_DE", "deu_DEU", "C"},
	"fr": {"fr_FR.UTF-8", "fr_FR.utf8", "fr_FR", "fr_FR@euro", "fr_FR.ISO8859-1", "fr"},
	"it": {"it_IT.UTF-8", "it_IT.utf8", "it_IT", "ita_ITA", "it"},
	"es": {"es_ES.UTF-8", "es_ES.utf8", "es_ES", "es_ES@euro", "es_ES.ISO8859-1", "es"},
}

var fixedWeekdays = [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"}

// FixedLabels returns the constant German two-letter table with the
// standard month names.
func FixedLabels() Labels {
	l := Labels{Strategy: Fixed, Language: "de", Weekdays: fixedWeekdays}
	for m := time.January; m <= time.December; m++ {
		l.Months[m-1] = m.String()
	}
	return l
}

// NormalizeLanguage coerces unsupported selectors to the default language
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if slices.Contains(SupportedLanguages, lang) {
		return lang
	}
	return DefaultLanguage
}

// Resolver turns a language selector into a Labels table. It never touches
// process-wide locale state.
type Resolver struct {
	Catalog map[string]LocaleNames
	Logger  *zap.Logger
}

// NewResolver creates a resolver over DefaultCatalog
func NewResolver(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{Catalog: DefaultCatalog, Logger: logger}
}

// Resolve tries the locale variants for lang in order and builds labels from
// the first one the catalog knows. If none resolves it logs a warning and
// falls back to English names.
func (r *Resolver) Resolve(lang string) Labels {
	normalized := NormalizeLanguage(lang)
	if normalized != lang {
		r.Logger.Debug("unsupported language, using default",
			zap.String("language", lang), zap.String("default", normalized))
	}

	for _, variant := range localeVariants[normalized] {
		tag, ok := variantTag(variant)
		if !ok {
			continue
		}
		base, _ := tag.Base()
		names, ok := r.Catalog[base.String()]
		if !ok {
			continue
		}
		r.Logger.Debug("locale resolved", zap.String("language", normalized), zap.String("locale", variant))
		return buildLabels(normalized, variant, tag, names)
	}

	r.Logger.Warn(fmt.Sprintf("Could not set locale for language %q. Using default locale.", normalized),
		zap.Strings("tried", localeVariants[normalized]))
	names, ok := r.Catalog[DefaultLanguage]
	if !ok {
		names = DefaultCatalog[DefaultLanguage]
	}
	return buildLabels(normalized, "", language.English, names)
}

// variantTag parses a platform locale name such as "de_DE.UTF-8" or
// "fr_FR@euro" into a language tag.
func variantTag(variant string) (language.Tag, bool) {
	if variant == "C" || variant == "POSIX" {
		return language.English, true
	}
	if i := strings.IndexAny(variant, ".@"); i >= 0 {
		variant = variant[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(variant, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// buildLabels applies the weekday rule: first letter upper case, the rest
// lower case, trailing dots removed. Month names keep the catalog spelling.
func buildLabels(lang, locale string, tag language.Tag, names LocaleNames) Labels {
	caser := cases.Title(tag)
	l := Labels{Strategy: Localized, Language: lang, Locale: locale, Months: names.Months}
	for i, wd := range names.Weekdays {
		l.Weekdays[i] = strings.TrimRight(caser.String(wd), ".")
	}
	return l
}
