package catalog

// DefaultLocales lists the regional variants of the source site known to
// share the scraped layout. Only the US variant lives on the bare domain.
func DefaultLocales() []Locale {
	return []Locale{
		{Name: "Australia", Code: "au", Host: "*.flixable.com"},
		{Name: "Austria", Code: "at", Host: "*.flixable.com"},
		{Name: "Brazil", Code: "br", Host: "*.flixable.com"},
		{Name: "Canada", Code: "ca", Host: "*.flixable.com"},
		{Name: "Denmark", Code: "dk", Host: "*.flixable.com"},
		{Name: "Finland", Code: "fi", Host: "*.flixable.com"},
		{Name: "France", Code: "fr", Host: "*.flixable.com"},
		{Name: "Germany", Code: "de", Host: "*.flixable.com"},
		{Name: "Italy", Code: "it", Host: "*.flixable.com"},
		{Name: "Mexico", Code: "mx", Host: "*.flixable.com"},
		{Name: "Netherlands", Code: "nl", Host: "*.flixable.com"},
		{Name: "Norway", Code: "no", Host: "*.flixable.com"},
		{Name: "Poland", Code: "pl", Host: "*.flixable.com"},
		{Name: "Portugal", Code: "pt", Host: "*.flixable.com"},
		{Name: "Spain", Code: "es", Host: "*.flixable.com"},
		{Name: "Sweden", Code: "se", Host: "*.flixable.com"},
		{Name: "Turkey", Code: "tr", Host: "*.flixable.com"},
		{Name: "United Kingdom", Code: "uk", Host: "*.flixable.com"},
		{Name: "United States", Code: "us", Host: "flixable.com"},
	}
}

// FindLocale returns the locale with the given code, if supported.
func FindLocale(locales []Locale, code string) (Locale, bool) {
	for _, l := range locales {
		if l.Code == code {
			return l, true
		}
	}
	return Locale{}, false
}
