package presentation

import (
	"sort"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is the only display locale.
var Locale = language.English

const (
	keyYearLabel   = "chart.year_label"
	keyOverall     = "chart.overall"
	keyPrincipal   = "chart.principal"
	keyPlaceholder = "summary.placeholder"
	keyDescription = "summary.description"
)

var messages = map[string]string{
	keyYearLabel:   "year %d",
	keyOverall:     "Overall value",
	keyPrincipal:   "Principal",
	keyPlaceholder: "Results will appear here.",
	keyDescription: "At %s%% a year, contributing %s %s times a year for %s years",
}

var registerOnce sync.Once

func printer() *message.Printer {
	registerOnce.Do(func() {
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			_ = message.SetString(Locale, key, messages[key])
		}
	})
	return message.NewPrinter(Locale)
}
