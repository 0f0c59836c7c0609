package dictcc

import (
	"fmt"
	"sort"
	"strings"
)

// Languages are the codes dict.cc serves as subdomain halves.
var Languages = map[string]string{
	"en": "english",
	"de": "german",
	"fr": "french",
	"sv": "swedish",
	"es": "spanish",
	"bg": "bulgarian",
	"ro": "romanian",
	"it": "italian",
	"pt": "portuguese",
	"ru": "russian",
}

// pageLabels maps the column headings dict.cc prints (German UI and English UI) to codes.
var pageLabels = map[string]string{
	"deutsch":       "de",
	"englisch":      "en",
	"französisch":   "fr",
	"schwedisch":    "sv",
	"spanisch":      "es",
	"bulgarisch":    "bg",
	"rumänisch":     "ro",
	"italienisch":   "it",
	"portugiesisch": "pt",
	"russisch":      "ru",
}

func LanguageCodes() []string {
	codes := make([]string, 0, len(Languages))
	for code := range Languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

type UnavailableLanguageError struct {
	Code string
}

func (e *UnavailableLanguageError) Error() string {
	return fmt.Sprintf("language %q unavailable: languages have to be in the following list: %s",
		e.Code, strings.Join(LanguageCodes(), ", "))
}

func CheckLanguages(codes ...string) error {
	for _, code := range codes {
		if _, ok := Languages[strings.ToLower(code)]; !ok {
			return &UnavailableLanguageError{Code: code}
		}
	}
	return nil
}

type UnknownLabelError struct {
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("can't get valid language code for %q", e.Label)
}

// LabelCode resolves a results-page column heading such as "Deutsch" or "English".
func LabelCode(label string) (string, error) {
	l := strings.ToLower(strings.TrimSpace(label))
	if code, ok := pageLabels[l]; ok {
		return code, nil
	}
	for code, name := range Languages {
		if name == l {
			return code, nil
		}
	}
	return "", &UnknownLabelError{Label: label}
}
