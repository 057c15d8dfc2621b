package utils

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

var (
	nonIdentifierRe = regexp.MustCompile(`[^A-Za-z0-9-]`)
	nonDigitRe      = regexp.MustCompile(`[^0-9]`)
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

// SanitizeText reduces s to single-line plain text: markup is parsed away, control
// characters are dropped and runs of whitespace collapse to one space.
func SanitizeText(s string) string {
	if s == "" {
		return ""
	}
	text := s
	if strings.ContainsAny(s, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
		if err == nil {
			doc.Find("script, style").Remove()
			text = doc.Text()
		}
	}
	text = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		if r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, text)
	return strings.Join(strings.Fields(text), " ")
}

// SanitizeURL returns s when it is an absolute http(s) URL, otherwise "".
func SanitizeURL(s string) string {
	s = SanitizeText(s)
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}

// FilterIdentifier keeps only [A-Za-z0-9-].
func FilterIdentifier(s string) string {
	return nonIdentifierRe.ReplaceAllString(s, "")
}

// DigitsOnly keeps only [0-9].
func DigitsOnly(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}
