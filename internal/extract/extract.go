package extract

import (
	"regexp"
	"strings"

	apperrors "steamgrab/internal/errors"
)

// Store product pages embed the app id as a path segment, e.g.
// https://store.steampowered.com/app/440/Team_Fortress_2/
var appIDPattern = regexp.MustCompile(`/app/(\d+)`)

// AppID pulls the numeric app id out of a store URL. Matching is a
// substring search, so query strings and trailing segments are fine;
// the first match wins.
func AppID(rawURL string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", apperrors.NewInvalidInput("url is empty")
	}

	m := appIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", apperrors.NewInvalidInput("not a store product url: " + rawURL)
	}
	return m[1], nil
}
