package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "steamgrab/internal/errors"
)

func TestAppID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"plain", "https://store.steampowered.com/app/440/Team_Fortress_2/", "440"},
		{"no trailing slug", "https://store.steampowered.com/app/570", "570"},
		{"query string", "https://store.steampowered.com/app/730/?cc=us&l=en", "730"},
		{"relative path", "/app/123", "123"},
		{"first match wins", "https://store.steampowered.com/app/10/x/app/20/", "10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AppID(tc.url)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAppIDInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"whitespace only", "   \t"},
		{"wrong segment", "https://store.steampowered.com/sub/123"},
		{"no digits", "https://store.steampowered.com/app/abc"},
		{"random text", "not a url at all"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AppID(tc.url)
			require.Error(t, err)
			require.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
		})
	}
}
