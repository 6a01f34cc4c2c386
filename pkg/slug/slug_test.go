package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Technology", "technology"},
		{"World News", "world-news"},
		{"Économie & Finance", "economie-finance"},
		{"  -- spaced --  ", "spaced"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"Already-Slugged", "already-slugged"},
		{"42 Things", "42-things"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, From(tc.in), "From(%q)", tc.in)
	}
}
