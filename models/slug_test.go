package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Wireless Headphones", "wireless-headphones"},
		{"  Summer   Sale 2024  ", "summer-sale-2024"},
		{"Kids' Toys & Games!", "kids-toys-games"},
		{"Déjà Vu", "dj-vu"},
		{"already-a-slug", "already-a-slug"},
		{"a - b -- c", "a-b-c"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.name), "Slugify(%q)", tc.name)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	names := []string{
		"Wireless Headphones",
		"  Summer   Sale 2024  ",
		"Kids' Toys & Games!",
		"a - b -- c",
	}
	for _, name := range names {
		once := Slugify(name)
		assert.Equal(t, once, Slugify(once), "second pass changed %q", name)
	}
}
