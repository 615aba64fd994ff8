package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Greenhouse Guide":       "greenhouse-guide",
		"  Drip  Irrigation!  ":  "drip-irrigation",
		"A/B (testing) 101":      "a-b-testing-101",
		"راهنمای کشت گلخانه‌ای": "راهنمای-کشت-گلخانه-ای",
		"---":                    "",
		"UPPER":                  "upper",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestDecodeStrict(t *testing.T) {
	var dst struct {
		Title *string `json:"title"`
	}

	assert.NoError(t, DecodeStrict([]byte(`{"title":"x"}`), &dst))
	assert.Equal(t, "x", *dst.Title)

	assert.Error(t, DecodeStrict([]byte(`{"bogus":1}`), &dst))
	assert.Error(t, DecodeStrict([]byte(`{"title":`), &dst))
}
