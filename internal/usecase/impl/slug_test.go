package impl

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple title", title: "Hello World", want: "hello-world"},
		{name: "already lowercase", title: "hello", want: "hello"},
		{name: "mixed case", title: "How To Train Your Dragon", want: "how-to-train-your-dragon"},
		{name: "collapses whitespace runs", title: "Hello   World", want: "hello-world"},
		{name: "trims surrounding whitespace", title: "  Hello World  ", want: "hello-world"},
		{name: "empty title", title: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify(tt.title))
		})
	}
}

func TestRecycledSlug_Deterministic(t *testing.T) {
	first := recycledSlug(42, "hello-world")
	second := recycledSlug(42, "hello-world")

	assert.Equal(t, first, second)
}

func TestRecycledSlug_IsDecimal(t *testing.T) {
	got := recycledSlug(7, "some-slug")

	_, err := strconv.ParseUint(got, 10, 64)
	assert.NoError(t, err)
}

func TestRecycledSlug_VariesByInput(t *testing.T) {
	assert.NotEqual(t, recycledSlug(1, "hello-world"), recycledSlug(2, "hello-world"))
	assert.NotEqual(t, recycledSlug(1, "hello-world"), recycledSlug(1, "other-slug"))
}

func TestRecycledSlug_NeverMatchesSlugify(t *testing.T) {
	// A recycled slug is all digits; slugify of any titled text keeps
	// its letters, so the two namespaces stay disjoint.
	got := recycledSlug(42, slugify("Hello World"))

	assert.NotEqual(t, slugify("Hello World"), got)
}
