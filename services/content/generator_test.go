package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "moving-day-tips", Slugify("Moving Day Tips"))
	assert.Equal(t, "5-vans-for-2025", Slugify("5 Vans for 2025!"))
	assert.Equal(t, "whats-new", Slugify("  What's new?  "))
	assert.Empty(t, Slugify("???"))
}

func TestSplitDraft(t *testing.T) {
	title, body := splitDraft("# The Big Move\n\nRenting a van is easy.", "fallback")
	assert.Equal(t, "The Big Move", title)
	assert.Equal(t, "Renting a van is easy.", body)

	// Single line drafts fall back to the topic as title.
	title, body = splitDraft("just one line", "fallback")
	assert.Equal(t, "fallback", title)
	assert.Equal(t, "just one line", body)
}
