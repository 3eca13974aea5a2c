package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/entrhq/fpview/pkg/format"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Plain
	}{
		{"plain", "Linux x86_64", Plain{Text: "Linux x86_64"}},
		{"escaped", "&lt;b&gt;ua&lt;/b&gt;", Plain{Text: "<b>ua</b>"}},
		{"quotes", "&quot;a&quot; &#039;b&#039;", Plain{Text: `"a" 'b'`}},
		{"success badge", format.StatusBadge(true), Plain{Text: "Yes", Badge: BadgeSuccess}},
		{"failure badge", format.StatusBadge(false, "Online", "Offline"), Plain{Text: "Offline", Badge: BadgeFailure}},
		{"escaped badge label", format.StatusBadge(true, "<ok>"), Plain{Text: "<ok>", Badge: BadgeSuccess}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.input))
		})
	}
}

func TestDecode_RoundTripsRenderedSlots(t *testing.T) {
	rec := mustParse(t)
	fields := New().Render(rec)

	assert.Equal(t, rec.UserAgent, Decode(fields.UserAgentTitle).Text)
	assert.Equal(t, rec.Platform, Decode(fields.Platform).Text)
	assert.Equal(t, BadgeFailure, Decode(fields.IndexedDB).Badge)
}

func TestBadgeFromClass(t *testing.T) {
	assert.Equal(t, BadgeSuccess, badgeFromClass("  status-badge   success "))
	assert.Equal(t, BadgeNone, badgeFromClass("success"))
	assert.Equal(t, BadgeNone, badgeFromClass(""))
}
