package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, node g.Node) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, node.Render(&sb))
	return sb.String()
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   Role
		want Role
	}{
		{RoleAdmin, RoleAdmin},
		{RoleTeacher, RoleTeacher},
		{RoleStudent, RoleStudent},
		{RoleGuest, RoleGuest},
		{Role(""), RoleGuest},
		{Role("superuser"), RoleGuest},
		{Role("ADMIN"), RoleGuest},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Administrator", RoleLabel(RoleAdmin))
	assert.Equal(t, "Teacher", RoleLabel(RoleTeacher))
	assert.Equal(t, "Student", RoleLabel(RoleStudent))
	assert.Equal(t, "Guest", RoleLabel(RoleGuest))

	// Unknown roles get the guest label
	assert.Equal(t, "Guest", RoleLabel(Role("nobody")))
}

func TestRoleIcon(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleTeacher, RoleStudent, RoleGuest, Role("unknown")} {
		out := render(t, RoleIcon(role, 16))
		assert.Contains(t, out, "<svg", "role %q should render an icon", role)
	}
}

func TestNavIconDistinctGlyphs(t *testing.T) {
	calendar := render(t, NavIcon("calendar", 16))
	clock := render(t, NavIcon("clock", 16))

	assert.Contains(t, calendar, "<svg")
	assert.Contains(t, clock, "<svg")
	assert.NotEqual(t, clock, calendar)
}

func TestNavIconFallback(t *testing.T) {
	out := render(t, NavIcon("no-such-icon", 16))
	assert.NotContains(t, out, "<svg")
	assert.Contains(t, out, "•")
}
