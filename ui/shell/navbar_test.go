package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/Zookegger/ExamPro-Scheduler-sub003/ui"
)

func render(t *testing.T, node g.Node) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, node.Render(&sb))
	return sb.String()
}

func TestNavbar_AdminRendersNothing(t *testing.T) {
	assert.Nil(t, Navbar(NavbarConfig{Role: ui.RoleAdmin, FullName: "Tran Thi Binh"}))
}

func TestNavbar_OneVariantPerRole(t *testing.T) {
	for _, role := range []ui.Role{ui.RoleTeacher, ui.RoleStudent, ui.RoleGuest} {
		t.Run(string(role), func(t *testing.T) {
			out := render(t, Navbar(NavbarConfig{Role: role, FullName: "Tran Thi Binh"}))
			assert.Equal(t, 1, strings.Count(out, "<nav"), "exactly one navbar element")
		})
	}
}

func TestNavbar_UnknownRoleFallsBackToGuest(t *testing.T) {
	unknown := render(t, Navbar(NavbarConfig{Role: ui.Role("visitor")}))
	guest := render(t, Navbar(NavbarConfig{Role: ui.RoleGuest}))
	assert.Equal(t, guest, unknown)
	assert.Contains(t, unknown, "Sign in")
}

func TestNavbar_SignedInVariants(t *testing.T) {
	t.Run("teacher", func(t *testing.T) {
		out := render(t, Navbar(NavbarConfig{Role: ui.RoleTeacher, FullName: "Le Van Cuong"}))
		assert.Contains(t, out, "Le Van Cuong")
		assert.Contains(t, out, "Teacher")
		assert.Contains(t, out, "Invigilation Schedule")
		assert.Contains(t, out, "Sign out")
	})

	t.Run("student", func(t *testing.T) {
		out := render(t, Navbar(NavbarConfig{Role: ui.RoleStudent, FullName: "Pham Thi Dung"}))
		assert.Contains(t, out, "Pham Thi Dung")
		assert.Contains(t, out, "Student")
		assert.Contains(t, out, "Timetable")
	})

	t.Run("guest has no logout", func(t *testing.T) {
		out := render(t, Navbar(NavbarConfig{Role: ui.RoleGuest}))
		assert.NotContains(t, out, "Sign out")
	})
}

func TestNavbar_LogoutForwardsHandler(t *testing.T) {
	out := render(t, Navbar(NavbarConfig{
		Role:     ui.RoleTeacher,
		FullName: "Le Van Cuong",
		OnLogout: g.Attr("@click", "$store.session.logout()"),
	}))
	assert.Contains(t, out, `@click="$store.session.logout()"`)
}
