package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminMenu(t *testing.T) {
	t.Run("base sections", func(t *testing.T) {
		sections := AdminMenu(false)
		require.Len(t, sections, 3)
		assert.Equal(t, PrimaryMenuSectionID, sections[0].ID)

		for _, sec := range sections {
			assert.NotEqual(t, "dev", sec.ID)
		}
	})

	t.Run("development appends tools section", func(t *testing.T) {
		sections := AdminMenu(true)
		require.Len(t, sections, 4)
		assert.Equal(t, "dev", sections[len(sections)-1].ID)
	})

	t.Run("rederived per call", func(t *testing.T) {
		assert.Len(t, AdminMenu(true), 4)
		assert.Len(t, AdminMenu(false), 3)
	})
}

func TestExpandedMenuState(t *testing.T) {
	t.Run("primary open initially", func(t *testing.T) {
		s := NewExpandedMenuState()
		assert.True(t, s.Expanded(PrimaryMenuSectionID))
		assert.False(t, s.Expanded("people"))
	})

	t.Run("toggle flips membership", func(t *testing.T) {
		s := NewExpandedMenuState()
		s.Toggle("people")
		assert.True(t, s.Expanded("people"))
		s.Toggle("people")
		assert.False(t, s.Expanded("people"))
	})

	t.Run("toggling twice restores prior state", func(t *testing.T) {
		s := NewExpandedMenuState()
		for _, id := range []string{PrimaryMenuSectionID, "people", "system"} {
			before := s.Expanded(id)
			s.Toggle(id)
			s.Toggle(id)
			assert.Equal(t, before, s.Expanded(id), "section %q", id)
		}
	})

	t.Run("multiple sections open at once", func(t *testing.T) {
		s := NewExpandedMenuState()
		s.Toggle("people")
		s.Toggle("system")
		assert.True(t, s.Expanded(PrimaryMenuSectionID))
		assert.True(t, s.Expanded("people"))
		assert.True(t, s.Expanded("system"))
	})
}

func TestAlpineSeed(t *testing.T) {
	s := NewExpandedMenuState()
	s.Toggle("people")

	seed := s.alpineSeed(AdminMenu(false))
	assert.Equal(t, "{open:{main:true,people:true,system:false}}", seed)
}

func TestIsActivePath(t *testing.T) {
	tests := []struct {
		name     string
		itemPath string
		current  string
		want     bool
	}{
		{"root matches only root", "/", "/", true},
		{"root not active elsewhere", "/", "/admin/manage-exam", false},
		{"exact match", "/admin/manage-exam", "/admin/manage-exam", true},
		{"prefix match", "/admin/manage-exam", "/admin/manage-exam/42", true},
		{"no match", "/admin/rooms", "/admin/manage-exam", false},
		{"sibling shared prefix both match", "/admin/manage", "/admin/manage-exam", true},
		{"empty item", "", "/admin", false},
		{"empty current", "/admin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isActivePath(tt.itemPath, tt.current))
		})
	}
}

func TestSanitizeAlpineKey(t *testing.T) {
	assert.Equal(t, "main", sanitizeAlpineKey("main"))
	assert.Equal(t, "devtools", sanitizeAlpineKey("dev-tools"))
	assert.Equal(t, "s1section", sanitizeAlpineKey("1-section"))
	assert.Equal(t, "section", sanitizeAlpineKey("---"))
}
