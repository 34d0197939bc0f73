package ui

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnreadBadgeText(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{-5, ""},
		{0, ""},
		{1, "1"},
		{42, "42"},
		{99, "99"},
		{100, "99+"},
		{1234, "99+"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.count), func(t *testing.T) {
			assert.Equal(t, tt.want, UnreadBadgeText(tt.count))
		})
	}
}

func TestUnreadBadge(t *testing.T) {
	t.Run("absent at zero", func(t *testing.T) {
		assert.Nil(t, UnreadBadge(0))
		assert.Nil(t, UnreadBadge(-1))
	})

	t.Run("shows count", func(t *testing.T) {
		out := render(t, UnreadBadge(7))
		assert.Contains(t, out, ">7<")
	})

	t.Run("caps at 99+", func(t *testing.T) {
		out := render(t, UnreadBadge(250))
		assert.Contains(t, out, "99+")
	})
}

func TestEmptyState(t *testing.T) {
	out := render(t, EmptyState(NavIcon("inbox", 24), "Nothing here", "Check back later."))
	assert.Contains(t, out, "Nothing here")
	assert.Contains(t, out, "Check back later.")
}
