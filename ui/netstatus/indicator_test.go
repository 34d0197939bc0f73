package netstatus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, cfg Config) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, Indicator(cfg).Render(&sb))
	return sb.String()
}

func TestIndicator_HiddenRendersNothing(t *testing.T) {
	assert.Nil(t, Indicator(Config{Show: false, Connected: true}))
	assert.Nil(t, Indicator(Config{Show: false, Connected: false}))
	assert.Nil(t, Indicator(Config{Show: false, AnimationClass: "animate-pulse"}))
}

func TestIndicator_ConnectedState(t *testing.T) {
	out := render(t, Config{Show: true, Connected: true})
	assert.Contains(t, out, "Connection restored")
	assert.Contains(t, out, "bg-green-600")
	assert.NotContains(t, out, "You are offline")
}

func TestIndicator_DisconnectedState(t *testing.T) {
	out := render(t, Config{Show: true, Connected: false})
	assert.Contains(t, out, "You are offline")
	assert.Contains(t, out, "bg-destructive")
	assert.NotContains(t, out, "Connection restored")
}

func TestIndicator_AnimationClassAppliedVerbatim(t *testing.T) {
	out := render(t, Config{Show: true, Connected: true, AnimationClass: "animate-bounce-in"})
	assert.Contains(t, out, "animate-bounce-in")

	plain := render(t, Config{Show: true, Connected: true})
	assert.NotContains(t, plain, "animate-")
}
