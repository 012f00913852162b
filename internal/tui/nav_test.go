package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barhopapp/barhop/internal/session"
)

func TestSelectTree(t *testing.T) {
	tests := []struct {
		name   string
		status session.Status
		want   Tree
	}{
		{"resolving shows loading", session.StatusResolving, TreeLoading},
		{"unauthenticated shows auth", session.StatusUnauthenticated, TreeAuth},
		{"authenticated shows main", session.StatusAuthenticated, TreeMain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectTree(tt.status))
		})
	}
}

func TestSelectTabLayout(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  TabLayout
	}{
		{"zero width", 0, TabsBottom},
		{"narrow terminal", 80, TabsBottom},
		{"just under threshold", WideLayoutMinWidth - 1, TabsBottom},
		{"at threshold", WideLayoutMinWidth, TabsTop},
		{"wide terminal", 200, TabsTop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectTabLayout(tt.width))
		})
	}
}

func TestTreeString(t *testing.T) {
	assert.Equal(t, "loading", TreeLoading.String())
	assert.Equal(t, "auth", TreeAuth.String())
	assert.Equal(t, "main", TreeMain.String())
	assert.Equal(t, "unknown", Tree(99).String())
}
