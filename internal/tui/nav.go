package tui

import "github.com/barhopapp/barhop/internal/session"

// Tree identifies which top-level view tree is active.
type Tree int

const (
	// TreeLoading is shown while the session is still resolving
	TreeLoading Tree = iota
	// TreeAuth is the welcome/login flow
	TreeAuth
	// TreeMain is the signed-in application
	TreeMain
)

// String returns the string representation of the tree
func (t Tree) String() string {
	switch t {
	case TreeLoading:
		return "loading"
	case TreeAuth:
		return "auth"
	case TreeMain:
		return "main"
	default:
		return "unknown"
	}
}

// TabLayout is how the main tree arranges its tabs.
type TabLayout int

const (
	// TabsBottom places the tab bar under the content (narrow terminals)
	TabsBottom TabLayout = iota
	// TabsTop places the tab bar above the content (wide terminals)
	TabsTop
)

// WideLayoutMinWidth is the narrowest terminal that gets top tabs.
const WideLayoutMinWidth = 100

// SelectTree picks the top-level tree for a session status. It is a pure
// function of the status; callers re-evaluate it on every render.
func SelectTree(status session.Status) Tree {
	switch status {
	case session.StatusResolving:
		return TreeLoading
	case session.StatusAuthenticated:
		return TreeMain
	default:
		return TreeAuth
	}
}

// SelectTabLayout picks the tab arrangement for a terminal width. Callers
// re-evaluate it on every render rather than caching: the window can resize
// without any session-state change.
func SelectTabLayout(width int) TabLayout {
	if width >= WideLayoutMinWidth {
		return TabsTop
	}
	return TabsBottom
}
