// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package navigation

import (
	"testing"

	"github.com/churchops/appcontext-service/internal/types"
)

func entry(id, name, permission, parentID string, position int, navType string) *types.NavigationEntry {
	return &types.NavigationEntry{
		ID:         id,
		Name:       name,
		Href:       "/" + name,
		Permission: permission,
		ParentID:   parentID,
		Position:   position,
		NavType:    navType,
		Enabled:    true,
	}
}

func TestAssemble(t *testing.T) {
	testCases := []struct {
		name        string
		permissions []string
		entries     []*types.NavigationEntry
		navType     string
		expected    [][]string
	}{
		{
			name:        "gated parent disappears with its children",
			permissions: []string{"view_dashboard"},
			entries: []*types.NavigationEntry{
				entry("1", "dashboard", "view_dashboard", "", 1, types.NavTypeMain),
				entry("2", "admin", "view_admin", "", 2, types.NavTypeMain),
				entry("3", "users", "manage_users", "2", 1, types.NavTypeMain),
			},
			navType:  types.NavTypeMain,
			expected: [][]string{{"dashboard"}},
		},
		{
			name:        "position ordering beats input order",
			permissions: nil,
			entries: []*types.NavigationEntry{
				entry("1", "b", "", "", 2, types.NavTypeMain),
				entry("2", "a", "", "", 1, types.NavTypeMain),
			},
			navType:  types.NavTypeMain,
			expected: [][]string{{"a"}, {"b"}},
		},
		{
			name:        "position ties keep insertion order",
			permissions: nil,
			entries: []*types.NavigationEntry{
				entry("1", "first", "", "", 5, types.NavTypeMain),
				entry("2", "second", "", "", 5, types.NavTypeMain),
			},
			navType:  types.NavTypeMain,
			expected: [][]string{{"first"}, {"second"}},
		},
		{
			name:        "children filtered independently",
			permissions: []string{"view_reports"},
			entries: []*types.NavigationEntry{
				entry("1", "reports", "view_reports", "", 1, types.NavTypeMain),
				entry("2", "export", "export_reports", "1", 1, types.NavTypeMain),
				entry("3", "archive", "", "1", 2, types.NavTypeMain),
			},
			navType:  types.NavTypeMain,
			expected: [][]string{{"reports", "archive"}},
		},
		{
			name:        "all children filtered leaves bare parent",
			permissions: []string{"view_reports"},
			entries: []*types.NavigationEntry{
				entry("1", "reports", "view_reports", "", 1, types.NavTypeMain),
				entry("2", "export", "export_reports", "1", 1, types.NavTypeMain),
			},
			navType:  types.NavTypeMain,
			expected: [][]string{{"reports"}},
		},
		{
			name:        "other navigation types are ignored",
			permissions: nil,
			entries: []*types.NavigationEntry{
				entry("1", "home", "", "", 1, types.NavTypeMain),
				entry("2", "imprint", "", "", 1, types.NavTypeFooter),
			},
			navType:  types.NavTypeFooter,
			expected: [][]string{{"imprint"}},
		},
		{
			name:        "zero permissions still show ungated entries",
			permissions: nil,
			entries: []*types.NavigationEntry{
				entry("1", "home", "", "", 1, types.NavTypeMain),
				entry("2", "admin", "view_admin", "", 2, types.NavTypeMain),
			},
			navType:  types.NavTypeMain,
			expected: [][]string{{"home"}},
		},
		{
			name:        "unknown permission reference hides entry for everyone",
			permissions: []string{"view_dashboard", "view_admin"},
			entries: []*types.NavigationEntry{
				entry("1", "legacy", "permission_deleted_long_ago", "", 1, types.NavTypeMain),
				entry("2", "dashboard", "view_dashboard", "", 2, types.NavTypeMain),
			},
			navType:  types.NavTypeMain,
			expected: [][]string{{"dashboard"}},
		},
		{
			name:        "children sorted by position",
			permissions: nil,
			entries: []*types.NavigationEntry{
				entry("1", "parent", "", "", 1, types.NavTypeMain),
				entry("2", "late", "", "1", 9, types.NavTypeMain),
				entry("3", "early", "", "1", 1, types.NavTypeMain),
			},
			navType:  types.NavTypeMain,
			expected: [][]string{{"parent", "early", "late"}},
		},
		{
			name:        "no entries produce no nodes",
			permissions: []string{"view_dashboard"},
			entries:     nil,
			navType:     types.NavTypeMain,
			expected:    nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			nodes := Assemble(tc.permissions, tc.entries, tc.navType)

			if len(nodes) != len(tc.expected) {
				t.Fatalf("expected %d top-level nodes, got %d", len(tc.expected), len(nodes))
			}

			for i, want := range tc.expected {
				node := nodes[i]
				if node.Title != want[0] {
					t.Errorf("node %d: expected title %q, got %q", i, want[0], node.Title)
				}
				wantChildren := want[1:]
				if len(node.Children) != len(wantChildren) {
					t.Fatalf("node %q: expected %d children, got %d", node.Title, len(wantChildren), len(node.Children))
				}
				for j, childTitle := range wantChildren {
					if node.Children[j].Title != childTitle {
						t.Errorf("node %q child %d: expected %q, got %q", node.Title, j, childTitle, node.Children[j].Title)
					}
				}
			}
		})
	}
}

// Children are omitted from the serialized form when everything below a
// parent is filtered out.
func TestAssembleEmptyChildrenOmitted(t *testing.T) {
	entries := []*types.NavigationEntry{
		entry("1", "reports", "view_reports", "", 1, types.NavTypeMain),
		entry("2", "export", "export_reports", "1", 1, types.NavTypeMain),
	}

	nodes := Assemble([]string{"view_reports"}, entries, types.NavTypeMain)

	if len(nodes) != 1 {
		t.Fatalf("expected one node, got %d", len(nodes))
	}
	if nodes[0].Children != nil {
		t.Errorf("expected nil children, got %v", nodes[0].Children)
	}
}
