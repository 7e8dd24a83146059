// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package navigation

import (
	"sort"

	"github.com/churchops/appcontext-service/internal/types"
)

// Assemble builds the visible two-level tree for one navigation type.
// Entries gated by a permission outside the effective set are dropped, a
// dropped parent takes its children with it. Children carrying no
// permission of their own are visible whenever their parent is. Entries
// are bucketed in one pass and sorted by position, insertion order
// breaking ties.
func Assemble(permissions []string, entries []*types.NavigationEntry, navType string) []*types.AssembledNode {
	allowed := make(map[string]struct{}, len(permissions))
	for _, p := range permissions {
		allowed[p] = struct{}{}
	}

	visible := func(e *types.NavigationEntry) bool {
		if e.Permission == "" {
			return true
		}
		_, ok := allowed[e.Permission]
		return ok
	}

	var roots []*types.NavigationEntry
	children := make(map[string][]*types.NavigationEntry)

	for _, e := range entries {
		if e.NavType != navType {
			continue
		}
		if e.ParentID == "" {
			roots = append(roots, e)
		} else {
			children[e.ParentID] = append(children[e.ParentID], e)
		}
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].Position < roots[j].Position
	})

	var nodes []*types.AssembledNode
	for _, root := range roots {
		if !visible(root) {
			continue
		}

		node := &types.AssembledNode{
			Title: root.Name,
			Href:  root.Href,
			Icon:  root.Icon,
		}

		kids := children[root.ID]
		sort.SliceStable(kids, func(i, j int) bool {
			return kids[i].Position < kids[j].Position
		})

		for _, child := range kids {
			if !visible(child) {
				continue
			}
			node.Children = append(node.Children, &types.AssembledNode{
				Title: child.Name,
				Href:  child.Href,
				Icon:  child.Icon,
			})
		}

		nodes = append(nodes, node)
	}

	return nodes
}
