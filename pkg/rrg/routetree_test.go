package rrg

import "testing"

func TestBuildRouteTreeAndFindPath(t *testing.T) {
	// Branch 1: 0 -> 1 -> 2 -> 4 -> 5 (sink), branch 2 restarts at the
	// CHANX node 2 and runs 2 -> 3 -> 7 -> 8 (sink).
	net := &Net{
		Name: "n0",
		Trace: steps([]NodeID{
			0, 1, 2, 4, 5,
			2, 3, 7, 8,
		}, 4, 8),
	}
	root, err := BuildRouteTree(net)
	if err != nil {
		t.Fatalf("BuildRouteTree: %v", err)
	}
	if root.Node != 0 {
		t.Fatalf("root node = %d, want 0", root.Node)
	}

	// Every consecutive pair on a found path must be a real parent-child
	// edge in the tree.
	isChild := func(parent *RouteTree, id NodeID) *RouteTree {
		for _, c := range parent.Children {
			if c.Node == id {
				return c
			}
		}
		return nil
	}

	for _, tc := range []struct {
		sink NodeID
		want []NodeID
	}{
		{5, []NodeID{0, 1, 2, 4, 5}},
		{8, []NodeID{0, 1, 2, 3, 7, 8}},
	} {
		path, ok := root.FindPath(tc.sink)
		if !ok {
			t.Fatalf("FindPath(%d) found nothing", tc.sink)
		}
		if len(path) != len(tc.want) {
			t.Fatalf("FindPath(%d) = %v, want %v", tc.sink, path, tc.want)
		}
		cur := root
		for i, id := range path {
			if id != tc.want[i] {
				t.Fatalf("FindPath(%d) = %v, want %v", tc.sink, path, tc.want)
			}
			if i == 0 {
				continue
			}
			cur = isChild(cur, id)
			if cur == nil {
				t.Fatalf("path step %d -> %d is not a tree edge", path[i-1], id)
			}
		}
	}
}

func TestFindPathMissingSink(t *testing.T) {
	net := &Net{Trace: steps([]NodeID{0, 1, 2, 4, 5}, 4)}
	root, err := BuildRouteTree(net)
	if err != nil {
		t.Fatalf("BuildRouteTree: %v", err)
	}
	if path, ok := root.FindPath(99); ok {
		t.Errorf("FindPath(99) = %v, want not found", path)
	}
}

func TestBuildRouteTreeUnrouted(t *testing.T) {
	root, err := BuildRouteTree(&Net{})
	if err != nil {
		t.Fatalf("BuildRouteTree on unrouted net: %v", err)
	}
	if root != nil {
		t.Errorf("route tree for unrouted net = %v, want nil", root)
	}
}

func TestBuildRouteTreeCorruptRestart(t *testing.T) {
	// Second branch restarts at node 9, which is not on the tree.
	net := &Net{Name: "bad", Trace: steps([]NodeID{0, 1, 5, 9, 3, 8}, 2, 5)}
	if _, err := BuildRouteTree(net); err == nil {
		t.Fatal("BuildRouteTree accepted a restart off the tree")
	}
}
