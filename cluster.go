/*
 * Filename: /Users/bao/code/genegraph/cluster.go
 * Path: /Users/bao/code/genegraph
 * Created Date: Monday, October 19th 2026, 2:40:51 pm
 * Author: bao
 *
 * Copyright (c) 2026 Haibao Tang
 */

package genegraph

import (
	"sort"
)

// Components groups the node ids into weakly connected components, largest
// first. Ties are ordered by the smallest node id.
func (g *Graph) Components() [][]int {
	ids := make([]int, 0, g.Nodes.Len())
	for _, node := range g.Nodes.All() {
		ids = append(ids, node.ID)
	}
	links := make([][2]int, 0, g.Edges.Len())
	for _, e := range g.Edges.All() {
		links = append(links, [2]int{e.From, e.To})
	}
	return Components(ids, links)
}

// Components merges ids along links, returns the clusters largest first
func Components(ids []int, links [][2]int) [][]int {
	// Initially all nodes in their own cluster
	clusterID := make(map[int]int, len(ids))
	for _, id := range ids {
		clusterID[id] = id
	}
	var find func(int) int
	find = func(x int) int {
		root := clusterID[x]
		if root != x {
			root = find(root)
			clusterID[x] = root
		}
		return root
	}

	for _, link := range links {
		if _, ok := clusterID[link[0]]; !ok {
			continue
		}
		if _, ok := clusterID[link[1]]; !ok {
			continue
		}
		a, b := find(link[0]), find(link[1])
		if a == b {
			continue
		}
		// Smaller id is the representative
		if a > b {
			a, b = b, a
		}
		clusterID[b] = a
	}

	members := map[int][]int{}
	for _, id := range ids {
		root := find(id)
		members[root] = append(members[root], id)
	}
	clusters := make([][]int, 0, len(members))
	for _, cluster := range members {
		sort.Ints(cluster)
		clusters = append(clusters, cluster)
	}
	sort.Slice(clusters, func(i, j int) bool {
		if len(clusters[i]) != len(clusters[j]) {
			return len(clusters[i]) > len(clusters[j])
		}
		return clusters[i][0] < clusters[j][0]
	})
	return clusters
}
