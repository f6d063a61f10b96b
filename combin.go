package zzx

import (
	"gonum.org/v1/gonum/stat/combin"
)

// Combinations returns every size-r subset of [0, n), each in ascending
// order, in lexicographic order of the subsets.
func Combinations(n, r int) [][]int {
	if r < 1 || r > n {
		return nil
	}
	return combin.Combinations(n, r)
}

// Bipartitions pools the subsets of size 1..n/2 of [0, n). Each subset
// together with its complement forms one grouping of n jets into two
// non-empty sides. For even n the n/2 layer holds every split twice.
func Bipartitions(n int) [][]int {
	var combs [][]int
	for r := 1; r <= n/2; r++ {
		combs = append(combs, Combinations(n, r)...)
	}
	return combs
}

// Complement returns [0, n) minus subset, ascending. subset must be
// ascending.
func Complement(n int, subset []int) []int {
	comp := make([]int, 0, n-len(subset))
	j := 0
	for i := 0; i < n; i++ {
		if j < len(subset) && subset[j] == i {
			j++
			continue
		}
		comp = append(comp, i)
	}
	return comp
}
