package dagify

import "github.com/graph-genome/pangraph/core"

// GenerateProfiles implements spec section 4.E.1: try every path in paths
// as the primary path, reconcile the rest against it with LCS, and return
// the reconciliation with the fewest duplicate entries (first-wins on
// ties, since later candidates must strictly improve to replace it).
//
// Complexity: O(P^2 * L^2) where P is path count and L average path
// length - once per candidate primary path, a full O(n*m) LCS merge runs
// against every other path.
func GenerateProfiles(paths []*core.Path) (profile []Profile, primary int, duplicates int, err error) {
	if len(paths) == 0 {
		return nil, 0, 0, ErrNoOverlap
	}

	minDuplicates := -1
	for i := range paths {
		candidate := generateProfilesFor(paths, i)
		count := countDuplicates(candidate)
		if minDuplicates == -1 || count < minDuplicates {
			minDuplicates = count
			profile = candidate
			primary = i
		}
	}
	return profile, primary, minDuplicates, nil
}

func countDuplicates(profile []Profile) int {
	n := 0
	for _, p := range profile {
		if p.Duplicate {
			n++
		}
	}
	return n
}

func generateProfilesFor(paths []*core.Path, primaryIndex int) []Profile {
	primary := paths[primaryIndex]
	profile := make([]Profile, len(primary.Traversals))
	for i, t := range primary.Traversals {
		profile[i] = Profile{
			Node:           t.Node,
			Paths:          []*core.Path{primary},
			CandidatePaths: newPathSet(primary),
		}
	}
	for i, p := range paths {
		if i == primaryIndex {
			continue
		}
		profile = LCS(profile, p)
	}
	return profile
}

// LCS implements spec section 4.E.2: merge profile with path via a
// standard dynamic-programming longest-common-subsequence alignment over
// node identity, then emit a reconciled profile by walking the traceback
// from the bottom-right corner.
//
// Complexity: O(n*m) where n = len(profile), m = len(path.Traversals).
func LCS(profile []Profile, path *core.Path) []Profile {
	n, m := len(profile), len(path.Traversals)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if profile[i-1].Node.Equal(path.Traversals[j-1].Node) {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] > dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	var result []Profile
	prev := make(map[string]bool)
	candidatePathFlag := false

	i, j := n, m
	for i > 0 && j > 0 {
		switch {
		case profile[i-1].Node.Equal(path.Traversals[j-1].Node):
			mergedPaths := append(clonePaths(profile[i-1].Paths), path)
			mergedCandidates := profile[i-1].CandidatePaths.clone()
			mergedCandidates.add(path)
			candidatePathFlag = true

			dup := prev[profile[i-1].Node.Name]
			result = append(result, Profile{
				Node:           profile[i-1].Node,
				Paths:          mergedPaths,
				CandidatePaths: mergedCandidates,
				Duplicate:      dup,
			})
			prev[profile[i-1].Node.Name] = true
			i--
			j--

		case dp[i-1][j] > dp[i][j-1]:
			candidates := profile[i-1].CandidatePaths.clone()
			if candidatePathFlag {
				candidates.add(path)
			}
			dup := prev[profile[i-1].Node.Name]
			result = append(result, Profile{
				Node:           profile[i-1].Node,
				Paths:          clonePaths(profile[i-1].Paths),
				CandidatePaths: candidates,
				Duplicate:      dup,
			})
			prev[profile[i-1].Node.Name] = true
			i--

		default:
			node := path.Traversals[j-1].Node
			candidates := newPathSet(path).union(profile[i-1].CandidatePaths)
			dup := prev[node.Name]
			result = append(result, Profile{
				Node:           node,
				Paths:          []*core.Path{path},
				CandidatePaths: candidates,
				Duplicate:      dup,
			})
			prev[node.Name] = true
			j--
		}
	}

	for i > 0 {
		dup := prev[profile[i-1].Node.Name]
		result = append(result, Profile{
			Node:           profile[i-1].Node,
			Paths:          clonePaths(profile[i-1].Paths),
			CandidatePaths: profile[i-1].CandidatePaths.clone(),
			Duplicate:      dup,
		})
		prev[profile[i-1].Node.Name] = true
		i--
	}
	for j > 0 {
		node := path.Traversals[j-1].Node
		result = append(result, Profile{
			Node:           node,
			Paths:          []*core.Path{path},
			CandidatePaths: newPathSet(path),
		})
		j--
	}

	reverseProfiles(result)
	return result
}

func reverseProfiles(p []Profile) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
