package demo

// DefaultRank is reported for schools without an explicit entry.
const DefaultRank = 10

// Rankings maps school names to their rank, lower is better.
type Rankings map[string]int

// StandardRankings returns the rank table the demos run against.
func StandardRankings() Rankings {
	return Rankings{
		"Stanford": 1,
		"MIT":      2,
		"Berkeley": 3,
	}
}

// Rank returns the rank on file for a school, or DefaultRank when the
// school has no entry.
func (r Rankings) Rank(s School) int {
	if rank, ok := r[s.Name]; ok {
		return rank
	}
	return DefaultRank
}
