package dictcc

type Pair struct {
	Source string
	Target string
}

// Result holds the two word columns of one lookup. FromLang labels the Source side of every pair.
type Result struct {
	FromLang string
	ToLang   string
	Pairs    []Pair
}

func (r Result) Len() int { return len(r.Pairs) }

// Swapped exchanges the columns together with their labels.
func (r Result) Swapped() Result {
	pairs := make([]Pair, len(r.Pairs))
	for i, p := range r.Pairs {
		pairs[i] = Pair{Source: p.Target, Target: p.Source}
	}
	return Result{FromLang: r.ToLang, ToLang: r.FromLang, Pairs: pairs}
}

// CorrectOrder treats the column holding more verbatim copies of word as the
// "from" column. Ties keep the page order.
//
// This guesses wrong when word is also valid in the target language and
// happens to appear there more often.
func CorrectOrder(r Result, word string) Result {
	if len(r.Pairs) == 0 {
		return r
	}
	var inSource, inTarget int
	for _, p := range r.Pairs {
		if p.Source == word {
			inSource++
		}
		if p.Target == word {
			inTarget++
		}
	}
	if inSource >= inTarget {
		return r
	}
	return r.Swapped()
}
