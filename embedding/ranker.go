package embedding

import (
	"container/heap"
	"math"
	"sort"
	"sync"

	"github.com/jeffrydegrande/quietly/lexicon"
	"github.com/jeffrydegrande/quietly/types"
)

// Match pairs a vocabulary word with its cosine similarity to a query vector
type Match struct {
	Word  string
	Score float64
}

// Ranking is the result of scoring every vector-bearing lexicon entry against
// a query: matches sorted by descending score, ties kept in lexicon order,
// plus a count of entries skipped because their vectors had zero norm.
type Ranking struct {
	Matches []Match
	Skipped int
}

// Ranker scores lexicon entries against query vectors. The zero value with a
// Lexicon set ranks serially; Workers > 1 partitions the scoring across
// goroutines. The output is identical either way: scores land in a
// per-entry slice before the single stable sort, so the ordering never
// depends on scheduling.
type Ranker struct {
	Lexicon *lexicon.Lexicon
	Workers int
}

// NewRanker creates a serial ranker over the given lexicon
func NewRanker(lex *lexicon.Lexicon) *Ranker {
	return &Ranker{Lexicon: lex, Workers: 1}
}

// Rank scores every vector-bearing entry against the query and returns the
// full ranking, descending by score with ties in lexicon order. Fails with
// DegenerateVectorError when the query itself has zero norm; degenerate
// entry vectors are skipped and counted, never fatal to the pass.
func (r *Ranker) Rank(query types.Embedding) (Ranking, error) {
	scores, err := r.scoreAll(query)
	if err != nil {
		return Ranking{}, err
	}

	entries := r.Lexicon.Entries()
	ranking := Ranking{Matches: make([]Match, 0, len(scores))}
	for i, entry := range entries {
		if !entry.HasVector() {
			continue
		}
		if math.IsNaN(scores[i]) {
			ranking.Skipped++
			continue
		}
		ranking.Matches = append(ranking.Matches, Match{Word: entry.Word, Score: scores[i]})
	}

	sort.SliceStable(ranking.Matches, func(i, j int) bool {
		return ranking.Matches[i].Score > ranking.Matches[j].Score
	})

	return ranking, nil
}

// RankWord ranks the vocabulary against a single word's own vector
func (r *Ranker) RankWord(word string) (Ranking, error) {
	query, err := vectorFor(r.Lexicon, word)
	if err != nil {
		return Ranking{}, err
	}
	return r.Rank(query)
}

// scoreAll computes the cosine score of every lexicon entry against the
// query, indexed by entry position. Entries without vectors and entries with
// zero-norm vectors score NaN. The complexity is O(V*D); Workers > 1 splits
// the vocabulary into contiguous partitions.
func (r *Ranker) scoreAll(query types.Embedding) ([]float64, error) {
	if norm(query) == 0 {
		return nil, &DegenerateVectorError{}
	}

	entries := r.Lexicon.Entries()
	scores := make([]float64, len(entries))

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(entries) {
		workers = len(entries)
	}

	if workers <= 1 {
		scorePartition(entries, scores, query)
		return scores, nil
	}

	var wg sync.WaitGroup
	chunk := (len(entries) + workers - 1) / workers
	for start := 0; start < len(entries); start += chunk {
		end := start + chunk
		if end > len(entries) {
			end = len(entries)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			scorePartition(entries[lo:hi], scores[lo:hi], query)
		}(start, end)
	}
	wg.Wait()

	return scores, nil
}

func scorePartition(entries []lexicon.Entry, scores []float64, query types.Embedding) {
	for i, entry := range entries {
		if !entry.HasVector() {
			scores[i] = math.NaN()
			continue
		}
		score, err := CosineSimilarity(entry.Embedding(), query)
		if err != nil {
			scores[i] = math.NaN()
			continue
		}
		scores[i] = score
	}
}

func norm(e types.Embedding) float64 {
	var sum float64
	for _, v := range e.Vector {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

// TopK returns the k best matches without materializing the full ranking,
// using a bounded heap over the same scoring scan as Rank. The result equals
// the first k entries of Rank's output.
func (r *Ranker) TopK(query types.Embedding, k int) (Ranking, error) {
	stream, err := r.Stream(query, k)
	if err != nil {
		return Ranking{}, err
	}

	ranking := Ranking{Skipped: stream.skipped}
	for {
		match, ok := stream.Next()
		if !ok {
			break
		}
		ranking.Matches = append(ranking.Matches, match)
	}
	return ranking, nil
}

// Stream is a finite, restartable sequence of the top-K matches for one
// query. It holds at most K matches in memory regardless of vocabulary size.
type Stream struct {
	matches []Match
	skipped int
	pos     int
}

// Next returns the next match in descending score order, or false when the
// stream is exhausted
func (s *Stream) Next() (Match, bool) {
	if s.pos >= len(s.matches) {
		return Match{}, false
	}
	m := s.matches[s.pos]
	s.pos++
	return m, true
}

// Reset restarts the stream from the best match
func (s *Stream) Reset() {
	s.pos = 0
}

// Skipped returns how many zero-norm entry vectors the scan passed over
func (s *Stream) Skipped() int {
	return s.skipped
}

// Stream scans the vocabulary once, keeping only the k best matches, and
// returns them as a restartable stream. Ties are broken by lexicon order,
// matching Rank exactly.
func (r *Ranker) Stream(query types.Embedding, k int) (*Stream, error) {
	if norm(query) == 0 {
		return nil, &DegenerateVectorError{}
	}
	if k < 0 {
		k = 0
	}

	h := &matchHeap{}
	heap.Init(h)

	skipped := 0
	for i, entry := range r.Lexicon.Entries() {
		if !entry.HasVector() {
			continue
		}
		score, err := CosineSimilarity(entry.Embedding(), query)
		if err != nil {
			skipped++
			continue
		}
		if h.Len() < k {
			heap.Push(h, indexedMatch{Match: Match{Word: entry.Word, Score: score}, index: i})
		} else if k > 0 && h.worseThan(score, i) {
			heap.Pop(h)
			heap.Push(h, indexedMatch{Match: Match{Word: entry.Word, Score: score}, index: i})
		}
	}

	// Drain the heap worst-first into the final descending order
	matches := make([]Match, h.Len())
	for i := len(matches) - 1; i >= 0; i-- {
		matches[i] = heap.Pop(h).(indexedMatch).Match
	}

	return &Stream{matches: matches, skipped: skipped}, nil
}

type indexedMatch struct {
	Match
	index int // lexicon position, used to keep ties deterministic
}

// matchHeap is a min-heap whose root is the current worst match: lowest
// score, with later lexicon positions considered worse on equal scores
type matchHeap []indexedMatch

func (h matchHeap) Len() int { return len(h) }

func (h matchHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].index > h[j].index
}

func (h matchHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *matchHeap) Push(x any) {
	*h = append(*h, x.(indexedMatch))
}

func (h *matchHeap) Pop() any {
	old := *h
	n := len(old)
	m := old[n-1]
	*h = old[:n-1]
	return m
}

// worseThan reports whether the heap's worst element should yield to a new
// match with the given score and lexicon position
func (h matchHeap) worseThan(score float64, index int) bool {
	worst := h[0]
	if worst.Score != score {
		return worst.Score < score
	}
	return worst.index > index
}
