// Package optimize implements the greedy bidirectional hill-climb search:
// repeatedly add the strings that most improve the score and remove the
// ones that least deserve to stay, until neither move can improve further.
package optimize

import (
	"sort"

	"github.com/gogpu/stringart"
	"github.com/gogpu/stringart/internal/parallel"
)

// Candidate is a line segment paired with the Δscore adding it would cause.
// Δscore is always strictly negative (the search only keeps improving
// moves).
type Candidate struct {
	Segment stringart.LineSegment
	Delta   int64
}

// Removal is an index into a segments slice paired with the Δscore removing
// that segment would cause.
type Removal struct {
	Index int
	Delta int64
}

type pinPair struct{ a, b stringart.Point }

// pairs enumerates every unordered pair of distinct pins once. A string from
// A to B and from B to A produce identical pixlines, so only one ordering
// is ever evaluated (§8 pair-symmetry).
func pairs(pins []stringart.Point) []pinPair {
	n := len(pins)
	out := make([]pinPair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, pinPair{pins[i], pins[j]})
		}
	}
	return out
}

// FindBest searches every unordered pin pair combined with every palette
// color for strings that would strictly improve ref's score. Results are
// sorted ascending by Δscore (best first) and truncated to at most k.
//
// ref and pins are treated as read-only for the duration of this call; the
// search fans out across pool's workers and merges results after they all
// complete, matching the read-only-during-search / mutate-between-calls
// discipline the concurrency model requires.
func FindBest(pool *parallel.WorkerPool, pins []stringart.Point, ref *stringart.RefImage, step, alpha float64, palette []stringart.RGB, k int) []Candidate {
	pp := pairs(pins)
	total := len(pp) * len(palette)
	if total == 0 || k <= 0 {
		return nil
	}

	chunks := chunkCount(pool, total)
	results := make([][]Candidate, chunks)

	work := make([]func(), chunks)
	for c := 0; c < chunks; c++ {
		c := c
		lo, hi := chunkBounds(c, chunks, total)
		work[c] = func() {
			var local []Candidate
			for idx := lo; idx < hi; idx++ {
				pairIdx := idx / len(palette)
				colorIdx := idx % len(palette)
				pr := pp[pairIdx]
				color := palette[colorIdx]

				line := stringart.NewLine(pr.a, pr.b)
				pl := stringart.RasterizeLine(line, color, step, alpha)
				delta := ref.ScoreChangeOnAdd(pl)
				if delta < 0 {
					local = append(local, Candidate{
						Segment: stringart.LineSegment{A: pr.a, B: pr.b, Color: color},
						Delta:   delta,
					})
				}
			}
			results[c] = local
		}
	}
	pool.ExecuteAll(work)

	merged := mergeCandidates(results)
	sort.Slice(merged, func(i, j int) bool { return merged[i].Delta < merged[j].Delta })
	if len(merged) > k {
		merged = merged[:k]
	}
	return merged
}

// FindWorst searches existing segments for the ones whose removal would
// strictly improve ref's score. Results are sorted ascending by Δscore
// (best removal first) and truncated to at most k.
func FindWorst(pool *parallel.WorkerPool, segments []stringart.LineSegment, ref *stringart.RefImage, step, alpha float64, k int) []Removal {
	total := len(segments)
	if total == 0 || k <= 0 {
		return nil
	}

	chunks := chunkCount(pool, total)
	results := make([][]Removal, chunks)

	work := make([]func(), chunks)
	for c := 0; c < chunks; c++ {
		c := c
		lo, hi := chunkBounds(c, chunks, total)
		work[c] = func() {
			var local []Removal
			for i := lo; i < hi; i++ {
				seg := segments[i]
				pl := stringart.RasterizeLine(seg.Line(), seg.Color, step, alpha)
				delta := ref.ScoreChangeOnSub(pl)
				if delta < 0 {
					local = append(local, Removal{Index: i, Delta: delta})
				}
			}
			results[c] = local
		}
	}
	pool.ExecuteAll(work)

	merged := make([]Removal, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Delta < merged[j].Delta })
	if len(merged) > k {
		merged = merged[:k]
	}
	return merged
}

func mergeCandidates(chunks [][]Candidate) []Candidate {
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	out := make([]Candidate, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// chunkCount picks a number of work items that keeps every worker busy
// without creating more goroutine-scheduled closures than necessary for
// small candidate sets.
func chunkCount(pool *parallel.WorkerPool, total int) int {
	workers := pool.Workers()
	chunks := workers * 4
	if chunks > total {
		chunks = total
	}
	if chunks < 1 {
		chunks = 1
	}
	return chunks
}

func chunkBounds(c, chunks, total int) (lo, hi int) {
	base := total / chunks
	rem := total % chunks
	if c < rem {
		lo = c * (base + 1)
		hi = lo + base + 1
	} else {
		lo = rem*(base+1) + (c-rem)*base
		hi = lo + base
	}
	return lo, hi
}
