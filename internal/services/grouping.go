package services

import "math"

// keyedAccumulator implements the group-by-key/accumulate/materialize
// pattern shared by all five aggregators. Keys keep their first-encounter
// order, which is what lets the ranked lists break ties by the order
// records were seen.
type keyedAccumulator[T any] struct {
	order   []string
	buckets map[string]*T
}

func newKeyedAccumulator[T any]() *keyedAccumulator[T] {
	return &keyedAccumulator[T]{buckets: make(map[string]*T)}
}

// bucket returns the accumulator for key, creating a zero-valued one on
// first use.
func (a *keyedAccumulator[T]) bucket(key string) *T {
	if b, ok := a.buckets[key]; ok {
		return b
	}
	b := new(T)
	a.buckets[key] = b
	a.order = append(a.order, key)
	return b
}

// has reports whether key already holds a bucket, without creating one.
func (a *keyedAccumulator[T]) has(key string) bool {
	_, ok := a.buckets[key]
	return ok
}

// collect materializes the buckets in first-encounter order.
func (a *keyedAccumulator[T]) collect() []*T {
	out := make([]*T, 0, len(a.order))
	for _, k := range a.order {
		out = append(out, a.buckets[k])
	}
	return out
}

func (a *keyedAccumulator[T]) size() int {
	return len(a.order)
}

// percentOf is part/total as a rounded whole percentage, 0 when the
// denominator is 0 so empty windows never surface NaN.
func percentOf(part, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(part / total * 100))
}

// capList truncates ranked output to the documented cap.
func capList[T any](list []T, limit int) []T {
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
