// Package tmap is a generic ordered map backed by a red-black tree,
// used wherever a PSBT map or other keyed record set must serialize
// its entries in canonical sorted-key order.
package tmap

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pktcore/txcore/er"
)

type Map[K, V any] struct {
	tm   *redblacktree.Tree
	comp func(a, b *K) int
}

func New[K, V any](comp func(a, b *K) int) *Map[K, V] {
	return &Map[K, V]{
		tm: redblacktree.NewWith(func(a interface{}, b interface{}) int {
			return comp((a).(*K), (b).(*K))
		}),
		comp: comp,
	}
}

func ForEach[K, V any](s *Map[K, V], f func(k *K, v *V) er.R) er.R {
	it := s.tm.Iterator()
	for it.Next() {
		if err := f(it.Key().(*K), it.Value().(*V)); err != nil {
			if er.IsLoopBreak(err) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Insert puts v under k, returning the previously-stored key/value if
// one existed at the same key (the caller decides whether that's a
// conflict — PSBT map parsing treats it as a `Duplicated` error).
func Insert[K, V any](s *Map[K, V], k *K, v *V) (*K, *V) {
	if n, ok := s.tm.Ceiling(k); ok {
		if s.comp(k, n.Key.(*K)) == 0 {
			prevK, prevV := n.Key.(*K), n.Value.(*V)
			s.tm.Put(k, v)
			return prevK, prevV
		}
	}
	s.tm.Put(k, v)
	return nil, nil
}

// Get returns the value stored under k, if any.
func Get[K, V any](s *Map[K, V], k *K) (*V, bool) {
	v, ok := s.tm.Get(k)
	if !ok {
		return nil, false
	}
	return v.(*V), true
}

// Delete removes the entry stored under k, if any.
func Delete[K, V any](s *Map[K, V], k *K) {
	s.tm.Remove(k)
}

func Len[K, V any](s *Map[K, V]) int {
	return s.tm.Size()
}

// Keys returns every key in ascending order.
func Keys[K, V any](s *Map[K, V]) []*K {
	keys := s.tm.Keys()
	out := make([]*K, len(keys))
	for i, k := range keys {
		out[i] = k.(*K)
	}
	return out
}
