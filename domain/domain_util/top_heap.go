package domain_util

import (
	"container/heap"
	"sort"
)

type WeightedKey struct {
	Key    string
	Weight float64
	Count  int
}

// weightMinHeap 最小堆实现 (基于container/heap)
type weightMinHeap []WeightedKey

func (h weightMinHeap) Len() int            { return len(h) }
func (h weightMinHeap) Less(i, j int) bool  { return h[i].Weight < h[j].Weight }
func (h weightMinHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *weightMinHeap) Push(x interface{}) { *h = append(*h, x.(WeightedKey)) }
func (h *weightMinHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopKByWeight 从累计权重表中取权重最高的k项，按权重降序返回
func TopKByWeight(items []WeightedKey, k int) []WeightedKey {
	if k <= 0 || len(items) == 0 {
		return nil
	}

	h := &weightMinHeap{}
	heap.Init(h)

	for _, item := range items {
		if h.Len() < k {
			heap.Push(h, item)
			continue
		}
		if item.Weight > (*h)[0].Weight {
			heap.Pop(h)
			heap.Push(h, item)
		}
	}

	result := make([]WeightedKey, h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(h).(WeightedKey)
	}

	// 同权重时按键名排序，保证结果可复现
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Weight == result[j].Weight {
			return result[i].Key < result[j].Key
		}
		return result[i].Weight > result[j].Weight
	})

	return result
}
