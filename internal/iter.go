// Package internal holds helpers shared by the pasm packages.
package internal

import (
	"iter"
)

// IterSeq2Concat concatenates key/value iterators into one sequence,
// in argument order.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}
