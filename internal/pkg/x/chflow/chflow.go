// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to end.
// The boolean is false when ctx ended first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data to ch unless ctx ends first.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Expand reads every value from in, maps it to zero or more outputs with fn
// and sends them to out, in order. It returns when in is closed or ctx ends.
// out is left open; the caller owns it.
func Expand[In, Out any](ctx context.Context, in <-chan In, out chan<- Out, fn func(In) []Out) {
	for {
		v, ok := Receive(ctx, in)
		if !ok {
			return
		}

		for _, o := range fn(v) {
			if !Send(ctx, out, o) {
				return
			}
		}
	}
}
