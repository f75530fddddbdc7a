package token

import (
	"errors"
	"math/rand"
	"strconv"
	"sync"
)

// Queue tokens are 4-digit numeric strings so they stay readable on the
// pickup counter display.
const (
	minToken = 1000
	maxToken = 9999
	span     = maxToken - minToken + 1
)

// ErrExhausted is returned when every token in the display range belongs to
// an order that has not been completed yet.
var ErrExhausted = errors.New("all queue tokens are outstanding")

// InUseChecker answers whether a token is still held by an unfinished order.
type InUseChecker interface {
	TokenInUse(token string) (bool, error)
}

// Allocator hands out queue tokens from a wrapping sequence, skipping tokens
// that are still outstanding. The sequence starts at a random point so
// tokens aren't trivially guessable after a restart.
type Allocator struct {
	mu    sync.Mutex
	next  int
	inUse InUseChecker
}

func NewAllocator(inUse InUseChecker) *Allocator {
	return &Allocator{
		next:  minToken + rand.Intn(span),
		inUse: inUse,
	}
}

// Allocate returns the next free token in the sequence. It scans at most one
// full cycle of the range before giving up with ErrExhausted.
func (a *Allocator) Allocate() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := 0; i < span; i++ {
		candidate := strconv.Itoa(a.next)
		a.next++
		if a.next > maxToken {
			a.next = minToken
		}
		busy, err := a.inUse.TokenInUse(candidate)
		if err != nil {
			return "", err
		}
		if !busy {
			return candidate, nil
		}
	}
	return "", ErrExhausted
}
