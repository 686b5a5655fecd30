package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var groceryWords = []string{"milk", "bread", "eggs", "paneer", "atta", "curd", "bananas", "tomatoes", "onions", "rice"}

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns an alphanumeric string with length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	buf := make([]byte, minLen+randomIntn(maxLen-minLen+1))
	for i := range buf {
		buf[i] = asciiLetters[randomIntn(len(asciiLetters))]
	}
	return string(buf)
}

// RandomOrderID returns an id shaped like the ones the facade issues.
func RandomOrderID() string {
	return "ord_" + RandomASCIIString(6, 12)
}

// RandomRequest returns a free-text delivery request such as "Need eggs, milk".
func RandomRequest() string {
	n := 1 + randomIntn(3)
	items := make([]string, n)
	for i := range items {
		items[i] = groceryWords[randomIntn(len(groceryWords))]
	}
	return "Need " + strings.Join(items, ", ")
}

func randomIntn(n int) int {
	if n <= 1 {
		return 0
	}
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
