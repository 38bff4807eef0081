package convention

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type convertResult struct {
	out string
	err error
}

// Detect and Convert share only immutable package state, so concurrent callers
// must see the same answers as a single caller.
func TestConcurrentDetectAndConvert(t *testing.T) {
	wantDetect := make(map[string]Set, len(propertyCorpus))
	wantConvert := make(map[string]convertResult, len(propertyCorpus)*len(All()))
	for _, input := range propertyCorpus {
		wantDetect[input] = Detect(input)
		for _, c := range All() {
			out, err := Convert(input, c)
			wantConvert[fmt.Sprintf("%s/%q", c, input)] = convertResult{out, err}
		}
	}

	const goroutines = 16
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := range goroutines {
		go func() {
			defer wg.Done()
			// stagger the starting point so goroutines hit different inputs
			for i := range propertyCorpus {
				input := propertyCorpus[(i+g)%len(propertyCorpus)]
				assert.Equal(t, wantDetect[input], Detect(input), "Detect(%q)", input)
				for _, c := range All() {
					out, err := Convert(input, c)
					want := wantConvert[fmt.Sprintf("%s/%q", c, input)]
					assert.Equal(t, want.out, out, "Convert(%q, %s)", input, c)
					assert.Equal(t, want.err == nil, err == nil, "Convert(%q, %s) error = %v", input, c, err)
				}
			}
		}()
	}
	wg.Wait()
}
