package fuzztests

import (
	"os"
	"path/filepath"
	"testing"

	"cee/internal/driver"
)

// maxSeedBytes caps every fuzz input; longer inputs only slow the engine down.
const maxSeedBytes = 64 << 10

// addCorpusSeeds seeds f with the repository samples plus two fixed inputs,
// so the corpus is never empty.
func addCorpusSeeds(f *testing.F) {
	files, err := driver.ListSourceFiles(filepath.Join("..", "..", "testdata"))
	if err != nil {
		f.Logf("no testdata seeds: %v", err)
	}
	for _, path := range files {
		// #nosec G304 -- path comes from the testdata listing
		if src, err := os.ReadFile(path); err == nil {
			f.Add(clampSeed(src))
		}
	}
	f.Add([]byte{})
	f.Add([]byte("func main() <- Int { return 0 }\n"))
}

// clampSeed returns a private copy of at most maxSeedBytes bytes.
func clampSeed(src []byte) []byte {
	return append([]byte(nil), src[:min(len(src), maxSeedBytes)]...)
}
