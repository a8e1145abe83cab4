package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cee/internal/diag"
)

// TestTestdataGolden checks every testdata/*.cee against the diagnostics
// recorded next to it in <name>.golden.
func TestTestdataGolden(t *testing.T) {
	root := filepath.Join("..", "..", "testdata")
	sources, err := filepath.Glob(filepath.Join(root, "*"+SourceExt))
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) == 0 {
		t.Skip("no testdata sources")
	}
	for _, path := range sources {
		name := strings.TrimSuffix(filepath.Base(path), SourceExt)
		t.Run(name, func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join(root, name+".golden"))
			if err != nil {
				t.Fatalf("missing golden file: %v", err)
			}
			fs, results, err := ParseDir(context.Background(), path, Options{})
			if err != nil {
				t.Fatal(err)
			}
			got := diag.FormatGolden(results[0].Bag.Items(), fs, false)
			if got != strings.TrimRight(string(want), "\n") {
				t.Errorf("diagnostics mismatch\nwant:\n%s\ngot:\n%s", want, got)
			}
		})
	}
}
