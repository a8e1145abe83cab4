// Package fix applies the text edits attached to diagnostics.
package fix

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"cee/internal/diag"
	"cee/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	ApplyModeOnce ApplyMode = iota // первый по позиции
	ApplyModeAll
	ApplyModeID
)

// ApplyOptions configures how fixes are selected.
type ApplyOptions struct {
	Mode     ApplyMode
	TargetID string
	DryRun   bool // compute FileChanges without writing
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	ID          string
	Title       string
	Code        diag.Code
	Message     string
	PrimaryPath string
	EditCount   int
}

// SkippedFix captures a skipped or failed fix with a reason.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	Path      string
	EditCount int
	Content   []byte // new file content
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	id    string
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply collects fixes from diagnostics, selects a subset according to opts,
// and rewrites the affected files. Edit spans refer to the text the
// diagnostics were produced from.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates, skips := gatherCandidates(diagnostics)
	result.Skipped = append(result.Skipped, skips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	selected, skips := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, skips...)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	applied, skips, changes, err := applyCandidates(fs, selected, opts.DryRun)
	result.Applied = applied
	result.Skipped = append(result.Skipped, skips...)
	result.FileChanges = changes
	if err != nil {
		return result, err
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

// FixID is the stable identifier of the idx-th fix of d, used by ApplyModeID.
func FixID(d diag.Diagnostic, idx int) string {
	return fmt.Sprintf("%s-%d-%d-%d", d.Code.ID(), d.Primary.File, d.Primary.Begin.Offset, idx)
}

func gatherCandidates(diagnostics []diag.Diagnostic) ([]candidate, []SkippedFix) {
	var cands []candidate
	var skips []SkippedFix
	seen := make(map[string]bool)

	for _, d := range diagnostics {
		for idx, f := range d.Fixes {
			id := FixID(d, idx)
			switch {
			case len(f.Edits) == 0:
				skips = append(skips, SkippedFix{ID: id, Title: f.Title, Reason: "fix has no edits"})
			case seen[id]:
				skips = append(skips, SkippedFix{ID: id, Title: f.Title, Reason: "duplicate fix id"})
			default:
				seen[id] = true
				cands = append(cands, candidate{id: id, diag: d, fix: f, order: len(cands)})
			}
		}
	}
	return cands, skips
}

// sortCandidates orders by file, primary span and detection order.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag.Primary, candidates[j].diag.Primary
		if di.File != dj.File {
			return di.File < dj.File
		}
		if di.Begin.Offset != dj.Begin.Offset {
			return di.Begin.Offset < dj.Begin.Offset
		}
		if di.End.Offset != dj.End.Offset {
			return di.End.Offset < dj.End.Offset
		}
		return candidates[i].order < candidates[j].order
	})
}

func selectCandidates(candidates []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeID:
		for _, cand := range candidates {
			if cand.id == opts.TargetID {
				return []candidate{cand}, nil
			}
		}
		return nil, []SkippedFix{{ID: opts.TargetID, Reason: "fix id not found"}}
	case ApplyModeAll:
		return candidates, nil
	case ApplyModeOnce:
		return candidates[:1], nil
	default:
		return nil, nil
	}
}

type edit struct {
	begin, end uint32 // rune offsets in the original text
	text       string
}

func conflicts(a, b edit) bool {
	// две вставки в одну точку не конфликтуют
	if a.begin == a.end && b.begin == b.end {
		return false
	}
	if a.begin == a.end {
		return b.begin <= a.begin && a.begin < b.end
	}
	if b.begin == b.end {
		return a.begin <= b.begin && b.begin < a.end
	}
	return a.begin < b.end && b.begin < a.end
}

func applyCandidates(fs *source.FileSet, selected []candidate, dryRun bool) ([]AppliedFix, []SkippedFix, []FileChange, error) {
	accepted := make(map[source.FileID][]edit)
	var applied []AppliedFix
	var skipped []SkippedFix

	for _, cand := range selected {
		staged := make(map[source.FileID][]edit)
		reason := ""
	edits:
		for _, e := range cand.fix.Edits {
			file := fs.Get(e.Span.File)
			if file.Flags.Has(source.FileVirtual) && !dryRun {
				reason = "target file is virtual"
				break
			}
			if int(e.Span.End.Offset) > len(file.Text) || e.Span.End.Offset < e.Span.Begin.Offset {
				reason = "edit span out of range"
				break
			}
			next := edit{begin: e.Span.Begin.Offset, end: e.Span.End.Offset, text: e.NewText}
			for _, prev := range slices.Concat(accepted[e.Span.File], staged[e.Span.File]) {
				if conflicts(prev, next) {
					reason = "conflicts with previously applied edits in " + file.FormatPath("auto", fs.BaseDir())
					break edits
				}
			}
			staged[e.Span.File] = append(staged[e.Span.File], next)
		}
		if reason != "" {
			skipped = append(skipped, SkippedFix{ID: cand.id, Title: cand.fix.Title, Reason: reason})
			continue
		}
		for id, es := range staged {
			accepted[id] = append(accepted[id], es...)
		}
		applied = append(applied, AppliedFix{
			ID:          cand.id,
			Title:       cand.fix.Title,
			Code:        cand.diag.Code,
			Message:     cand.diag.Message,
			PrimaryPath: fs.Get(cand.diag.Primary.File).FormatPath("auto", fs.BaseDir()),
			EditCount:   len(cand.fix.Edits),
		})
	}

	ids := make([]source.FileID, 0, len(accepted))
	for id := range accepted {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	changes := make([]FileChange, 0, len(ids))
	for _, id := range ids {
		file := fs.Get(id)
		content := []byte(restoreLayout(file, rewrite(file.Text, accepted[id])))
		if !dryRun {
			mode := os.FileMode(0o644)
			if info, err := os.Stat(file.Path); err == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(file.Path, content, mode); err != nil {
				return applied, skipped, changes, fmt.Errorf("write %s: %w", file.Path, err)
			}
		}
		changes = append(changes, FileChange{
			Path:      file.FormatPath("relative", fs.BaseDir()),
			EditCount: len(accepted[id]),
			Content:   content,
		})
	}
	return applied, skipped, changes, nil
}

// rewrite applies non-overlapping edits to text from the back so earlier
// offsets stay valid.
func rewrite(text []rune, edits []edit) string {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b edit) int {
		if a.begin != b.begin {
			return int(b.begin) - int(a.begin)
		}
		return int(b.end) - int(a.end)
	})
	out := slices.Clone(text)
	for _, e := range sorted {
		out = slices.Concat(out[:e.begin], []rune(e.text), out[e.end:])
	}
	return string(out)
}

// restoreLayout undoes the BOM and CRLF normalization done on load.
func restoreLayout(file *source.File, text string) string {
	if file.Flags.Has(source.FileNormalizedCRLF) {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	if file.Flags.Has(source.FileHadBOM) {
		text = "\uFEFF" + text
	}
	return text
}
