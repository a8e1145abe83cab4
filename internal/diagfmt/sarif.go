package diagfmt

import (
	"encoding/json"
	"io"
	"path/filepath"
	"slices"

	"cee/internal/diag"
	"cee/internal/source"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
)

// SarifRunMeta describes the tool in the single run of the log.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InformationURI string
}

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool       sarifTool     `json:"tool"`
	ColumnKind string        `json:"columnKind"`
	Results    []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID           string          `json:"ruleId"`
	RuleIndex        int             `json:"ruleIndex"`
	Level            string          `json:"level"`
	Message          sarifMessage    `json:"message"`
	Locations        []sarifLocation `json:"locations"`
	RelatedLocations []sarifLocation `json:"relatedLocations,omitempty"`
	Fixes            []sarifFix      `json:"fixes,omitempty"`
}

type sarifLocation struct {
	ID               int                   `json:"id,omitempty"`
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
	Message          *sarifMessage         `json:"message,omitempty"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
	Region           sarifRegion   `json:"region"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn"`
	EndLine     uint32 `json:"endLine"`
	EndColumn   uint32 `json:"endColumn"`
}

type sarifFix struct {
	Description     sarifMessage          `json:"description"`
	ArtifactChanges []sarifArtifactChange `json:"artifactChanges"`
}

type sarifArtifactChange struct {
	ArtifactLocation sarifArtifact      `json:"artifactLocation"`
	Replacements     []sarifReplacement `json:"replacements"`
}

type sarifReplacement struct {
	DeletedRegion   sarifRegion   `json:"deletedRegion"`
	InsertedContent *sarifMessage `json:"insertedContent,omitempty"`
}

// Sarif writes bag as a SARIF 2.1.0 log with one run. Rules are the distinct
// codes of the bag in order of first use. Columns count characters, not
// UTF-16 units.
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{
			Name:           meta.ToolName,
			Version:        meta.ToolVersion,
			InformationURI: meta.InformationURI,
			Rules:          []sarifRule{},
		}},
		ColumnKind: "unicodeCodePoints",
		Results:    []sarifResult{},
	}

	var codes []diag.Code
	for _, d := range bag.Items() {
		idx := slices.Index(codes, d.Code)
		if idx < 0 {
			idx = len(codes)
			codes = append(codes, d.Code)
			run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, sarifRule{
				ID:               d.Code.ID(),
				ShortDescription: sarifMessage{Text: d.Code.Title()},
			})
		}
		res := sarifResult{
			RuleID:    d.Code.ID(),
			RuleIndex: idx,
			Level:     sarifLevel(d.Severity),
			Message:   sarifMessage{Text: d.Message},
			Locations: []sarifLocation{{PhysicalLocation: sarifPhysical(fs, d.Primary)}},
		}
		for i, n := range d.Notes {
			res.RelatedLocations = append(res.RelatedLocations, sarifLocation{
				ID:               i + 1,
				PhysicalLocation: sarifPhysical(fs, n.Span),
				Message:          &sarifMessage{Text: n.Msg},
			})
		}
		for _, f := range d.Fixes {
			res.Fixes = append(res.Fixes, sarifFixFor(fs, f))
		}
		run.Results = append(run.Results, res)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sarifLog{Schema: sarifSchema, Version: sarifVersion, Runs: []sarifRun{run}})
}

func sarifLevel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

func sarifURI(fs *source.FileSet, id source.FileID) string {
	return filepath.ToSlash(fs.Get(id).FormatPath("relative", fs.BaseDir()))
}

func sarifRegionOf(fs *source.FileSet, sp source.Span) sarifRegion {
	start, end := fs.Resolve(sp)
	return sarifRegion{StartLine: start.Line, StartColumn: start.Col, EndLine: end.Line, EndColumn: end.Col}
}

func sarifPhysical(fs *source.FileSet, sp source.Span) sarifPhysicalLocation {
	return sarifPhysicalLocation{
		ArtifactLocation: sarifArtifact{URI: sarifURI(fs, sp.File)},
		Region:           sarifRegionOf(fs, sp),
	}
}

// sarifFixFor groups the edits of f by file, keeping their order.
func sarifFixFor(fs *source.FileSet, f diag.Fix) sarifFix {
	fix := sarifFix{Description: sarifMessage{Text: f.Title}}
	byFile := make(map[source.FileID]int)
	for _, e := range f.Edits {
		idx, ok := byFile[e.Span.File]
		if !ok {
			idx = len(fix.ArtifactChanges)
			byFile[e.Span.File] = idx
			fix.ArtifactChanges = append(fix.ArtifactChanges, sarifArtifactChange{
				ArtifactLocation: sarifArtifact{URI: sarifURI(fs, e.Span.File)},
			})
		}
		r := sarifReplacement{DeletedRegion: sarifRegionOf(fs, e.Span)}
		if e.NewText != "" {
			r.InsertedContent = &sarifMessage{Text: e.NewText}
		}
		fix.ArtifactChanges[idx].Replacements = append(fix.ArtifactChanges[idx].Replacements, r)
	}
	return fix
}
