package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"cee/internal/ast"
	"cee/internal/diag"
	"cee/internal/source"
	"cee/internal/trace"
)

// SourceExt is the extension ListSourceFiles looks for.
const SourceExt = ".cee"

// FileResult is the outcome for one file of a directory run.
type FileResult struct {
	Path    string
	FileID  source.FileID
	AST     *ast.File // nil on a cache hit or a lexical error
	Bag     *diag.Bag
	Cached  bool
	Decls   int
	Imports []string
}

// ListSourceFiles возвращает отсортированный список *.cee файлов.
// A regular file is returned as is, whatever its extension.
func ListSourceFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return files, nil
}

// ParseDir parses every source file under dir in parallel. Results follow
// the sorted file order regardless of scheduling. Load failures become
// IOLoadFileError diagnostics; only cancellation and internal errors are
// returned as err.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	base := dir
	if len(files) == 1 && files[0] == dir {
		base = filepath.Dir(dir)
	}
	fileSet := source.NewFileSetWithBase(base)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	span, ctx := trace.BeginCtx(ctx, trace.ScopePhase, "parse-dir")
	defer span.End(fmt.Sprintf("%d files", len(files)))

	// FileSet не потокобезопасен: всё грузим до запуска горутин
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			id = fileSet.AddVirtual(path, nil)
		}
		fileIDs[i] = id
		emit(opts.Progress, Event{File: path, Stage: StageQueued, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file := fileSet.Get(fileIDs[i])
			res := FileResult{Path: path, FileID: file.ID}

			if loadErr, failed := loadErrors[i]; failed {
				res.Bag = diag.NewBag(opts.maxDiagnostics())
				res.Bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: file.ID},
					"failed to load file: "+loadErr.Error()))
				results[i] = res
				emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusError, Diagnostics: 1, Err: loadErr})
				return nil
			}

			fspan, fctx := trace.BeginCtx(gctx, trace.ScopeFile, "file")
			defer fspan.End(path)

			if opts.Cache != nil {
				var payload DiskPayload
				hit, err := opts.Cache.Get(file.Hash, &payload)
				if err != nil {
					trace.Point(trace.FromContext(fctx), trace.ScopeFile, "cache-error", err.Error())
				}
				if hit {
					res.Bag = diag.NewBag(opts.maxDiagnostics() + 1)
					payload.restore(file.ID, res.Bag)
					res.Cached, res.Decls, res.Imports = true, payload.Decls, payload.Imports
					results[i] = res
					fspan.WithExtra("cache", "hit")
					emit(opts.Progress, Event{File: path, Stage: StageCache, Status: StatusDone, Diagnostics: res.Bag.Len()})
					return nil
				}
			}

			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
			out, err := parseSourceFile(fctx, file, opts.maxDiagnostics())
			if err != nil {
				emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusError, Err: err})
				return err
			}
			res.AST, res.Bag = out.file, out.bag
			if out.file != nil {
				res.Decls = len(out.file.Decls)
				res.Imports = importPaths(out.file)
			}
			results[i] = res

			if opts.Cache != nil {
				payload := &DiskPayload{
					Path:        path,
					Hash:        file.Hash,
					Decls:       res.Decls,
					Imports:     res.Imports,
					Diagnostics: cachedDiagnostics(res.Bag),
				}
				if err := opts.Cache.Put(file.Hash, payload); err != nil {
					trace.Point(trace.FromContext(fctx), trace.ScopeFile, "cache-error", err.Error())
				}
			}

			status := StatusDone
			if res.Bag.HasErrors() {
				status = StatusError
			}
			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: status, Diagnostics: res.Bag.Len()})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func importPaths(f *ast.File) []string {
	var paths []string
	for _, d := range f.Decls {
		if imp, ok := d.(*ast.ImportDecl); ok {
			paths = append(paths, imp.Canonical.Text)
		}
	}
	return paths
}

// CheckResult summarizes a directory check.
type CheckResult struct {
	FileSet  *source.FileSet
	Files    []FileResult
	Errors   int
	Warnings int
	Cached   int
}

// Bag merges the diagnostics of every file in file order.
func (r *CheckResult) Bag() *diag.Bag {
	total := 0
	for _, f := range r.Files {
		total += f.Bag.Len()
	}
	bag := diag.NewBag(total)
	for _, f := range r.Files {
		bag.Merge(f.Bag)
	}
	return bag
}

// CheckDir parses dir and counts the findings.
func CheckDir(ctx context.Context, dir string, opts Options) (*CheckResult, error) {
	var (
		fileSet *source.FileSet
		files   []FileResult
		err     error
	)
	opts.measure("check", func() string {
		fileSet, files, err = ParseDir(ctx, dir, opts)
		return fmt.Sprintf("%d files", len(files))
	})
	if err != nil {
		return nil, err
	}
	res := &CheckResult{FileSet: fileSet, Files: files}
	for _, f := range files {
		if f.Cached {
			res.Cached++
		}
		for _, d := range f.Bag.Items() {
			switch d.Severity {
			case diag.SevError:
				res.Errors++
			case diag.SevWarning:
				res.Warnings++
			}
		}
	}
	return res, nil
}
