package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover returns the sorted, deduplicated absolute paths of the Markdown
// files selected by opts. Hidden files and directories are skipped while
// walking; a hidden file named explicitly is still rendered.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discoverer{
		ctx:     ctx,
		workDir: workDir,
		exts:    opts.effectiveExtensions(),
		opts:    opts,
		seen:    make(map[string]struct{}),
	}

	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}
		if !info.IsDir() {
			if d.matches(abs) {
				d.add(abs)
			}
			continue
		}
		if err := d.walk(abs); err != nil {
			return nil, err
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		return os.Getwd()
	}
	return filepath.Abs(workDir)
}

type discoverer struct {
	ctx     context.Context
	workDir string
	exts    []string
	opts    Options

	seen  map[string]struct{}
	files []string
}

func (d *discoverer) add(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

func (d *discoverer) rel(path string) string {
	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

func (d *discoverer) walk(root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := d.ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")
		if entry.IsDir() {
			if hidden || matchAny(d.rel(path), d.opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.symlink(path)
		}
		if d.matches(path) {
			d.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// symlink handles a symlink met while walking. Broken links are skipped;
// linked directories are walked only with FollowSymlinks.
func (d *discoverer) symlink(path string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // broken symlinks are skipped
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // unreadable targets are skipped
	}
	if info.IsDir() {
		if !d.opts.FollowSymlinks {
			return nil
		}
		return d.walk(target)
	}
	if d.matches(path) {
		d.add(path)
	}
	return nil
}

func (d *discoverer) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.ContainsFunc(d.exts, func(e string) bool { return strings.ToLower(e) == ext }) {
		return false
	}

	rel := d.rel(path)
	if matchAny(rel, d.opts.ExcludeGlobs) {
		return false
	}
	return len(d.opts.IncludeGlobs) == 0 || matchAny(rel, d.opts.IncludeGlobs)
}

func matchAny(rel string, patterns []string) bool {
	return slices.ContainsFunc(patterns, func(p string) bool { return matchGlob(rel, p) })
}

// matchGlob matches a slash-separated relative path against pattern.
// Besides filepath.Match syntax it understands a leading "**/" (any
// directory depth) and a trailing "/**" (everything below a directory).
// Patterns without a slash also match the base name.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	switch {
	case pattern == "**":
		return true
	case strings.HasSuffix(pattern, "/**"):
		prefix := strings.TrimSuffix(pattern, "/**")
		if strings.HasPrefix(prefix, "**/") {
			return matchSegments(path, strings.TrimPrefix(prefix, "**/"), true)
		}
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	case strings.HasPrefix(pattern, "**/"):
		return matchSegments(path, strings.TrimPrefix(pattern, "**/"), false)
	}

	if ok, _ := filepath.Match(pattern, path); ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		ok, _ := filepath.Match(pattern, filepath.Base(path))
		return ok
	}
	return false
}

// matchSegments reports whether pattern matches path starting at any
// segment boundary. With prefix set, the match may also end at any
// boundary (a directory containing path).
func matchSegments(path, pattern string, prefix bool) bool {
	segments := strings.Split(path, "/")
	width := strings.Count(pattern, "/") + 1
	for start := 0; start+width <= len(segments); start++ {
		end := len(segments)
		if prefix {
			end = start + width
		} else if end-start != width {
			continue
		}
		if ok, _ := filepath.Match(pattern, strings.Join(segments[start:end], "/")); ok {
			return true
		}
	}
	return false
}
