package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/woozymasta/wang-tool/internal/wang"
	"github.com/woozymasta/wang-tool/internal/wangcfg"
)

// configArgs is the positional config argument shared by most commands.
type configArgs struct {
	Config string `positional-arg-name:"CONFIG" required:"true" description:"Document file (yaml/json)"`
}

// readProject reads and builds a document.
func readProject(path string) (wangcfg.Document, *wangcfg.Project, error) {
	doc, err := wangcfg.Read(path)
	if err != nil {
		return wangcfg.Document{}, nil, err
	}

	p, err := wangcfg.Build(doc)
	if err != nil {
		return wangcfg.Document{}, nil, errors.Wrapf(err, "build %s", path)
	}

	return doc, p, nil
}

// pickSet returns the named set, or the only set when name is empty.
func pickSet(p *wangcfg.Project, name string) (*wang.Set, error) {
	if strings.TrimSpace(name) == "" {
		if len(p.Sets) != 1 {
			return nil, errors.Newf("document has %d wang sets, choose one with --set", len(p.Sets))
		}
		return p.Sets[0], nil
	}

	s, ok := p.Set(name)
	if !ok {
		return nil, errors.Newf("unknown wang set %q", name)
	}

	return s, nil
}

// selectSets returns the named set, or all sets when name is empty.
func selectSets(p *wangcfg.Project, name string) ([]*wang.Set, error) {
	if strings.TrimSpace(name) == "" {
		return p.Sets, nil
	}

	s, err := pickSet(p, name)
	if err != nil {
		return nil, err
	}

	return []*wang.Set{s}, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// resolvePaths resolves the paths relative to the root directory.
func resolvePaths(root string, paths []string) []string {
	var out []string
	root = cleanAbs(root)
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if filepath.IsAbs(p) || root == "" {
			out = append(out, cleanAbs(p))
			continue
		}

		out = append(out, cleanAbs(filepath.Join(root, p)))
	}

	return out
}

// relImage returns the image path stored in a document: relative to root
// when possible, always with forward slashes.
func relImage(root, path string) string {
	if root = cleanAbs(root); root != "" {
		if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}
	}

	return filepath.ToSlash(path)
}

// cleanAbs cleans a path, empty stays empty.
func cleanAbs(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}

	return filepath.Clean(p)
}
