package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/woozymasta/wang-tool/internal/tilefiles"
	"github.com/woozymasta/wang-tool/internal/wang"
	"github.com/woozymasta/wang-tool/internal/wangcfg"
)

type generateCmd struct {
	Format string `short:"f" long:"format" choice:"yaml" choice:"json" default:"yaml" description:"Output format"`
	Root   string `short:"g" long:"root" description:"Root directory; paths and stored images are relative to it"`
	Name   string `short:"n" long:"name" default:"terrain" description:"Tileset name"`

	Args struct {
		Output string `positional-arg-name:"OUT" description:"Output document file (default: stdout)"`
	} `positional-args:"true"`

	Paths   []string `short:"p" long:"path" default:"." description:"Search path (repeatable)"`
	Verbose bool     `short:"v" long:"verbose" description:"Verbose per-file output"`
}

// Execute generates a document from the tile images found on disk.
func (c *generateCmd) Execute(_ []string) error {
	paths := resolvePaths(c.Root, c.Paths)
	if len(paths) == 0 {
		return errors.New("no valid search paths")
	}

	doc, err := generateDocument(paths, c.Root, c.Name, c.Verbose)
	if err != nil {
		return err
	}

	// catch generated ids the sets cannot hold before writing anything
	if _, err := wangcfg.Build(doc); err != nil {
		return err
	}

	out, err := wangcfg.Encode(doc, strings.ToLower(c.Format))
	if err != nil {
		return err
	}

	return writeOutput(c.Args.Output, out)
}

// generateDocument walks paths and registers every image whose name carries a wang id.
func generateDocument(paths []string, root, name string, verbose bool) (wangcfg.Document, error) {
	doc := wangcfg.Document{Tileset: wangcfg.Tileset{Name: name}}
	sets := map[string]*wangcfg.Set{}
	maxColor := map[string]int{}
	var order []string

	var (
		totalFiles, filesImage, filesNameReject int
		filesTypeReject, filesAdded             int
	)

	for _, p := range paths {
		err := filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				if verbose {
					fmt.Fprintf(os.Stderr, "skip: %s (walk error)\n", path)
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			totalFiles++
			if !tilefiles.IsImage(path) {
				return nil
			}

			filesImage++
			parsed, ok := tilefiles.ParseFile(path)
			if !ok {
				filesNameReject++
				if verbose {
					fmt.Fprintf(os.Stderr, "skip: %s (name reject)\n", path)
				}
				return nil
			}

			key := strings.ToLower(parsed.SetName)
			set := sets[key]
			if set == nil {
				set = &wangcfg.Set{Name: parsed.SetName, Type: parsed.Type.String()}
				sets[key] = set
				order = append(order, key)
			}
			if set.Type != parsed.Type.String() {
				filesTypeReject++
				if verbose {
					fmt.Fprintf(os.Stderr, "skip: %s (%s tile in %s set %s)\n", path, parsed.Type, set.Type, set.Name)
				}
				return nil
			}

			id := len(doc.Tileset.Tiles)
			doc.Tileset.Tiles = append(doc.Tileset.Tiles, wangcfg.Tile{ID: id, Image: relImage(root, path)})
			set.Tiles = append(set.Tiles, wangcfg.WangTile{Tile: id, WangID: parsed.ID.String()})
			for i := wang.Index(0); i < wang.NumIndexes; i++ {
				if c := parsed.ID.IndexColor(i); c > maxColor[key] {
					maxColor[key] = c
				}
			}

			filesAdded++
			if verbose {
				fmt.Fprintf(os.Stderr, "add: %s (%s -> %s)\n", path, parsed.ID, set.Name)
			}

			return nil
		})

		if err != nil {
			return wangcfg.Document{}, err
		}
	}

	for _, key := range order {
		set := sets[key]
		set.Colors = generateColors(set.Name, maxColor[key])
		doc.Sets = append(doc.Sets, *set)
	}

	fmt.Fprintf(os.Stderr, "files: %d\n", totalFiles)
	fmt.Fprintf(os.Stderr, "images: %d\n", filesImage)
	fmt.Fprintf(os.Stderr, "name rejects: %d\n", filesNameReject)
	fmt.Fprintf(os.Stderr, "type rejects: %d\n", filesTypeReject)
	fmt.Fprintf(os.Stderr, "added: %d\n", filesAdded)
	fmt.Fprintf(os.Stderr, "wang sets: %d\n", len(doc.Sets))

	return doc, nil
}

// generateColors names n colors after the terrains in the set name (grass-sand
// gives grass and sand), numbering the rest. Display colors are left to the
// document builder, which derives them from the names.
func generateColors(setName string, n int) []wangcfg.Color {
	names := tilefiles.ColorNames(setName)

	out := make([]wangcfg.Color, 0, n)
	for i := 1; i <= n; i++ {
		name := "color " + strconv.Itoa(i)
		if i <= len(names) {
			name = names[i-1]
		}
		out = append(out, wangcfg.Color{Name: name})
	}

	return out
}
