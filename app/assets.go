package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/nzsnyn/bejalen/models"
)

// RootGroup is the group key for images that sit directly in the scan root.
const RootGroup = "root"

// ImageExtensions is the allow-list of scanned file extensions.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// AssetWalker enumerates image files below a public directory.
type AssetWalker struct {
	excludeDirs  map[string]bool
	excludeGlobs []glob.Glob
	log          Logger
}

func NewAssetWalker(cfg models.AssetsConfig, logger Logger) (*AssetWalker, error) {
	if logger == nil {
		logger = EmptyLog{}
	}
	w := &AssetWalker{
		excludeDirs: make(map[string]bool),
		log:         logger,
	}
	for _, name := range DefaultExcludeDirs {
		w.excludeDirs[name] = true
	}
	for _, name := range cfg.ExcludeDirs {
		w.excludeDirs[name] = true
	}
	for _, pattern := range cfg.ExcludePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		w.excludeGlobs = append(w.excludeGlobs, g)
	}
	return w, nil
}

func (w *AssetWalker) excluded(dirName string) bool {
	if w.excludeDirs[dirName] {
		return true
	}
	for _, g := range w.excludeGlobs {
		if g.Match(dirName) {
			return true
		}
	}
	return false
}

// Scan walks root and returns the tree of image files and the directories
// leading to them. A missing root yields an empty tree.
func (w *AssetWalker) Scan(root string) []models.AssetNode {
	if _, err := os.Stat(root); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			w.log.Error("Error reading directory %s: %v", root, err)
		}
		return []models.AssetNode{}
	}
	return w.scanDir(root, "")
}

func (w *AssetWalker) scanDir(dir, rel string) []models.AssetNode {
	nodes := []models.AssetNode{}

	// Open directory and read without sorting
	f, err := os.Open(dir)
	if err != nil {
		w.log.Error("Error reading directory %s: %v", dir, err)
		return nodes
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		w.log.Error("Error reading directory %s: %v", dir, err)
		return nodes
	}

	for _, entry := range entries {
		name := entry.Name()
		fullPath := filepath.Join(dir, name)
		relPath := path.Join(rel, name)

		info, err := os.Stat(fullPath)
		if err != nil {
			w.log.Error("Error reading stats for %s: %v", fullPath, err)
			continue
		}

		switch {
		case info.IsDir():
			if w.excluded(name) {
				continue
			}
			nodes = append(nodes, models.AssetNode{
				Type:  models.NodeDirectory,
				Name:  name,
				Path:  relPath,
				Files: w.scanDir(fullPath, relPath),
			})
		case info.Mode().IsRegular():
			ext := strings.ToLower(filepath.Ext(name))
			if !ImageExtensions[ext] {
				continue
			}
			nodes = append(nodes, models.AssetNode{
				Type:       models.NodeFile,
				Name:       name,
				Path:       relPath,
				URL:        "/" + relPath,
				Size:       info.Size(),
				Extension:  ext,
				ModifiedAt: info.ModTime(),
			})
		}
	}

	return nodes
}

// FlattenAssets returns the file nodes of a tree in depth-first order.
func FlattenAssets(nodes []models.AssetNode) []models.AssetNode {
	flat := []models.AssetNode{}
	for _, n := range nodes {
		if n.IsDir() {
			flat = append(flat, FlattenAssets(n.Files)...)
			continue
		}
		flat = append(flat, n)
	}
	return flat
}

// AssetGroupKey is the parent directory of a descriptor path, or RootGroup.
func AssetGroupKey(p string) string {
	dir := path.Dir(p)
	if dir == "." || dir == "/" {
		return RootGroup
	}
	return dir
}

// GroupAssets buckets files by AssetGroupKey, keeping input order per bucket.
func GroupAssets(files []models.AssetNode) map[string][]models.AssetNode {
	groups := make(map[string][]models.AssetNode)
	for _, f := range files {
		key := AssetGroupKey(f.Path)
		groups[key] = append(groups[key], f)
	}
	return groups
}

// Discover runs the full scan pipeline against root. Entry level problems are
// logged and skipped; only an unexpected failure of the whole pipeline is
// returned.
func (w *AssetWalker) Discover(root string) (scan *models.AssetScan, err error) {
	defer func() {
		if r := recover(); r != nil {
			scan = nil
			err = fmt.Errorf("asset scan of %s failed: %v", root, r)
		}
	}()

	structure := w.Scan(root)
	all := FlattenAssets(structure)

	return &models.AssetScan{
		Structure:     structure,
		AllImages:     all,
		GroupedImages: GroupAssets(all),
		TotalImages:   len(all),
	}, nil
}
