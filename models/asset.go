package models

import (
	"encoding/json"
	"time"
)

const (
	NodeFile      = "file"
	NodeDirectory = "directory"
)

// AssetNode is one entry of the scanned public tree. File nodes carry the
// descriptor fields, directory nodes carry Files.
type AssetNode struct {
	Type       string
	Name       string
	Path       string
	URL        string
	Size       int64
	Extension  string
	ModifiedAt time.Time
	Files      []AssetNode
}

func (n AssetNode) IsDir() bool {
	return n.Type == NodeDirectory
}

type assetFileJSON struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	Extension  string    `json:"extension"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

type assetDirJSON struct {
	Type  string      `json:"type"`
	Name  string      `json:"name"`
	Path  string      `json:"path"`
	Files []AssetNode `json:"files"`
}

func (n AssetNode) MarshalJSON() ([]byte, error) {
	if n.IsDir() {
		files := n.Files
		if files == nil {
			files = []AssetNode{}
		}
		return json.Marshal(assetDirJSON{Type: n.Type, Name: n.Name, Path: n.Path, Files: files})
	}
	return json.Marshal(assetFileJSON{
		Type:       n.Type,
		Name:       n.Name,
		Path:       n.Path,
		URL:        n.URL,
		Size:       n.Size,
		Extension:  n.Extension,
		ModifiedAt: n.ModifiedAt,
	})
}

func (n *AssetNode) UnmarshalJSON(data []byte) error {
	var raw struct {
		assetFileJSON
		Files []AssetNode `json:"files"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = AssetNode{
		Type:       raw.Type,
		Name:       raw.Name,
		Path:       raw.Path,
		URL:        raw.URL,
		Size:       raw.Size,
		Extension:  raw.Extension,
		ModifiedAt: raw.ModifiedAt,
		Files:      raw.Files,
	}
	return nil
}

type AssetScan struct {
	Structure     []AssetNode            `json:"structure"`
	AllImages     []AssetNode            `json:"allImages"`
	GroupedImages map[string][]AssetNode `json:"groupedImages"`
	TotalImages   int                    `json:"totalImages"`
}
