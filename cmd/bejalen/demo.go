package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

// Minimal file headers, enough for content sniffing.
var (
	pngData  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	jpgData  = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00\xff\xd9")
	webpData = []byte("RIFF\x1a\x00\x00\x00WEBPVP8L\x0d\x00\x00\x00\x2f\x00\x00\x00\x10\x07\x10\x11\x11\x88\x88\xfe\x07\x00")
	svgData  = []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"/>`)
)

type demoFile struct {
	path    string
	data    []byte
	modTime int64
}

var demoFiles = []demoFile{
	// Page headers in the root
	{path: "header-home.png", data: pngData, modTime: 1706695200},
	{path: "header-home2.png", data: pngData, modTime: 1706695200},
	{path: "rawaPeningHeader.png", data: pngData, modTime: 1706608800},
	{path: "perahuMesinHeader.png", data: pngData, modTime: 1706608800},
	{path: "kampoengRawa.png", data: pngData, modTime: 1706522400},
	{path: "lucky.png", data: pngData, modTime: 1706522400},
	{path: "poster.png", data: pngData, modTime: 1706436000},
	{path: "logo.svg", data: svgData, modTime: 1706436000},

	// Attraction pictures
	{path: "kampoeng/kuliner.png", data: pngData, modTime: 1704067200},
	{path: "kampoeng/jogloApung.png", data: pngData, modTime: 1704067200},
	{path: "kampoeng/spot.png", data: pngData, modTime: 1704067200},

	// Gallery
	{path: "gallery/rawa-pening/rawa1.jpg", data: jpgData, modTime: 1698796800},
	{path: "gallery/rawa-pening/sunrise.jpg", data: jpgData, modTime: 1698796800},
	{path: "gallery/perahu-mesin/perahu.webp", data: webpData, modTime: 1701388800},
	{path: "gallery/kampoeng-rawa/kampoeng.jpg", data: jpgData, modTime: 1701388800},

	// Not images, skipped by the scan
	{path: "robots.txt", data: []byte("User-agent: *\n"), modTime: 1706695200},
	{path: "docs/brosur.pdf", data: []byte("%PDF-1.4\n"), modTime: 1706695200},

	// Excluded directories
	{path: "node_modules/pkg/icon.png", data: pngData, modTime: 1706695200},
	{path: ".next/cache/og.png", data: pngData, modTime: 1706695200},
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a sample public directory to try the asset scan on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			for _, f := range demoFiles {
				target := filepath.Join(dir, filepath.FromSlash(f.path))
				if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
					return err
				}
				if err := os.WriteFile(target, f.data, 0644); err != nil {
					return err
				}
				mt := time.Unix(f.modTime, 0)
				if err := os.Chtimes(target, mt, mt); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d files in %s\n", color.Green.Sprint("wrote"), len(demoFiles), dir)
			return nil
		},
	}
	cmd.Flags().String("dir", "public-demo", "Directory to write the sample tree into")
	return cmd
}
