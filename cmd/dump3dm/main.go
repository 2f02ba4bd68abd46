// Package main provides a command-line utility to dump 3dm file metadata.
// It prints the archive version, comment, properties and settings sections.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/scigolib/opennurbs"
)

func main() {
	verbose := flag.Bool("v", false, "Print settings in addition to properties")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: dump3dm [flags] <file.3dm>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	f, err := opennurbs.Open(args[0])
	if err != nil {
		log.Fatalf("Failed to open file: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Failed to close file: %v", err)
		}
	}()

	info, err := os.Stat(args[0])
	if err != nil {
		log.Fatalf("Failed to stat file: %v", err)
	}

	arch := f.Archive()
	fmt.Printf("File:    %s (%s)\n", args[0], humanize.Bytes(uint64(info.Size())))
	fmt.Printf("Version: %s\n", arch.Version)
	if arch.Comment != "" {
		fmt.Printf("Comment: %s\n", arch.Comment)
	}

	switch {
	case arch.Properties.V1 != nil:
		dumpPropertiesV1(arch.Properties.V1)
	case arch.Properties.V2 != nil:
		dumpPropertiesV2(arch.Properties.V2)
	}

	if *verbose {
		dumpSettings(&arch.Settings)
	}
}

func dumpPropertiesV1(p *opennurbs.PropertiesV1) {
	fmt.Println("Properties (V1 layout):")
	dumpRevisionHistory(&p.RevisionHistory)
	dumpNotes(&p.Notes)
	dumpPreview("  preview image", p.PreviewImage)
}

func dumpPropertiesV2(p *opennurbs.PropertiesV2) {
	fmt.Println("Properties:")
	if p.FileName != "" {
		fmt.Printf("  file name:    %s\n", p.FileName)
	}
	if !p.Version.IsZero() {
		d := p.Version.Date()
		fmt.Printf("  written by:   openNURBS %d.%d (%04d-%02d-%02d)\n",
			p.Version.Major(), p.Version.Minor(), d.Year(), d.Month(), d.DayOfMonth())
	}
	if p.Application.Name != "" {
		fmt.Printf("  application:  %s (%s)\n", p.Application.Name, p.Application.URL)
	}
	dumpRevisionHistory(&p.RevisionHistory)
	dumpNotes(&p.Notes)
	dumpPreview("  preview image", p.PreviewImage)
	dumpPreview("  compressed preview image", p.CompressedPreviewImage)
}

func dumpRevisionHistory(r *opennurbs.RevisionHistory) {
	if r.CreatedBy == "" && r.LastEditedBy == "" && r.RevisionCount == 0 {
		return
	}
	fmt.Printf("  created by:   %s\n", r.CreatedBy)
	fmt.Printf("  last edit by: %s\n", r.LastEditedBy)
	fmt.Printf("  revisions:    %d\n", r.RevisionCount)
}

func dumpNotes(n *opennurbs.Notes) {
	if n.Data == "" {
		return
	}
	fmt.Printf("  notes:        %s\n", n.Data)
}

func dumpPreview(label string, p opennurbs.PreviewImage) {
	if !p.Present {
		return
	}
	fmt.Printf("%s: %s\n", label, humanize.Bytes(uint64(p.Size)))
}

func dumpSettings(s *opennurbs.Settings) {
	fmt.Println("Settings:")
	fmt.Printf("  plug-ins:     %d\n", len(s.PluginList))
	if s.ModelURL != "" {
		fmt.Printf("  model URL:    %s\n", s.ModelURL)
	}
	fmt.Printf("  render mesh curvature:   %v\n", s.RenderMesh.ComputeCurvature)
	fmt.Printf("  analysis mesh curvature: %v\n", s.AnalysisMesh.ComputeCurvature)
	fmt.Printf("  annotation dim scale:    %g\n", s.Annotation.DimScale)
	fmt.Printf("  current color:           #%06X (source %d)\n",
		uint32(s.CurrentColor.Color)&0xFFFFFF, s.CurrentColor.Source)
}
