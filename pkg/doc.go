// Package pkg provides the core libraries for scenegen practice page generation.
//
// # Overview
//
// Scenegen turns a tagged word bank into printable articulation practice
// pages. The pkg directory is organized into four main areas:
//
//  1. [lexicon], [scene] - Domain logic (word bank, filtering, sampling, placement)
//  2. [assets], [cache], [usagelog], [config] - Infrastructure (images, artifact cache, logs, settings)
//  3. [render] - Rasterization and export sinks
//  4. [pipeline] - Orchestration (compose → load → render)
//
// # Architecture
//
// The typical data flow through scenegen:
//
//	Word Bank (JSON file or MongoDB)
//	         ↓
//	    [scene/filter] package (select words by target sound)
//	         ↓
//	    [scene] package (sample + place on the A4 canvas)
//	         ↓
//	    [render] package (draw + export)
//	         ↓
//	    PNG/SVG/PDF/JSON output
//
// # Quick Start
//
// Most callers go through the pipeline:
//
//	bank, _ := lexicon.Load("wordbank.json")
//	runner := pipeline.NewRunner(bank, assets.NewLoader("assets"), nil, nil, nil)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Mode:      "i-spy",
//	    Phonemes:  []string{"s"},
//	    Positions: []string{"initial"},
//	})
package pkg
