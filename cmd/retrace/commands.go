// Copyright 2026 Halcyon Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/halcyonlabs/retrace"
	"github.com/halcyonlabs/retrace/ai"
	"github.com/halcyonlabs/retrace/core"
	"github.com/halcyonlabs/retrace/ingest"
	"github.com/halcyonlabs/retrace/storage/pgvector"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	scoreColor  = color.New(color.FgGreen)
	faintColor  = color.New(color.Faint)
	errorColor  = color.New(color.FgRed)
)

// openSystem builds a System from the global flags.
func openSystem(c *cli.Context) (*retrace.System, error) {
	cfg := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithCompletionModel(c.String("completion-model")),
	)

	switch c.String("store") {
	case "badger", "":
		return retrace.NewSystem(c.String("db"), retrace.WithAIConfig(cfg))
	case "pgvector":
		dsn := c.String("pg-dsn")
		if dsn == "" {
			return nil, fmt.Errorf("pg-dsn is required for the pgvector backend")
		}
		store, err := pgvector.NewStore(c.Context, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		return retrace.NewSystem("", retrace.WithAIConfig(cfg), retrace.WithStore(store))
	default:
		return nil, fmt.Errorf("unknown store %q: must be badger or pgvector", c.String("store"))
	}
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one file is required")
	}

	contentType := core.ContentType(c.String("content-type"))
	if err := core.ValidateContentType(contentType); err != nil {
		return err
	}

	sys, err := openSystem(c)
	if err != nil {
		return err
	}
	defer sys.Close()

	var opts []ingest.Option
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, ingest.WithPoolSize(workers))
	}
	pipeline, err := sys.NewIngestPipeline(opts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	var sources []ingest.Source
	for _, path := range c.Args().Slice() {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		title := c.String("title")
		if title == "" || c.NArg() > 1 {
			title = filepath.Base(path)
		}
		sources = append(sources, ingest.Source{
			Document: core.Document{
				ID:          uuid.NewString(),
				Title:       title,
				Source:      c.String("source"),
				ContentType: contentType,
				CreatedAt:   time.Now().UTC(),
			},
			Text: string(data),
		})
	}

	results := pipeline.IngestAll(c.Context, sources)

	failed := 0
	for i, r := range results {
		if r.Err != nil {
			failed++
			errorColor.Printf("✗ %s: %v\n", c.Args().Get(i), r.Err)
			continue
		}
		fmt.Printf("✓ %s: %d chunks as %s\n", c.Args().Get(i), r.Chunks, r.ContentID)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}

func askCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("a query is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	sys, err := openSystem(c)
	if err != nil {
		return err
	}
	defer sys.Close()

	results, err := sys.Index().Retrieve(c.Context, query, c.Int("limit"), c.Float64("threshold"))
	if err != nil {
		return err
	}

	if len(results) == 0 {
		faintColor.Println("No matching memories found")
		return nil
	}

	headerColor.Printf("Found %d memories\n\n", len(results))
	for i, r := range results {
		scoreColor.Printf("%d. [%.3f] ", i+1, r.Score)
		fmt.Printf("%s\n", r.Title)
		faintColor.Printf("   %s · %s · %s\n", r.Source, r.ContentType, r.Timestamp)
		fmt.Printf("   %s\n\n", excerpt(r.Text, 200))
	}
	return nil
}

func analyzeCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one file is required")
	}
	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return err
	}

	sys, err := openSystem(c)
	if err != nil {
		return err
	}
	defer sys.Close()

	bp, err := sys.Generator().Generate(c.Context, string(data))
	if err != nil {
		return err
	}

	headerColor.Printf("Workflow reconstruction (%s, confidence %.2f)\n\n", bp.ContentType, bp.Confidence)
	for _, step := range bp.Steps {
		fmt.Printf("%d. %s: %s\n", step.Step, step.Tool, step.Action)
		if step.Note != "" {
			faintColor.Printf("   %s\n", step.Note)
		}
	}
	if len(bp.Insights) > 0 {
		headerColor.Println("\nInsights")
		for _, insight := range bp.Insights {
			fmt.Printf("- %s\n", insight)
		}
	}
	return nil
}

func processCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("input text is required")
	}
	input := strings.Join(c.Args().Slice(), " ")

	sys, err := openSystem(c)
	if err != nil {
		return err
	}
	defer sys.Close()

	resp, err := sys.Orchestrator().Process(c.Context, input)
	if err != nil {
		return err
	}

	headerColor.Printf("Classified as %s (confidence %.2f)\n\n", resp.Analysis.ContentType, resp.Analysis.Confidence)

	if len(resp.Memories) > 0 {
		headerColor.Println("Memories")
		for i, m := range resp.Memories {
			scoreColor.Printf("%d. [%.3f] ", i+1, m.Score)
			fmt.Printf("%s - %s\n", m.Title, excerpt(m.Text, 120))
		}
		fmt.Println()
	}

	if len(resp.Blueprint) > 0 {
		headerColor.Println("Blueprint")
		for _, step := range resp.Blueprint {
			fmt.Printf("%d. %s: %s\n", step.Step, step.Tool, step.Action)
		}
		fmt.Println()
	}

	headerColor.Println("Analysis")
	for _, insight := range resp.Analysis.Insights {
		fmt.Printf("- %s\n", insight)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	sys, err := openSystem(c)
	if err != nil {
		return err
	}
	defer sys.Close()

	stats, err := sys.Index().CollectStats(c.Context)
	if err != nil {
		return err
	}

	headerColor.Println("Memory index statistics")
	fmt.Printf("Records: %d\n", stats.Records)
	if stats.Sampled > 0 {
		faintColor.Printf("(content type and source tallies from a sample of %d)\n", stats.Sampled)
		for ct, n := range stats.ByContentType {
			fmt.Printf("  %s: %d\n", ct, n)
		}
		for source, n := range stats.BySource {
			fmt.Printf("  source %s: %d\n", source, n)
		}
	}
	return nil
}

func deleteCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one content ID is required")
	}

	sys, err := openSystem(c)
	if err != nil {
		return err
	}
	defer sys.Close()

	deleted, err := sys.Index().Delete(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d records\n", deleted)
	return nil
}

func excerpt(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
