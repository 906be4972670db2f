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
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// Best-effort env file loading; flags always win.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "retrace",
		Usage: "Semantic memory and creative-process analysis for your content",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
				Value:   defaultString("RETRACE_DB", "./retrace_db"),
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "Vector store backend (badger, pgvector)",
				Value: defaultString("RETRACE_STORE", "badger"),
			},
			&cli.StringFlag{
				Name:  "pg-dsn",
				Usage: "PostgreSQL connection string for the pgvector backend",
				Value: os.Getenv("RETRACE_PG_DSN"),
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "OpenAI-compatible model host URL",
				Value: defaultString("RETRACE_MODEL_HOST", "http://localhost:11434/v1"),
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name",
				Value: defaultString("RETRACE_EMBEDDING_MODEL", "embeddinggemma"),
			},
			&cli.StringFlag{
				Name:  "completion-model",
				Usage: "Completion model name",
				Value: defaultString("RETRACE_COMPLETION_MODEL", "qwen2.5:3b"),
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Ingest files into the memory index",
				ArgsUsage: "FILE [FILE...]",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "title",
						Usage: "Document title (single file only; defaults to file name)",
					},
					&cli.StringFlag{
						Name:  "source",
						Usage: "Document source label",
						Value: "upload",
					},
					&cli.StringFlag{
						Name:  "content-type",
						Usage: "Content type (text, audio/video, url, document, youtube_video, web_content, media_url)",
						Value: "text",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent ingestion workers",
					},
				},
			},
			{
				Name:      "ask",
				Usage:     "Search the memory index",
				ArgsUsage: "QUERY",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: 5,
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum similarity score in [0, 1]",
						Value: 0.3,
					},
				},
			},
			{
				Name:      "analyze",
				Usage:     "Reconstruct the creative workflow behind content",
				ArgsUsage: "FILE",
				Action:    analyzeCommand,
			},
			{
				Name:      "process",
				Usage:     "Classify input and run retrieval plus analysis",
				ArgsUsage: "TEXT",
				Action:    processCommand,
			},
			{
				Name:   "stats",
				Usage:  "Show memory index statistics",
				Action: statsCommand,
			},
			{
				Name:      "delete",
				Usage:     "Delete all memories of a content ID",
				ArgsUsage: "CONTENT_ID",
				Action:    deleteCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func defaultString(env, fallback string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return fallback
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
