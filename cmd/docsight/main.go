// docsight uploads a local file to the Gemini Files API, asks a multimodal
// model to analyze it, re-reads the stored metadata, and deletes the remote
// copy. Once the upload has succeeded the remote file is removed on every
// exit path; a failed delete is only a warning.
//
// Examples:
//
//	export GOOGLE_AI_STUDIO_API_KEY=...   # or GOOGLE_API_KEY / GEMINI_API_KEY
//	docsight -file receipt.png -prompt "What is the total on this receipt?"
//
//	docsight -list     # show files currently stored with the provider
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"github.com/docsight/docsight/pkg/config"
	"github.com/docsight/docsight/pkg/logger"
	"github.com/docsight/docsight/pkg/models"
	"github.com/docsight/docsight/pkg/workflow"
)

func main() {
	_ = godotenv.Load() // optional .env next to the binary

	cfg := config.Load()

	flag.StringVar(&cfg.FilePath, "file", cfg.FilePath, "Path of the local file to analyze")
	flag.StringVar(&cfg.Model, "model", cfg.Model, "Gemini model ID")
	flag.StringVar(&cfg.DisplayName, "display-name", cfg.DisplayName, "Display name for the uploaded file")
	flag.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "Instruction sent alongside the file")
	flag.BoolVar(&cfg.AllowPlaceholder, "placeholder", cfg.AllowPlaceholder,
		"Write a placeholder text file when -file does not exist (demo convenience)")
	flag.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Overall workflow timeout")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	list := flag.Bool("list", false, "List remote files and exit")
	flag.Parse()

	log := logger.New(cfg.LogLevel)

	// All error paths print and return normally; the only correctness property
	// here is that an uploaded file gets a delete attempt before exit.
	if err := cfg.Validate(); err != nil {
		log.Error("client initialization failed", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	agent, err := models.NewGeminiLLM(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		log.Error("client initialization failed", "error", err)
		return
	}
	defer agent.Close()
	log.Info("client initialized", "model", cfg.Model)

	if *list {
		listFiles(ctx, agent, log)
		return
	}

	rep := workflow.Run(ctx, agent, workflow.Options{
		FilePath:         cfg.FilePath,
		DisplayName:      cfg.DisplayName,
		Prompt:           cfg.Prompt,
		AllowPlaceholder: cfg.AllowPlaceholder,
	}, log)
	printReport(rep)
}

func listFiles(ctx context.Context, agent models.Agent, log *slog.Logger) {
	files, err := agent.ListFiles(ctx)
	if err != nil {
		log.Error("listing remote files failed", "error", err)
		return
	}
	if len(files) == 0 {
		fmt.Println("no remote files")
		return
	}
	for _, f := range files {
		fmt.Printf("%s\t%s\t%s\t%d bytes\texpires %s\n",
			f.Name, f.DisplayName, f.MIMEType, f.SizeBytes, f.ExpireTime.Format(time.RFC3339))
	}
}

func printReport(rep *workflow.Report) {
	if rep.Output != "" {
		fmt.Println("\n--- Model Response ---")
		fmt.Println(rep.Output)
		fmt.Println("----------------------")
	}
	if rep.Retrieved != nil {
		fmt.Printf("\nDisplay name: %s\n", rep.Retrieved.DisplayName)
		fmt.Printf("URI:          %s\n", rep.Retrieved.URI)
		fmt.Printf("Created:      %s\n", rep.Retrieved.CreateTime.Format(time.RFC3339))
	}
	fmt.Printf("\nFinal state: %s\n", rep.State)
}
