package workflow

import (
	"context"
	"log/slog"

	"github.com/docsight/docsight/pkg/models"
)

// State tracks the remote file resource across a run:
// NONE → UPLOADED → GENERATED? → RETRIEVED? → DELETED|DELETE_FAILED.
type State string

const (
	StateNone         State = "NONE"
	StateUploaded     State = "UPLOADED"
	StateGenerated    State = "GENERATED"
	StateRetrieved    State = "RETRIEVED"
	StateDeleted      State = "DELETED"
	StateDeleteFailed State = "DELETE_FAILED"
)

// Options configures a single run. Values come from pkg/config and flags;
// the workflow itself never reads the environment.
type Options struct {
	FilePath         string
	DisplayName      string
	Prompt           string
	AllowPlaceholder bool
}

// Report is the outcome of one run. Err holds the first upload/generate/
// retrieve failure; CleanupErr holds a delete failure, which is a warning and
// never affects the process exit.
type Report struct {
	PlaceholderCreated bool
	Uploaded           *models.RemoteFile
	Output             string
	Retrieved          *models.RemoteFile
	State              State
	Err                error
	CleanupErr         error
}

// Run executes the pipeline upload → generate → retrieve → delete, strictly in
// order. Once the upload has succeeded, exactly one delete attempt for that
// resource runs on every exit path, whatever generation or retrieval did.
// Run never panics and never returns early without cleanup; failures are
// recorded on the report and the caller decides what to print.
func Run(ctx context.Context, agent models.Agent, opts Options, log *slog.Logger) *Report {
	if log == nil {
		log = slog.Default()
	}
	rep := &Report{State: StateNone}

	created, err := EnsureInputFile(opts.FilePath, opts.AllowPlaceholder)
	if err != nil {
		rep.Err = err
		log.Error("input file unavailable", "path", opts.FilePath, "error", err)
		return rep
	}
	rep.PlaceholderCreated = created
	if created {
		log.Warn("input file missing, created placeholder", "path", opts.FilePath)
	} else {
		log.Info("found input file", "path", opts.FilePath)
	}

	// Cleanup is keyed on a successful upload and must survive a context that
	// expired mid-workflow.
	defer func() {
		if rep.Uploaded == nil {
			return
		}
		name := rep.Uploaded.Name
		log.Info("deleting remote file", "name", name)
		if err := agent.DeleteFile(context.WithoutCancel(ctx), name); err != nil {
			rep.CleanupErr = Classify("delete", err)
			rep.State = StateDeleteFailed
			log.Warn("could not delete remote file", "name", name, "error", err)
			return
		}
		rep.State = StateDeleted
		log.Info("remote file deleted", "name", name)
	}()

	log.Info("uploading file", "path", opts.FilePath)
	uploaded, err := agent.UploadFile(ctx, opts.FilePath, opts.DisplayName)
	if err != nil {
		rep.Err = Classify("upload", err)
		log.Error("upload failed", "error", err)
		return rep
	}
	rep.Uploaded = uploaded
	rep.State = StateUploaded
	log.Info("upload successful", "name", uploaded.Name, "mime", uploaded.MIMEType)

	log.Info("generating content with uploaded file", "name", uploaded.Name)
	out, err := agent.GenerateWithFile(ctx, opts.Prompt, uploaded)
	if err != nil {
		rep.Err = Classify("generate", err)
		log.Error("generation failed", "error", err)
		return rep
	}
	rep.Output = out
	rep.State = StateGenerated
	log.Info("generation successful")

	log.Info("retrieving file metadata", "name", uploaded.Name)
	retrieved, err := agent.GetFile(ctx, uploaded.Name)
	if err != nil {
		rep.Err = Classify("get", err)
		log.Error("metadata retrieval failed", "error", err)
		return rep
	}
	rep.Retrieved = retrieved
	rep.State = StateRetrieved
	log.Info("retrieval successful",
		"display_name", retrieved.DisplayName,
		"uri", retrieved.URI,
		"created", retrieved.CreateTime)

	return rep
}
