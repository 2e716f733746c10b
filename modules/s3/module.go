package s3

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/registry"
	"resty.dev/v3"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the 'arguments' HCL block.
type Input struct {
	Action          string `hcl:"action"`
	SourcePath      string `hcl:"source_path,optional"`
	UploadURL       string `hcl:"upload_url,optional"`
	DownloadURL     string `hcl:"download_url,optional"`
	DestinationPath string `hcl:"destination_path,optional"`
}

// ClientProvider is satisfied by the http_client component.
type ClientProvider interface {
	Resty() (*resty.Client, error)
}

// Transfer moves one object through a pre-signed URL when run.
type Transfer struct {
	input  *Input
	client ClientProvider

	Status string
	Bytes  int64
}

func newTransfer(_ context.Context, input *Input, deps component.Deps) (any, error) {
	client, err := component.Get[ClientProvider](deps, "client")
	if err != nil {
		return nil, err
	}

	input.Action = strings.ToLower(input.Action)
	switch input.Action {
	case "upload":
		if input.SourcePath == "" || input.UploadURL == "" {
			return nil, fmt.Errorf("s3 upload requires source_path and upload_url")
		}
	case "download":
		if input.DownloadURL == "" || input.DestinationPath == "" {
			return nil, fmt.Errorf("s3 download requires download_url and destination_path")
		}
	default:
		return nil, fmt.Errorf("unknown s3 action: '%s'", input.Action)
	}
	return &Transfer{input: input, client: client}, nil
}

// Run performs the configured action.
func (t *Transfer) Run(ctx context.Context) error {
	rc, err := t.client.Resty()
	if err != nil {
		return err
	}
	if t.input.Action == "upload" {
		return t.upload(ctx, rc)
	}
	return t.download(ctx, rc)
}

// upload PUTs the whole file so the request carries a Content-Length.
func (t *Transfer) upload(ctx context.Context, rc *resty.Client) error {
	logger := ctxlog.FromContext(ctx).With("action", "upload")

	data, err := os.ReadFile(t.input.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to read source file '%s': %w", t.input.SourcePath, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(t.input.SourcePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	logger.Info("Uploading file to S3", "source", t.input.SourcePath, "size", len(data), "contentType", contentType)

	res, err := rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Put(t.input.UploadURL)
	if err != nil {
		return fmt.Errorf("failed to execute S3 upload request: %w", err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("S3 upload failed with status: %s", res.Status())
	}

	t.Status = res.Status()
	t.Bytes = int64(len(data))
	logger.Info("Successfully uploaded file", "status", res.Status())
	return nil
}

func (t *Transfer) download(ctx context.Context, rc *resty.Client) error {
	logger := ctxlog.FromContext(ctx).With("action", "download")
	logger.Info("Downloading object from S3", "destination", t.input.DestinationPath)

	res, err := rc.R().SetContext(ctx).Get(t.input.DownloadURL)
	if err != nil {
		return fmt.Errorf("failed to execute S3 download request: %w", err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("S3 download failed with status: %s", res.Status())
	}

	data := res.Bytes()
	if err := os.WriteFile(t.input.DestinationPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write destination file '%s': %w", t.input.DestinationPath, err)
	}

	t.Status = res.Status()
	t.Bytes = int64(len(data))
	logger.Info("Successfully downloaded object", "status", res.Status(), "size", len(data))
	return nil
}

func (t *Transfer) String() string {
	return fmt.Sprintf("s3 %s (%s, %d bytes)", t.input.Action, t.Status, t.Bytes)
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(registry.NewKind("s3", "Uploads or downloads an object through a pre-signed URL.", newTransfer))
}
