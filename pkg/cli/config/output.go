package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/utils/logging"
)

const gcsScheme = "gs://"

// outputLocation is a parsed --output value
type outputLocation struct {
	bucket string // empty for local files
	path   string
}

// parseOutput splits an output value into a GCS bucket and object, or a
// local path. A value ending with "/" (or empty) is a directory and
// defaultName is appended.
func parseOutput(output, defaultName string) (outputLocation, error) {
	if !strings.HasPrefix(output, gcsScheme) {
		if output == "" || strings.HasSuffix(output, "/") {
			return outputLocation{path: filepath.Join(output, defaultName)}, nil
		}
		return outputLocation{path: output}, nil
	}

	rest := strings.TrimPrefix(output, gcsScheme)
	bucket, object, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return outputLocation{}, goerr.Wrap(ErrInvalidOutput, "bucket is required", goerr.V(OutputKey, output))
	}
	if object == "" || strings.HasSuffix(object, "/") {
		object += defaultName
	}
	return outputLocation{bucket: bucket, path: object}, nil
}

func (o outputLocation) String() string {
	if o.bucket != "" {
		return gcsScheme + o.bucket + "/" + o.path
	}
	return o.path
}

// Output is an export destination. Close commits the written data; Abort
// discards it and leaves no file or object behind.
type Output interface {
	io.WriteCloser
	Abort() error
}

// OpenOutput opens a local file or a Cloud Storage object for writing. The
// write is complete only after Close returns nil.
func OpenOutput(ctx context.Context, output, defaultName string) (Output, string, error) {
	loc, err := parseOutput(output, defaultName)
	if err != nil {
		return nil, "", err
	}

	if loc.bucket == "" {
		// #nosec G304 - path is provided by CLI argument
		f, err := os.Create(loc.path)
		if err != nil {
			return nil, "", goerr.Wrap(err, "failed to create output file", goerr.V(OutputKey, loc.path))
		}
		return &fileWriter{File: f}, loc.String(), nil
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to create storage client")
	}

	// The object is created only if the writer is closed with a live context
	writeCtx, cancel := context.WithCancel(ctx)
	w := client.Bucket(loc.bucket).Object(loc.path).NewWriter(writeCtx)
	w.ContentType = "text/csv; charset=utf-8"
	logging.From(ctx).Debug("writing to cloud storage", "bucket", loc.bucket, "object", loc.path)

	return &gcsWriter{Writer: w, client: client, cancel: cancel}, loc.String(), nil
}

// fileWriter removes the partially written file on Abort
type fileWriter struct {
	*os.File
}

func (w *fileWriter) Abort() error {
	_ = w.File.Close()
	if err := os.Remove(w.Name()); err != nil && !os.IsNotExist(err) {
		return goerr.Wrap(err, "failed to remove output file", goerr.V(OutputKey, w.Name()))
	}
	return nil
}

// gcsWriter closes the storage client together with the object writer
type gcsWriter struct {
	*storage.Writer
	client *storage.Client
	cancel context.CancelFunc
}

// Abort cancels the upload so no object is created
func (w *gcsWriter) Abort() error {
	w.cancel()
	_ = w.Writer.Close()
	if err := w.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close storage client")
	}
	return nil
}

func (w *gcsWriter) Close() error {
	defer w.cancel()
	werr := w.Writer.Close()
	cerr := w.client.Close()
	if werr != nil {
		return goerr.Wrap(werr, "failed to finalize object")
	}
	if cerr != nil {
		return goerr.Wrap(cerr, "failed to close storage client")
	}
	return nil
}

// OpenInput opens a local file, stdin ("-") or a Cloud Storage object for reading
func OpenInput(ctx context.Context, input string) (io.ReadCloser, error) {
	if input == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	if !strings.HasPrefix(input, gcsScheme) {
		// #nosec G304 - path is provided by CLI argument
		f, err := os.Open(input)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open input file", goerr.V(OutputKey, input))
		}
		return f, nil
	}

	bucket, object, _ := strings.Cut(strings.TrimPrefix(input, gcsScheme), "/")
	if bucket == "" || object == "" {
		return nil, goerr.Wrap(ErrInvalidOutput, "bucket and object are required", goerr.V(OutputKey, input))
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}
	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		_ = client.Close()
		return nil, goerr.Wrap(err, "failed to open object", goerr.V(OutputKey, input))
	}
	return &gcsReader{Reader: r, client: client}, nil
}

// gcsReader closes the storage client together with the object reader
type gcsReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *gcsReader) Close() error {
	rerr := r.Reader.Close()
	cerr := r.client.Close()
	if rerr != nil {
		return goerr.Wrap(rerr, "failed to close object reader")
	}
	if cerr != nil {
		return goerr.Wrap(cerr, "failed to close storage client")
	}
	return nil
}
