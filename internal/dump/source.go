package dump

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/klauspost/compress/gzip"
)

// ErrUnavailable means a dump could not be opened. It aborts the phase that
// reads the dump.
var ErrUnavailable = errors.New("dump unavailable")

const s3Scheme = "s3://"

// ObjectGetter is the subset of *s3.Client the opener needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Opener opens dumps from the local filesystem or from s3://bucket/key
// locations. Paths ending in .gz are decompressed while reading.
type Opener struct {
	s3 ObjectGetter
}

// NewOpener returns an Opener. objects may be nil when no dump lives in S3.
func NewOpener(objects ObjectGetter) *Opener {
	return &Opener{s3: objects}
}

// IsS3 reports whether path names an S3 object.
func IsS3(path string) bool {
	return strings.HasPrefix(path, s3Scheme)
}

func (o *Opener) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	if IsS3(path) {
		rc, err = o.openObject(ctx, path)
	} else {
		rc, err = os.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}

	if !strings.HasSuffix(path, ".gz") {
		return rc, nil
	}
	zr, err := gzip.NewReader(rc)
	if err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}
	return &gzipReadCloser{Reader: zr, src: rc}, nil
}

func (o *Opener) openObject(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(path, s3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return nil, errors.New("expected s3://bucket/key")
	}
	if o.s3 == nil {
		return nil, errors.New("s3 client not configured")
	}
	out, err := o.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

type gzipReadCloser struct {
	*gzip.Reader
	src io.ReadCloser
}

func (g *gzipReadCloser) Close() error {
	zerr := g.Reader.Close()
	if err := g.src.Close(); err != nil {
		return err
	}
	return zerr
}
