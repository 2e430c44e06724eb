// Package issuestore persists server issues grouped by file key.
//
// Issues live in bucket files named after the xxhash of their file key, so a
// store holding many files spreads them over a two level directory tree. Each
// bucket is a stream of length delimited {file key, issue} records; keys that
// collide on the hash share a bucket and are told apart on read.
package issuestore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lintsync/internal/adapters/codec"
	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultFlushThreshold is the amount of buffered bytes that triggers a flush.
const DefaultFlushThreshold = 4 << 20

var _ ports.IssueStoreFactory = (*Factory)(nil)

// Factory creates stores on the local filesystem.
type Factory struct {
	flushThreshold int
}

// NewFactory creates a Factory.
func NewFactory() *Factory {
	return &Factory{flushThreshold: DefaultFlushThreshold}
}

// Create starts a new store in dir.
func (f *Factory) Create(dir string) (ports.IssueWriter, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", dir)
	}
	return &Writer{
		dir:       dir,
		threshold: f.flushThreshold,
		pending:   make(map[string][]byte),
	}, nil
}

// Open returns a read view on a store.
func (f *Factory) Open(dir string) ports.IssueReader {
	return &Reader{dir: dir}
}

// Writer buffers records per bucket and appends them to disk in batches.
// It is not safe for concurrent use.
type Writer struct {
	dir       string
	threshold int
	pending   map[string][]byte
	buffered  int
	closed    bool
}

// Append adds an issue to the bucket of fileKey.
func (w *Writer) Append(fileKey string, issue *domain.ServerIssue) error {
	if w.closed {
		return zerr.Wrap(errors.New("writer is closed"), domain.ErrStoreWriteFailed.Error())
	}

	path := bucketPath(w.dir, fileKey)
	before := len(w.pending[path])
	w.pending[path] = codec.AppendDelimited(w.pending[path], codec.MarshalStoredIssue(fileKey, issue))
	w.buffered += len(w.pending[path]) - before

	if w.buffered >= w.threshold {
		return w.flush()
	}
	return nil
}

// Close flushes the remaining records.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.flush()
}

func (w *Writer) flush() error {
	for path, data := range w.pending {
		if err := appendFile(path, data); err != nil {
			return err
		}
		delete(w.pending, path)
	}
	w.buffered = 0
	return nil
}

func appendFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is built from the store directory and a hashed file key
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}

// Reader loads issues from a store directory.
type Reader struct {
	dir string
}

// Load returns the issues of fileKey in append order.
func (r *Reader) Load(fileKey string) ([]*domain.ServerIssue, error) {
	path := bucketPath(r.dir, fileKey)
	//nolint:gosec // Path is built from the store directory and a hashed file key
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	var out []*domain.ServerIssue
	br := bufio.NewReader(bytes.NewReader(data))
	for {
		msg, err := codec.ReadDelimited(br)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}

		_, issue, err := codec.UnmarshalStoredIssue(msg, func(k string) bool { return k == fileKey })
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		if issue != nil {
			out = append(out, issue)
		}
	}
}

// bucketPath maps a file key to dir/xx/yyyyyyyyyyyyyy.pb.
func bucketPath(dir, fileKey string) string {
	name := fmt.Sprintf("%016x", xxhash.Sum64String(fileKey))
	return filepath.Join(dir, name[:2], name[2:]+".pb")
}
