package local

import (
	"os"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	"getlife/config"
)

// NewBucket opens the on-disk bucket backing the local store, creating
// the directory on first use.
func NewBucket(cfg *config.Config) (*blob.Bucket, error) {
	path := cfg.LocalStore.Path
	if err := os.MkdirAll(path, 0o750); err != nil {
		return nil, errors.Wrapf(err, "create local store dir %s", path)
	}

	bucket, err := fileblob.OpenBucket(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open local store bucket %s", path)
	}

	return bucket, nil
}
