// Package session persists the single logged-in identity. The identity
// lives only in the local bucket, never in the remote store, so a
// session never travels across installs.
package session

import (
	"context"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// identityKey matches the key historically used for the session, so an
// upgraded install keeps its logged-in state.
const identityKey = "currentUser"

// Holder implements repository.SessionStore on the local bucket. The
// identity is stored as the raw string, not JSON.
type Holder struct {
	bucket *blob.Bucket
}

// New creates a Holder over the local bucket.
func New(bucket *blob.Bucket) *Holder {
	return &Holder{bucket: bucket}
}

func (h *Holder) Set(ctx context.Context, identity string) error {
	if err := h.bucket.WriteAll(ctx, identityKey, []byte(identity), nil); err != nil {
		return errors.Wrap(err, "persist session identity")
	}

	return nil
}

func (h *Holder) Get(ctx context.Context) (string, error) {
	data, err := h.bucket.ReadAll(ctx, identityKey)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", nil
		}

		return "", errors.Wrap(err, "read session identity")
	}

	return string(data), nil
}

func (h *Holder) Clear(ctx context.Context) error {
	if err := h.bucket.Delete(ctx, identityKey); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "clear session identity")
	}

	return nil
}
