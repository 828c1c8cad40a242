// Package remote implements the document-database backend on Google
// Cloud Firestore. It is the preferred store while reachable; the
// failover facade demotes to the local store on its first error.
package remote

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"getlife/config"
)

// NewClient connects to the configured Firestore project. A nil client
// is returned when no remote backend is configured, which pins the
// facade to the local store from the start.
func NewClient(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	if cfg.Firestore == nil || cfg.Firestore.ProjectID == "" {
		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firestore.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firestore client")
	}

	return client, nil
}
