package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_ValidDocument(t *testing.T) {
	doc, err := Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, doc)
}

// The request validator ignores paths it does not know, so an undocumented
// route is a silent contract gap. Every route the router mounts must have a
// path item here.
func TestLoad_DocumentsEveryMountedPath(t *testing.T) {
	doc, err := Load(context.Background())
	require.NoError(t, err)

	mounted := []string{
		"/health/live",
		"/health/ready",
		"/notifications",
		"/notifications/unread-count",
		"/notifications/read-all",
		"/notifications/{id}/read",
		"/notifications/read",
		"/notifications/{id}",
		"/preferences",
		"/push/subscriptions",
		"/push/vapid-public-key",
		"/cron/digests",
		"/cron/birthdays",
	}
	for _, path := range mounted {
		require.NotNil(t, doc.Paths.Find(path), "path %s is missing from the contract", path)
	}
}
