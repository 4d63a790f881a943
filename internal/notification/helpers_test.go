package notification

import (
	"context"
	"testing"

	"crewpulse.io/crewpulse/ent"
	"crewpulse.io/crewpulse/internal/pkg/logger"
	"crewpulse.io/crewpulse/internal/testutil"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func newTestClient(t *testing.T, prefix string) *ent.Client {
	t.Helper()
	return testutil.OpenEntPostgres(t, prefix)
}

func mustCreateCompany(t *testing.T, client *ent.Client, id string) *ent.Company {
	t.Helper()
	company, err := client.Company.Create().
		SetID(id).
		SetName("Acme Retail " + id).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create company %s: %v", id, err)
	}
	return company
}

func mustCreateUser(t *testing.T, client *ent.Client, companyID, id, email string) *ent.User {
	t.Helper()
	user, err := client.User.Create().
		SetID(id).
		SetEmail(email).
		SetFirstName("User " + id).
		SetCompanyID(companyID).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user %s: %v", id, err)
	}
	return user
}

// prefMutator tweaks a preference create builder before save.
type prefMutator func(*ent.NotificationPreferenceCreate)

func mustCreatePreference(t *testing.T, client *ent.Client, userID string, mutate prefMutator) *ent.NotificationPreference {
	t.Helper()
	create := client.NotificationPreference.Create().
		SetID("pref-" + userID).
		SetUserID(userID)
	if mutate != nil {
		mutate(create)
	}
	pref, err := create.Save(context.Background())
	if err != nil {
		t.Fatalf("create preference for %s: %v", userID, err)
	}
	return pref
}
