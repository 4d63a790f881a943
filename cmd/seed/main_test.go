package main

import (
	"testing"
	"time"

	entuser "crewpulse.io/crewpulse/ent/user"
)

func TestDemoUsers_UniqueIDsAndEmails(t *testing.T) {
	t.Parallel()

	users := demoUsers()
	byID := make(map[string]struct{}, len(users))
	byEmail := make(map[string]struct{}, len(users))
	for _, u := range users {
		if _, exists := byID[u.ID]; exists {
			t.Fatalf("duplicate user id: %s", u.ID)
		}
		byID[u.ID] = struct{}{}
		if _, exists := byEmail[u.Email]; exists {
			t.Fatalf("duplicate user email: %s", u.Email)
		}
		byEmail[u.Email] = struct{}{}
	}
}

func TestDemoUsers_TeamsExist(t *testing.T) {
	t.Parallel()

	teams := make(map[string]struct{})
	for _, tm := range demoTeams() {
		teams[tm.ID] = struct{}{}
	}
	for _, u := range demoUsers() {
		if u.TeamID == "" {
			continue
		}
		if _, ok := teams[u.TeamID]; !ok {
			t.Fatalf("user %s references unknown team %s", u.ID, u.TeamID)
		}
	}
}

func TestDemoUsers_ValidBirthDates(t *testing.T) {
	t.Parallel()

	for _, u := range demoUsers() {
		if u.BirthAt == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", "1994-"+u.BirthAt); err != nil {
			t.Fatalf("user %s has invalid birth date %q: %v", u.ID, u.BirthAt, err)
		}
	}
}

func TestDemoUsers_HasAdmin(t *testing.T) {
	t.Parallel()

	for _, u := range demoUsers() {
		if u.Role == entuser.RoleADMIN {
			return
		}
	}
	t.Fatal("demo data has no admin account")
}
