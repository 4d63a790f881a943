// Package main provides demo data seeding for CrewPulse.
//
// The server auto-migrates on startup; this command only performs
// idempotent data bootstrap for local development and demos.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crewpulse.io/crewpulse/ent"
	entnotification "crewpulse.io/crewpulse/ent/notification"
	entuser "crewpulse.io/crewpulse/ent/user"
	"crewpulse.io/crewpulse/internal/config"
	"crewpulse.io/crewpulse/internal/infrastructure"
	"crewpulse.io/crewpulse/internal/pkg/logger"
)

const demoCompanyID = "company-demo"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	if cfg.Database.AutoMigrate {
		if err := client.Schema.Create(ctx); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}

	logger.Info("Starting demo data seeding...")

	if err := seedCompany(ctx, client); err != nil {
		return fmt.Errorf("seed company: %w", err)
	}
	if err := seedTeams(ctx, client); err != nil {
		return fmt.Errorf("seed teams: %w", err)
	}
	if err := seedUsers(ctx, client); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedNotifications(ctx, client); err != nil {
		return fmt.Errorf("seed notifications: %w", err)
	}

	logger.Info("Demo data seeding completed successfully")
	return nil
}

func seedCompany(ctx context.Context, client *ent.Client) error {
	_, err := client.Company.Create().
		SetID(demoCompanyID).
		SetName("Acme Staffing").
		SetBirthdayNotificationsEnabled(true).
		SetBirthdayNotifySelf(true).
		SetBirthdayNotifyTeam(true).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("Demo company already exists, skipping")
			return nil
		}
		return fmt.Errorf("create company: %w", err)
	}
	logger.Info("Seeded demo company", zap.String("company", "Acme Staffing"))
	return nil
}

// demoTeam defines a team for seeding.
type demoTeam struct {
	ID   string
	Name string
}

func demoTeams() []demoTeam {
	return []demoTeam{
		{ID: "team-front-of-house", Name: "Front of House"},
		{ID: "team-kitchen", Name: "Kitchen"},
	}
}

// demoUser defines a demo account. Every account gets the same
// password ("crewpulse") so local logins are predictable.
type demoUser struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Role      entuser.Role
	TeamID    string
	BirthAt   string // MM-DD, empty for no birthday
}

func demoUsers() []demoUser {
	return []demoUser{
		{
			ID: "user-ana", Email: "ana@acme.test",
			FirstName: "Ana", LastName: "Moreira",
			Role: entuser.RoleADMIN,
		},
		{
			ID: "user-ben", Email: "ben@acme.test",
			FirstName: "Ben", LastName: "Okafor",
			Role: entuser.RoleMANAGER, TeamID: "team-front-of-house",
			BirthAt: "03-14",
		},
		{
			ID: "user-carla", Email: "carla@acme.test",
			FirstName: "Carla", LastName: "Reyes",
			Role: entuser.RoleEMPLOYEE, TeamID: "team-front-of-house",
			BirthAt: "11-02",
		},
		{
			ID: "user-dmitri", Email: "dmitri@acme.test",
			FirstName: "Dmitri", LastName: "Ivanov",
			Role: entuser.RoleEMPLOYEE, TeamID: "team-kitchen",
		},
	}
}

func seedTeams(ctx context.Context, client *ent.Client) error {
	for _, tm := range demoTeams() {
		_, err := client.Team.Create().
			SetID(tm.ID).
			SetName(tm.Name).
			SetCompanyID(demoCompanyID).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Team already exists, skipping", zap.String("team", tm.Name))
				continue
			}
			return fmt.Errorf("create team %s: %w", tm.Name, err)
		}
		logger.Info("Seeded team", zap.String("team", tm.Name))
	}
	return nil
}

func seedUsers(ctx context.Context, client *ent.Client) error {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte("crewpulse"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	hash := string(hashBytes)

	for _, u := range demoUsers() {
		builder := client.User.Create().
			SetID(u.ID).
			SetEmail(u.Email).
			SetFirstName(u.FirstName).
			SetLastName(u.LastName).
			SetRole(u.Role).
			SetPasswordHash(hash).
			SetCompanyID(demoCompanyID)
		if u.TeamID != "" {
			builder = builder.SetTeamID(u.TeamID)
		}
		if u.BirthAt != "" {
			bd, perr := time.Parse("2006-01-02", "1994-"+u.BirthAt)
			if perr != nil {
				return fmt.Errorf("parse birth date for %s: %w", u.Email, perr)
			}
			builder = builder.SetBirthDate(bd)
		}
		created, cerr := builder.Save(ctx)
		if cerr != nil {
			if ent.IsConstraintError(cerr) {
				logger.Info("User already exists, skipping", zap.String("email", u.Email))
				continue
			}
			return fmt.Errorf("create user %s: %w", u.Email, cerr)
		}

		// Carla opts into the daily digest so the cron path has a subject.
		if created.ID == "user-carla" {
			_, perr := client.NotificationPreference.Create().
				SetID(uuid.NewString()).
				SetUserID(created.ID).
				SetDailyDigest(true).
				SetDigestTime("08:00").
				Save(ctx)
			if perr != nil && !ent.IsConstraintError(perr) {
				return fmt.Errorf("create preferences for %s: %w", u.Email, perr)
			}
		}
		logger.Info("Seeded user", zap.String("email", u.Email), zap.String("role", string(u.Role)))
	}
	return nil
}

// seedNotifications fills Carla's feed so the inbox and unread badge
// are non-empty on first login.
func seedNotifications(ctx context.Context, client *ent.Client) error {
	now := time.Now()
	rows := []struct {
		ID        string
		Type      entnotification.Type
		Title     string
		Message   string
		RelatedID string
		Read      bool
		Age       time.Duration
	}{
		{
			ID: "seed-notif-task", Type: entnotification.TypeTASK_ASSIGNED,
			Title: "New task assigned", Message: "Ben assigned you \"Restock bar fridge\"",
			RelatedID: "task-demo-1", Age: 26 * time.Hour, Read: true,
		},
		{
			ID: "seed-notif-shift", Type: entnotification.TypeSHIFT_SWAP,
			Title: "Shift swap request", Message: "Dmitri wants to swap the Friday evening shift",
			RelatedID: "swap-demo-1", Age: 3 * time.Hour,
		},
		{
			ID: "seed-notif-message", Type: entnotification.TypeMESSAGE,
			Title: "New message", Message: "Ben: can you open tomorrow?",
			Age: 20 * time.Minute,
		},
	}
	for _, r := range rows {
		builder := client.Notification.Create().
			SetID(r.ID).
			SetType(r.Type).
			SetTitle(r.Title).
			SetMessage(r.Message).
			SetUserID("user-carla").
			SetRead(r.Read).
			SetCreatedAt(now.Add(-r.Age))
		if r.RelatedID != "" {
			builder = builder.SetRelatedID(r.RelatedID)
		}
		if r.Read {
			builder = builder.SetReadAt(now.Add(-r.Age).Add(10 * time.Minute))
		}
		if _, err := builder.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("create notification %s: %w", r.ID, err)
		}
	}
	logger.Info("Seeded demo notifications", zap.Int("count", len(rows)))
	return nil
}
