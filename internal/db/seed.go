package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: two clients with tagged contacts, a few folders
// with templates, and campaigns in various lifecycle states. Intended for
// local development only.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	tagSets := [][]string{
		{"vip", "east"},
		{"vip"},
		{"east"},
		{"newsletter"},
		{"newsletter", "vip"},
		{},
	}

	for _, clientName := range []string{"Acme Outfitters", "Northwind Traders"} {
		var clientID int64
		err := pool.QueryRow(ctx,
			`INSERT INTO clients (name) VALUES ($1) RETURNING id`, clientName).Scan(&clientID)
		if err != nil {
			return err
		}

		for i := 0; i < 30; i++ {
			tags := tagSets[r.Intn(len(tagSets))]
			email := fmt.Sprintf("%s@example.com", uuid.NewString()[:8])
			unsub := r.Intn(10) == 0
			_, err = pool.Exec(ctx, `
                INSERT INTO contacts (client_id, email, first_name, last_name, tags, unsubscribed)
                VALUES ($1, $2, $3, $4, $5, $6)`,
				clientID, email, fmt.Sprintf("First%d", i), fmt.Sprintf("Last%d", i), tags, unsub)
			if err != nil {
				return err
			}
		}

		folderIDs := make([]*int64, 0, 3)
		folderIDs = append(folderIDs, nil) // Unfiled
		for _, name := range []string{"Promotions", "Newsletters"} {
			var id int64
			err = pool.QueryRow(ctx,
				`INSERT INTO folders (client_id, name) VALUES ($1, $2) RETURNING id`,
				clientID, name).Scan(&id)
			if err != nil {
				return err
			}
			folderIDs = append(folderIDs, &id)
		}

		templateIDs := make([]int64, 0, 6)
		for i := 0; i < 6; i++ {
			var id int64
			err = pool.QueryRow(ctx, `
                INSERT INTO templates (client_id, folder_id, name, subject, preview_text, body)
                VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
				clientID, folderIDs[r.Intn(len(folderIDs))],
				fmt.Sprintf("Design %d", i+1),
				fmt.Sprintf("Subject %d", i+1),
				"A short preview line.",
				"<p>Hello {{first_name}}!</p>").Scan(&id)
			if err != nil {
				return err
			}
			templateIDs = append(templateIDs, id)
		}

		scheduled := time.Now().AddDate(0, 0, 7)
		campaigns := []struct {
			name        string
			tags        []string
			status      string
			scheduledAt *time.Time
		}{
			{"Spring sale", []string{"vip"}, "draft", nil},
			{"Welcome series", []string{}, "scheduled", &scheduled},
			{"Holiday wrap-up", []string{"newsletter"}, "sent", nil},
		}
		for _, c := range campaigns {
			tmplID := templateIDs[r.Intn(len(templateIDs))]
			_, err = pool.Exec(ctx, `
                INSERT INTO campaigns (client_id, template_id, name, filter_tags, status, recipient_count, scheduled_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				clientID, tmplID, c.name, c.tags, c.status, r.Intn(25), c.scheduledAt)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
