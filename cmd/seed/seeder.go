package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Seeder drives a running API the way staff and guests would
type Seeder struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// EventSummary reports what was created for one event
type EventSummary struct {
	ID       string
	Name     string
	Joined   int
	Promoted int
}

// Summary is the outcome of SeedAll
type Summary struct {
	Events []EventSummary
}

func NewSeeder(client *http.Client, baseURL, apiKey string) *Seeder {
	return &Seeder{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
	}
}

var guestNames = []string{
	"Sarah Johnson", "Miguel Alvarez", "Priya Natarajan", "Tom Becker",
	"Aiko Tanaka", "Lena Fischer", "Omar Haddad", "Grace Okafor",
	"Jonas Berg", "Chloe Martin", "Ravi Menon", "Hannah Kim",
}

// SeedAll creates one event of each kind, fills each waitlist and notifies
// the first parties on the table event
func (s *Seeder) SeedAll(ctx context.Context, guestsPerEvent int) (*Summary, error) {
	start := time.Now().UTC().Truncate(time.Hour).Add(time.Hour)
	tables, seats := 12, 300

	events := []map[string]any{
		{"name": "Rooftop Supper Club", "eventType": "INDOOR_TABLES", "maxCapacity": 48, "totalTables": tables},
		{"name": "Chamber Music Night", "eventType": "INDOOR_SEATED", "maxCapacity": seats, "totalSeats": seats},
		{"name": "Riverside Food Market", "eventType": "OUTDOOR", "maxCapacity": 2000, "offlineEnabled": true},
	}

	summary := &Summary{}
	for _, body := range events {
		body["startTime"] = start
		body["endTime"] = start.Add(4 * time.Hour)

		var created struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			EventType string `json:"eventType"`
		}
		if err := s.post(ctx, "/events", body, true, &created); err != nil {
			return nil, fmt.Errorf("failed to create event %v: %w", body["name"], err)
		}

		ev := EventSummary{ID: created.ID, Name: created.Name}
		for i := 0; i < guestsPerEvent; i++ {
			entryType := "waitlist"
			if i%3 == 0 {
				entryType = "reservation"
			}
			guest := map[string]any{
				"name":      guestNames[i%len(guestNames)],
				"partySize": 1 + i%4,
				"type":      entryType,
			}
			if i >= len(guestNames) {
				guest["name"] = fmt.Sprintf("%s %d", guestNames[i%len(guestNames)], i/len(guestNames)+1)
			}
			if err := s.post(ctx, "/events/"+created.ID+"/waitlist", guest, false, nil); err != nil {
				return nil, fmt.Errorf("failed to join %s: %w", created.Name, err)
			}
			ev.Joined++
		}

		if created.EventType == "INDOOR_TABLES" && guestsPerEvent > 0 {
			var promoted struct {
				Count int `json:"count"`
			}
			count := min(2, guestsPerEvent)
			if err := s.post(ctx, "/events/"+created.ID+"/staff/promote", map[string]any{"count": count}, true, &promoted); err != nil {
				return nil, fmt.Errorf("failed to promote on %s: %w", created.Name, err)
			}
			ev.Promoted = promoted.Count
		}

		summary.Events = append(summary.Events, ev)
	}

	return summary, nil
}

func (s *Seeder) post(ctx context.Context, path string, body any, staff bool, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "seed-"+uuid.NewString())
	if staff {
		req.Header.Set("X-API-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
