package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"mini-crm/internal/client"
	"mini-crm/internal/domain"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var (
	targetHost = flag.String("target", "http://localhost:8080", "base URL of the API")
	rps        = flag.Int("rps", 20, "requests per second")
	duration   = flag.Duration("duration", time.Minute, "attack duration")
	seedLeads  = flag.Int("leads", 200, "number of leads to seed")
)

var (
	leadIDs []string
	token   string
)

// Seed
func seedData(ctx context.Context) error {
	log.Println("Seeding: registering load test user...")

	c := client.New(*targetHost)
	email := fmt.Sprintf("load-%d@minicrm.local", time.Now().UnixNano())
	session, err := c.Register(ctx, "Load Test", email, "load-test-123")
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	token = session.Token
	c.SetToken(token)

	log.Println("Seeding: creating leads...")
	for i := 1; i <= *seedLeads; i++ {
		value := float64(rand.Intn(100000))
		lead, err := c.CreateLead(ctx, domain.LeadInput{
			Name:    fmt.Sprintf("Lead %04d", i),
			Email:   fmt.Sprintf("lead-%04d-%d@empresa.com", i, time.Now().UnixNano()),
			Phone:   fmt.Sprintf("1199%07d", i),
			Company: fmt.Sprintf("Empresa %d", i%25),
			Status:  domain.PipelineStatuses[rand.Intn(len(domain.PipelineStatuses))],
			Source:  domain.LeadSources[rand.Intn(len(domain.LeadSources))],
			Value:   &value,
		})
		if err != nil {
			var verrs domain.ValidationErrors
			if errors.As(err, &verrs) {
				log.Printf("WARN lead %d rejected: %v\n", i, verrs)
				continue
			}
			return fmt.Errorf("create lead: %w", err)
		}
		leadIDs = append(leadIDs, lead.ID)
	}

	log.Printf("Seed completed: leads=%d\n", len(leadIDs))
	if len(leadIDs) == 0 {
		return errors.New("no leads were created")
	}
	return nil
}

func headers(contentType string) http.Header {
	h := http.Header{
		"Accept":        {"application/json"},
		"Authorization": {"Bearer " + token},
	}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return h
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 40% GET pipeline
		if r < 0.40 {
			t.Method = http.MethodGet
			t.URL = *targetHost + "/pipeline"
			t.Body = nil
			t.Header = headers("")
			return nil
		}

		// 30% GET leads с поиском
		if r < 0.70 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/leads?search=Empresa%%20%d", *targetHost, rand.Intn(25))
			t.Body = nil
			t.Header = headers("")
			return nil
		}

		// 15% GET lead
		if r < 0.85 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/leads/%s", *targetHost, leadIDs[rand.Intn(len(leadIDs))])
			t.Body = nil
			t.Header = headers("")
			return nil
		}

		// 10% PUT status
		if r < 0.95 {
			status := domain.PipelineStatuses[rand.Intn(len(domain.PipelineStatuses))]
			body, _ := json.Marshal(map[string]string{"status": string(status)})
			t.Method = http.MethodPut
			t.URL = fmt.Sprintf("%s/leads/%s/status", *targetHost, leadIDs[rand.Intn(len(leadIDs))])
			t.Body = body
			t.Header = headers("application/json")
			return nil
		}

		// 5% POST interaction
		body, _ := json.Marshal(map[string]string{"type": "nota", "description": "Load test note"})
		t.Method = http.MethodPost
		t.URL = fmt.Sprintf("%s/leads/%s/interactions", *targetHost, leadIDs[rand.Intn(len(leadIDs))])
		t.Body = body
		t.Header = headers("application/json")
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: *rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", *targetHost, *duration)
	for res := range attacker.Attack(targeter, rate, *duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := seedData(ctx); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
