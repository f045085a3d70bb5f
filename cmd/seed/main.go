package main

import (
	"context"
	"fmt"
	"time"

	"github.com/unilodge/rental-portal/internal/config"
	"github.com/unilodge/rental-portal/internal/database"
	"github.com/unilodge/rental-portal/internal/logger"
)

// Seeds a small demo dataset: three rental groups, their student
// renters, and a handful of properties with owners and managers.
// Safe to re-run; every insert is ON CONFLICT DO NOTHING.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	fmt.Println("=== Seeding demo data ===")

	persons := []struct {
		id                int
		first, last, tele string
	}{
		{101, "Alice", "Nguyen", "555-0101"},
		{102, "Ben", "Okafor", "555-0102"},
		{103, "Carla", "Silva", "555-0103"},
		{104, "Dmitri", "Ivanov", "555-0104"},
		{105, "Emma", "Byrne", "555-0105"},
		{201, "Frank", "Hartmann", "555-0201"},
		{202, "Grace", "Liu", "555-0202"},
		{301, "Henry", "Adeyemi", "555-0301"},
	}
	for _, p := range persons {
		if _, err := pool.Exec(ctx,
			`INSERT INTO persons (id, first_name, last_name, phone_number)
			 VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
			p.id, p.first, p.last, p.tele); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed persons")
		}
	}

	groups := []struct {
		code             string
		ptype            string
		beds, baths      int
		parking, laundry string
		price            float64
		accessibility    string
	}{
		{"G1", "room", 1, 1, "no", "shared", 500.00, "no"},
		{"G2", "house", 4, 2, "yes", "ensuite", 2200.00, "no"},
		{"G3", "apartment", 2, 1, "no", "shared", 1400.00, "yes"},
	}
	for _, g := range groups {
		if _, err := pool.Exec(ctx,
			`INSERT INTO rental_groups (group_code, desired_property_type,
			        desired_number_of_bedrooms, desired_number_of_bathrooms,
			        parking_preference, laundry_preference, max_price,
			        accessibility_preference)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (group_code) DO NOTHING`,
			g.code, g.ptype, g.beds, g.baths, g.parking, g.laundry, g.price, g.accessibility); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed rental groups")
		}
	}

	renters := []struct {
		id      int
		program string
		year    int
		group   string
	}{
		{101, "Computer Science", 2027, "G1"},
		{102, "Civil Engineering", 2026, "G2"},
		{103, "Nursing", 2027, "G2"},
		{104, "Economics", 2028, "G2"},
		{105, "Architecture", 2026, "G3"},
	}
	for _, r := range renters {
		if _, err := pool.Exec(ctx,
			`INSERT INTO student_renters (student_renter_id, program_of_study,
			        expected_graduation_year, group_code)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (student_renter_id) DO NOTHING`,
			r.id, r.program, r.year, r.group); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed student renters")
		}
	}

	properties := []struct {
		id                   int
		street, city, postal string
		cost                 float64
		ptype                string
	}{
		{1, "12 College Ave", "Kingston", "K7L 3N6", 1850.00, "house"},
		{2, "88 Princess St", "Kingston", "K7L 1A6", 1250.00, "apartment"},
		{3, "5 Union St", "Kingston", "K7L 2N8", 650.00, "room"},
	}
	for _, p := range properties {
		if _, err := pool.Exec(ctx,
			`INSERT INTO rental_properties (property_id, street, city, postal_code,
			        cost_per_month, property_type)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (property_id) DO NOTHING`,
			p.id, p.street, p.city, p.postal, p.cost, p.ptype); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed rental properties")
		}
	}

	owners := []int{201, 202}
	for _, id := range owners {
		if _, err := pool.Exec(ctx,
			`INSERT INTO owners (owner_id) VALUES ($1) ON CONFLICT (owner_id) DO NOTHING`, id); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed owners")
		}
	}
	ownerRelations := []struct{ property, owner int }{
		{1, 201}, {1, 202}, {2, 201}, {3, 202},
	}
	for _, rel := range ownerRelations {
		if _, err := pool.Exec(ctx,
			`INSERT INTO property_owner_relations (property_id, owner_id)
			 VALUES ($1, $2) ON CONFLICT DO NOTHING`, rel.property, rel.owner); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed owner relations")
		}
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO property_managers (manager_id) VALUES ($1)
		 ON CONFLICT (manager_id) DO NOTHING`, 301); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed property managers")
	}
	if _, err := pool.Exec(ctx,
		`INSERT INTO property_manager_rental_relations (property_id, manager_id)
		 VALUES ($1, $2), ($3, $2) ON CONFLICT DO NOTHING`, 1, 301, 2); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed manager relations")
	}

	fmt.Println("Seeded 8 persons, 3 groups, 5 renters, 3 properties")
}
