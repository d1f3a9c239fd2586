package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand/v2"
	"time"

	"github.com/hirewire/api/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// SeederService generates mock data for testing and development
type SeederService struct {
	db database.Database
}

// NewSeederService creates a new seeder service
func NewSeederService(db database.Database) *SeederService {
	return &SeederService{db: db}
}

// SeedRequest configures a seeding run
type SeedRequest struct {
	Employers          int `json:"employers"`
	Candidates         int `json:"candidates"`
	JobsPerCompany     int `json:"jobs_per_company"`
	ApplicationsPerJob int `json:"applications_per_job"`
	// Prefix for seeded emails and names to identify them for cleanup
	Prefix string `json:"prefix,omitempty"`
}

// SeedResult contains the results of a seeding operation
type SeedResult struct {
	Users        int   `json:"users"`
	Companies    int   `json:"companies"`
	Jobs         int   `json:"jobs"`
	Applications int   `json:"applications"`
	Duration     int64 `json:"duration_ms"`
}

// CleanupResult contains the results of a cleanup operation
type CleanupResult struct {
	Duration int64 `json:"duration_ms"`
}

// Sample data for realistic generation
var (
	seedFirstNames = []string{
		"Emma", "Liam", "Olivia", "Noah", "Ava", "Ethan", "Sophia", "Mason",
		"Isabella", "William", "Mia", "James", "Charlotte", "Benjamin", "Amelia",
		"Lucas", "Harper", "Henry", "Evelyn", "Alexander", "Abigail", "Michael",
		"Emily", "Daniel", "Elizabeth", "Jacob", "Sofia", "Logan", "Avery",
	}
	seedLastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
		"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	}
	seedCompanyNames = []string{
		"Nimbus Labs", "Forge Dynamics", "Bluepeak Systems", "Quanta Works",
		"Harbor Analytics", "Vertex Software", "Copper Leaf", "Northwind Data",
		"Lumen Industries", "Atlas Robotics", "Driftwood Media", "Ironclad Security",
	}
	seedIndustries = []string{
		"technology", "finance", "healthcare", "manufacturing", "media",
		"logistics", "education", "retail",
	}
	seedJobTitles = []string{
		"Backend Engineer", "Frontend Engineer", "Platform Engineer",
		"Data Engineer", "Site Reliability Engineer", "Product Designer",
		"Engineering Manager", "QA Engineer", "DevOps Engineer",
		"Machine Learning Engineer", "Technical Writer", "Security Engineer",
	}
	seedCategories = []string{
		"engineering", "design", "data", "operations", "security",
	}
	seedSkills = []string{
		"go", "typescript", "python", "kubernetes", "postgresql", "react",
		"terraform", "kafka", "graphql", "rust",
	}
	seedLocations = []string{
		"Berlin", "Amsterdam", "London", "New York", "San Francisco",
		"Toronto", "Lisbon", "Remote",
	}
	seedCoverLetters = []string{
		"I have shipped production systems in this stack for several years and would love to bring that experience to your team.",
		"Your posting matches my background closely; I have led similar projects end to end and enjoy this kind of problem space.",
		"After reading about your company I am convinced this role is a strong mutual fit, and my portfolio backs that up.",
		"I have been following your product for a while and believe my skills in this area would let me contribute quickly.",
	}
)

// Seed populates the database with employers, companies, jobs, candidates,
// and applications. All seeded emails and names carry the prefix so Cleanup
// can remove them later.
func (s *SeederService) Seed(ctx context.Context, req SeedRequest) (*SeedResult, error) {
	start := time.Now()

	if req.Prefix == "" {
		req.Prefix = "seed_"
	}
	if req.Employers <= 0 {
		req.Employers = 5
	}
	if req.Candidates <= 0 {
		req.Candidates = 20
	}
	if req.JobsPerCompany <= 0 {
		req.JobsPerCompany = 3
	}
	if req.ApplicationsPerJob < 0 {
		req.ApplicationsPerJob = 0
	}

	// MinCost keeps seeding fast; these are throwaway development accounts.
	hash, err := bcrypt.GenerateFromPassword([]byte("seedpass123"), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	result := &SeedResult{}

	var jobIDs []string
	for i := 0; i < req.Employers; i++ {
		employerID, err := s.createSeedUser(ctx, req.Prefix, "employer", string(hash))
		if err != nil {
			return nil, err
		}
		result.Users++

		companyID, err := s.createSeedCompany(ctx, req.Prefix, employerID)
		if err != nil {
			return nil, err
		}
		result.Companies++

		for j := 0; j < req.JobsPerCompany; j++ {
			// Roughly one draft in five so listings have something to hide
			status := "published"
			if mrand.IntN(5) == 0 {
				status = "draft"
			}
			jobID, err := s.createSeedJob(ctx, req.Prefix, companyID, status)
			if err != nil {
				return nil, err
			}
			result.Jobs++
			if status == "published" {
				jobIDs = append(jobIDs, jobID)
			}
		}
	}

	for i := 0; i < req.Candidates; i++ {
		candidateID, err := s.createSeedUser(ctx, req.Prefix, "candidate", string(hash))
		if err != nil {
			return nil, err
		}
		result.Users++

		if len(jobIDs) == 0 || req.ApplicationsPerJob == 0 {
			continue
		}

		// Each candidate applies to a few distinct published jobs
		applied := map[string]bool{}
		for j := 0; j < req.ApplicationsPerJob && len(applied) < len(jobIDs); j++ {
			jobID := jobIDs[mrand.IntN(len(jobIDs))]
			if applied[jobID] {
				continue
			}
			applied[jobID] = true

			if err := s.createSeedApplication(ctx, jobID, candidateID); err != nil {
				return nil, err
			}
			result.Applications++
		}
	}

	result.Duration = time.Since(start).Milliseconds()
	return result, nil
}

func (s *SeederService) createSeedUser(ctx context.Context, prefix, role, hash string) (string, error) {
	randID := seedRandomID()
	query := `
		CREATE user CONTENT {
			email: $email,
			hash: $hash,
			first_name: $first_name,
			last_name: $last_name,
			role: $role,
			skills: $skills,
			location: $location,
			is_deleted: false,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	results, err := s.db.Query(ctx, query, map[string]interface{}{
		"email":      fmt.Sprintf("%s%s@seed.local", prefix, randID),
		"hash":       hash,
		"first_name": seedFirstNames[mrand.IntN(len(seedFirstNames))],
		"last_name":  seedLastNames[mrand.IntN(len(seedLastNames))],
		"role":       role,
		"skills":     seedPickSkills(),
		"location":   seedLocations[mrand.IntN(len(seedLocations))],
	})
	if err != nil {
		return "", fmt.Errorf("failed to create seed user: %w", err)
	}
	id := seedExtractID(results)
	if id == "" {
		return "", fmt.Errorf("failed to extract seed user ID")
	}
	return id, nil
}

func (s *SeederService) createSeedCompany(ctx context.Context, prefix, ownerID string) (string, error) {
	query := `
		CREATE company CONTENT {
			name: $name,
			description: $description,
			industry: $industry,
			size: $size,
			location: $location,
			owner: type::record($owner),
			employees: [],
			is_deleted: false,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	sizes := []string{"startup", "small", "medium", "large", "enterprise"}
	results, err := s.db.Query(ctx, query, map[string]interface{}{
		"name":        fmt.Sprintf("%s%s %s", prefix, seedCompanyNames[mrand.IntN(len(seedCompanyNames))], seedRandomID()[:4]),
		"description": "A seeded company used for local development. It exists only so listings, ownership checks, and job postings have something to work with.",
		"industry":    seedIndustries[mrand.IntN(len(seedIndustries))],
		"size":        sizes[mrand.IntN(len(sizes))],
		"location":    seedLocations[mrand.IntN(len(seedLocations))],
		"owner":       ownerID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create seed company: %w", err)
	}
	id := seedExtractID(results)
	if id == "" {
		return "", fmt.Errorf("failed to extract seed company ID")
	}
	return id, nil
}

func (s *SeederService) createSeedJob(ctx context.Context, prefix, companyID, status string) (string, error) {
	query := `
		CREATE job CONTENT {
			title: $title,
			description: $description,
			requirements: $requirements,
			salary_min: $salary_min,
			salary_max: $salary_max,
			currency: "USD",
			employment_type: $employment_type,
			location: $location,
			remote: $remote,
			status: $status,
			company: type::record($company),
			category: $category,
			experience_level: $experience_level,
			skills: $skills,
			applications_count: 0,
			views_count: 0,
			is_deleted: false,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	employmentTypes := []string{"full-time", "part-time", "contract", "internship"}
	experienceLevels := []string{"junior", "middle", "senior", "lead"}
	salaryMin := float64(50000 + mrand.IntN(80)*1000)

	results, err := s.db.Query(ctx, query, map[string]interface{}{
		"title":            fmt.Sprintf("%s%s", prefix, seedJobTitles[mrand.IntN(len(seedJobTitles))]),
		"description":      "This is a seeded job posting for local development. It carries enough description text to clear the validation floor and to make listings look like a working product during demos.",
		"requirements":     []string{"Relevant production experience", "Strong written communication"},
		"salary_min":       salaryMin,
		"salary_max":       salaryMin + float64(10000+mrand.IntN(40)*1000),
		"employment_type":  employmentTypes[mrand.IntN(len(employmentTypes))],
		"location":         seedLocations[mrand.IntN(len(seedLocations))],
		"remote":           mrand.IntN(2) == 0,
		"status":           status,
		"company":          companyID,
		"category":         seedCategories[mrand.IntN(len(seedCategories))],
		"experience_level": experienceLevels[mrand.IntN(len(experienceLevels))],
		"skills":           seedPickSkills(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create seed job: %w", err)
	}
	id := seedExtractID(results)
	if id == "" {
		return "", fmt.Errorf("failed to extract seed job ID")
	}
	return id, nil
}

// createSeedApplication inserts the application and bumps the job's counter
// in one transaction so counts stay consistent even if seeding is interrupted.
func (s *SeederService) createSeedApplication(ctx context.Context, jobID, candidateID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`
		CREATE application CONTENT {
			job: type::record($job),
			candidate: type::record($candidate),
			cover_letter: $cover_letter,
			status: "pending",
			is_deleted: false,
			created_on: time::now(),
			updated_on: time::now()
		}
	`, map[string]interface{}{
		"job":          jobID,
		"candidate":    candidateID,
		"cover_letter": seedCoverLetters[mrand.IntN(len(seedCoverLetters))],
	})
	batch.Add(`UPDATE type::record($job) SET applications_count += 1`, map[string]interface{}{
		"job": jobID,
	})

	if err := batch.Execute(ctx, s.db); err != nil {
		return fmt.Errorf("failed to create seed application: %w", err)
	}
	return nil
}

// Cleanup removes all records created with the given prefix. Children go
// first so dangling references never outlive their parents.
func (s *SeederService) Cleanup(ctx context.Context, prefix string) (*CleanupResult, error) {
	start := time.Now()

	if prefix == "" {
		prefix = "seed_"
	}

	appQuery := fmt.Sprintf(`DELETE application WHERE candidate.email CONTAINS '%s'`, prefix)
	if err := s.db.Execute(ctx, appQuery, nil); err != nil {
		return nil, fmt.Errorf("failed to delete applications: %w", err)
	}

	jobQuery := fmt.Sprintf(`DELETE job WHERE title CONTAINS '%s'`, prefix)
	if err := s.db.Execute(ctx, jobQuery, nil); err != nil {
		return nil, fmt.Errorf("failed to delete jobs: %w", err)
	}

	companyQuery := fmt.Sprintf(`DELETE company WHERE name CONTAINS '%s'`, prefix)
	if err := s.db.Execute(ctx, companyQuery, nil); err != nil {
		return nil, fmt.Errorf("failed to delete companies: %w", err)
	}

	userQuery := fmt.Sprintf(`DELETE user WHERE email CONTAINS '%s'`, prefix)
	if err := s.db.Execute(ctx, userQuery, nil); err != nil {
		return nil, fmt.Errorf("failed to delete users: %w", err)
	}

	return &CleanupResult{
		Duration: time.Since(start).Milliseconds(),
	}, nil
}

// Helper functions

func seedRandomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func seedPickSkills() []string {
	n := 2 + mrand.IntN(3)
	picked := make([]string, 0, n)
	seen := map[string]bool{}
	for len(picked) < n {
		skill := seedSkills[mrand.IntN(len(seedSkills))]
		if seen[skill] {
			continue
		}
		seen[skill] = true
		picked = append(picked, skill)
	}
	return picked
}

func seedExtractID(results []interface{}) string {
	if len(results) == 0 {
		return ""
	}

	resp, ok := results[0].(map[string]interface{})
	if !ok {
		return ""
	}

	result, ok := resp["result"]
	if !ok {
		return ""
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return ""
		}
		data, ok := arr[0].(map[string]interface{})
		if !ok {
			return ""
		}
		return seedFormatID(data["id"])
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return ""
	}
	return seedFormatID(data["id"])
}

func seedFormatID(v interface{}) string {
	if v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	// Handle SurrealDB record ID type
	if m, ok := v.(map[string]interface{}); ok {
		if tb, ok := m["tb"].(string); ok {
			if id := m["id"]; id != nil {
				return fmt.Sprintf("%s:%v", tb, id)
			}
		}
	}

	// Fallback: convert "{table id}" to "table:id"
	s := fmt.Sprintf("%v", v)
	if len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}' {
		inner := s[1 : len(s)-1]
		for i, c := range inner {
			if c == ' ' {
				return inner[:i] + ":" + inner[i+1:]
			}
		}
	}
	return s
}
