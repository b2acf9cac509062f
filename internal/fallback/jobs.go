// Package fallback holds the fixed substitute dataset served when the remote
// board API is unreachable, plus the enumerated facet taxonomy.
package fallback

import "jobdeck-engine/internal/domain"

var jobs = []domain.Job{
	{
		ID: 1, Title: "Frontend Engineer", Company: "TechFlow AG",
		Location: "Zurich", Type: "Full-time", Stage: "Seed",
		Tags:        []string{"React", "TypeScript", "Tailwind"},
		Description: "Build and own the customer-facing dashboard of our analytics platform, working closely with design and product.",
		Salary:      "CHF 95k – 115k", Equity: "0.1% – 0.4%",
		Applicants: 24, PostedDays: 2, Funding: "CHF 2.5M Seed",
		Benefits:     []string{"25 days vacation", "Half-fare travelcard", "Annual learning budget"},
		Requirements: []string{"3+ years with React", "Solid TypeScript", "Eye for detail in UI work"},
	},
	{
		ID: 2, Title: "Backend Engineer", Company: "DataPeak",
		Location: "Geneva", Type: "Full-time", Stage: "Series A",
		Tags:        []string{"Go", "PostgreSQL", "Kubernetes"},
		Description: "Design and scale the ingestion pipeline that powers our real-time pricing product.",
		Salary:      "CHF 110k – 130k", Equity: "0.05% – 0.2%",
		Applicants: 41, PostedDays: 5, Funding: "CHF 8M Series A",
		Benefits:     []string{"Remote-friendly", "Conference budget", "Gym membership"},
		Requirements: []string{"Production Go experience", "Comfort with SQL tuning", "On-call rotation"},
	},
	{
		ID: 3, Title: "Platform Engineer", Company: "CloudNova",
		Location: "Remote", Type: "Contract", Stage: "Series B",
		Tags:        []string{"Go", "Kubernetes", "Terraform"},
		Description: "Own the internal developer platform: build pipelines, cluster operations, and golden paths for product teams.",
		Salary:      "CHF 120 / hour", Equity: "—",
		Applicants: 12, PostedDays: 1, Funding: "CHF 24M Series B",
		Benefits:     []string{"Fully remote", "Flexible hours"},
		Requirements: []string{"Kubernetes in production", "IaC with Terraform"},
	},
	{
		ID: 4, Title: "Product Designer", Company: "Inkline Studio",
		Location: "Basel", Type: "Part-time", Stage: "Pre-seed",
		Tags:        []string{"Figma", "Design Systems"},
		Description: "Shape the first version of our collaborative whiteboarding tool, from research to polished UI.",
		Salary:      "CHF 60k – 70k (60%)", Equity: "0.5% – 1.0%",
		Applicants: 9, PostedDays: 7, Funding: "Bootstrapped",
		Benefits:     []string{"Flexible schedule", "Studio in the old town"},
		Requirements: []string{"Portfolio of shipped product work"},
	},
	{
		ID: 5, Title: "Machine Learning Engineer", Company: "Alpine Analytics",
		Location: "Lausanne", Type: "Full-time", Stage: "Seed",
		Tags:        []string{"Python", "PyTorch", "MLOps"},
		Description: "Train and ship the forecasting models behind our energy-trading desk.",
		Salary:      "CHF 105k – 125k", Equity: "0.2% – 0.6%",
		Applicants: 33, PostedDays: 3, Funding: "CHF 3M Seed",
		Benefits:     []string{"EPFL campus office", "Publication-friendly"},
		Requirements: []string{"PyTorch experience", "MSc or equivalent experience"},
	},
	{
		ID: 6, Title: "DevOps Engineer", Company: "TechFlow AG",
		Location: "Zurich", Type: "Full-time", Stage: "Seed",
		Tags:        []string{"AWS", "Terraform", "Go"},
		Description: "Keep our AWS footprint boring: observability, cost control, and paved-road deployments.",
		Salary:      "CHF 100k – 120k", Equity: "0.1% – 0.3%",
		Applicants: 18, PostedDays: 4, Funding: "CHF 2.5M Seed",
		Benefits:     []string{"25 days vacation", "Hardware budget"},
		Requirements: []string{"AWS in production", "Scripting fluency"},
	},
	{
		ID: 7, Title: "Growth Marketing Manager", Company: "Velora",
		Location: "Remote", Type: "Full-time", Stage: "Series A",
		Tags:        []string{"SEO", "Analytics", "Content"},
		Description: "Own the acquisition funnel end to end for our B2B subscription product.",
		Salary:      "CHF 85k – 100k", Equity: "0.05% – 0.15%",
		Applicants: 52, PostedDays: 6, Funding: "CHF 6M Series A",
		Benefits:     []string{"Fully remote", "Quarterly offsites"},
		Requirements: []string{"B2B SaaS growth track record"},
	},
	{
		ID: 8, Title: "Engineering Intern", Company: "DataPeak",
		Location: "Geneva", Type: "Internship", Stage: "Series A",
		Tags:        []string{"Go", "React"},
		Description: "Six-month internship rotating across the ingestion and dashboard teams.",
		Salary:      "CHF 2.8k / month", Equity: "—",
		Applicants: 67, PostedDays: 9, Funding: "CHF 8M Series A",
		Benefits:     []string{"Mentorship", "Return-offer track"},
		Requirements: []string{"CS studies in progress"},
	},
}

var companies = []domain.Company{
	{ID: 1, Name: "TechFlow AG", Location: "Zurich", Stage: "Seed", Funding: "CHF 2.5M Seed", Industry: "Analytics", Size: "11-25", OpenRoles: 2, Tags: []string{"React", "Go", "AWS"}, About: "Product analytics for Swiss SMEs."},
	{ID: 2, Name: "DataPeak", Location: "Geneva", Stage: "Series A", Funding: "CHF 8M Series A", Industry: "Fintech", Size: "26-50", OpenRoles: 2, Tags: []string{"Go", "PostgreSQL"}, About: "Real-time pricing infrastructure."},
	{ID: 3, Name: "CloudNova", Location: "Remote", Stage: "Series B", Funding: "CHF 24M Series B", Industry: "Infrastructure", Size: "51-100", OpenRoles: 1, Tags: []string{"Kubernetes", "Terraform"}, About: "Managed developer platforms."},
	{ID: 4, Name: "Inkline Studio", Location: "Basel", Stage: "Pre-seed", Funding: "Bootstrapped", Industry: "Design tooling", Size: "1-10", OpenRoles: 1, Tags: []string{"Figma"}, About: "Collaborative whiteboarding."},
	{ID: 5, Name: "Alpine Analytics", Location: "Lausanne", Stage: "Seed", Funding: "CHF 3M Seed", Industry: "Energy", Size: "11-25", OpenRoles: 1, Tags: []string{"Python", "MLOps"}, About: "Forecasting for energy trading."},
	{ID: 6, Name: "Velora", Location: "Remote", Stage: "Series A", Funding: "CHF 6M Series A", Industry: "SaaS", Size: "26-50", OpenRoles: 1, Tags: []string{"Content"}, About: "Subscription commerce tooling."},
}

// Jobs returns a fresh copy of the fixed fallback listing set.
func Jobs() []domain.Job {
	out := make([]domain.Job, len(jobs))
	copy(out, jobs)
	return out
}

// Companies returns a fresh copy of the fixed fallback company set.
func Companies() []domain.Company {
	out := make([]domain.Company, len(companies))
	copy(out, companies)
	return out
}
