package workledger

import (
	"github.com/etnz/workledger/date"
	"github.com/shopspring/decimal"
)

// DefaultProjects returns the demo projects of a fresh installation.
func DefaultProjects() []Project {
	return []Project{
		{
			ID:              "p1",
			Name:            "E-Commerce Platform",
			Description:     "Building a modern e-commerce platform with React and Node.js. Features include product catalog, cart, checkout, and admin dashboard.",
			Status:          StatusActive,
			Technologies:    []string{"React", "TypeScript", "Node.js", "PostgreSQL", "Redis"},
			AssignedWorkers: []string{"w1", "w2", "w3"},
			CreatedAt:       date.MustParse("2024-01-15"),
			UpdatedAt:       date.MustParse("2024-03-10"),
			Budget:          amount(150000),
			Deadline:        date.MustParse("2026-03-30"),
			Milestones: []Milestone{
				{ID: "m1", Title: "Design Phase Complete", DueDate: date.MustParse("2026-01-20"), Completed: true},
				{ID: "m2", Title: "MVP Launch", DueDate: date.MustParse("2026-02-15")},
				{ID: "m3", Title: "Beta Testing", DueDate: date.MustParse("2026-03-01")},
			},
		},
		{
			ID:              "p2",
			Name:            "Mobile Banking App",
			Description:     "Secure mobile banking application with biometric authentication, transfers, and account management.",
			Status:          StatusActive,
			Technologies:    []string{"React Native", "TypeScript", "Python", "AWS"},
			AssignedWorkers: []string{"w2", "w4", "w5"},
			CreatedAt:       date.MustParse("2024-02-01"),
			UpdatedAt:       date.MustParse("2024-03-08"),
			Budget:          amount(200000),
			Deadline:        date.MustParse("2026-04-15"),
			Milestones: []Milestone{
				{ID: "m4", Title: "Security Audit", DueDate: date.MustParse("2026-01-25"), Completed: true},
				{ID: "m5", Title: "App Store Submission", DueDate: date.MustParse("2026-03-20")},
			},
		},
		{
			ID:              "p3",
			Name:            "HR Management System",
			Description:     "Internal HR management tool for employee records, leave management, and performance reviews.",
			Status:          StatusCompleted,
			Technologies:    []string{"Vue.js", "Laravel", "MySQL"},
			AssignedWorkers: []string{"w1", "w6"},
			CreatedAt:       date.MustParse("2023-08-01"),
			UpdatedAt:       date.MustParse("2024-01-20"),
			Budget:          amount(80000),
			Milestones: []Milestone{
				{ID: "m6", Title: "Final Review", DueDate: date.MustParse("2024-01-15"), Completed: true},
			},
		},
		{
			ID:              "p4",
			Name:            "AI Chatbot Integration",
			Description:     "Developing an AI-powered customer service chatbot with natural language processing capabilities.",
			Status:          StatusPlanning,
			Technologies:    []string{"Python", "TensorFlow", "FastAPI", "Docker"},
			AssignedWorkers: []string{"w3", "w5"},
			CreatedAt:       date.MustParse("2024-03-01"),
			UpdatedAt:       date.MustParse("2024-03-10"),
			Budget:          amount(120000),
			Deadline:        date.MustParse("2026-06-01"),
			Milestones: []Milestone{
				{ID: "m7", Title: "Requirements Gathering", DueDate: date.MustParse("2026-02-01")},
				{ID: "m8", Title: "Architecture Design", DueDate: date.MustParse("2026-02-20")},
			},
		},
	}
}

// DefaultWorkers returns the demo workers of a fresh installation.
func DefaultWorkers() []Worker {
	return []Worker{
		{
			ID:               "w1",
			Name:             "Sarah Johnson",
			Email:            "sarah@workledger.com",
			Role:             "Senior Frontend Developer",
			Skills:           []string{"React", "TypeScript", "Vue.js", "CSS", "GraphQL"},
			MonthlySalary:    decimal.NewFromInt(8500),
			AssignedProjects: []string{"p1", "p3"},
			JoinedAt:         date.MustParse("2022-03-15"),
			Status:           WorkerActive,
		},
		{
			ID:               "w2",
			Name:             "Michael Chen",
			Email:            "michael@workledger.com",
			Role:             "Full Stack Developer",
			Skills:           []string{"React", "Node.js", "Python", "PostgreSQL", "AWS"},
			MonthlySalary:    decimal.NewFromInt(9200),
			AssignedProjects: []string{"p1", "p2"},
			JoinedAt:         date.MustParse("2021-07-01"),
			Status:           WorkerActive,
		},
		{
			ID:               "w3",
			Name:             "Emily Davis",
			Email:            "emily@workledger.com",
			Role:             "Backend Developer",
			Skills:           []string{"Python", "Django", "FastAPI", "PostgreSQL", "Redis"},
			MonthlySalary:    decimal.NewFromInt(7800),
			AssignedProjects: []string{"p1", "p4"},
			JoinedAt:         date.MustParse("2023-01-10"),
			Status:           WorkerActive,
		},
		{
			ID:               "w4",
			Name:             "James Wilson",
			Email:            "james@workledger.com",
			Role:             "Mobile Developer",
			Skills:           []string{"React Native", "Swift", "Kotlin", "Firebase"},
			MonthlySalary:    decimal.NewFromInt(8000),
			AssignedProjects: []string{"p2"},
			JoinedAt:         date.MustParse("2022-09-20"),
			Status:           WorkerActive,
		},
		{
			ID:               "w5",
			Name:             "Lisa Anderson",
			Email:            "lisa@workledger.com",
			Role:             "DevOps Engineer",
			Skills:           []string{"AWS", "Docker", "Kubernetes", "Terraform", "CI/CD"},
			MonthlySalary:    decimal.NewFromInt(9500),
			AssignedProjects: []string{"p2", "p4"},
			JoinedAt:         date.MustParse("2021-11-05"),
			Status:           WorkerActive,
		},
		{
			ID:               "w6",
			Name:             "David Brown",
			Email:            "david@workledger.com",
			Role:             "UI/UX Designer",
			Skills:           []string{"Figma", "Adobe XD", "CSS", "Prototyping", "User Research"},
			MonthlySalary:    decimal.NewFromInt(7200),
			AssignedProjects: []string{"p3"},
			JoinedAt:         date.MustParse("2023-04-12"),
			Status:           WorkerOnLeave,
		},
	}
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
