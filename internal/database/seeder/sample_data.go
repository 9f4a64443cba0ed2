package seeder

import (
	"context"

	"smart-hire/internal/domain/candidate"
	"smart-hire/internal/domain/interview"
	"smart-hire/internal/domain/job"
	"smart-hire/internal/domain/match"
	"smart-hire/internal/repository"
)

// SampleData fills an empty store with two postings, four candidates and
// their matches and interviews. It does nothing once any job exists.
type SampleData struct{}

func (SampleData) Name() string { return "sample_data" }

func (SampleData) Run(ctx context.Context, store repository.Store) error {
	n, err := store.Jobs().Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	if err := store.Jobs().CreateBatch(ctx, SampleJobs()); err != nil {
		return err
	}
	if err := store.Candidates().CreateBatch(ctx, SampleCandidates()); err != nil {
		return err
	}
	if err := store.Matches().CreateBatch(ctx, SampleMatches()); err != nil {
		return err
	}
	return store.Interviews().CreateBatch(ctx, SampleInterviews())
}

func SampleJobs() []job.Posting {
	return []job.Posting{
		{
			ID:    "job-1",
			Title: "Senior Frontend Developer",
			Description: `We are looking for a Senior Frontend Developer with expertise in React and TypeScript. The ideal candidate should have 5+ years of experience in frontend development and be proficient in modern JavaScript frameworks.

Requirements:
- 5+ years of experience in frontend development
- Strong proficiency in React, TypeScript, and Redux
- Experience with responsive design and CSS frameworks like Tailwind
- Understanding of RESTful APIs and GraphQL
- Knowledge of testing frameworks like Jest and React Testing Library
- Experience with CI/CD pipelines
- Strong problem-solving skills and attention to detail

Responsibilities:
- Develop and maintain frontend applications using React and TypeScript
- Collaborate with backend developers to integrate frontend with APIs
- Optimize applications for maximum speed and scalability
- Implement responsive design and ensure cross-browser compatibility
- Write clean, efficient, and maintainable code
- Participate in code reviews and mentor junior developers`,
			Summary:    "Senior Frontend Developer role requiring 5+ years of experience with React, TypeScript, and modern frontend technologies.",
			Skills:     []string{"React", "TypeScript", "Redux", "Tailwind CSS", "REST API", "GraphQL", "Jest", "React Testing Library"},
			Experience: "5+ years",
			Location:   "San Francisco, CA (Remote)",
			PostedDate: "2023-04-01",
			Metadata: job.Metadata{
				"salaryRange":    "$120,000 - $150,000",
				"employmentType": "Full-time",
				"department":     "Engineering",
			},
		},
		{
			ID:    "job-2",
			Title: "Data Scientist",
			Description: `We are seeking a Data Scientist to join our growing team. The ideal candidate will have experience in machine learning, data analysis, and statistical modeling.

Requirements:
- Master's or PhD in Computer Science, Statistics, or related field
- 3+ years of experience in data science or machine learning
- Proficiency in Python and data science libraries (NumPy, Pandas, Scikit-learn)
- Experience with deep learning frameworks (TensorFlow, PyTorch)
- Strong understanding of statistical analysis and machine learning algorithms
- Excellent communication skills to present findings to non-technical stakeholders

Responsibilities:
- Develop and implement machine learning models to solve business problems
- Process, clean, and verify the integrity of data used for analysis
- Create data visualizations to communicate findings
- Collaborate with engineering teams to deploy models into production
- Stay up-to-date with the latest advancements in data science and machine learning`,
			Summary:    "Data Scientist position requiring 3+ years of experience in machine learning and statistical analysis.",
			Skills:     []string{"Python", "Machine Learning", "NumPy", "Pandas", "Scikit-learn", "TensorFlow", "PyTorch", "Statistics"},
			Experience: "3+ years",
			Location:   "New York, NY (Hybrid)",
			PostedDate: "2023-03-15",
			Metadata: job.Metadata{
				"salaryRange":    "$130,000 - $160,000",
				"employmentType": "Full-time",
				"department":     "Data Science",
			},
		},
	}
}

func SampleCandidates() []candidate.Candidate {
	return []candidate.Candidate{
		{
			ID:        "candidate-1",
			Name:      "Alex Johnson",
			Email:     "alex.johnson@example.com",
			Phone:     "123-456-7890",
			ResumeURL: "/resumes/alex-johnson.pdf",
			Skills:    []string{"React", "TypeScript", "Redux", "Next.js", "Tailwind CSS", "Node.js", "GraphQL"},
			Experience: []string{
				"Senior Frontend Developer at TechCorp (2019-2023)",
				"Frontend Developer at WebSolutions (2016-2019)",
				"Junior Developer at StartupXYZ (2014-2016)",
			},
			Education: []candidate.Education{
				{Institution: "University of California, Berkeley", Degree: "Bachelor of Science", FieldOfStudy: "Computer Science", StartDate: "2010", EndDate: "2014"},
			},
			ParsedContent: "Experienced frontend developer with 9 years of experience in web development...",
		},
		{
			ID:        "candidate-2",
			Name:      "Samantha Smith",
			Email:     "samantha.smith@example.com",
			Phone:     "234-567-8901",
			ResumeURL: "/resumes/samantha-smith.pdf",
			Skills:    []string{"React", "JavaScript", "CSS", "HTML", "Sass", "Bootstrap", "Webpack"},
			Experience: []string{
				"Frontend Developer at DigitalAgency (2018-2023)",
				"Web Designer at CreativeCo (2015-2018)",
			},
			Education: []candidate.Education{
				{Institution: "New York University", Degree: "Bachelor of Arts", FieldOfStudy: "Interactive Media", StartDate: "2011", EndDate: "2015"},
			},
			ParsedContent: "Creative frontend developer with 8 years of experience in web design and development...",
		},
		{
			ID:        "candidate-3",
			Name:      "David Miller",
			Email:     "david.miller@example.com",
			Phone:     "345-678-9012",
			ResumeURL: "/resumes/david-miller.pdf",
			Skills:    []string{"Python", "Machine Learning", "TensorFlow", "Scikit-learn", "Pandas", "NumPy", "SQL", "Data Visualization"},
			Experience: []string{
				"Data Scientist at AnalyticsPro (2020-2023)",
				"Data Analyst at BigDataCorp (2017-2020)",
				"Research Assistant at University Lab (2015-2017)",
			},
			Education: []candidate.Education{
				{Institution: "Stanford University", Degree: "Master of Science", FieldOfStudy: "Computer Science (AI Specialization)", StartDate: "2013", EndDate: "2015"},
				{Institution: "University of Washington", Degree: "Bachelor of Science", FieldOfStudy: "Statistics", StartDate: "2009", EndDate: "2013"},
			},
			ParsedContent: "Experienced data scientist with strong background in machine learning and statistical analysis...",
		},
		{
			ID:        "candidate-4",
			Name:      "Emily Chen",
			Email:     "emily.chen@example.com",
			Phone:     "456-789-0123",
			ResumeURL: "/resumes/emily-chen.pdf",
			Skills:    []string{"Python", "R", "Data Analysis", "Machine Learning", "Tableau", "SQL", "Excel", "Statistics"},
			Experience: []string{
				"Data Analyst at InsightData (2021-2023)",
				"Business Intelligence Analyst at CorpTech (2018-2021)",
			},
			Education: []candidate.Education{
				{Institution: "MIT", Degree: "Master of Science", FieldOfStudy: "Data Science", StartDate: "2016", EndDate: "2018"},
				{Institution: "Boston University", Degree: "Bachelor of Science", FieldOfStudy: "Mathematics", StartDate: "2012", EndDate: "2016"},
			},
			ParsedContent: "Data analyst with 5 years of experience in business intelligence and data science...",
		},
	}
}

func SampleMatches() []match.Match {
	return []match.Match{
		{
			ID: "match-1", JobID: "job-1", CandidateID: "candidate-1", Score: 0.92,
			MatchDetails: []match.Detail{
				{Category: match.CategorySkills, Score: 0.95, Details: "7/8 required skills matched"},
				{Category: match.CategoryExperience, Score: 0.90, Details: "9 years experience vs. 5+ required"},
				{Category: match.CategoryEducation, Score: 0.85, Details: "Relevant degree in Computer Science"},
			},
			Shortlisted: true,
			Notes:       "Excellent candidate with strong React and TypeScript experience.",
		},
		{
			ID: "match-2", JobID: "job-1", CandidateID: "candidate-2", Score: 0.75,
			MatchDetails: []match.Detail{
				{Category: match.CategorySkills, Score: 0.70, Details: "5/8 required skills matched"},
				{Category: match.CategoryExperience, Score: 0.80, Details: "8 years experience vs. 5+ required"},
				{Category: match.CategoryEducation, Score: 0.65, Details: "Related degree in Interactive Media"},
			},
			Notes: "Good candidate but missing some key technical skills.",
		},
		{
			ID: "match-3", JobID: "job-2", CandidateID: "candidate-3", Score: 0.88,
			MatchDetails: []match.Detail{
				{Category: match.CategorySkills, Score: 0.95, Details: "7/8 required skills matched"},
				{Category: match.CategoryExperience, Score: 0.85, Details: "6 years experience vs. 3+ required"},
				{Category: match.CategoryEducation, Score: 0.95, Details: "Advanced degree in relevant field"},
			},
			Shortlisted: true,
			Notes:       "Strong data science background with relevant experience.",
		},
		{
			ID: "match-4", JobID: "job-2", CandidateID: "candidate-4", Score: 0.78,
			MatchDetails: []match.Detail{
				{Category: match.CategorySkills, Score: 0.80, Details: "6/8 required skills matched"},
				{Category: match.CategoryExperience, Score: 0.75, Details: "5 years experience vs. 3+ required"},
				{Category: match.CategoryEducation, Score: 0.90, Details: "Master's degree in Data Science"},
			},
			Shortlisted: true,
			Notes:       "Good analytical skills with relevant education.",
		},
	}
}

func SampleInterviews() []interview.Interview {
	return []interview.Interview{
		{ID: "interview-1", CandidateID: "candidate-1", JobID: "job-1", Datetime: "2023-04-15T10:00:00Z", Status: interview.StatusScheduled, Notes: "Technical interview with the engineering team."},
		{ID: "interview-2", CandidateID: "candidate-3", JobID: "job-2", Datetime: "2023-04-16T14:00:00Z", Status: interview.StatusScheduled, Notes: "Initial interview with the data science manager."},
		{ID: "interview-3", CandidateID: "candidate-4", JobID: "job-2", Datetime: "2023-04-17T11:00:00Z", Status: interview.StatusScheduled, Notes: "Technical assessment followed by team interview."},
	}
}
