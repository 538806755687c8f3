package profile

type PortfolioLinks struct {
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

type CompletedProject struct {
	Id             int      `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	CompletionDate string   `json:"completionDate"`
	Technologies   []string `json:"technologies"`
}

type Freelancer struct {
	Id                int                `json:"id"`
	Name              string             `json:"name"`
	ProfileImage      string             `json:"profileImage"`
	Skills            []string           `json:"skills"`
	YearsOfExperience int                `json:"yearsOfExperience"`
	Description       string             `json:"description"`
	PortfolioLinks    PortfolioLinks     `json:"portfolioLinks"`
	CompletedProjects []CompletedProject `json:"completedProjects"`
	Rating            float64            `json:"rating"`
	TotalRatings      int                `json:"totalRatings"`
}

type RatingRequest struct {
	Stars int `json:"stars" validate:"min=1,max=5"`
}

func Default() Freelancer {
	return Freelancer{
		Id:                1,
		Name:              "Alex Johnson",
		ProfileImage:      "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
		Skills:            []string{"React", "TypeScript", "TailwindCSS", "NextJS", "Node.js", "GraphQL"},
		YearsOfExperience: 4,
		Description:       "Full-stack developer specializing in React and TypeScript. Passionate about creating clean, efficient, and user-friendly interfaces. Experienced in both frontend and backend development.",
		PortfolioLinks: PortfolioLinks{
			Github:   "https://github.com/alexjohnson",
			Linkedin: "https://linkedin.com/in/alexjohnson",
			Website:  "https://alexjohnson.dev",
		},
		CompletedProjects: []CompletedProject{
			{
				Id:             1,
				Name:           "E-commerce Platform",
				Description:    "Developed a full-stack e-commerce platform with product listings, shopping cart, and payment processing integration.",
				CompletionDate: "2023-08-15",
				Technologies:   []string{"React", "Node.js", "MongoDB", "Stripe"},
			},
			{
				Id:             2,
				Name:           "Real-time Chat Application",
				Description:    "Built a real-time chat application with private messaging, group chats, and file sharing capabilities.",
				CompletionDate: "2023-05-22",
				Technologies:   []string{"React", "Socket.io", "Express", "Redis"},
			},
			{
				Id:             3,
				Name:           "Task Management Dashboard",
				Description:    "Created a task management dashboard with drag-and-drop functionality, task assignments, and progress tracking.",
				CompletionDate: "2023-03-10",
				Technologies:   []string{"React", "TypeScript", "Redux", "TailwindCSS"},
			},
			{
				Id:             4,
				Name:           "Health & Fitness Tracker",
				Description:    "Developed a mobile-responsive web app for tracking workouts, nutrition, and health metrics with data visualization.",
				CompletionDate: "2022-11-05",
				Technologies:   []string{"React", "D3.js", "Firebase", "TailwindCSS"},
			},
		},
		Rating:       4.8,
		TotalRatings: 24,
	}
}
