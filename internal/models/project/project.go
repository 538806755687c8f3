package project

type Project struct {
	Id          int      `json:"id" validate:"required,gt=0"`
	Name        string   `json:"name" validate:"required"`
	Budget      float64  `json:"budget" validate:"gte=0"`
	Timeline    int      `json:"timeline" validate:"gt=0"`
	Skills      []string `json:"skills"`
	Description string   `json:"description,omitempty"`
}

// Fallback is served whenever the catalog source cannot be fetched or decoded.
func Fallback() []Project {
	return []Project{
		{
			Id:          1,
			Name:        "Website Redesign",
			Description: "Redesign a company website to be modern, responsive, and user-friendly.",
			Budget:      15000,
			Timeline:    7,
			Skills:      []string{"React", "TailwindCSS", "UI/UX"},
		},
		{
			Id:          2,
			Name:        "Blockchain Smart Contract",
			Description: "Develop a secure smart contract for a new crypto token.",
			Budget:      50000,
			Timeline:    14,
			Skills:      []string{"Solidity", "Ethereum", "Web3"},
		},
		{
			Id:          3,
			Name:        "Mobile App Development",
			Description: "Create a cross-platform mobile app for a fitness tracking system.",
			Budget:      40000,
			Timeline:    21,
			Skills:      []string{"React Native", "Firebase", "Redux"},
		},
		{
			Id:          4,
			Name:        "E-commerce Platform Integration",
			Description: "Integrate payment gateways and shipping APIs into an existing e-commerce site.",
			Budget:      20000,
			Timeline:    10,
			Skills:      []string{"API", "Backend", "Payment Processing"},
		},
	}
}

func FindById(projects []Project, id int) (Project, bool) {
	for _, p := range projects {
		if p.Id == id {
			return p, true
		}
	}
	return Project{}, false
}
