package catalog

import "sort"

// Course is a static catalog entry. The catalog is compiled in and never
// mutated at runtime; per-user state (enrollment) lives in the store.
type Course struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	FullDescription string `json:"full_description"`
	Image           string `json:"image"`
	Category        string `json:"category"`
	Duration        string `json:"duration"`
	Level           string `json:"level"`
	Instructor      string `json:"instructor"`
	Lessons         int    `json:"lessons"`
	CreatedAt       string `json:"created_at"`
}

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

var courses = []Course{
	{
		ID:              "1",
		Title:           "Advanced React Patterns",
		Description:     "Learn to implement advanced React patterns to build more maintainable components.",
		FullDescription: "Master advanced React patterns such as Compound Components, Render Props, Higher Order Components, and React Hooks. This course covers everything you need to build scalable and maintainable React applications with elegant component composition and state management approaches.",
		Image:           "https://images.unsplash.com/photo-1633356122102-3fe601e05bd2?ixlib=rb-1.2.1&auto=format&fit=crop&w=1000&q=80",
		Category:        "Web Development",
		Duration:        "6 hours",
		Level:           LevelAdvanced,
		Instructor:      "Sarah Johnson",
		Lessons:         12,
		CreatedAt:       "2023-08-15",
	},
	{
		ID:              "2",
		Title:           "TypeScript Fundamentals",
		Description:     "Master the basics of TypeScript to improve your JavaScript development workflow.",
		FullDescription: "This comprehensive course covers TypeScript from the ground up. Learn about types, interfaces, generics, and how to leverage the TypeScript compiler to catch errors before they reach production. By the end of this course, you'll be able to confidently build type-safe applications.",
		Image:           "https://images.unsplash.com/photo-1587620962725-abab7fe55159?ixlib=rb-1.2.1&auto=format&fit=crop&w=1000&q=80",
		Category:        "Programming",
		Duration:        "4 hours",
		Level:           LevelBeginner,
		Instructor:      "Michael Chen",
		Lessons:         8,
		CreatedAt:       "2023-09-05",
	},
	{
		ID:              "3",
		Title:           "UI/UX Design Principles",
		Description:     "Learn the core principles of designing intuitive user interfaces and experiences.",
		FullDescription: "Dive into the world of UI/UX design with this practical course. Understand user psychology, wireframing, prototyping, and usability testing. Learn how to create designs that are not only beautiful but also functional and user-friendly. Perfect for developers looking to enhance their design skills.",
		Image:           "https://images.unsplash.com/photo-1561070791-2526d30994b5?ixlib=rb-1.2.1&auto=format&fit=crop&w=1000&q=80",
		Category:        "Design",
		Duration:        "8 hours",
		Level:           LevelIntermediate,
		Instructor:      "Emily Rodriguez",
		Lessons:         15,
		CreatedAt:       "2023-07-22",
	},
	{
		ID:              "4",
		Title:           "Node.js Backend Development",
		Description:     "Build scalable backend applications with Node.js and Express.",
		FullDescription: "Learn how to build robust backend systems with Node.js and Express. This course covers RESTful API design, authentication, database integration with MongoDB, error handling, and deployment. By the end, you'll be able to create secure and performant server-side applications.",
		Image:           "https://images.unsplash.com/photo-1627399270231-7d36245355a9?ixlib=rb-1.2.1&auto=format&fit=crop&w=1000&q=80",
		Category:        "Web Development",
		Duration:        "10 hours",
		Level:           LevelIntermediate,
		Instructor:      "David Kim",
		Lessons:         20,
		CreatedAt:       "2023-10-10",
	},
	{
		ID:              "5",
		Title:           "CSS Grid and Flexbox Mastery",
		Description:     "Master modern CSS layout techniques to create responsive designs.",
		FullDescription: "Take your CSS skills to the next level with this focused course on modern layout techniques. Understand the power of Flexbox and CSS Grid to create complex, responsive layouts with clean, maintainable code. Learn when to use each approach and how to combine them for optimal results.",
		Image:           "https://images.unsplash.com/photo-1517180102446-f3ece451e9d8?ixlib=rb-1.2.1&auto=format&fit=crop&w=1000&q=80",
		Category:        "Web Development",
		Duration:        "5 hours",
		Level:           LevelBeginner,
		Instructor:      "Jessica Patel",
		Lessons:         10,
		CreatedAt:       "2023-11-15",
	},
	{
		ID:              "6",
		Title:           "Data Visualization with D3.js",
		Description:     "Create interactive data visualizations for the web using D3.js.",
		FullDescription: "Learn how to transform data into compelling visual stories using D3.js. This course covers data binding, scales, axes, transitions, and interactive visualizations. You'll create beautiful charts, graphs, and interactive dashboards that bring your data to life on the web.",
		Image:           "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-1.2.1&auto=format&fit=crop&w=1000&q=80",
		Category:        "Data Science",
		Duration:        "7 hours",
		Level:           LevelAdvanced,
		Instructor:      "Alex Thompson",
		Lessons:         14,
		CreatedAt:       "2023-12-01",
	},
}

// All returns the catalog in its fixed order. Callers get a copy so the
// backing slice stays immutable.
func All() []Course {
	out := make([]Course, len(courses))
	copy(out, courses)
	return out
}

func ByID(id string) (Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

func Exists(id string) bool {
	_, ok := ByID(id)
	return ok
}

// Categories returns the distinct course categories sorted ascending.
func Categories() []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		if seen[c.Category] {
			continue
		}
		seen[c.Category] = true
		out = append(out, c.Category)
	}
	sort.Strings(out)
	return out
}
