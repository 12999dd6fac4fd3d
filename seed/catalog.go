// Package seed holds the static OSSU catalog: the course definitions and the
// curriculum metadata. The data is fixed at build time; the sync reconciler
// layers it onto the progress store without touching existing records.
package seed

import (
	"ossutracker/models"

	"gorm.io/datatypes"
)

func prereqs(ids ...string) datatypes.JSONSlice[string] {
	return datatypes.JSONSlice[string](ids)
}

// Courses returns the full course catalog. Prerequisites reference course ids
// from this same list; the gating engine tolerates ids that are missing from
// the store.
func Courses() []models.Course {
	return []models.Course{
		// Computer Science - Intro CS
		{
			ID:            "intro-cs-python",
			Title:         "Introduction to Computer Science and Programming using Python",
			Description:   "MIT's introduction to computer science and programming using Python",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Intro CS",
			Prerequisites: prereqs(),
			Duration:      "14 weeks",
			Effort:        "6-10 hours/week",
			URL:           "https://www.edx.org/course/introduction-to-computer-science-mitx-6-00-1x-11",
			TimeEstimated: 112,
		},

		// Computer Science - Core Programming
		{
			ID:            "systematic-program-design",
			Title:         "Systematic Program Design",
			Description:   "Introduction to systematic program design using a design recipe",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Programming",
			Prerequisites: prereqs(),
			Duration:      "13 weeks",
			Effort:        "8-10 hours/week",
			URL:           "https://www.edx.org/course/how-to-code-simple-data",
			TimeEstimated: 117,
		},
		{
			ID:            "class-based-program-design",
			Title:         "Class-based Program Design",
			Description:   "Object-oriented programming and class-based design",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Programming",
			Prerequisites: prereqs("systematic-program-design"),
			Duration:      "13 weeks",
			Effort:        "5-10 hours/week",
			URL:           "https://course.ccs.neu.edu/cs2510sp22/index.html",
			TimeEstimated: 98,
		},
		{
			ID:            "programming-languages-a",
			Title:         "Programming Languages, Part A",
			Description:   "Functional programming in Standard ML",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Programming",
			Prerequisites: prereqs("systematic-program-design"),
			Duration:      "5 weeks",
			Effort:        "4-8 hours/week",
			URL:           "https://www.coursera.org/learn/programming-languages",
			TimeEstimated: 30,
		},
		{
			ID:            "programming-languages-b",
			Title:         "Programming Languages, Part B",
			Description:   "Programming languages with Racket",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Programming",
			Prerequisites: prereqs("programming-languages-a"),
			Duration:      "3 weeks",
			Effort:        "4-8 hours/week",
			URL:           "https://www.coursera.org/learn/programming-languages-part-b",
			TimeEstimated: 18,
		},
		{
			ID:            "programming-languages-c",
			Title:         "Programming Languages, Part C",
			Description:   "Programming languages with Ruby",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Programming",
			Prerequisites: prereqs("programming-languages-b"),
			Duration:      "3 weeks",
			Effort:        "4-8 hours/week",
			URL:           "https://www.coursera.org/learn/programming-languages-part-c",
			TimeEstimated: 18,
		},
		{
			ID:            "object-oriented-design",
			Title:         "Object-Oriented Design",
			Description:   "Advanced object-oriented design patterns",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Programming",
			Prerequisites: prereqs("class-based-program-design"),
			Duration:      "13 weeks",
			Effort:        "5-10 hours/week",
			URL:           "https://course.ccs.neu.edu/cs3500f19/",
			TimeEstimated: 98,
		},
		{
			ID:            "software-architecture",
			Title:         "Software Architecture",
			Description:   "Software architecture and design principles",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Programming",
			Prerequisites: prereqs("object-oriented-design"),
			Duration:      "4 weeks",
			Effort:        "2-5 hours/week",
			URL:           "https://www.coursera.org/learn/software-architecture",
			TimeEstimated: 14,
		},

		// Computer Science - Core Math
		{
			ID:            "calculus-1a",
			Title:         "Calculus 1A: Differentiation",
			Description:   "Single variable differential calculus",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Math",
			Prerequisites: prereqs(),
			Duration:      "13 weeks",
			Effort:        "6-10 hours/week",
			URL:           "https://openlearninglibrary.mit.edu/courses/course-v1:MITx+18.01.1x+2T2019/about",
			TimeEstimated: 104,
		},
		{
			ID:            "calculus-1b",
			Title:         "Calculus 1B: Integration",
			Description:   "Single variable integral calculus",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Math",
			Prerequisites: prereqs("calculus-1a"),
			Duration:      "13 weeks",
			Effort:        "5-10 hours/week",
			URL:           "https://openlearninglibrary.mit.edu/courses/course-v1:MITx+18.01.2x+3T2019/about",
			TimeEstimated: 98,
		},
		{
			ID:            "calculus-1c",
			Title:         "Calculus 1C: Coordinate Systems & Infinite Series",
			Description:   "Coordinate systems and infinite series",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Math",
			Prerequisites: prereqs("calculus-1b"),
			Duration:      "6 weeks",
			Effort:        "5-10 hours/week",
			URL:           "https://openlearninglibrary.mit.edu/courses/course-v1:MITx+18.01.3x+1T2020/about",
			TimeEstimated: 45,
		},
		{
			ID:            "math-for-cs",
			Title:         "Mathematics for Computer Science",
			Description:   "Discrete mathematics and mathematical reasoning",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Math",
			Prerequisites: prereqs("calculus-1c"),
			Duration:      "13 weeks",
			Effort:        "5 hours/week",
			URL:           "https://openlearninglibrary.mit.edu/courses/course-v1:OCW+6.042J+2T2019/about",
			TimeEstimated: 65,
		},

		// Computer Science - CS Tools
		{
			ID:            "missing-semester",
			Title:         "The Missing Semester of Your CS Education",
			Description:   "Essential computer science tools and techniques",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "CS Tools",
			Prerequisites: prereqs(),
			Duration:      "2 weeks",
			Effort:        "12 hours/week",
			URL:           "https://missing.csail.mit.edu/",
			TimeEstimated: 24,
		},

		// Computer Science - Core Systems
		{
			ID:            "nand2tetris-1",
			Title:         "Build a Modern Computer from First Principles: Nand to Tetris Part I",
			Description:   "Build a working computer from logic gates up",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Systems",
			Prerequisites: prereqs("intro-cs-python"),
			Duration:      "6 weeks",
			Effort:        "7-13 hours/week",
			URL:           "https://www.coursera.org/learn/build-a-computer",
			TimeEstimated: 60,
		},
		{
			ID:            "nand2tetris-2",
			Title:         "Build a Modern Computer from First Principles: Nand to Tetris Part II",
			Description:   "Build a compiler and operating system for the Hack computer",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Systems",
			Prerequisites: prereqs("nand2tetris-1"),
			Duration:      "6 weeks",
			Effort:        "12-18 hours/week",
			URL:           "https://www.coursera.org/learn/nand2tetris2",
			TimeEstimated: 90,
		},
		{
			ID:            "operating-systems-ostep",
			Title:         "Operating Systems: Three Easy Pieces",
			Description:   "Virtualization, concurrency and persistence in operating systems",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Systems",
			Prerequisites: prereqs("nand2tetris-2"),
			Duration:      "12 weeks",
			Effort:        "6-10 hours/week",
			URL:           "https://pages.cs.wisc.edu/~remzi/OSTEP/",
			TimeEstimated: 96,
		},
		{
			ID:            "computer-networking",
			Title:         "Computer Networking: a Top-Down Approach",
			Description:   "Principles of computer networking from the application layer down",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Systems",
			Prerequisites: prereqs("intro-cs-python"),
			Duration:      "8 weeks",
			Effort:        "4-12 hours/week",
			URL:           "https://gaia.cs.umass.edu/kurose_ross/online_lectures.htm",
			TimeEstimated: 64,
		},

		// Computer Science - Core Theory
		{
			ID:            "algorithms-divide-conquer",
			Title:         "Divide and Conquer, Sorting and Searching, and Randomized Algorithms",
			Description:   "Asymptotic analysis, sorting, searching and randomized algorithms",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Theory",
			Prerequisites: prereqs("systematic-program-design"),
			Duration:      "4 weeks",
			Effort:        "4-8 hours/week",
			URL:           "https://www.coursera.org/learn/algorithms-divide-conquer",
			TimeEstimated: 24,
		},
		{
			ID:            "algorithms-graph-search",
			Title:         "Graph Search, Shortest Paths, and Data Structures",
			Description:   "Graph primitives, shortest paths, heaps and hash tables",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Theory",
			Prerequisites: prereqs("algorithms-divide-conquer"),
			Duration:      "4 weeks",
			Effort:        "4-8 hours/week",
			URL:           "https://www.coursera.org/learn/algorithms-graphs-data-structures",
			TimeEstimated: 24,
		},

		// Computer Science - Core Applications
		{
			ID:            "databases-relational",
			Title:         "Databases: Relational Databases and SQL",
			Description:   "Relational model, relational algebra and SQL",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Applications",
			Prerequisites: prereqs("intro-cs-python"),
			Duration:      "2 weeks",
			Effort:        "8-12 hours/week",
			URL:           "https://www.edx.org/course/databases-5-sql",
			TimeEstimated: 20,
		},
		{
			ID:            "machine-learning",
			Title:         "Machine Learning",
			Description:   "Supervised and unsupervised learning and best practices",
			Curriculum:    models.CurriculumComputerScience,
			Category:      "Core Applications",
			Prerequisites: prereqs("math-for-cs"),
			Duration:      "11 weeks",
			Effort:        "5-8 hours/week",
			URL:           "https://www.coursera.org/specializations/machine-learning-introduction",
			TimeEstimated: 77,
		},

		// Data Science
		{
			ID:            "what-is-data-science",
			Title:         "What is Data Science",
			Description:   "Introduction to data science concepts and methodologies",
			Curriculum:    models.CurriculumDataScience,
			Category:      "Introduction to Data Science",
			Prerequisites: prereqs(),
			Duration:      "3 weeks",
			Effort:        "2 hours/week",
			URL:           "https://www.coursera.org/learn/what-is-datascience",
			TimeEstimated: 6,
		},
		{
			ID:            "intro-programming-python",
			Title:         "Introduction to Programming (Python Specialization)",
			Description:   "Comprehensive Python programming specialization",
			Curriculum:    models.CurriculumDataScience,
			Category:      "Introduction to Computer Science",
			Prerequisites: prereqs(),
			Duration:      "20 weeks",
			Effort:        "7-10 hours/week",
			URL:           "https://www.coursera.org/specializations/introduction-programming-python",
			TimeEstimated: 170,
		},
		{
			ID:            "ds-algorithms-python",
			Title:         "Data Structures and Algorithms in Python",
			Description:   "Core data structures and algorithms with Python implementations",
			Curriculum:    models.CurriculumDataScience,
			Category:      "Data Structures and Algorithms",
			Prerequisites: prereqs("intro-programming-python"),
			Duration:      "8 weeks",
			Effort:        "6 hours/week",
			URL:           "https://www.coursera.org/specializations/data-structures-algorithms",
			TimeEstimated: 48,
		},
		{
			ID:            "databases-modeling-sql",
			Title:         "Databases: Modeling and Theory",
			Description:   "Data modeling, relational theory and SQL for data work",
			Curriculum:    models.CurriculumDataScience,
			Category:      "Databases",
			Prerequisites: prereqs("what-is-data-science"),
			Duration:      "8 weeks",
			Effort:        "5 hours/week",
			URL:           "https://www.edx.org/course/databases-5-sql",
			TimeEstimated: 40,
		},
		{
			ID:            "statistics-with-python",
			Title:         "Statistics with Python",
			Description:   "Statistical inference and modeling with Python",
			Curriculum:    models.CurriculumDataScience,
			Category:      "Statistics & Probability",
			Prerequisites: prereqs("intro-programming-python"),
			Duration:      "12 weeks",
			Effort:        "7 hours/week",
			URL:           "https://www.coursera.org/specializations/statistics-with-python",
			TimeEstimated: 84,
		},
		{
			ID:            "applied-machine-learning-python",
			Title:         "Applied Machine Learning in Python",
			Description:   "Applied machine learning methods with scikit-learn",
			Curriculum:    models.CurriculumDataScience,
			Category:      "Machine Learning/Data Mining",
			Prerequisites: prereqs("statistics-with-python"),
			Duration:      "4 weeks",
			Effort:        "7 hours/week",
			URL:           "https://www.coursera.org/learn/python-machine-learning",
			TimeEstimated: 30,
		},

		// Mathematics
		{
			ID:            "intro-mathematical-thinking",
			Title:         "Introduction to Mathematical Thinking",
			Description:   "How professional mathematicians think and prove",
			Curriculum:    models.CurriculumMathematics,
			Category:      "Introduction to Mathematical Thinking",
			Prerequisites: prereqs(),
			Duration:      "10 weeks",
			Effort:        "8 hours/week",
			URL:           "https://www.coursera.org/learn/mathematical-thinking",
			TimeEstimated: 80,
		},
		{
			ID:            "multivariable-calculus",
			Title:         "Multivariable Calculus",
			Description:   "Calculus of several variables",
			Curriculum:    models.CurriculumMathematics,
			Category:      "Calculus",
			Prerequisites: prereqs("calculus-1c"),
			Duration:      "15 weeks",
			Effort:        "8 hours/week",
			URL:           "https://ocw.mit.edu/courses/18-02sc-multivariable-calculus-fall-2010/",
			TimeEstimated: 120,
		},
		{
			ID:            "linear-algebra",
			Title:         "Linear Algebra",
			Description:   "Matrix theory and linear algebra",
			Curriculum:    models.CurriculumMathematics,
			Category:      "Linear Algebra",
			Prerequisites: prereqs("intro-mathematical-thinking"),
			Duration:      "14 weeks",
			Effort:        "12 hours/week",
			URL:           "https://ocw.mit.edu/courses/18-06sc-linear-algebra-fall-2011/",
			TimeEstimated: 168,
		},
		{
			ID:            "intro-probability",
			Title:         "Introduction to Probability",
			Description:   "Probabilistic models, random variables and inference",
			Curriculum:    models.CurriculumMathematics,
			Category:      "Probability and Statistics",
			Prerequisites: prereqs("calculus-1b"),
			Duration:      "24 weeks",
			Effort:        "10 hours/week",
			URL:           "https://www.edx.org/course/probability-the-science-of-uncertainty-and-data",
			TimeEstimated: 240,
		},

		// Bioinformatics
		{
			ID:            "intro-biology",
			Title:         "Introduction to Biology - The Secret of Life",
			Description:   "Foundations of modern biology",
			Curriculum:    models.CurriculumBioinformatics,
			Category:      "Introduction to Biology",
			Prerequisites: prereqs(),
			Duration:      "16 weeks",
			Effort:        "4 hours/week",
			URL:           "https://www.edx.org/course/introduction-to-biology-the-secret-of-life",
			TimeEstimated: 64,
		},
		{
			ID:            "bioinformatics-specialization",
			Title:         "Bioinformatics Specialization",
			Description:   "Algorithms for sequence analysis and genome assembly",
			Curriculum:    models.CurriculumBioinformatics,
			Category:      "Core Bioinformatics",
			Prerequisites: prereqs("intro-biology", "intro-cs-python"),
			Duration:      "30 weeks",
			Effort:        "5 hours/week",
			URL:           "https://www.coursera.org/specializations/bioinformatics",
			TimeEstimated: 150,
		},
		{
			ID:            "genomic-data-science",
			Title:         "Genomic Data Science Specialization",
			Description:   "Statistical and computational analysis of genomic data",
			Curriculum:    models.CurriculumBioinformatics,
			Category:      "Statistics and Machine Learning",
			Prerequisites: prereqs("bioinformatics-specialization"),
			Duration:      "25 weeks",
			Effort:        "5 hours/week",
			URL:           "https://www.coursera.org/specializations/genomic-data-science",
			TimeEstimated: 125,
		},

		// Precollege Math
		{
			ID:            "arithmetic",
			Title:         "Arithmetic",
			Description:   "Addition, subtraction, multiplication and division",
			Curriculum:    models.CurriculumPrecollegeMath,
			Category:      "Arithmetic",
			Prerequisites: prereqs(),
			Duration:      "8 weeks",
			Effort:        "5 hours/week",
			URL:           "https://www.khanacademy.org/math/arithmetic",
			TimeEstimated: 40,
		},
		{
			ID:            "pre-algebra",
			Title:         "Pre-Algebra",
			Description:   "Factors, fractions, ratios and proportions",
			Curriculum:    models.CurriculumPrecollegeMath,
			Category:      "Pre-Algebra",
			Prerequisites: prereqs("arithmetic"),
			Duration:      "8 weeks",
			Effort:        "5 hours/week",
			URL:           "https://www.khanacademy.org/math/pre-algebra",
			TimeEstimated: 40,
		},
		{
			ID:            "algebra-basics",
			Title:         "Algebra Basics",
			Description:   "Equations, inequalities and graphing",
			Curriculum:    models.CurriculumPrecollegeMath,
			Category:      "Algebra Basics",
			Prerequisites: prereqs("pre-algebra"),
			Duration:      "10 weeks",
			Effort:        "5 hours/week",
			URL:           "https://www.khanacademy.org/math/algebra-basics",
			TimeEstimated: 50,
		},
		{
			ID:            "trigonometry",
			Title:         "Trigonometry",
			Description:   "Triangles, the unit circle and trigonometric identities",
			Curriculum:    models.CurriculumPrecollegeMath,
			Category:      "Trigonometry",
			Prerequisites: prereqs("algebra-basics"),
			Duration:      "8 weeks",
			Effort:        "5 hours/week",
			URL:           "https://www.khanacademy.org/math/trigonometry",
			TimeEstimated: 40,
		},
	}
}

// Curricula returns the static metadata of each OSSU track. TotalCourses is
// filled from the catalog.
func Curricula() []models.CurriculumInfo {
	counts := make(map[string]int)
	for _, course := range Courses() {
		counts[course.Curriculum]++
	}

	infos := []models.CurriculumInfo{
		{
			Type:        models.CurriculumComputerScience,
			Name:        "Computer Science",
			Description: "Path to a free self-taught education in Computer Science!",
			GithubURL:   "https://github.com/ossu/computer-science",
			Categories: []string{
				"Prerequisites", "Intro CS", "Core Programming", "Core Math", "CS Tools",
				"Core Systems", "Core Theory", "Core Security", "Core Applications",
				"Core Ethics", "Advanced Programming", "Advanced Systems", "Advanced Theory",
				"Advanced Information Security", "Advanced Math", "Final Project",
			},
		},
		{
			Type:        models.CurriculumDataScience,
			Name:        "Data Science",
			Description: "Path to a free self-taught education in Data Science!",
			GithubURL:   "https://github.com/ossu/data-science",
			Categories: []string{
				"Introduction to Data Science", "Introduction to Computer Science",
				"Data Structures and Algorithms", "Databases", "Mathematics",
				"Statistics & Probability", "Data Science Tools & Methods",
				"Machine Learning/Data Mining", "Final Project",
			},
		},
		{
			Type:        models.CurriculumMathematics,
			Name:        "Mathematics",
			Description: "Path to a free self-taught education in Mathematics!",
			GithubURL:   "https://github.com/ossu/math",
			Categories: []string{
				"Introduction to Mathematical Thinking", "Calculus", "Linear Algebra",
				"Probability and Statistics", "Advanced Mathematics",
			},
		},
		{
			Type:        models.CurriculumBioinformatics,
			Name:        "Bioinformatics",
			Description: "Path to a free self-taught education in Bioinformatics!",
			GithubURL:   "https://github.com/ossu/bioinformatics",
			Categories: []string{
				"Prerequisites", "Introduction to Biology", "Core Bioinformatics",
				"Statistics and Machine Learning", "Advanced Topics", "Final Project",
			},
		},
		{
			Type:        models.CurriculumPrecollegeMath,
			Name:        "Precollege Math",
			Description: "Precollege Math Curriculum!",
			GithubURL:   "https://github.com/ossu/precollege-math",
			Categories: []string{
				"Arithmetic", "Pre-Algebra", "Algebra Basics", "Geometry",
				"Algebra II", "Trigonometry", "Precalculus",
			},
		},
	}

	for i := range infos {
		infos[i].TotalCourses = counts[infos[i].Type]
	}
	return infos
}
