package ontology

import "github.com/kailas-cloud/skillgap/internal/domain/skill"

// Default builds the ontology store from the built-in skill table.
func Default() (*Store, error) {
	return Build(defaultSkills)
}

// defaultSkills is the canonical skill table. Hierarchy fields
// (RelatedSkills, ParentSkills, ChildSkills) reference skill IDs.
// Aliases and keywords must be unique across the whole table; Build
// rejects collisions.
var defaultSkills = []skill.Skill{
	// --- Programming languages ---
	{
		ID:            "python",
		Name:          "Python",
		Category:      skill.CategoryProgrammingLanguage,
		Aliases:       []string{"python3", "py", "python 3"},
		Keywords:      []string{"pip", "pypi", "pep8", "pytest"},
		RelatedSkills: []string{"django", "fastapi", "machine-learning"},
		ChildSkills:   []string{"django", "fastapi", "machine-learning"},
		Description:   "General-purpose language dominant in web backends, data science, AI/ML and automation.",
		LearningPath:  "Python basics -> OOP -> web framework (Django/FastAPI) -> testing -> async programming",
		BestPractices: []string{
			"Use virtual environments",
			"Follow PEP 8",
			"Write unit tests with pytest",
			"Use type hints",
		},
		CVTips:          "List concrete frameworks (Django, FastAPI), not just 'Python'.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$70k-140k",
		ExperienceLevel: "all",
	},
	{
		ID:            "javascript",
		Name:          "JavaScript",
		Category:      skill.CategoryProgrammingLanguage,
		Aliases:       []string{"js", "es6", "es2015", "ecmascript", "vanilla js"},
		Keywords:      []string{"dom", "es2020"},
		RelatedSkills: []string{"typescript", "react", "vue", "nodejs"},
		ChildSkills:   []string{"typescript", "react", "vue", "nodejs"},
		Description:   "The language of the web, running both in browsers and on the server via Node.js.",
		LearningPath:  "JS basics -> DOM -> framework (React/Vue) -> Node.js -> TypeScript",
		BestPractices: []string{
			"Prefer TypeScript for larger projects",
			"Use async/await over callbacks",
			"Lint with ESLint and format with Prettier",
		},
		CVTips:          "Write 'JavaScript (ES6+)' and name the frameworks you actually used.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "$65k-135k",
		ExperienceLevel: "all",
	},
	{
		ID:            "typescript",
		Name:          "TypeScript",
		Category:      skill.CategoryProgrammingLanguage,
		Aliases:       []string{"ts", "type script"},
		Keywords:      []string{"tsc", "tsconfig"},
		RelatedSkills: []string{"javascript", "react", "angular", "nestjs"},
		ParentSkills:  []string{"javascript"},
		ChildSkills:   []string{"angular", "nestjs"},
		Description:   "JavaScript with static typing; the default choice for maintainable frontend and Node codebases.",
		LearningPath:  "JavaScript proficiency -> TS basics -> advanced types -> generics",
		BestPractices: []string{
			"Enable strict mode",
			"Define proper interfaces",
			"Avoid the any type",
		},
		CVTips:          "TypeScript is close to mandatory for senior frontend roles.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "$75k-145k",
		ExperienceLevel: "mid",
	},
	{
		ID:            "go",
		Name:          "Go",
		Category:      skill.CategoryProgrammingLanguage,
		Aliases:       []string{"golang", "go-lang", "go lang"},
		Keywords:      []string{"goroutine", "channels", "gin", "echo"},
		RelatedSkills: []string{"docker", "kubernetes", "microservices", "grpc"},
		ChildSkills:   []string{"microservices", "grpc"},
		Description:   "Compiled language known for performance, simple concurrency, and cloud-native tooling.",
		LearningPath:  "Go basics -> goroutines and channels -> web (Gin/Echo) -> gRPC -> cloud deployment",
		BestPractices: []string{
			"Use Go modules",
			"Accept interfaces, return structs",
			"Follow effective Go guidelines",
		},
		CVTips:          "Highlight microservices and cloud experience alongside Go itself.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$85k-160k",
		ExperienceLevel: "mid",
	},
	{
		ID:            "java",
		Name:          "Java",
		Category:      skill.CategoryProgrammingLanguage,
		Aliases:       []string{"java8", "java11", "java17", "jdk"},
		Keywords:      []string{"jvm", "maven", "gradle"},
		RelatedSkills: []string{"spring-boot"},
		ChildSkills:   []string{"spring-boot"},
		Description:   "Enterprise mainstay, strong in banking, fintech, and large-scale backend systems.",
		LearningPath:  "Java core -> OOP -> Spring Boot -> JPA/Hibernate -> microservices",
		BestPractices: []string{
			"Use an LTS release (17+)",
			"Follow SOLID principles",
			"Build with Spring Boot",
		},
		CVTips:          "State the version (Java 17/21) and your Spring Boot experience.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$75k-150k",
		ExperienceLevel: "all",
	},
	{
		ID:            "csharp",
		Name:          "C#",
		Category:      skill.CategoryProgrammingLanguage,
		Aliases:       []string{"c-sharp", "c sharp", "dotnet", ".net"},
		Keywords:      []string{"asp.net", "nuget"},
		RelatedSkills: []string{"azure"},
		Description:   "Microsoft's language for enterprise applications and game development with Unity.",
		LearningPath:  "C# basics -> OOP -> ASP.NET Core -> Entity Framework -> Azure",
		BestPractices: []string{
			"Target .NET LTS releases",
			"Use async/await properly",
			"Apply dependency injection",
		},
		CVTips:          "Name the .NET version and any Azure experience.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$70k-140k",
		ExperienceLevel: "all",
	},
	{
		ID:            "rust",
		Name:          "Rust",
		Category:      skill.CategoryProgrammingLanguage,
		Aliases:       []string{"rust-lang", "rustlang"},
		Keywords:      []string{"cargo", "borrow checker"},
		RelatedSkills: []string{"go"},
		Description:   "Systems language combining memory safety with native performance.",
		LearningPath:  "Rust basics -> ownership and borrowing -> async -> web frameworks",
		BestPractices: []string{
			"Embrace the borrow checker",
			"Leverage the type system",
			"Write idiomatic Rust, not translated C",
		},
		CVTips:          "Rust engineers are scarce and command premium compensation.",
		MarketDemand:    skill.DemandNiche,
		SalaryRange:     "$95k-180k",
		ExperienceLevel: "mid",
	},
	{
		ID:            "sql",
		Name:          "SQL",
		Category:      skill.CategoryDatabase,
		Aliases:       []string{"structured query language"},
		Keywords:      []string{"joins", "ddl", "query optimization"},
		RelatedSkills: []string{"postgresql", "mysql"},
		ChildSkills:   []string{"postgresql", "mysql"},
		Description:   "The query language for relational databases; baseline for any backend role.",
		LearningPath:  "SELECT basics -> joins -> aggregation -> indexing -> query plans",
		BestPractices: []string{
			"Understand execution plans",
			"Index for your query patterns",
			"Avoid N+1 query loops",
		},
		CVTips:          "Mention scale: table sizes, query tuning results.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "bundled with backend roles",
		ExperienceLevel: "all",
	},

	// --- Frontend ---
	{
		ID:            "html",
		Name:          "HTML",
		Category:      skill.CategoryFrontendFramework,
		Aliases:       []string{"html5"},
		Keywords:      []string{"semantic markup", "accessibility"},
		RelatedSkills: []string{"css", "javascript"},
		ChildSkills:   []string{"css"},
		Description:   "Markup language of the web; foundation for every frontend stack.",
		LearningPath:  "Elements and semantics -> forms -> accessibility -> SEO basics",
		BestPractices: []string{
			"Use semantic elements",
			"Keep markup accessible",
		},
		CVTips:          "Assumed for frontend roles; list only with accessibility or SEO depth.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "bundled with frontend roles",
		ExperienceLevel: "all",
	},
	{
		ID:            "css",
		Name:          "CSS",
		Category:      skill.CategoryFrontendFramework,
		Aliases:       []string{"css3"},
		Keywords:      []string{"flexbox", "grid layout"},
		RelatedSkills: []string{"html", "tailwindcss"},
		ParentSkills:  []string{"html"},
		ChildSkills:   []string{"tailwindcss"},
		Description:   "Styling language of the web: layout, responsive design, animation.",
		LearningPath:  "Selectors -> box model -> flexbox/grid -> responsive design -> animations",
		BestPractices: []string{
			"Design mobile-first",
			"Prefer flexbox/grid over float hacks",
		},
		CVTips:          "Show responsive and design-system work rather than listing 'CSS'.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "bundled with frontend roles",
		ExperienceLevel: "all",
	},
	{
		ID:            "react",
		Name:          "React",
		Category:      skill.CategoryFrontendFramework,
		Aliases:       []string{"reactjs", "react.js", "react js", "react 18"},
		Keywords:      []string{"jsx", "hooks", "redux"},
		RelatedSkills: []string{"typescript", "nextjs", "react-native"},
		ParentSkills:  []string{"javascript", "html", "css"},
		ChildSkills:   []string{"nextjs", "react-native"},
		Description:   "The most widely used frontend library, built around components and hooks.",
		LearningPath:  "React basics -> hooks -> state management -> Next.js -> testing",
		BestPractices: []string{
			"Use functional components and hooks",
			"Avoid prop drilling",
			"Memoize expensive renders",
		},
		CVTips:          "Write 'React (Hooks, Redux)' instead of bare 'React'.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "$70k-140k",
		ExperienceLevel: "all",
	},
	{
		ID:            "vue",
		Name:          "Vue.js",
		Category:      skill.CategoryFrontendFramework,
		Aliases:       []string{"vuejs", "vue.js", "vue 3"},
		Keywords:      []string{"pinia", "vuex", "composition api"},
		RelatedSkills: []string{"javascript", "typescript"},
		ParentSkills:  []string{"javascript", "html", "css"},
		Description:   "Progressive frontend framework, easy to adopt and popular across Asia.",
		LearningPath:  "Vue basics -> Composition API -> Pinia -> Nuxt -> testing",
		BestPractices: []string{
			"Use the Composition API on Vue 3",
			"Prefer Pinia over Vuex",
			"Follow the official style guide",
		},
		CVTips:          "State Vue 2 vs 3 and Composition vs Options API.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$60k-125k",
		ExperienceLevel: "all",
	},
	{
		ID:            "angular",
		Name:          "Angular",
		Category:      skill.CategoryFrontendFramework,
		Aliases:       []string{"angular2", "angularjs"},
		Keywords:      []string{"rxjs", "ngrx"},
		RelatedSkills: []string{"typescript"},
		ParentSkills:  []string{"typescript", "html", "css"},
		Description:   "Google's batteries-included frontend framework, common in enterprise apps.",
		LearningPath:  "TypeScript -> Angular basics -> RxJS -> NgRx -> testing",
		BestPractices: []string{
			"Follow the Angular style guide",
			"Use lazy loading for feature modules",
		},
		CVTips:          "Popular in enterprise; state the major version.",
		MarketDemand:    skill.DemandMedium,
		SalaryRange:     "$70k-130k",
		ExperienceLevel: "mid",
	},
	{
		ID:            "nextjs",
		Name:          "Next.js",
		Category:      skill.CategoryFrontendFramework,
		Aliases:       []string{"next.js", "next js"},
		Keywords:      []string{"ssr", "ssg", "app router", "vercel"},
		RelatedSkills: []string{"react", "typescript"},
		ParentSkills:  []string{"react"},
		Description:   "React framework with built-in server rendering, static generation, and routing.",
		LearningPath:  "React proficiency -> Next.js basics -> App Router -> API routes -> deployment",
		BestPractices: []string{
			"Use the App Router",
			"Optimize images with next/image",
			"Prefer Server Components where possible",
		},
		CVTips:          "Highly sought after right now; highlight it prominently.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "$80k-150k",
		ExperienceLevel: "mid",
	},
	{
		ID:            "tailwindcss",
		Name:          "Tailwind CSS",
		Category:      skill.CategoryFrontendFramework,
		Aliases:       []string{"tailwind"},
		Keywords:      []string{"utility-first"},
		RelatedSkills: []string{"css", "react"},
		ParentSkills:  []string{"css", "html"},
		Description:   "Utility-first CSS framework, now the default styling choice for new projects.",
		LearningPath:  "CSS basics -> utility classes -> responsive variants -> custom config",
		BestPractices: []string{
			"Build a design system via the config",
			"Combine with component libraries",
		},
		CVTips:          "Frequently requested; include it in your tech stack.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "bundled with frontend roles",
		ExperienceLevel: "all",
	},

	// --- Backend frameworks ---
	{
		ID:            "nodejs",
		Name:          "Node.js",
		Category:      skill.CategoryBackendFramework,
		Aliases:       []string{"node", "node.js", "node js"},
		Keywords:      []string{"npm", "event loop"},
		RelatedSkills: []string{"express", "nestjs", "typescript"},
		ParentSkills:  []string{"javascript"},
		ChildSkills:   []string{"express", "nestjs"},
		Description:   "JavaScript runtime for the backend; non-blocking I/O, strong for real-time apps.",
		LearningPath:  "Node basics -> Express/NestJS -> database -> authentication -> testing",
		BestPractices: []string{
			"Use TypeScript",
			"Centralize error-handling middleware",
			"Follow 12-factor configuration",
		},
		CVTips:          "Name the framework (Express, NestJS) and the databases you used.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$70k-135k",
		ExperienceLevel: "all",
	},
	{
		ID:            "express",
		Name:          "Express.js",
		Category:      skill.CategoryBackendFramework,
		Aliases:       []string{"expressjs", "express.js"},
		Keywords:      []string{"middleware"},
		RelatedSkills: []string{"nodejs", "mongodb"},
		ParentSkills:  []string{"nodejs"},
		Description:   "Minimal Node.js web framework; the baseline for Node backends.",
		LearningPath:  "Node.js basics -> routing -> middleware -> authentication",
		BestPractices: []string{
			"Structure routes and handlers by feature",
			"Use helmet for security headers",
		},
		CVTips:          "Express is the baseline; add NestJS to stand out.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "bundled with Node.js roles",
		ExperienceLevel: "all",
	},
	{
		ID:            "nestjs",
		Name:          "NestJS",
		Category:      skill.CategoryBackendFramework,
		Aliases:       []string{"nest.js", "nest"},
		Keywords:      []string{"decorator"},
		RelatedSkills: []string{"typescript", "nodejs", "graphql"},
		ParentSkills:  []string{"nodejs", "typescript"},
		Description:   "Enterprise Node.js framework on TypeScript, with Angular-style modules and DI.",
		LearningPath:  "TypeScript -> NestJS basics -> modules -> guards/pipes -> testing",
		BestPractices: []string{
			"Keep modules cohesive",
			"Validate DTOs with pipes",
		},
		CVTips:          "Preferred over plain Express for senior Node roles.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$80k-145k",
		ExperienceLevel: "mid",
	},
	{
		ID:            "django",
		Name:          "Django",
		Category:      skill.CategoryBackendFramework,
		Aliases:       []string{"django rest framework", "drf"},
		Keywords:      []string{"django orm", "celery"},
		RelatedSkills: []string{"python", "postgresql", "redis"},
		ParentSkills:  []string{"python"},
		Description:   "Batteries-included Python web framework, strong on rapid development and security.",
		LearningPath:  "Django basics -> models and ORM -> REST API (DRF) -> Celery -> deployment",
		BestPractices: []string{
			"Use Django REST Framework for APIs",
			"Offload slow work to Celery",
			"Follow the security checklist",
		},
		CVTips:          "Highlight DRF and Celery experience.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$70k-135k",
		ExperienceLevel: "all",
	},
	{
		ID:            "fastapi",
		Name:          "FastAPI",
		Category:      skill.CategoryBackendFramework,
		Aliases:       []string{"fast-api", "fast api"},
		Keywords:      []string{"pydantic", "uvicorn"},
		RelatedSkills: []string{"python", "rest-api"},
		ParentSkills:  []string{"python"},
		Description:   "Modern async Python framework with type hints and generated API docs.",
		LearningPath:  "Python async -> FastAPI basics -> Pydantic -> background tasks",
		BestPractices: []string{
			"Model request/response with Pydantic",
			"Lean on dependency injection",
		},
		CVTips:          "Rising fast, especially for microservices.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$80k-145k",
		ExperienceLevel: "mid",
	},
	{
		ID:            "spring-boot",
		Name:          "Spring Boot",
		Category:      skill.CategoryBackendFramework,
		Aliases:       []string{"springboot", "spring boot", "spring"},
		Keywords:      []string{"autowired", "hibernate", "jpa"},
		RelatedSkills: []string{"java", "microservices"},
		ParentSkills:  []string{"java"},
		Description:   "The dominant Java framework for enterprise backends.",
		LearningPath:  "Java core -> Spring basics -> Spring Boot -> Security -> Cloud",
		BestPractices: []string{
			"Layer controllers, services, repositories",
			"Use Spring Security",
		},
		CVTips:          "Practically mandatory for Java backend roles.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "$80k-150k",
		ExperienceLevel: "all",
	},

	// --- Databases ---
	{
		ID:            "postgresql",
		Name:          "PostgreSQL",
		Category:      skill.CategoryDatabase,
		Aliases:       []string{"postgres", "psql", "pg"},
		Keywords:      []string{"explain analyze", "vacuum"},
		RelatedSkills: []string{"sql", "mysql"},
		ParentSkills:  []string{"sql"},
		Description:   "The strongest open-source relational database: JSON, full-text search, extensions.",
		LearningPath:  "SQL basics -> indexing -> query optimization -> replication -> tuning",
		BestPractices: []string{
			"Use EXPLAIN ANALYZE on slow queries",
			"Pool connections (PgBouncer)",
			"Schedule regular VACUUM",
		},
		CVTips:          "Be concrete: query tuning, millions of rows, replication.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "bundled with backend roles",
		ExperienceLevel: "all",
	},
	{
		ID:            "mysql",
		Name:          "MySQL",
		Category:      skill.CategoryDatabase,
		Aliases:       []string{"my-sql", "mariadb"},
		Keywords:      []string{"innodb"},
		RelatedSkills: []string{"sql", "postgresql"},
		ParentSkills:  []string{"sql"},
		Description:   "Widely deployed relational database, easy to operate.",
		LearningPath:  "SQL basics -> indexing -> optimization -> replication",
		BestPractices: []string{
			"Use InnoDB",
			"Review the slow query log",
		},
		CVTips:          "Common, though PostgreSQL is increasingly preferred.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "bundled with backend roles",
		ExperienceLevel: "all",
	},
	{
		ID:            "mongodb",
		Name:          "MongoDB",
		Category:      skill.CategoryDatabase,
		Aliases:       []string{"mongo", "document db"},
		Keywords:      []string{"aggregation pipeline", "mongoose"},
		RelatedSkills: []string{"nodejs"},
		Description:   "The most popular document database; flexible schemas, fast iteration.",
		LearningPath:  "CRUD -> aggregation -> indexing -> replication -> sharding",
		BestPractices: []string{
			"Design schemas around queries",
			"Avoid unbounded documents",
		},
		CVTips:          "Highlight large datasets and aggregation-pipeline work.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "bundled with backend roles",
		ExperienceLevel: "all",
	},
	{
		ID:            "redis",
		Name:          "Redis",
		Category:      skill.CategoryDatabase,
		Aliases:       []string{"redis cache", "redis db"},
		Keywords:      []string{"pub/sub", "lua scripting"},
		RelatedSkills: []string{"postgresql", "mongodb"},
		Description:   "In-memory data store for caching, sessions, queues, and real-time features.",
		LearningPath:  "Data structures -> caching patterns -> pub/sub -> clustering",
		BestPractices: []string{
			"Set sensible TTLs",
			"Plan cache invalidation",
			"Monitor memory usage",
		},
		CVTips:          "Often expected for senior backend roles.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "bundled with backend roles",
		ExperienceLevel: "mid",
	},
	{
		ID:           "elasticsearch",
		Name:         "Elasticsearch",
		Category:     skill.CategoryDatabase,
		Aliases:      []string{"elastic", "elk", "opensearch"},
		Keywords:     []string{"kibana", "logstash", "full-text search"},
		Description:  "Search and analytics engine; full-text search and the ELK logging stack.",
		LearningPath: "Basics -> queries -> mappings -> aggregations -> cluster operations",
		BestPractices: []string{
			"Design index mappings deliberately",
			"Use bulk operations for ingestion",
		},
		CVTips:          "Valuable for search-heavy products and logging platforms.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "bundled with senior backend/devops roles",
		ExperienceLevel: "mid",
	},

	// --- DevOps ---
	{
		ID:            "linux",
		Name:          "Linux",
		Category:      skill.CategoryDevOps,
		Aliases:       []string{"gnu/linux"},
		Keywords:      []string{"bash", "shell scripting", "systemd"},
		RelatedSkills: []string{"docker"},
		ChildSkills:   []string{"docker"},
		Description:   "The operating system of servers and containers; baseline for infrastructure work.",
		LearningPath:  "Shell basics -> filesystems and permissions -> processes -> networking -> scripting",
		BestPractices: []string{
			"Automate with shell scripts",
			"Learn the core networking tools",
		},
		CVTips:          "Assumed for backend/devops; list certifications or depth instead.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "bundled with devops roles",
		ExperienceLevel: "all",
	},
	{
		ID:            "docker",
		Name:          "Docker",
		Category:      skill.CategoryDevOps,
		Aliases:       []string{"docker-compose", "docker compose", "containerization"},
		Keywords:      []string{"dockerfile", "multi-stage build", "container image"},
		RelatedSkills: []string{"kubernetes", "ci-cd", "linux"},
		ParentSkills:  []string{"linux"},
		ChildSkills:   []string{"kubernetes"},
		Description:   "Container platform for packaging and shipping applications consistently.",
		LearningPath:  "Docker basics -> Dockerfile -> Compose -> orchestration (K8s)",
		BestPractices: []string{
			"Use multi-stage builds",
			"Keep images small",
			"Never run as root",
		},
		CVTips:          "Effectively mandatory for senior roles.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "bundled with backend/devops roles",
		ExperienceLevel: "mid",
	},
	{
		ID:            "kubernetes",
		Name:          "Kubernetes",
		Category:      skill.CategoryDevOps,
		Aliases:       []string{"k8s", "kube", "k8"},
		Keywords:      []string{"helm", "kubectl", "pod"},
		RelatedSkills: []string{"docker", "terraform", "aws"},
		ParentSkills:  []string{"docker", "linux"},
		Description:   "Industry-standard container orchestration for scaling and resilience.",
		LearningPath:  "K8s concepts -> deployments and services -> Helm -> monitoring -> GitOps",
		BestPractices: []string{
			"Template with Helm",
			"Define health checks and resource limits",
			"Adopt GitOps workflows",
		},
		CVTips:          "Very valuable; CKA/CKAD certifications help.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "$95k-170k (devops/sre)",
		ExperienceLevel: "mid",
	},
	{
		ID:            "ci-cd",
		Name:          "CI/CD",
		Category:      skill.CategoryDevOps,
		Aliases:       []string{"cicd", "continuous integration", "continuous deployment", "pipeline"},
		Keywords:      []string{"build automation", "jenkins", "gitlab ci"},
		RelatedSkills: []string{"github-actions", "docker", "git"},
		ParentSkills:  []string{"git"},
		ChildSkills:   []string{"github-actions"},
		Description:   "Automated build, test, and deployment pipelines.",
		LearningPath:  "Git -> CI basics -> CD basics -> advanced pipelines -> GitOps",
		BestPractices: []string{
			"Automate everything",
			"Keep feedback loops fast",
			"Gate deploys on test stages",
		},
		CVTips:          "Name the concrete tools you ran pipelines with.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "bundled with devops roles",
		ExperienceLevel: "mid",
	},
	{
		ID:            "github-actions",
		Name:          "GitHub Actions",
		Category:      skill.CategoryDevOps,
		Aliases:       []string{"gh actions", "github action"},
		Keywords:      []string{"reusable workflows", "matrix build"},
		RelatedSkills: []string{"ci-cd", "git"},
		ParentSkills:  []string{"git", "ci-cd"},
		Description:   "GitHub's built-in CI/CD platform; free for open source and simple to adopt.",
		LearningPath:  "Workflows -> jobs and steps -> secrets -> matrix builds -> reusable workflows",
		BestPractices: []string{
			"Extract reusable workflows",
			"Cache dependencies between runs",
		},
		CVTips:          "The most common CI platform; worth hands-on experience.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "bundled with devops roles",
		ExperienceLevel: "all",
	},
	{
		ID:            "terraform",
		Name:          "Terraform",
		Category:      skill.CategoryDevOps,
		Aliases:       []string{"tf", "hcl"},
		Keywords:      []string{"infrastructure as code", "iac", "state file"},
		RelatedSkills: []string{"aws", "gcp", "azure"},
		Description:   "Infrastructure-as-code tool with multi-cloud support.",
		LearningPath:  "IaC concepts -> Terraform basics -> modules -> state management -> multi-env",
		BestPractices: []string{
			"Split infrastructure into modules",
			"Use remote state with locking",
		},
		CVTips:          "Very valuable for devops and cloud roles.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$95k-160k (devops)",
		ExperienceLevel: "mid",
	},

	// --- Cloud ---
	{
		ID:            "aws",
		Name:          "AWS",
		Category:      skill.CategoryCloud,
		Aliases:       []string{"amazon web services", "aws cloud"},
		Keywords:      []string{"ec2", "s3", "lambda", "iam", "cloudformation"},
		RelatedSkills: []string{"terraform", "kubernetes", "docker"},
		Description:   "The largest cloud platform, 200+ services.",
		LearningPath:  "Core (EC2, S3, RDS) -> networking (VPC) -> serverless -> containers -> IaC",
		BestPractices: []string{
			"Follow the Well-Architected Framework",
			"Apply least-privilege IAM",
			"Manage infrastructure as code",
		},
		CVTips:          "AWS certifications (SAA, SAP) carry real weight.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "$85k-170k",
		ExperienceLevel: "all",
	},
	{
		ID:            "gcp",
		Name:          "Google Cloud Platform",
		Category:      skill.CategoryCloud,
		Aliases:       []string{"google cloud", "gcloud"},
		Keywords:      []string{"gke", "bigquery", "cloud run"},
		RelatedSkills: []string{"kubernetes", "terraform"},
		Description:   "Google's cloud, strongest in data and ML workloads.",
		LearningPath:  "Core services -> GKE -> BigQuery -> ML services -> IaC",
		BestPractices: []string{
			"Prefer managed services",
			"Use Cloud Run for serverless",
		},
		CVTips:          "Common at larger tech companies.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$85k-165k",
		ExperienceLevel: "mid",
	},
	{
		ID:            "azure",
		Name:          "Microsoft Azure",
		Category:      skill.CategoryCloud,
		Aliases:       []string{"azure cloud", "ms azure"},
		Keywords:      []string{"aks", "azure devops"},
		RelatedSkills: []string{"csharp", "terraform"},
		Description:   "Microsoft's cloud, dominant in enterprise and .NET environments.",
		LearningPath:  "Core services -> AKS -> Azure DevOps -> IaC -> security",
		BestPractices: []string{
			"Integrate Azure AD properly",
			"Prefer managed services",
		},
		CVTips:          "Pairs naturally with the .NET stack.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$85k-160k",
		ExperienceLevel: "mid",
	},

	// --- Architecture ---
	{
		ID:            "system-design",
		Name:          "System Design",
		Category:      skill.CategoryArchitecture,
		Aliases:       []string{"system architecture", "software architecture"},
		Keywords:      []string{"scalability", "reliability", "capacity planning"},
		RelatedSkills: []string{"microservices"},
		ChildSkills:   []string{"microservices"},
		Description:   "Designing large, scalable, reliable systems and reasoning about trade-offs.",
		LearningPath:  "Fundamentals -> common patterns -> case studies -> trade-off analysis",
		BestPractices: []string{
			"Understand requirements before drawing boxes",
			"Design for failure",
			"Record decisions (ADRs)",
		},
		CVTips:          "Key for senior+ roles; describe systems you designed.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "$120k-220k (senior/architect)",
		ExperienceLevel: "senior",
	},
	{
		ID:            "microservices",
		Name:          "Microservices",
		Category:      skill.CategoryArchitecture,
		Aliases:       []string{"microservice architecture", "micro-services", "distributed systems"},
		Keywords:      []string{"service mesh", "api gateway"},
		RelatedSkills: []string{"docker", "kubernetes", "kafka", "grpc"},
		ParentSkills:  []string{"system-design"},
		Description:   "Decomposing applications into small, independently deployable services.",
		LearningPath:  "Monolith -> service decomposition -> communication -> observability",
		BestPractices: []string{
			"Design for partial failure",
			"Add distributed tracing early",
			"Avoid the distributed monolith",
		},
		CVTips:          "Quantify: how many services, which patterns.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "$100k-180k (senior)",
		ExperienceLevel: "senior",
	},
	{
		ID:            "rest-api",
		Name:          "REST API",
		Category:      skill.CategoryArchitecture,
		Aliases:       []string{"rest", "restful", "restful api"},
		Keywords:      []string{"openapi", "swagger"},
		RelatedSkills: []string{"graphql", "grpc"},
		ChildSkills:   []string{"graphql"},
		Description:   "Architectural style for HTTP APIs; the lingua franca of web backends.",
		LearningPath:  "HTTP basics -> REST principles -> API design -> versioning -> documentation",
		BestPractices: []string{
			"Use proper status codes",
			"Version your APIs",
			"Document with OpenAPI",
		},
		CVTips:          "A baseline requirement; add GraphQL or gRPC to stand out.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "bundled with backend roles",
		ExperienceLevel: "all",
	},
	{
		ID:            "graphql",
		Name:          "GraphQL",
		Category:      skill.CategoryArchitecture,
		Aliases:       []string{"graph-ql", "gql"},
		Keywords:      []string{"apollo", "resolvers", "mutations"},
		RelatedSkills: []string{"rest-api", "nodejs"},
		ParentSkills:  []string{"rest-api"},
		Description:   "Query language for APIs where clients define the shape of the response.",
		LearningPath:  "GraphQL basics -> schemas -> resolvers -> Apollo -> caching",
		BestPractices: []string{
			"Design the schema deliberately",
			"Use DataLoader against N+1",
		},
		CVTips:          "Makes a backend CV stand out, especially with Apollo.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "bundled with backend roles",
		ExperienceLevel: "mid",
	},
	{
		ID:            "grpc",
		Name:          "gRPC",
		Category:      skill.CategoryArchitecture,
		Aliases:       []string{"grpc-go"},
		Keywords:      []string{"protobuf", "protocol buffers"},
		RelatedSkills: []string{"go", "microservices"},
		Description:   "High-performance RPC framework over HTTP/2 with protobuf contracts.",
		LearningPath:  "Protobuf -> service definitions -> streaming -> interceptors",
		BestPractices: []string{
			"Version proto contracts carefully",
			"Use deadlines on every call",
		},
		CVTips:          "Common in Go microservice shops.",
		MarketDemand:    skill.DemandMedium,
		SalaryRange:     "bundled with backend roles",
		ExperienceLevel: "mid",
	},

	// --- Message queues ---
	{
		ID:            "kafka",
		Name:          "Apache Kafka",
		Category:      skill.CategoryMessageQueue,
		Aliases:       []string{"kafka", "event streaming", "confluent"},
		Keywords:      []string{"consumer group", "topic partitioning"},
		RelatedSkills: []string{"microservices", "rabbitmq"},
		ParentSkills:  []string{"microservices"},
		Description:   "Distributed event streaming platform for real-time data pipelines.",
		LearningPath:  "Kafka basics -> producers/consumers -> partitioning -> Streams -> Connect",
		BestPractices: []string{
			"Partition by a stable key",
			"Make consumers idempotent",
			"Monitor consumer lag",
		},
		CVTips:          "Very valuable at larger tech companies.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$95k-165k (senior)",
		ExperienceLevel: "mid",
	},
	{
		ID:            "rabbitmq",
		Name:          "RabbitMQ",
		Category:      skill.CategoryMessageQueue,
		Aliases:       []string{"rabbit", "amqp"},
		Keywords:      []string{"exchange", "dead letter queue"},
		RelatedSkills: []string{"kafka", "microservices"},
		Description:   "Popular message broker; easy to set up and operate.",
		LearningPath:  "Basics -> exchanges -> queues -> routing -> clustering",
		BestPractices: []string{
			"Use dead-letter queues",
			"Handle acknowledgments explicitly",
		},
		CVTips:          "A good entry point into messaging systems.",
		MarketDemand:    skill.DemandMedium,
		SalaryRange:     "bundled with backend roles",
		ExperienceLevel: "mid",
	},

	// --- Testing ---
	{
		ID:            "unit-testing",
		Name:          "Unit Testing",
		Category:      skill.CategoryTesting,
		Aliases:       []string{"unit test", "unit tests", "tdd"},
		Keywords:      []string{"mocking", "code coverage"},
		RelatedSkills: []string{"ci-cd"},
		Description:   "Testing individual units of code to lock in correctness.",
		LearningPath:  "Testing fundamentals -> mocking -> TDD -> coverage -> maintainable tests",
		BestPractices: []string{
			"Follow the arrange-act-assert pattern",
			"Mock external dependencies only",
		},
		CVTips:          "Name the tools and the coverage you achieved.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "bundled with every dev role",
		ExperienceLevel: "all",
	},

	// --- Mobile ---
	{
		ID:            "react-native",
		Name:          "React Native",
		Category:      skill.CategoryMobile,
		Aliases:       []string{"reactnative", "rn"},
		Keywords:      []string{"expo"},
		RelatedSkills: []string{"react", "flutter"},
		ParentSkills:  []string{"react"},
		Description:   "Cross-platform mobile apps built with React.",
		LearningPath:  "React proficiency -> native components -> navigation -> native modules",
		BestPractices: []string{
			"Profile on real devices",
			"Keep the JS bridge traffic low",
		},
		CVTips:          "Ship at least one store-published app to prove it.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$75k-140k",
		ExperienceLevel: "mid",
	},
	{
		ID:            "flutter",
		Name:          "Flutter",
		Category:      skill.CategoryMobile,
		Aliases:       []string{"flutter sdk"},
		Keywords:      []string{"dart", "widget tree"},
		RelatedSkills: []string{"react-native"},
		Description:   "Google's cross-platform UI toolkit built on Dart.",
		LearningPath:  "Dart -> widgets -> state management -> platform channels",
		BestPractices: []string{
			"Keep widget trees shallow",
			"Separate UI from business logic",
		},
		CVTips:          "Growing adoption; highlight published apps.",
		MarketDemand:    skill.DemandMedium,
		SalaryRange:     "$70k-135k",
		ExperienceLevel: "mid",
	},

	// --- AI/ML ---
	{
		ID:            "machine-learning",
		Name:          "Machine Learning",
		Category:      skill.CategoryAIML,
		Aliases:       []string{"ml", "ai", "artificial intelligence"},
		Keywords:      []string{"scikit-learn", "tensorflow", "pytorch", "model training"},
		RelatedSkills: []string{"python", "llm"},
		ParentSkills:  []string{"python"},
		ChildSkills:   []string{"llm"},
		Description:   "Building models that learn from data to make predictions and decisions.",
		LearningPath:  "Math foundations -> ML algorithms -> sklearn -> deep learning",
		BestPractices: []string{
			"Understand the math behind the model",
			"Cross-validate everything",
		},
		CVTips:          "ML roles want concrete projects, papers if you have them.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "$100k-190k",
		ExperienceLevel: "mid",
	},
	{
		ID:            "llm",
		Name:          "LLM/GenAI",
		Category:      skill.CategoryAIML,
		Aliases:       []string{"large language models", "generative ai", "genai"},
		Keywords:      []string{"rag", "prompt engineering", "langchain"},
		RelatedSkills: []string{"machine-learning", "python"},
		ParentSkills:  []string{"machine-learning"},
		Description:   "Working with large language models: prompting, retrieval augmentation, agents.",
		LearningPath:  "LLM basics -> prompt engineering -> RAG -> fine-tuning -> agents",
		BestPractices: []string{
			"Ground generations with RAG",
			"Design for hallucination handling",
			"Track token costs",
		},
		CVTips:          "The hottest area right now; showcase shipped projects.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "$120k-220k",
		ExperienceLevel: "mid",
	},

	// --- Security ---
	{
		ID:            "web-security",
		Name:          "Web Security",
		Category:      skill.CategorySecurity,
		Aliases:       []string{"application security", "appsec"},
		Keywords:      []string{"owasp", "xss", "sql injection", "oauth"},
		RelatedSkills: []string{"rest-api"},
		Description:   "Securing web applications: authentication, authorization, common attack classes.",
		LearningPath:  "OWASP Top 10 -> auth protocols -> secure coding -> threat modeling",
		BestPractices: []string{
			"Validate all inputs at the boundary",
			"Use proven auth libraries, never homemade crypto",
		},
		CVTips:          "Mention audits, pentests, or OWASP familiarity.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "$95k-175k",
		ExperienceLevel: "mid",
	},

	// --- Version control ---
	{
		ID:            "git",
		Name:          "Git",
		Category:      skill.CategoryVersionControl,
		Aliases:       []string{"github", "gitlab", "bitbucket", "version control"},
		Keywords:      []string{"branching", "rebase", "pull request"},
		RelatedSkills: []string{"github-actions", "ci-cd"},
		ChildSkills:   []string{"ci-cd", "github-actions"},
		Description:   "The universal version control system; mandatory for every developer.",
		LearningPath:  "Basic commands -> branching -> merging -> rebasing -> team workflows",
		BestPractices: []string{
			"Write meaningful commit messages",
			"Work in small feature branches",
		},
		CVTips:          "Assumed; only list it explicitly as a junior.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "baseline",
		ExperienceLevel: "all",
	},

	// --- Methodology / soft skills ---
	{
		ID:           "agile",
		Name:         "Agile/Scrum",
		Category:     skill.CategoryMethodology,
		Aliases:      []string{"scrum", "kanban", "agile methodology"},
		Keywords:     []string{"sprint", "standup", "retrospective"},
		Description:  "Iterative development methodology; Scrum is the most common framework.",
		LearningPath: "Agile principles -> Scrum -> tooling (Jira) -> estimation -> retrospectives",
		BestPractices: []string{
			"Participate actively in ceremonies",
			"Focus on value delivery, not process theater",
		},
		CVTips:          "Usually assumed; mention certifications if you hold them.",
		MarketDemand:    skill.DemandVeryHigh,
		SalaryRange:     "baseline",
		ExperienceLevel: "all",
	},
	{
		ID:           "communication",
		Name:         "Communication",
		Category:     skill.CategorySoftSkill,
		Aliases:      []string{"communication skills"},
		Keywords:     []string{"stakeholder management", "technical writing"},
		Description:  "Explaining technical work clearly to engineers and non-engineers alike.",
		LearningPath: "Written docs -> presentations -> cross-team alignment -> mentoring",
		BestPractices: []string{
			"Write things down",
			"Tailor the message to the audience",
		},
		CVTips:          "Show it through docs, talks, and mentoring, not a bullet point.",
		MarketDemand:    skill.DemandHigh,
		SalaryRange:     "baseline",
		ExperienceLevel: "all",
	},
}
