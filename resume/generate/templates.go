package generate

import (
	"strings"

	"resume-builder/resume/model"
)

// Template carries the category-specific phrasing used to fill a document.
type Template struct {
	Headline        string
	Focus           string
	SuggestedSkills []string
	Keywords        []string
	Objective       string
}

var genericTemplate = Template{
	Headline:        "Professional",
	Focus:           "delivering reliable results and continuous improvement",
	SuggestedSkills: []string{"Communication", "Teamwork", "Problem Solving", "Time Management"},
	Keywords:        []string{"communication", "teamwork", "problem", "solving", "delivery", "stakeholder"},
	Objective:       "To apply my skills in a challenging role, grow professionally and contribute to meaningful projects.",
}

var templates = map[string]Template{
	"data science": {
		Headline:        "Data Scientist",
		Focus:           "turning data into predictive models and actionable insight",
		SuggestedSkills: []string{"Python", "Machine Learning", "Statistics", "SQL", "Data Visualization"},
		Keywords:        []string{"python", "machine", "learning", "statistics", "sql", "pandas", "model", "data", "analytics", "nlp"},
		Objective:       "To build data products that measurably improve business decisions.",
	},
	"hr": {
		Headline:        "HR Professional",
		Focus:           "talent acquisition, employee relations and people operations",
		SuggestedSkills: []string{"Recruitment", "Onboarding", "Payroll", "Employee Relations", "HR Policies"},
		Keywords:        []string{"recruitment", "onboarding", "payroll", "employee", "talent", "hiring", "compliance", "engagement"},
		Objective:       "To strengthen teams by attracting, developing and retaining great people.",
	},
	"advocate": {
		Headline:        "Advocate",
		Focus:           "legal research, drafting and client representation",
		SuggestedSkills: []string{"Legal Research", "Drafting", "Litigation", "Contract Law", "Client Counseling"},
		Keywords:        []string{"legal", "litigation", "drafting", "court", "contract", "law", "compliance", "client"},
		Objective:       "To provide sound legal counsel and effective representation.",
	},
	"arts": {
		Headline:        "Creative Professional",
		Focus:           "visual storytelling and creative direction",
		SuggestedSkills: []string{"Illustration", "Design", "Creative Direction", "Adobe Creative Suite", "Storytelling"},
		Keywords:        []string{"art", "design", "creative", "illustration", "painting", "exhibition", "visual", "media"},
		Objective:       "To create work that communicates ideas with clarity and impact.",
	},
	"web designing": {
		Headline:        "Web Designer",
		Focus:           "responsive, accessible and user-centred web interfaces",
		SuggestedSkills: []string{"HTML", "CSS", "JavaScript", "UI Design", "Responsive Design"},
		Keywords:        []string{"html", "css", "javascript", "ui", "ux", "responsive", "web", "design", "figma"},
		Objective:       "To design web experiences that are fast, accessible and easy to use.",
	},
	"mechanical engineer": {
		Headline:        "Mechanical Engineer",
		Focus:           "mechanical design, manufacturing and maintenance",
		SuggestedSkills: []string{"AutoCAD", "SolidWorks", "Manufacturing", "Maintenance", "Quality Control"},
		Keywords:        []string{"mechanical", "autocad", "solidworks", "manufacturing", "maintenance", "design", "production", "quality"},
		Objective:       "To design and maintain efficient, safe mechanical systems.",
	},
	"sales": {
		Headline:        "Sales Professional",
		Focus:           "pipeline growth, client relationships and revenue targets",
		SuggestedSkills: []string{"Business Development", "Negotiation", "CRM", "Lead Generation", "Account Management"},
		Keywords:        []string{"sales", "revenue", "client", "negotiation", "crm", "targets", "business", "development", "leads"},
		Objective:       "To drive revenue growth through lasting customer relationships.",
	},
	"health and fitness": {
		Headline:        "Health and Fitness Professional",
		Focus:           "client wellbeing, training programs and nutrition",
		SuggestedSkills: []string{"Personal Training", "Nutrition", "Program Design", "Client Coaching", "First Aid"},
		Keywords:        []string{"fitness", "health", "training", "nutrition", "wellness", "coaching", "exercise"},
		Objective:       "To help clients reach sustainable health and fitness goals.",
	},
	"civil engineer": {
		Headline:        "Civil Engineer",
		Focus:           "structural design, site execution and project delivery",
		SuggestedSkills: []string{"AutoCAD", "Structural Analysis", "Site Supervision", "Estimation", "Surveying"},
		Keywords:        []string{"civil", "structural", "construction", "site", "autocad", "surveying", "estimation", "concrete"},
		Objective:       "To deliver safe, durable infrastructure on time and within budget.",
	},
	"java developer": {
		Headline:        "Java Developer",
		Focus:           "building robust backend services on the JVM",
		SuggestedSkills: []string{"Java", "Spring Boot", "Hibernate", "REST APIs", "Microservices"},
		Keywords:        []string{"java", "spring", "hibernate", "rest", "microservices", "jvm", "sql", "api"},
		Objective:       "To build scalable, maintainable Java services.",
	},
	"business analyst": {
		Headline:        "Business Analyst",
		Focus:           "requirements gathering, process analysis and stakeholder alignment",
		SuggestedSkills: []string{"Requirements Analysis", "Process Modeling", "SQL", "Stakeholder Management", "Agile"},
		Keywords:        []string{"requirements", "stakeholder", "analysis", "process", "business", "agile", "sql", "reporting"},
		Objective:       "To bridge business needs and technical solutions.",
	},
	"sap developer": {
		Headline:        "SAP Developer",
		Focus:           "SAP ABAP development and ERP integration",
		SuggestedSkills: []string{"SAP ABAP", "SAP HANA", "SAP Fiori", "ERP Integration", "Debugging"},
		Keywords:        []string{"sap", "abap", "hana", "fiori", "erp", "module", "integration"},
		Objective:       "To extend and integrate SAP systems that run critical business processes.",
	},
	"automation testing": {
		Headline:        "Automation Test Engineer",
		Focus:           "test automation frameworks and continuous quality",
		SuggestedSkills: []string{"Selenium", "Test Automation", "Java", "CI/CD", "API Testing"},
		Keywords:        []string{"selenium", "automation", "testing", "framework", "test", "cucumber", "regression", "api"},
		Objective:       "To ship reliable software through fast, trustworthy automated tests.",
	},
	"electrical engineering": {
		Headline:        "Electrical Engineer",
		Focus:           "power systems, control circuits and electrical maintenance",
		SuggestedSkills: []string{"Power Systems", "PLC", "Circuit Design", "Electrical Maintenance", "AutoCAD Electrical"},
		Keywords:        []string{"electrical", "power", "plc", "circuit", "maintenance", "control", "wiring", "substation"},
		Objective:       "To design and maintain safe, efficient electrical systems.",
	},
	"operations manager": {
		Headline:        "Operations Manager",
		Focus:           "process efficiency, team leadership and operational delivery",
		SuggestedSkills: []string{"Operations Management", "Process Improvement", "Team Leadership", "Budgeting", "Supply Chain"},
		Keywords:        []string{"operations", "process", "leadership", "budget", "supply", "chain", "efficiency", "logistics"},
		Objective:       "To run efficient operations that scale with the business.",
	},
	"python developer": {
		Headline:        "Python Developer",
		Focus:           "clean, well-tested Python services and automation",
		SuggestedSkills: []string{"Python", "Django", "Flask", "REST APIs", "SQL"},
		Keywords:        []string{"python", "django", "flask", "api", "rest", "sql", "automation", "scripting"},
		Objective:       "To build maintainable Python applications that solve real problems.",
	},
	"devops engineer": {
		Headline:        "DevOps Engineer",
		Focus:           "automated delivery pipelines and reliable cloud infrastructure",
		SuggestedSkills: []string{"Docker", "Kubernetes", "CI/CD", "Terraform", "AWS"},
		Keywords:        []string{"docker", "kubernetes", "jenkins", "terraform", "aws", "cloud", "pipeline", "linux", "ansible"},
		Objective:       "To shorten delivery cycles while keeping production stable.",
	},
	"network security engineer": {
		Headline:        "Network Security Engineer",
		Focus:           "network defense, firewalls and incident response",
		SuggestedSkills: []string{"Firewalls", "Network Security", "VPN", "Incident Response", "SIEM"},
		Keywords:        []string{"network", "security", "firewall", "vpn", "siem", "incident", "routing", "threat"},
		Objective:       "To protect networks and data against evolving threats.",
	},
	"pmo": {
		Headline:        "PMO Professional",
		Focus:           "portfolio governance, planning and delivery tracking",
		SuggestedSkills: []string{"Project Management", "Governance", "Reporting", "Risk Management", "MS Project"},
		Keywords:        []string{"project", "management", "governance", "reporting", "risk", "planning", "portfolio", "pmo"},
		Objective:       "To keep programs on track through clear governance and reporting.",
	},
	"database": {
		Headline:        "Database Administrator",
		Focus:           "database performance, availability and data integrity",
		SuggestedSkills: []string{"SQL", "Oracle", "Performance Tuning", "Backup and Recovery", "PostgreSQL"},
		Keywords:        []string{"database", "sql", "oracle", "tuning", "backup", "recovery", "postgresql", "mysql"},
		Objective:       "To keep critical data fast, available and safe.",
	},
	"hadoop": {
		Headline:        "Big Data Engineer",
		Focus:           "distributed data processing on the Hadoop ecosystem",
		SuggestedSkills: []string{"Hadoop", "Spark", "Hive", "HDFS", "Kafka"},
		Keywords:        []string{"hadoop", "spark", "hive", "hdfs", "kafka", "mapreduce", "big", "data"},
		Objective:       "To build scalable pipelines that process data at volume.",
	},
	"etl developer": {
		Headline:        "ETL Developer",
		Focus:           "data integration pipelines and warehouse loading",
		SuggestedSkills: []string{"ETL", "Informatica", "SQL", "Data Warehousing", "Data Modeling"},
		Keywords:        []string{"etl", "informatica", "warehouse", "sql", "pipeline", "integration", "modeling"},
		Objective:       "To deliver clean, timely data to the people who need it.",
	},
	"dotnet developer": {
		Headline:        ".NET Developer",
		Focus:           "building applications on the .NET platform",
		SuggestedSkills: []string{"C#", "ASP.NET", "Entity Framework", "SQL Server", "Web APIs"},
		Keywords:        []string{"net", "asp", "mvc", "sql", "server", "entity", "framework", "api"},
		Objective:       "To build dependable .NET applications for the business.",
	},
	"blockchain": {
		Headline:        "Blockchain Developer",
		Focus:           "smart contracts and decentralized applications",
		SuggestedSkills: []string{"Solidity", "Ethereum", "Smart Contracts", "Web3", "Cryptography"},
		Keywords:        []string{"blockchain", "solidity", "ethereum", "smart", "contracts", "web", "crypto", "ledger"},
		Objective:       "To build secure decentralized systems.",
	},
	"testing": {
		Headline:        "QA Engineer",
		Focus:           "test planning, defect tracking and product quality",
		SuggestedSkills: []string{"Manual Testing", "Test Planning", "Defect Tracking", "JIRA", "Regression Testing"},
		Keywords:        []string{"testing", "test", "qa", "quality", "defect", "jira", "regression", "cases"},
		Objective:       "To ensure every release meets a high bar of quality.",
	},
}

// TemplateFor returns the phrasing for a category, falling back to a
// generic template for unknown labels.
func TemplateFor(category model.Category) Template {
	if tpl, ok := templates[templateKey(category)]; ok {
		return tpl
	}
	tpl := genericTemplate
	if label := strings.TrimSpace(category.String()); label != "" {
		tpl.Headline = label + " Professional"
	}
	return tpl
}

// KnownCategory reports whether a dedicated template exists for the label.
func KnownCategory(category model.Category) bool {
	_, ok := templates[templateKey(category)]
	return ok
}

func templateKey(category model.Category) string {
	return strings.ToLower(strings.Join(strings.Fields(category.String()), " "))
}
