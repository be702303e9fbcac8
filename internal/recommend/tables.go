package recommend

// jobTable lists job entries per category. Lookup order is significant.
var jobTable = []categoryJobs{
	{
		Category: "Data Science",
		Jobs: []JobEntry{
			{Title: "Data Scientist", Companies: []string{"Google", "Amazon", "Netflix", "Meta", "Microsoft"}, Skills: []string{"Python", "Machine Learning", "Statistics", "SQL", "Data Visualization"}},
			{Title: "Machine Learning Engineer", Companies: []string{"Facebook", "Apple", "Uber", "Tesla", "OpenAI"}, Skills: []string{"TensorFlow", "PyTorch", "Deep Learning", "MLOps", "Cloud Platforms"}},
			{Title: "Data Analyst", Companies: []string{"Microsoft", "Spotify", "Airbnb", "Salesforce", "Adobe"}, Skills: []string{"SQL", "Excel", "Tableau", "Python", "Business Intelligence"}},
			{Title: "Data Engineer", Companies: []string{"Netflix", "Uber", "Airbnb", "Stripe", "Shopify"}, Skills: []string{"Apache Spark", "Hadoop", "Kafka", "Python", "Data Pipelines"}},
		},
	},
	{
		Category: "Design",
		Jobs: []JobEntry{
			{Title: "UI/UX Designer", Companies: []string{"Adobe", "Figma", "InVision", "Google", "Apple"}, Skills: []string{"Figma", "User Research", "Wireframing", "Prototyping", "Design Systems"}},
			{Title: "Product Designer", Companies: []string{"Apple", "Google", "Facebook", "Netflix", "Airbnb"}, Skills: []string{"Design Thinking", "Prototyping", "User Testing", "Product Strategy", "Visual Design"}},
			{Title: "Graphic Designer", Companies: []string{"Canva", "Adobe", "Behance", "Nike", "Coca-Cola"}, Skills: []string{"Illustrator", "Photoshop", "Typography", "Brand Identity", "Print Design"}},
			{Title: "Visual Designer", Companies: []string{"Spotify", "Instagram", "TikTok", "Snapchat", "Pinterest"}, Skills: []string{"Motion Graphics", "3D Design", "Animation", "Visual Effects", "Digital Art"}},
		},
	},
	{
		Category: "Web Development",
		Jobs: []JobEntry{
			{Title: "Frontend Developer", Companies: []string{"Netflix", "Twitter", "Shopify", "Discord", "Notion"}, Skills: []string{"React", "JavaScript", "CSS", "TypeScript", "Responsive Design"}},
			{Title: "Backend Developer", Companies: []string{"Amazon", "PayPal", "Stripe", "Uber", "Airbnb"}, Skills: []string{"Node.js", "Python", "APIs", "Databases", "Microservices"}},
			{Title: "Full Stack Developer", Companies: []string{"Google", "Microsoft", "Meta", "Netflix", "Spotify"}, Skills: []string{"MERN Stack", "DevOps", "Databases", "Cloud Services", "System Design"}},
			{Title: "DevOps Engineer", Companies: []string{"Netflix", "Uber", "Airbnb", "Spotify", "Discord"}, Skills: []string{"Docker", "Kubernetes", "AWS", "CI/CD", "Infrastructure"}},
		},
	},
	{
		Category: "Mobile Development",
		Jobs: []JobEntry{
			{Title: "iOS Developer", Companies: []string{"Apple", "Uber", "Instagram", "TikTok", "Spotify"}, Skills: []string{"Swift", "SwiftUI", "iOS SDK", "Core Data", "App Store"}},
			{Title: "Android Developer", Companies: []string{"Google", "Snapchat", "Discord", "TikTok", "Uber"}, Skills: []string{"Kotlin", "Android SDK", "Jetpack", "Material Design", "Google Play"}},
			{Title: "React Native Developer", Companies: []string{"Facebook", "Instagram", "Discord", "Skype", "Shopify"}, Skills: []string{"React Native", "JavaScript", "Mobile Development", "Cross-platform", "Native Modules"}},
		},
	},
	{
		Category: "Software Engineering",
		Jobs: []JobEntry{
			{Title: "Software Engineer", Companies: []string{"Google", "Microsoft", "Amazon", "Meta", "Apple"}, Skills: []string{"Algorithms", "Data Structures", "System Design", "Programming", "Problem Solving"}},
			{Title: "Cloud Engineer", Companies: []string{"Amazon", "Microsoft", "Google", "Netflix", "Uber"}, Skills: []string{"AWS", "Azure", "GCP", "Terraform", "Kubernetes"}},
			{Title: "Security Engineer", Companies: []string{"Google", "Microsoft", "Amazon", "Meta", "Netflix"}, Skills: []string{"Cybersecurity", "Network Security", "Penetration Testing", "Security Tools", "Compliance"}},
		},
	},
	{
		Category: "Marketing",
		Jobs: []JobEntry{
			{Title: "Digital Marketing Manager", Companies: []string{"Google", "Facebook", "Amazon", "Netflix", "Spotify"}, Skills: []string{"SEO", "SEM", "Social Media", "Analytics", "Content Strategy"}},
			{Title: "Content Marketing Specialist", Companies: []string{"HubSpot", "Mailchimp", "Canva", "Buffer", "Hootsuite"}, Skills: []string{"Content Creation", "SEO", "Social Media", "Email Marketing", "Analytics"}},
			{Title: "Growth Marketing Manager", Companies: []string{"Uber", "Airbnb", "Spotify", "Discord", "Notion"}, Skills: []string{"Growth Hacking", "A/B Testing", "Conversion Optimization", "Data Analysis", "Marketing Automation"}},
		},
	},
	{
		Category: "Sales",
		Jobs: []JobEntry{
			{Title: "Sales Development Representative", Companies: []string{"Salesforce", "HubSpot", "Microsoft", "Oracle", "Adobe"}, Skills: []string{"Lead Generation", "Cold Calling", "CRM", "Sales Process", "Communication"}},
			{Title: "Account Executive", Companies: []string{"Salesforce", "Microsoft", "Oracle", "Adobe", "Workday"}, Skills: []string{"Relationship Building", "Solution Selling", "Negotiation", "Pipeline Management", "Revenue Growth"}},
		},
	},
	{
		Category: "Finance",
		Jobs: []JobEntry{
			{Title: "Financial Analyst", Companies: []string{"Goldman Sachs", "JPMorgan", "Morgan Stanley", "BlackRock", "Vanguard"}, Skills: []string{"Financial Modeling", "Excel", "VBA", "Financial Analysis", "Risk Assessment"}},
			{Title: "Investment Banker", Companies: []string{"Goldman Sachs", "JPMorgan", "Morgan Stanley", "Bank of America", "Citigroup"}, Skills: []string{"Financial Modeling", "Valuation", "M&A", "Capital Markets", "Financial Analysis"}},
		},
	},
	{
		Category: "Healthcare",
		Jobs: []JobEntry{
			{Title: "Healthcare Data Analyst", Companies: []string{"UnitedHealth", "Anthem", "Kaiser", "CVS Health", "Walgreens"}, Skills: []string{"Healthcare Data", "SQL", "Python", "Statistical Analysis", "Healthcare Regulations"}},
			{Title: "Clinical Research Associate", Companies: []string{"Pfizer", "Johnson & Johnson", "Roche", "Novartis", "Merck"}, Skills: []string{"Clinical Trials", "Regulatory Compliance", "Data Management", "Medical Writing", "Research Protocols"}},
		},
	},
	{
		Category: "Education",
		Jobs: []JobEntry{
			{Title: "Educational Technology Specialist", Companies: []string{"Coursera", "Udemy", "edX", "Khan Academy", "Duolingo"}, Skills: []string{"EdTech", "Learning Management Systems", "Instructional Design", "Digital Learning", "Educational Content"}},
			{Title: "Curriculum Developer", Companies: []string{"Khan Academy", "Coursera", "Udemy", "edX", "Codecademy"}, Skills: []string{"Curriculum Design", "Instructional Design", "Educational Content", "Assessment Design", "Learning Objectives"}},
		},
	},
}

var fallbackJobs = []JobEntry{
	{Title: "Senior roles in your field", Companies: []string{"Various"}, Skills: []string{"Leadership", "Strategy", "Management", "Communication", "Problem Solving"}},
}

var skillTable = []categorySkills{
	{Category: "Data Science", Skills: []string{"Python", "R", "SQL", "Machine Learning", "Statistics", "Data Visualization", "Big Data", "Deep Learning", "TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "Matplotlib", "Seaborn", "Jupyter", "Git", "Docker", "AWS", "Azure"}},
	{Category: "Design", Skills: []string{"Figma", "Adobe Creative Suite", "UI/UX Design", "Typography", "Color Theory", "Wireframing", "Prototyping", "User Research", "Design Systems", "Sketch", "InVision", "Principle", "After Effects", "Illustrator", "Photoshop", "XD", "User Testing", "Accessibility"}},
	{Category: "Web Development", Skills: []string{"JavaScript", "HTML/CSS", "React", "Node.js", "APIs", "Databases", "Git", "DevOps", "TypeScript", "Vue.js", "Angular", "Express.js", "MongoDB", "PostgreSQL", "MySQL", "AWS", "Docker", "Kubernetes", "CI/CD", "REST APIs"}},
	{Category: "Mobile Development", Skills: []string{"Swift", "Kotlin", "React Native", "Flutter", "iOS Development", "Android Development", "Mobile UI/UX", "App Store", "Google Play", "Mobile Testing", "Performance Optimization", "Push Notifications", "In-App Purchases", "Mobile Analytics"}},
	{Category: "Software Engineering", Skills: []string{"Algorithms", "Data Structures", "System Design", "Programming", "Problem Solving", "Java", "C++", "Python", "Go", "Rust", "Microservices", "API Design", "Database Design", "System Architecture", "Code Review", "Testing", "Agile", "Scrum"}},
	{Category: "Marketing", Skills: []string{"SEO", "SEM", "Social Media Marketing", "Content Marketing", "Email Marketing", "Google Analytics", "Facebook Ads", "Google Ads", "Marketing Automation", "A/B Testing", "Conversion Optimization", "Brand Management", "Market Research", "Customer Segmentation"}},
	{Category: "Sales", Skills: []string{"Lead Generation", "Cold Calling", "CRM", "Sales Process", "Communication", "Negotiation", "Relationship Building", "Solution Selling", "Pipeline Management", "Revenue Growth", "Sales Strategy", "Account Management", "Prospecting", "Closing Techniques"}},
	{Category: "Finance", Skills: []string{"Financial Modeling", "Excel", "VBA", "Financial Analysis", "Risk Assessment", "Valuation", "Investment Analysis", "Portfolio Management", "Financial Planning", "Accounting", "Budgeting", "Forecasting", "Financial Reporting", "Compliance"}},
	{Category: "Healthcare", Skills: []string{"Healthcare Data", "SQL", "Python", "Statistical Analysis", "Healthcare Regulations", "Clinical Trials", "Medical Terminology", "Health Informatics", "Patient Data", "Medical Coding", "HIPAA Compliance", "Healthcare Analytics", "Population Health"}},
	{Category: "Education", Skills: []string{"EdTech", "Learning Management Systems", "Instructional Design", "Digital Learning", "Educational Content", "Curriculum Design", "Assessment Design", "Learning Objectives", "Student Engagement", "Educational Technology", "Online Learning", "Blended Learning"}},
}

var fallbackSkills = []string{"Python", "JavaScript", "SQL", "Communication", "Project Management", "Leadership", "Problem Solving", "Critical Thinking", "Teamwork", "Adaptability"}
