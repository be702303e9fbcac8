package recommend

var sampleTable = []Sample{
	{
		Category: "Data Science",
		Text: `John Doe
Data Scientist
San Francisco, CA | john.doe@email.com | (123) 456-7890

SUMMARY
Experienced Data Scientist with 5+ years of expertise in machine learning, statistical analysis, and data visualization. Skilled in Python, R, SQL, and various ML frameworks.

EXPERIENCE
Senior Data Scientist, Tech Company Inc. (2020-Present)
- Developed predictive models that improved customer retention by 25%
- Implemented machine learning pipelines processing 1TB+ of daily data
- Created data visualizations that informed key business decisions

Data Analyst, Analytics Corp (2018-2020)
- Performed statistical analysis on large datasets
- Built ETL processes to streamline data workflows
- Created dashboards for executive reporting

SKILLS
Python, R, SQL, TensorFlow, PyTorch, Scikit-learn, Pandas, NumPy, Data Visualization, Statistical Analysis, Machine Learning, Big Data

EDUCATION
MS in Data Science, University of Technology (2018)
BS in Computer Science, State University (2016)`,
	},
	{
		Category: "Web Development",
		Text: `Jane Smith
Full Stack Developer
New York, NY | jane.smith@email.com | (987) 654-3210

SUMMARY
Full Stack Developer with 6 years of experience building scalable web applications. Proficient in JavaScript, React, Node.js, and modern development practices.

EXPERIENCE
Senior Developer, Web Solutions Inc. (2019-Present)
- Led development of customer-facing React applications serving 100k+ users
- Built RESTful APIs using Node.js and Express
- Implemented CI/CD pipelines reducing deployment time by 40%

Frontend Developer, Digital Agency LLC (2017-2019)
- Developed responsive web applications using React and Vue.js
- Collaborated with designers to implement UI/UX best practices
- Optimized frontend performance improving load times by 30%

SKILLS
JavaScript, TypeScript, React, Node.js, Express, HTML5, CSS3, MongoDB, PostgreSQL, Git, AWS, Docker, REST APIs

EDUCATION
BS in Computer Science, Tech University (2017)`,
	},
	{
		Category: "Design",
		Text: `Alex Johnson
Product Designer
Austin, TX | alex.j@email.com | (555) 123-4567

SUMMARY
Creative Product Designer with 4+ years of experience in UI/UX design for digital products. Passionate about creating intuitive user experiences.

EXPERIENCE
Lead Product Designer, Design Studio (2020-Present)
- Designed mobile and web applications for Fortune 500 clients
- Conducted user research and usability testing
- Created design systems and component libraries

UI Designer, Creative Agency (2018-2020)
- Designed interfaces for e-commerce platforms
- Created wireframes, prototypes, and high-fidelity mockups
- Collaborated with developers to ensure design implementation

SKILLS
Figma, Sketch, Adobe Creative Suite, UI Design, UX Research, Wireframing, Prototyping, Design Systems, User Testing, HTML/CSS

EDUCATION
BFA in Design, Art Institute (2018)`,
	},
	{
		Category: "Mobile Development",
		Text: `Sarah Chen
iOS Developer
Seattle, WA | sarah.chen@email.com | (206) 555-0123

SUMMARY
iOS Developer with 4+ years of experience building native iOS applications. Expert in Swift, SwiftUI, and iOS development best practices.

EXPERIENCE
Senior iOS Developer, Mobile Tech Inc. (2020-Present)
- Led development of iOS apps with 500k+ downloads
- Implemented advanced features using Core Data and Core Animation
- Mentored junior developers and conducted code reviews

iOS Developer, App Studio (2018-2020)
- Developed consumer-facing iOS applications
- Integrated third-party APIs and payment systems
- Optimized app performance and reduced crash rates

SKILLS
Swift, SwiftUI, iOS SDK, Core Data, Core Animation, Xcode, Git, REST APIs, JSON, App Store Connect, TestFlight

EDUCATION
BS in Computer Science, University of Washington (2018)`,
	},
	{
		Category: "Software Engineering",
		Text: `Michael Rodriguez
Software Engineer
Mountain View, CA | michael.r@email.com | (650) 555-0456

SUMMARY
Software Engineer with 6+ years of experience in system design, algorithms, and scalable software development. Passionate about clean code and efficient solutions.

EXPERIENCE
Senior Software Engineer, Tech Giant Inc. (2019-Present)
- Designed and implemented microservices architecture serving 10M+ users
- Led technical design reviews and architecture decisions
- Mentored junior engineers and conducted technical interviews

Software Engineer, Startup Corp (2017-2019)
- Built backend services using Java and Spring Boot
- Implemented CI/CD pipelines and automated testing
- Collaborated with cross-functional teams on product features

SKILLS
Java, Python, C++, Algorithms, Data Structures, System Design, Microservices, Docker, Kubernetes, AWS, Git, Agile, Scrum

EDUCATION
MS in Computer Science, Stanford University (2017)
BS in Computer Science, UC Berkeley (2015)`,
	},
	{
		Category: "Marketing",
		Text: `Emily Watson
Digital Marketing Manager
Los Angeles, CA | emily.w@email.com | (310) 555-0789

SUMMARY
Digital Marketing Manager with 5+ years of experience in digital marketing, growth strategies, and campaign optimization. Results-driven professional with proven track record.

EXPERIENCE
Digital Marketing Manager, E-commerce Inc. (2020-Present)
- Managed $2M+ annual digital marketing budget
- Increased conversion rates by 35% through A/B testing
- Led team of 5 marketing specialists

Marketing Specialist, Digital Agency (2018-2020)
- Executed paid advertising campaigns across multiple platforms
- Developed content marketing strategies and social media presence
- Analyzed campaign performance and provided optimization recommendations

SKILLS
SEO, SEM, Google Ads, Facebook Ads, Google Analytics, Content Marketing, Social Media Marketing, Email Marketing, A/B Testing, Conversion Optimization

EDUCATION
BS in Marketing, UCLA (2018)`,
	},
	{
		Category: "Finance",
		Text: `David Kim
Financial Analyst
New York, NY | david.kim@email.com | (212) 555-0321

SUMMARY
Financial Analyst with 4+ years of experience in financial modeling, analysis, and reporting. Strong analytical skills and attention to detail.

EXPERIENCE
Senior Financial Analyst, Investment Bank (2020-Present)
- Built complex financial models for M&A transactions
- Conducted due diligence and financial analysis
- Prepared presentations for senior management and clients

Financial Analyst, Corporate Finance (2018-2020)
- Created monthly financial reports and variance analysis
- Assisted with budgeting and forecasting processes
- Developed financial dashboards and KPIs

SKILLS
Financial Modeling, Excel, VBA, Financial Analysis, Valuation, M&A, Capital Markets, Bloomberg Terminal, PowerPoint, Accounting, Risk Assessment

EDUCATION
BS in Finance, NYU Stern (2018)`,
	},
	{
		Category: "Healthcare",
		Text: `Dr. Lisa Thompson
Healthcare Data Analyst
Boston, MA | lisa.thompson@email.com | (617) 555-0654

SUMMARY
Healthcare Data Analyst with 3+ years of experience in healthcare analytics and data management. Background in clinical research and healthcare informatics.

EXPERIENCE
Healthcare Data Analyst, Health System Inc. (2020-Present)
- Analyzed patient data to identify trends and improve care quality
- Developed healthcare dashboards and reporting systems
- Ensured HIPAA compliance in all data handling processes

Clinical Research Coordinator, Medical Center (2018-2020)
- Coordinated clinical trials and research studies
- Collected and managed clinical data
- Prepared regulatory submissions and reports

SKILLS
Healthcare Data, SQL, Python, Statistical Analysis, Healthcare Regulations, Clinical Trials, Medical Terminology, Health Informatics, HIPAA Compliance

EDUCATION
MPH in Epidemiology, Harvard University (2018)
BS in Biology, Boston University (2016)`,
	},
	{
		Category: "Education",
		Text: `Robert Wilson
Educational Technology Specialist
San Diego, CA | robert.w@email.com | (619) 555-0987

SUMMARY
Educational Technology Specialist with 4+ years of experience in edtech, instructional design, and digital learning solutions. Passionate about improving education through technology.

EXPERIENCE
Educational Technology Specialist, EdTech Company (2020-Present)
- Designed and implemented learning management systems
- Created interactive digital learning content
- Provided training and support to educators

Instructional Designer, University (2018-2020)
- Developed online courses and curriculum materials
- Implemented educational technology solutions
- Conducted faculty training on digital tools

SKILLS
EdTech, Learning Management Systems, Instructional Design, Digital Learning, Educational Content, Curriculum Design, Assessment Design, User Experience, Training

EDUCATION
MEd in Educational Technology, San Diego State University (2018)
BS in Education, UC San Diego (2016)`,
	},
}
