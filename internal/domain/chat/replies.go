package chat

const (
	replyEmpty       = "Please tell me your career ambition or what you'd like to know! 🤔"
	replyGreeting    = "Hello there! 👋 I'm a student guidance chatbot. Are you looking for tech-based job opportunities or upskilling roadmaps? 🚀"
	replyAffirmation = "Great! ✨ To help you better, what specific tech job or area are you interested in? For example, 'web developer', 'data scientist', 'cybersecurity', or 'software tester'? 💡"
	replyNegation    = "Okay, no problem! 😊 Is there anything else I can assist you with today, perhaps general information about IT fields or learning resources? 📚"
	replyGratitude   = "You're welcome! 🙏 Is there anything else I can help you with regarding tech careers or learning paths? 🎓"

	replyRephrase  = "Sorry, I couldn't understand your request. Can you please ask again, perhaps by mentioning a specific tech career or skill? 🤔"
	replyEscalated = "I'm sorry, I can only provide guidance for specific tech career paths like Web Developer, Data Scientist, Cybersecurity, Cloud/DevOps, Software Developer, Python Developer, Software Tester, Machine Learning Engineer, Database roles, IoT Developer, Android Developer, iOS Developer, Blockchain Developer, Educator, or Flutter Developer. You might find more general help by trying a broader AI like Google Gemini: [https://gemini.google.com/](https://gemini.google.com/) 🤖"
)

const replyBCAJobs = `After BCA, you have diverse job opportunities in IT! 🌟 Some common roles include:
- Software Developer / Engineer 💻
- Web Developer (Frontend, Backend, Full-Stack) 🌐
- Data Analyst / Data Scientist 📊
- Cybersecurity Analyst 🔒
- Cloud Engineer / DevOps Engineer ☁️
- Database Administrator / DBMS Engineer 🗄️
- IT Support Specialist 🛠️
- Systems Analyst 📈
- App Developer (Android/iOS) 📱
- Technical Content Writer ✍️
- Software Tester / QA Engineer 🧪
- Machine Learning Engineer / AI Engineer 🧠
- IoT Developer 🔗
- Android Developer 🤖
- iOS Developer 🍎
- Blockchain Developer ⛓️
- Educator / Teacher 🧑‍🏫
- Flutter Developer 🦋
Would you like a roadmap for any of these, or more details on a specific role? 👇`

const replyWebDeveloper = `A **Web Developer** builds and maintains websites. 🌐
**Key Skills:** HTML, CSS, JavaScript (for frontend), Python/Node.js/PHP (for backend), database knowledge (SQL/NoSQL), frameworks (React, Angular, Vue, Django, Express), Git.
**Typical Roadmap (Estimated Time):**
1.  **Foundations:** HTML, CSS, JavaScript basics (2-4 months) 📚
2.  **Frontend Deep Dive:** Choose a framework (React/Vue/Angular) (3-6 months) ✨
3.  **Backend Basics:** Learn a language/framework (Node.js/Python Flask/Django) (3-5 months) ⚙️
4.  **Databases:** SQL (e.g., PostgreSQL) and maybe NoSQL (e.g., MongoDB) (1-2 months) 🗄️
5.  **Version Control:** Git & GitHub (2-4 weeks) 🌳
6.  **Build Projects!** (Ongoing) 🚀`

const replyDataScience = `A **Data Analyst/Scientist** extracts insights from data to aid decision-making. 📊
**Key Skills:** Python (Pandas, NumPy, Matplotlib), R, SQL, Statistics, Data Visualization, Machine Learning fundamentals.
**Typical Roadmap (Estimated Time):**
1.  **Programming:** Python fundamentals with data libraries (2-4 months) 🐍
2.  **Statistics & Math:** Probability, hypothesis testing (2-3 months) ➕
3.  **Data Manipulation:** SQL and data cleaning techniques (1-2 months) 🧹
4.  **Machine Learning:** Supervised/Unsupervised learning (3-6 months) 🤖
5.  **Tools:** Jupyter Notebooks, scikit-learn (1 month) 🛠️
6.  **Practice with Real Data!** (Ongoing) 📈`

const replyCybersecurity = `A **Cybersecurity Analyst** protects systems and networks from digital threats. 🔒
**Key Skills:** Networking (TCP/IP, firewalls), Operating Systems (Linux, Windows security), Cryptography, Vulnerability Assessment, Incident Response.
**Typical Roadmap (Estimated Time):**
1.  **Networking & OS Basics:** Understand how computers and networks work (2-3 months) 🌐
2.  **Security Fundamentals:** Learn about common threats, defense mechanisms (2-4 months) 🛡️
3.  **Tools:** Get hands-on with security tools (e.g., Nmap, Wireshark) (1-2 months) 🕵️‍♀️
4.  **Ethical Hacking:** Understand attacker mindsets (for defense) (2-3 months) 😈
5.  **Certifications:** Consider CompTIA Security+, CEH (3-6 months, varies) 📜`

const replyCloudDevOps = `A **Cloud Engineer / DevOps Engineer** focuses on building, deploying, and managing applications in cloud environments, and automating software delivery. ☁️
**Key Skills:** Cloud Platforms (AWS, Azure, GCP), Linux, Scripting (Python/Bash), CI/CD tools (Jenkins, GitLab CI), Containerization (Docker), Orchestration (Kubernetes), Infrastructure as Code (Terraform).
**Typical Roadmap (Estimated Time):**
1.  **Linux & Networking:** Strong understanding of Linux command line and network basics (2-3 months) 🐧
2.  **Cloud Fundamentals:** Learn one major cloud provider (AWS/Azure/GCP) (3-5 months) 🚀
3.  **Scripting:** Python or Bash for automation (1-2 months) ✍️
4.  **CI/CD:** Understand continuous integration/delivery pipelines (2-3 months) 🔄
5.  **Containerization:** Docker basics (1 month) 🐳
6.  **IaC:** Learn Terraform or CloudFormation (1-2 months) 🏗️`

const replySoftwareDeveloper = `A **Software Developer/Engineer** designs, codes, tests, and maintains software applications. 💻
**Key Skills:** Core programming language (Java, Python, C++), Data Structures & Algorithms, Object-Oriented Programming, Problem Solving, Debugging, Version Control (Git).
**Typical Roadmap (Estimated Time):**
1.  **Choose a Language:** Master one language (e.g., Python or Java) (2-4 months) 🧠
2.  **DSA & OOP:** Solidify understanding of data structures, algorithms, and OOP (3-5 months) 🧩
3.  **Development Tools:** Learn IDEs, debuggers, Git (1 month) 🛠️
4.  **Build Small Projects:** Apply your knowledge (Ongoing) 🚀
5.  **Testing:** Understand unit and integration testing (2-4 weeks) 🧪
6.  **Specialization:** Decide on web, mobile, desktop, or other domains (Ongoing) ✨`

const replyPythonDeveloper = `A **Python Developer** specializes in building various applications, from web and data science to automation and backend systems, using the Python language. 🐍
**Key Skills:** Python syntax, data structures, algorithms, object-oriented programming, relevant libraries (e.g., Flask/Django for web, Pandas/NumPy for data), database interaction, Git.
**Typical Roadmap (Estimated Time):**
1.  **Python Fundamentals:** Syntax, variables, loops, functions, basic data structures (1-2 months) 📚
2.  **Intermediate Python:** OOP, error handling, modules, file I/O (1-2 months) 💡
3.  **Choose a Specialization:**
    * **Web Development:** Flask/Django (2-4 months) 🌐
    * **Data Science:** Pandas, NumPy, Matplotlib, Scikit-learn (3-6 months) 📊
    * **Automation/Scripting:** OS module, regex, web scraping (1-2 months) 🤖
4.  **Databases:** SQL with Python (e.g., SQLAlchemy/Psycopg2) (1 month) 🗄️
5.  **Version Control:** Git & GitHub (2-4 weeks) 🌳
6.  **Build Projects!** (Ongoing) 🚀`

const replyLanguageDeveloper = `To provide a more tailored roadmap, **which specific programming language are you interested in (e.g., Java, C++, JavaScript, C#, Go, Ruby, Swift, Kotlin, etc.)?** 🤔

Generally, becoming a **Language-Based Developer** involves mastering a specific programming language and its ecosystem. 💻
**Key Skills:** Chosen language syntax, core libraries/APIs, data structures, algorithms, object-oriented/functional programming (as applicable), relevant frameworks, testing, Git.
**Typical Roadmap (Estimated Time - varies by language and specialization):**
1.  **Language Fundamentals:** Syntax, basic constructs, data types (1-3 months) 📚
2.  **Core Concepts:** OOP/Functional paradigms, error handling, standard library usage (2-4 months) 💡
3.  **Ecosystem & Frameworks:** Learn popular frameworks/libraries for web, mobile, desktop, or enterprise applications in that language (3-6 months) ✨
4.  **Databases:** How to interact with databases from your chosen language (1-2 months) 🗄️
5.  **Version Control:** Git & GitHub (2-4 weeks) 🌳
6.  **Build Projects!** (Ongoing) 🚀`

const replySoftwareTester = `A **Software Tester / QA Engineer** ensures the quality of software by identifying bugs, defects, and ensuring it meets requirements. 🧪
**Key Skills:** Software Testing Life Cycle (STLC), Test Case Design, Bug Reporting, Manual Testing, Automation Testing (Selenium, Playwright), SQL basics, understanding of SDLC.
**Typical Roadmap (Estimated Time):**
1.  **Testing Fundamentals:** SDLC, STLC, types of testing (manual, automation, performance, security) (1-2 months) 📚
2.  **Test Case Design & Execution:** Writing effective test cases, bug tracking tools (Jira, Bugzilla) (1-2 months) 📝
3.  **SQL Basics:** For database testing (2-4 weeks) 🗄️
4.  **Automation Testing Intro:** Learn a tool/framework (e.g., Selenium with Python/Java) (3-5 months) 🤖
5.  **API Testing:** Tools like Postman (1 month) 🔌
6.  **Version Control:** Git basics (2-4 weeks) 🌳
7.  **Practice with Projects!** (Ongoing) ✅`

const replyMLEngineer = `A **Machine Learning Engineer** designs, builds, and deploys AI/ML models into production systems. 🧠
**Key Skills:** Python (NumPy, Pandas, Scikit-learn, TensorFlow/PyTorch), Linear Algebra, Calculus, Statistics, Machine Learning Algorithms, Deep Learning, MLOps, Cloud Platforms (AWS Sagemaker, Azure ML).
**Typical Roadmap (Estimated Time):**
1.  **Python & Data Science Basics:** Python fundamentals, Pandas, NumPy (2-3 months) 🐍
2.  **Mathematics for ML:** Linear Algebra, Calculus, Statistics (2-4 months) ➕
3.  **Core ML Algorithms:** Supervised, Unsupervised, Reinforcement Learning (3-6 months) 🤖
4.  **Deep Learning:** Neural Networks, frameworks (TensorFlow/PyTorch) (3-6 months) 💡
5.  **MLOps & Deployment:** Docker, Kubernetes, cloud ML services (2-4 months) ☁️
6.  **Build End-to-End Projects!** (Ongoing) 🚀`

const replyDatabase = `A **DBMS Engineer / Database Administrator (DBA) / Database Architect** designs, implements, maintains, and optimizes databases to ensure data integrity, security, and performance. 🗄️
**Key Skills:** SQL (Advanced), Database Management Systems (MySQL, PostgreSQL, Oracle, SQL Server), NoSQL Databases (MongoDB, Cassandra), Database Design & Modeling, Performance Tuning, Backup & Recovery, Security.
**Typical Roadmap (Estimated Time):**
1.  **SQL Fundamentals:** Queries, DDL, DML (1-2 months) 📝
2.  **Relational Database Concepts:** Normalization, ACID properties (1 month) 🧩
3.  **Specific RDBMS:** In-depth knowledge of one (e.g., MySQL or PostgreSQL) (2-4 months) 📊
4.  **Database Design & Modeling:** ER diagrams, schema design (1-2 months) 📐
5.  **Performance Tuning & Optimization:** Indexing, query optimization (2-3 months) ⚡
6.  **Backup, Recovery & Security:** Strategies and implementation (1-2 months) 🔒
7.  **NoSQL Databases (Optional but Recommended):** Basics of MongoDB, Cassandra (1-2 months) 📂
8.  **Practice with Real-World Scenarios!** (Ongoing) 🚀`

const replyIoTDeveloper = `An **IoT Developer** specializes in building and deploying solutions for interconnected devices, focusing on hardware, software, and data communication. 🔗
**Key Skills:** Embedded Systems (Arduino, Raspberry Pi), Programming (Python, C/C++), Networking Protocols (MQTT, HTTP), Cloud Platforms (AWS IoT, Azure IoT Hub), Data Processing, Security.
**Typical Roadmap (Estimated Time):**
1.  **Electronics & Microcontrollers:** Basics of circuits, Arduino/Raspberry Pi (2-3 months) 💡
2.  **Embedded Programming:** C/C++ for microcontrollers, Python for higher-level logic (2-4 months) 💻
3.  **Networking & Protocols:** TCP/IP, MQTT, HTTP, CoAP (1-2 months) 📡
4.  **IoT Platforms:** Learn one cloud IoT platform (e.g., AWS IoT Core, Azure IoT Hub) (2-4 months) ☁️
5.  **Data Handling:** Sensor data acquisition, basic data processing (1-2 months) 📊
6.  **Security in IoT:** Understanding vulnerabilities and best practices (1 month) 🔒
7.  **Build End-to-End IoT Projects!** (Ongoing) 🏠`

const replyAndroidDeveloper = `An **Android Developer** builds applications for the Android operating system. 🤖
**Key Skills:** Java or Kotlin, Android SDK, Android Studio, XML for UI layouts, Material Design, API integration, databases (SQLite/Room), Git.
**Typical Roadmap (Estimated Time):**
1.  **Java or Kotlin Fundamentals:** Master one language (2-4 months) 📚
2.  **Android Basics:** Android SDK, Android Studio IDE, basic UI components (3-5 months) 📱
3.  **Advanced UI/UX:** Material Design, custom views (1-2 months) ✨
4.  **Data Storage:** SQLite, Room Persistence Library (1-2 months) 🗄️
5.  **API Integration:** Working with REST APIs (1-2 months) 🔌
6.  **Version Control:** Git & GitHub (2-4 weeks) 🌳
7.  **Build and Publish Apps!** (Ongoing) 🚀`

const replyIOSDeveloper = `An **iOS Developer** builds applications for Apple's iOS ecosystem (iPhone, iPad). 🍎
**Key Skills:** Swift or Objective-C, Xcode IDE, iOS SDK, SwiftUI/UIKit for UI, API integration, Core Data/Realm, Git.
**Typical Roadmap (Estimated Time):**
1.  **Swift Fundamentals:** Master the Swift programming language (2-4 months) 📚
2.  **iOS Basics:** Xcode IDE, iOS SDK, basic UI (UIKit/SwiftUI) (3-5 months) 📱
3.  **Advanced UI/UX:** Complex layouts, animations (1-2 months) ✨
4.  **Data Persistence:** Core Data, Realm, User Defaults (1-2 months) 🗄️
5.  **API Integration:** Working with REST APIs (1-2 months) 🔌
6.  **Version Control:** Git & GitHub (2-4 weeks) 🌳
7.  **Build and Publish Apps!** (Ongoing) 🚀`

const replyFlutterDeveloper = `A **Flutter Developer** builds natively compiled applications for mobile, web, and desktop from a single codebase using Google's Flutter UI toolkit. 🦋
**Key Skills:** Dart programming language, Flutter SDK, Widget-based UI, State Management (Provider, BLoC, Riverpod), API integration, Firebase/local storage, Git.
**Typical Roadmap (Estimated Time):**
1.  **Dart Fundamentals:** Master the Dart programming language (1-2 months) 📚
2.  **Flutter Basics:** Widgets, layout, navigation, Flutter SDK (2-4 months) 📱
3.  **State Management:** Learn a popular solution (Provider, BLoC, Riverpod) (1-2 months) 🧩
4.  **API Integration:** Fetching data from web services (1-2 months) 🔌
5.  **Local Data Persistence:** Shared Preferences, SQLite (1 month) 🗄️
6.  **Firebase/Backend Integration:** Cloud Firestore, Authentication (1-2 months) ☁️
7.  **Version Control:** Git & GitHub (2-4 weeks) 🌳
8.  **Build and Deploy Cross-Platform Apps!** (Ongoing) 🚀`

const replyBlockchainDeveloper = `A **Blockchain Developer** designs and implements decentralized applications (DApps) and smart contracts on blockchain platforms. ⛓️
**Key Skills:** Cryptography basics, Distributed Ledger Technology (DLT), Smart Contract Languages (e.g., Solidity for Ethereum), Blockchain Platforms (Ethereum, Hyperledger, Corda), Web3.js/Ethers.js, Token Standards (ERC-20, ERC-721), Git.
**Typical Roadmap (Estimated Time):**
1.  **Fundamentals:** Cryptography, Distributed Systems, Networking basics (2-3 months) 📚
2.  **Blockchain Concepts:** Consensus mechanisms, immutability, decentralization (1-2 months) 💡
3.  **Smart Contracts:** Learn Solidity (for Ethereum) or equivalent for other platforms (3-5 months) 📝
4.  **Blockchain Platforms:** Dive deep into Ethereum, or explore Hyperledger, Polkadot, etc. (2-4 months) 🌐
5.  **Web3 Development:** Interacting with blockchains from frontend apps (Web3.js/Ethers.js) (1-2 months) 🔌
6.  **Security in Blockchain:** Common vulnerabilities, best practices (1 month) 🔒
7.  **Build DApps and Projects!** (Ongoing) 🚀`

const replyEducator = `An **Educator / Teacher** in the computer science or IT field shares knowledge and guides students in academic or vocational settings. 🧑‍🏫
**Key Skills:** Strong subject matter expertise (Computer Science, programming, IT concepts), excellent communication, presentation skills, patience, curriculum development, classroom management (if applicable).
**Typical Roadmap (Estimated Time):**
1.  **Strong BCA Foundation:** Master core computer science concepts (Ongoing throughout BCA) 🎓
2.  **Further Education:** MCA, M.Sc. in CS/IT, or B.Ed. (for school-level teaching) (2-3 years) 📚
3.  **Communication & Presentation Skills:** Practice explaining complex topics clearly (Ongoing) 🗣️
4.  **Pedagogy Basics:** Understand teaching methodologies (can be self-taught or through B.Ed.) (1-3 months) 💡
5.  **Practical Experience:** Internships, tutoring, teaching assistant roles (Ongoing) 🤝
6.  **Specialization:** Focus on specific subjects you want to teach (e.g., Python, Web Dev, Data Science) (Ongoing) ✨`
