// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import "time"

// Default returns the built-in portfolio tables. Each call returns a fresh
// copy so callers may not mutate shared state.
func Default() *Content {
	return &Content{
		Profile: Profile{
			Name:    "Kavi Raj Vedi",
			Tagline: "Full Stack Developer & Data Analytics Specialist",
			About: []string{
				"Results-driven Full-stack Developer with over 1 year of professional experience in software development, " +
					"with a strong emphasis on front-end development and data analytics. Proficient in building secure, " +
					"scalable, and high-performance microservices and micro front end architectures using TypeScript, " +
					"ReactJS, Node.js, Docker, and cloud platforms.",
				"Currently working as a Software Developer at ZeroCac, focusing on Frontend & Data Analytics, where I " +
					"design and develop dynamic front-end components and implement data scraping pipelines.",
			},
			Links: []SocialLink{
				{Label: "GitHub", URL: "https://github.com/KaviRajVedi"},
				{Label: "LinkedIn", URL: "https://linkedin.com/in/kavirajvedi"},
			},
		},
		Navigation: []NavigationTarget{
			{ID: "home", Label: "Home"},
			{ID: "about", Label: "About"},
			{ID: "skills", Label: "Skills"},
			{ID: "projects", Label: "Projects"},
			{ID: "contact", Label: "Contact"},
		},
		Scroll: ScrollSpec{
			Offset:   -100,
			Duration: 500 * time.Millisecond,
			Smooth:   true,
			Spy:      true,
		},
		Skills: []SkillCategory{
			{
				Category: "Programming Languages",
				Items:    []string{"JavaScript", "TypeScript", "C#", "Python", "Java"},
			},
			{
				Category: "Frameworks & Tools",
				Items:    []string{"ReactJS", "Node.js", "SpringBoot", "Docker", "Django", "Flask", "Git", "Webpack"},
			},
			{Category: "Cloud & DevOps", Items: []string{"Azure", "Firebase", "Kubernetes"}},
			{Category: "Database Technologies", Items: []string{"MySQL", "MongoDB", "SQLite"}},
			{Category: "Additional Tools", Items: []string{"PowerBI", "Tableau"}},
		},
		CodingProfiles: []CodingProfile{
			{Site: "LeetCode", Handle: "@BerryFur", URL: "https://leetcode.com/u/BerryFur/"},
			{Site: "Codeforces", Handle: "@BerryFur", URL: "https://codeforces.com/profile/BerryFur"},
		},
		Projects: []Project{
			{
				Title: "Web3 Decentralized Application",
				Description: "A decentralized social networking web application for sharing books, blogs, and media files. " +
					"Integrated with MetaMask for secure authentication and IPFS for decentralized storage.",
				Technologies: []string{"Web3.0", "MetaMask", "React", "TypeScript", "IPFS", "Ethereum"},
				Image:        "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?w=800&q=80",
				GitHub:       "https://github.com/KaviRajVedi/SocialMediaonBlockchain",
			},
			{
				Title: "Stock Exchange Web Application",
				Description: "A prototype for real-time stock transactions with live NASDAQ API integration. " +
					"Features a simple, intuitive interface with secure backend operations.",
				Technologies: []string{"Python", "SQLite", "phpLiteAdmin", "HTML", "CSS", "GitHub"},
				Image:        "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800&q=80",
				GitHub:       "https://github.com/KaviRajVedi/Stock-Exchange",
			},
		},
		Education: []Education{
			{
				Degree:      "Masters in Computer Application",
				Institution: "University College of Engineering, Osmania University",
				Period:      "Dec 2021 – Dec 2023",
				Grade:       "CGPA: 7.4",
			},
			{
				Degree:      "Bachelors in Computer Science",
				Institution: "St. Joseph's Degree and P.G College, Osmania University",
				Period:      "June 2018 – Nov 2021",
				Grade:       "CGPA: 8.3",
			},
		},
	}
}
