package content

// Defaults are served when a section was never saved. They mirror the
// initial site content so a fresh deploy renders a complete page.

func defaultHero() any {
	return Hero{
		Name:                   "Puneeth K",
		MainPhrase:             "I build things for the Web",
		Description:            "I'm a passionate full-stack developer crafting clean, performant and delightful web experiences.",
		BlurAmount:             5,
		BorderColor:            "#4ade80",
		AnimationDuration:      0.5,
		PauseBetweenAnimations: 1,
	}
}

func defaultAbout() any {
	return About{
		Name:        "Puneeth K",
		Description: "I'm a full-stack developer who enjoys turning ideas into working products. I care about clean code, good design and learning something new every day.",
		Location:    "Guruvayanakere, India",
		Email:       "reachout.puneeth@gmail.com",
		Experience:  "0.3 Years",
	}
}

func defaultSkills() any {
	return Skills{
		SectionTitle:       "What I do",
		SectionDescription: "A few of the things I work with every day.",
		Skills: []Skill{
			{IconType: "Code", Title: "Frontend Development", Description: "Building responsive interfaces with modern frameworks."},
			{IconType: "Globe", Title: "Web Applications", Description: "Full-stack apps from database to deployment."},
			{IconType: "Layers", Title: "UI/UX Design", Description: "Clean, usable layouts with attention to detail."},
			{IconType: "Terminal", Title: "Backend Development", Description: "APIs and services that stay fast under load."},
			{IconType: "FileCode", Title: "Clean Code", Description: "Readable, maintainable and well tested code."},
			{IconType: "Monitor", Title: "Responsive Design", Description: "Sites that look right on every screen size."},
			{IconType: "Database", Title: "Databases", Description: "Schema design, queries and data modelling."},
			{IconType: "Palette", Title: "Creative Work", Description: "Bringing visual ideas to the browser."},
		},
	}
}

func defaultExperience() any {
	return Experience{
		SectionTitle:       "Experience",
		SectionDescription: "Where I have worked so far.",
		Experiences: []ExperienceItem{
			{
				Period:      "2024 - Present",
				Title:       "Full Stack Developer",
				Company:     "The Web People",
				Description: "Building and maintaining client web applications end to end.",
				Tags:        []string{"React", "Node.js", "MongoDB"},
			},
			{
				Period:      "2023 - 2024",
				Title:       "Web Developer Intern",
				Company:     "Codelab Systems",
				Description: "Worked on internal tools and customer facing sites.",
				Tags:        []string{"JavaScript", "PHP", "MySQL"},
			},
			{
				Period:      "2023",
				Title:       "Trainee Developer",
				Company:     "RDL Technologies",
				Description: "Learned the ropes of professional software development.",
				Tags:        []string{"HTML", "CSS", "JavaScript"},
			},
		},
	}
}

func defaultEducation() any {
	return Education{
		SectionTitle:       "Education",
		SectionDescription: "My academic background.",
		Education: []EducationItem{
			{
				Icon:        "GraduationCap",
				Degree:      "Master of Computer Applications",
				Institution: "St Joseph Engineering College",
				Year:        "2023 - 2025",
				Description: "CGPA 8.57",
			},
			{
				Icon:        "BookOpen",
				Degree:      "Bachelor of Computer Applications",
				Institution: "SDM College",
				Year:        "2020 - 2023",
				Description: "CGPA 7.15",
			},
		},
	}
}

func defaultProjects() any {
	return Projects{
		SectionTitle:       "Projects",
		SectionDescription: "A selection of things I have built.",
		Projects: []Project{
			{
				ID:          1,
				Title:       "Portfolio Website",
				Category:    "Web",
				Image:       "/images/projects/portfolio.png",
				Description: "This very site. A personal portfolio with a self hosted admin panel.",
				Tags:        []string{"Next.js", "Tailwind"},
				GithubURL:   "https://github.com/puneethk/portfolio",
			},
			{
				ID:          2,
				Title:       "Task Manager",
				Category:    "Web",
				Image:       "/images/projects/tasks.png",
				Description: "A small task tracking app with boards and labels.",
				Tags:        []string{"React", "Express"},
			},
		},
	}
}

func defaultFooter() any {
	return Footer{
		SocialLinks: []SocialLink{
			{Platform: "GitHub", URL: "https://github.com/puneethk", Icon: "Github"},
			{Platform: "LinkedIn", URL: "https://www.linkedin.com/in/puneethk", Icon: "Linkedin"},
		},
		CopyrightText: "Puneeth K. All rights reserved.",
	}
}

func defaultContact() any {
	return Contact{
		RotatingTexts: []string{"Hiring", "Web Development"},
		FormActionURL: "https://formspree.io/f/placeholder",
	}
}
