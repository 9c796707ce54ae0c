package content

// Section payloads, shaped exactly as the public site and the admin
// panel exchange them. Every section is a singleton document.

type Hero struct {
	Name                   string  `json:"name"`
	MainPhrase             string  `json:"mainPhrase"`
	Description            string  `json:"description"`
	ResumeURL              string  `json:"resumeUrl,omitempty"`
	BlurAmount             float64 `json:"blurAmount,omitempty"`
	BorderColor            string  `json:"borderColor,omitempty"`
	AnimationDuration      float64 `json:"animationDuration,omitempty"`
	PauseBetweenAnimations float64 `json:"pauseBetweenAnimations,omitempty"`
	ProjectsButtonText     string  `json:"projectsButtonText,omitempty"`
	ProjectsButtonLink     string  `json:"projectsButtonLink,omitempty"`
	ContactButtonText      string  `json:"contactButtonText,omitempty"`
	ContactButtonLink      string  `json:"contactButtonLink,omitempty"`
	ResumeButtonText       string  `json:"resumeButtonText,omitempty"`
}

type About struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Email       string `json:"email"`
	Experience  string `json:"experience"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type Skill struct {
	IconType    string `json:"iconType"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Skills struct {
	SectionTitle       string  `json:"sectionTitle"`
	SectionDescription string  `json:"sectionDescription"`
	Skills             []Skill `json:"skills"`
}

type ExperienceItem struct {
	Period      string   `json:"period"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type Experience struct {
	SectionTitle       string           `json:"sectionTitle"`
	SectionDescription string           `json:"sectionDescription"`
	Experiences        []ExperienceItem `json:"experiences"`
}

type EducationItem struct {
	Icon        string `json:"icon"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

type Education struct {
	SectionTitle       string          `json:"sectionTitle"`
	SectionDescription string          `json:"sectionDescription"`
	Education          []EducationItem `json:"education"`
}

type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	WebsiteURL  string   `json:"websiteUrl,omitempty"`
	GithubURL   string   `json:"githubUrl,omitempty"`
}

type Projects struct {
	SectionTitle       string    `json:"sectionTitle"`
	SectionDescription string    `json:"sectionDescription"`
	Projects           []Project `json:"projects"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

type Footer struct {
	SocialLinks   []SocialLink `json:"socialLinks"`
	CopyrightText string       `json:"copyrightText"`
}

type Contact struct {
	RotatingTexts []string `json:"rotatingTexts"`
	FormActionURL string   `json:"formActionUrl"`
}
