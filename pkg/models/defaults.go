package models

// PlaceholderImage is served whenever an image field is missing or empty.
const PlaceholderImage = "/placeholder.svg"

var defaultContent = Snapshot{
	"hero": {
		{ID: "1", Key: "heroTitle", Type: FieldText, Value: "Hello, I'm a Designer & Developer", Label: "Hero Title", Section: "hero"},
		{ID: "2", Key: "heroSubtitle", Type: FieldText, Value: "Crafting digital experiences with elegance and purpose", Label: "Hero Subtitle", Section: "hero"},
		{ID: "3", Key: "heroImage", Type: FieldImage, Value: PlaceholderImage, Label: "Hero Image", Section: "hero"},
	},
	"about": {
		{ID: "4", Key: "aboutTitle", Type: FieldText, Value: "About Me", Label: "About Title", Section: "about"},
		{ID: "5", Key: "aboutDescription", Type: FieldRichText, Value: "I'm a passionate designer and developer with over 5 years of experience creating beautiful, functional interfaces. My approach combines technical precision with creative vision to build experiences that are both aesthetically pleasing and highly usable. I believe in minimalist design that puts content and user experience first.", Label: "About Description", Section: "about"},
		{ID: "6", Key: "aboutImage", Type: FieldImage, Value: PlaceholderImage, Label: "About Image", Section: "about"},
	},
	"projects": {
		{ID: "7", Key: "projectsTitle", Type: FieldText, Value: "Selected Work", Label: "Projects Title", Section: "projects"},
		{ID: "8", Key: "projectsDescription", Type: FieldText, Value: "A collection of projects that showcase my skills and passion", Label: "Projects Description", Section: "projects"},
	},
	"contact": {
		{ID: "9", Key: "contactTitle", Type: FieldText, Value: "Get In Touch", Label: "Contact Title", Section: "contact"},
		{ID: "10", Key: "contactDescription", Type: FieldText, Value: "I'm always open to new opportunities and collaborations", Label: "Contact Description", Section: "contact"},
		{ID: "11", Key: "contactEmail", Type: FieldText, Value: "hello@example.com", Label: "Contact Email", Section: "contact"},
	},
}

// DefaultSnapshot returns a fresh copy of the built-in content. Callers get
// their own snapshot; the canonical defaults are never handed out directly.
func DefaultSnapshot() Snapshot {
	return defaultContent.Clone()
}
