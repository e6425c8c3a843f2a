package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms/pkg/models"
	"portfolio-cms/pkg/services"
)

// PagesController serves the public page payloads. Each value falls back to a
// hardcoded default while content is loading or a field is missing.
type PagesController struct {
	Service *services.ContentService
}

func (p *PagesController) value(key, fallback string) string {
	if p.Service.Loading() {
		return fallback
	}
	if f, ok := p.Service.FindByKey(key); ok && f.Value != "" {
		return f.Value
	}
	return fallback
}

func (p *PagesController) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page": "home",
		"hero": gin.H{
			"title":    p.value("heroTitle", "Hello, I'm a Designer & Developer"),
			"subtitle": p.value("heroSubtitle", "Crafting digital experiences with elegance and purpose"),
			"image":    p.value("heroImage", models.PlaceholderImage),
		},
	})
}

func (p *PagesController) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page": "about",
		"about": gin.H{
			"title":       p.value("aboutTitle", "About Me"),
			"description": p.value("aboutDescription", "I'm a passionate designer and developer with over 5 years of experience creating beautiful, functional interfaces."),
			"image":       p.value("aboutImage", models.PlaceholderImage),
		},
	})
}

func (p *PagesController) Work(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page": "work",
		"projects": gin.H{
			"title":       p.value("projectsTitle", "Selected Work"),
			"description": p.value("projectsDescription", "A collection of projects that showcase my skills and passion"),
		},
	})
}

func (p *PagesController) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page": "contact",
		"contact": gin.H{
			"title":       p.value("contactTitle", "Get In Touch"),
			"description": p.value("contactDescription", "I'm always open to new opportunities and collaborations"),
			"email":       p.value("contactEmail", "hello@example.com"),
		},
	})
}
