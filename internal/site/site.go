// Package site holds the static profile shown on the public pages.
package site

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dexsamir/portfolio/internal/forms"
)

//go:embed content.yaml
var defaultContent []byte

type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Contact struct {
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	Location string `yaml:"location"`
	WhatsApp string `yaml:"whatsapp"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

type Language struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

// Entry is one education or experience line of the resume.
type Entry struct {
	Title    string `yaml:"title"`
	Place    string `yaml:"place"`
	Location string `yaml:"location"`
	Period   string `yaml:"period"`
	Summary  string `yaml:"summary"`
}

type Resume struct {
	File           string     `yaml:"file"`
	Skills         []Skill    `yaml:"skills"`
	Languages      []Language `yaml:"languages"`
	Education      []Entry    `yaml:"education"`
	Experience     []Entry    `yaml:"experience"`
	Certifications []string   `yaml:"certifications"`
}

type Content struct {
	Name     string   `yaml:"name"`
	Greeting string   `yaml:"greeting"`
	Headline string   `yaml:"headline"`
	Roles    []string `yaml:"roles"`
	About    string   `yaml:"about"`
	Birthday string   `yaml:"birthday"`
	Contact  Contact  `yaml:"contact"`
	Social   []Link   `yaml:"social"`
	Resume   Resume   `yaml:"resume"`
}

// Load reads the profile from path, or the embedded default when path is empty.
func Load(path string) (*Content, error) {
	data := defaultContent
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read site content: %w", err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}
	if strings.TrimSpace(c.Name) == "" {
		return nil, fmt.Errorf("site content: name is required")
	}
	for _, s := range c.Resume.Skills {
		if s.Level < 0 || s.Level > 100 {
			return nil, fmt.Errorf("site content: skill %q level must be 0..100", s.Name)
		}
	}
	return &c, nil
}

// WhatsAppLink opens a WhatsApp chat with the contact form pre-filled.
func (c *Content) WhatsAppLink(f forms.ContactForm) string {
	text := fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\nMessage: %s",
		strings.TrimSpace(f.Name), strings.TrimSpace(f.Email),
		strings.TrimSpace(f.Subject), strings.TrimSpace(f.Message))
	return c.WhatsAppURL() + "?text=" + url.QueryEscape(text)
}

// WhatsAppURL is the bare chat link.
func (c *Content) WhatsAppURL() string {
	return "https://wa.me/" + digits(c.Contact.WhatsApp)
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
