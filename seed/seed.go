// Package seed holds the bundled law table and default accounts.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"virtual-lawyer/models"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// User is a default account. Password is plaintext here and hashed on insert.
type User struct {
	Username string      `yaml:"username"`
	Password string      `yaml:"password"`
	Role     models.Role `yaml:"role"`
}

type lawEntry struct {
	Section      string `yaml:"section"`
	Title        string `yaml:"title"`
	ShortDesc    string `yaml:"short_desc"`
	Category     string `yaml:"category"`
	Keywords     string `yaml:"keywords"`
	OfficialText string `yaml:"official_text"`
	SourceURL    string `yaml:"source_url"`
}

type document struct {
	Users []User     `yaml:"users"`
	Laws  []lawEntry `yaml:"laws"`
}

// Data is a parsed seed document
type Data struct {
	users []User
	laws  []models.Law
}

// Users returns a copy of the default accounts
func (d *Data) Users() []User {
	return append([]User(nil), d.users...)
}

// Laws returns a copy of the bundled laws
func (d *Data) Laws() []models.Law {
	out := make([]models.Law, len(d.laws))
	for i, l := range d.laws {
		l.Keywords = append([]string(nil), l.Keywords...)
		out[i] = l
	}
	return out
}

var defaultData = mustParse(defaultYAML)

// Default returns the embedded seed data
func Default() *Data {
	return defaultData
}

// Load parses a seed file from disk
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a seed document
func Parse(raw []byte) (*Data, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	data := &Data{}
	seen := make(map[string]bool, len(doc.Laws))
	for i, e := range doc.Laws {
		section := strings.TrimSpace(e.Section)
		if section == "" {
			return nil, fmt.Errorf("law %d: section is required", i)
		}
		if seen[section] {
			return nil, fmt.Errorf("law %d: duplicate section %q", i, section)
		}
		seen[section] = true
		data.laws = append(data.laws, models.Law{
			Section:          section,
			Title:            e.Title,
			ShortDescription: e.ShortDesc,
			Category:         e.Category,
			Keywords:         models.ParseKeywords(e.Keywords),
			OfficialText:     e.OfficialText,
			SourceURL:        e.SourceURL,
		})
	}

	for i, u := range doc.Users {
		role, ok := models.ParseRole(string(u.Role))
		if !ok {
			return nil, fmt.Errorf("user %d: unknown role %q", i, u.Role)
		}
		if u.Username == "" || u.Password == "" {
			return nil, fmt.Errorf("user %d: username and password are required", i)
		}
		u.Role = role
		data.users = append(data.users, u)
	}

	return data, nil
}

func mustParse(raw []byte) *Data {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}
