package schema

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/folio/internal/domain"
)

// Step upgrades a raw document from one version to the next in place.
type Step func(raw map[string]any) error

// steps[i] upgrades a version-i document to version i+1.
var steps = []Step{
	migrateV0,
}

// Migrate runs every step from version up to the current schema version.
func Migrate(raw map[string]any, version int) error {
	if len(steps) != domain.CurrentSchemaVersion {
		return fmt.Errorf("migration chain has %d steps for schema version %d", len(steps), domain.CurrentSchemaVersion)
	}
	for v := version; v < domain.CurrentSchemaVersion; v++ {
		if err := steps[v](raw); err != nil {
			return fmt.Errorf("migrating document from version %d: %w", v, err)
		}
		raw["schemaVersion"] = json.Number(fmt.Sprint(v + 1))
	}
	return nil
}

// migrateV0 upgrades documents written before the schema version existed.
// Those may lack videos, about and layoutPreferences entirely, and their
// projects may lack images and updatedAt.
func migrateV0(raw map[string]any) error {
	if list, _ := raw["videos"].([]any); list == nil {
		raw["videos"] = []any{}
	}
	if _, ok := raw["projects"].([]any); !ok {
		raw["projects"] = []any{}
	}
	if _, ok := raw["timeline"].([]any); !ok {
		raw["timeline"] = []any{}
	}

	defaultAbout := domain.DefaultAbout()
	about, _ := raw["about"].(map[string]any)
	if about == nil {
		about = map[string]any{"content": defaultAbout.Content, "image": defaultAbout.Image}
		raw["about"] = about
	}
	if s, _ := about["layout"].(string); !domain.ValidAboutLayouts[domain.AboutLayout(s)] {
		about["layout"] = string(defaultAbout.Layout)
	}

	defaults := domain.DefaultLayoutPreferences()
	prefs, _ := raw["layoutPreferences"].(map[string]any)
	if prefs == nil {
		prefs = map[string]any{}
		raw["layoutPreferences"] = prefs
	}
	if s, _ := prefs["projectLayout"].(string); !domain.ValidLayoutKinds[domain.LayoutKind(s)] {
		prefs["projectLayout"] = string(defaults.ProjectLayout)
	}
	if s, _ := prefs["timelineLayout"].(string); !domain.ValidLayoutKinds[domain.LayoutKind(s)] {
		prefs["timelineLayout"] = string(defaults.TimelineLayout)
	}
	if _, ok := prefs["showSampleContent"].(bool); !ok {
		prefs["showSampleContent"] = defaults.ShowSampleContent
	}

	for _, item := range raw["projects"].([]any) {
		p, ok := item.(map[string]any)
		if !ok {
			return fmt.Errorf("project entry is %T, want object", item)
		}
		if imgs, _ := p["images"].([]any); len(imgs) == 0 {
			if cover, _ := p["coverImage"].(string); cover != "" {
				p["images"] = []any{cover}
			} else {
				p["images"] = []any{}
			}
		}
		if _, ok := p["updatedAt"]; !ok {
			if created, ok := p["createdAt"]; ok {
				p["updatedAt"] = created
			}
		}
	}
	return nil
}
