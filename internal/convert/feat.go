package convert

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-retool/internal/entries"
	"github.com/KirkDiggler/rpg-retool/internal/prerequisite"
)

// FeatConverter converts a { "feat": [...] } document.
type FeatConverter struct {
	workers int
	logger  *slog.Logger
}

// Convert implements Converter.
func (c *FeatConverter) Convert(ctx context.Context, doc gjson.Result) (any, error) {
	return c.Records(ctx, doc)
}

// Records converts every feat in doc, in input order.
func (c *FeatConverter) Records(ctx context.Context, doc gjson.Result) ([]FeatRecord, error) {
	feats, err := topLevel(doc, "feat")
	if err != nil {
		return nil, err
	}

	return convertEach(ctx, c.workers, feats.Array(), func(feat gjson.Result) []FeatRecord {
		return []FeatRecord{c.record(feat)}
	})
}

func (c *FeatConverter) record(feat gjson.Result) FeatRecord {
	rec := FeatRecord{
		Name:   feat.Get("name").String(),
		Desc:   featDesc(feat),
		Skills: []string{},
	}

	if skills, count, ok := parseSkills(feat.Get("skillProficiencies.0")); ok {
		rec.Skills = skills
		rec.SkillsCountChoose = count
	} else if feat.Get("skillProficiencies").Exists() {
		c.logger.Debug("Skipping unrecognized skill proficiencies", "feat", rec.Name)
	}

	return rec
}

func featDesc(feat gjson.Result) string {
	var parts []string
	if prereq := prerequisite.ToString(feat.Get("prerequisite")); prereq != "" {
		parts = append(parts, prereq)
	}
	if body, ok := entries.RenderEntries(feat.Get("entries")); ok {
		parts = append(parts, body)
	}
	return strings.Join(parts, "\n\n")
}
