// CLAUDE:SUMMARY Embedded JSON Schemas for the seven artifacts and the verification pass.
package pdfscan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// VerifyArtifacts re-reads every artifact file under dir and validates it
// against its embedded schema. It returns the first structural violation
// found; a missing file is a violation too.
func VerifyArtifacts(dir string) error {
	for _, name := range ArtifactNames {
		schemaJSON, ok := artifactSchemas[name]
		if !ok {
			return fmt.Errorf("no schema registered for %s", name)
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(name, strings.NewReader(schemaJSON)); err != nil {
			return fmt.Errorf("schema %s: %w", name, err)
		}
		schema, err := compiler.Compile(name)
		if err != nil {
			return fmt.Errorf("compile schema %s: %w", name, err)
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read artifact %s: %w", name, err)
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse artifact %s: %w", name, err)
		}
		if err := schema.Validate(doc); err != nil {
			return fmt.Errorf("artifact %s: %w", name, err)
		}
	}
	return nil
}

// Schemas pin the top-level shape of each artifact. They check structure and
// types, not domain validity: a wrong amount passes, a missing field fails.
var artifactSchemas = map[string]string{
	ArtifactRawText: `{
		"type": "object",
		"patternProperties": {
			"^page_\\d{3,}$": {
				"type": "object",
				"required": ["page_number", "text", "paragraphs", "page_stats", "extraction_quality"],
				"properties": {
					"page_number":              {"type": "integer", "minimum": 1},
					"text":                     {"type": "string"},
					"paragraphs":               {"type": ["array", "null"], "items": {"type": "string"}},
					"figures":                  {"type": ["array", "null"]},
					"tables":                   {"type": ["array", "null"]},
					"monetary_values":          {"type": ["array", "null"]},
					"percentages":              {"type": ["array", "null"]},
					"years":                    {"type": ["array", "null"], "items": {"type": "integer"}},
					"constitutional_articles":  {"type": ["array", "null"], "items": {"type": "string"}},
					"legal_references":         {"type": ["array", "null"], "items": {"type": "string"}},
					"institutional_references": {"type": ["array", "null"], "items": {"type": "string"}},
					"citations":                {"type": ["array", "null"], "items": {"type": "string"}},
					"scandals":                 {"type": ["array", "null"]},
					"keywords":                 {"type": ["array", "null"], "items": {"type": "string"}},
					"page_stats": {
						"type": "object",
						"required": ["word_count", "paragraph_count"]
					},
					"extraction_quality": {
						"type": "object",
						"required": ["quality_score", "method_used"],
						"properties": {
							"quality_score": {"type": "number", "minimum": 0, "maximum": 1},
							"method_used":   {"type": "string"}
						}
					}
				}
			}
		},
		"additionalProperties": false
	}`,

	ArtifactStructure: `{
		"type": "object",
		"required": ["chapters", "pages"],
		"properties": {
			"chapters": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["number", "title", "start_page", "end_page"],
					"properties": {
						"number":     {"type": "string"},
						"title":      {"type": "string"},
						"start_page": {"type": "integer", "minimum": 1},
						"end_page":   {"type": "integer", "minimum": 0}
					}
				}
			},
			"pages": {
				"type": "object",
				"patternProperties": {
					"^page_\\d{3,}$": {
						"type": "object",
						"required": ["word_count", "paragraph_count"],
						"properties": {
							"word_count":      {"type": "integer", "minimum": 0},
							"paragraph_count": {"type": "integer", "minimum": 0},
							"has_figures":     {"type": "boolean"},
							"has_tables":      {"type": "boolean"},
							"monetary_count":  {"type": "integer", "minimum": 0},
							"article_count":   {"type": "integer", "minimum": 0}
						}
					}
				},
				"additionalProperties": false
			}
		}
	}`,

	ArtifactNumerics: `{
		"type": "object",
		"required": ["monetary_values", "percentages", "years"],
		"properties": {
			"monetary_values": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["amount", "original_text", "currency", "unit", "page"],
					"properties": {
						"amount":        {"type": "number", "minimum": 0},
						"original_text": {"type": "string"},
						"currency":      {"enum": ["local", "foreign"]},
						"unit":          {"enum": ["trillion", "billion", "million", "units"]},
						"context":       {"type": "string"},
						"page":          {"type": "integer", "minimum": 1},
						"offset":        {"type": "integer", "minimum": 0}
					}
				}
			},
			"percentages": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["value", "page"],
					"properties": {
						"value": {"type": "number"},
						"page":  {"type": "integer", "minimum": 1}
					}
				}
			},
			"years": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["year", "page"],
					"properties": {
						"year": {"type": "integer", "minimum": 1900},
						"page": {"type": "integer", "minimum": 1}
					}
				}
			}
		}
	}`,

	ArtifactReferences: `{
		"type": "object",
		"required": ["legal", "institutional", "citations", "constitutional", "scandals"],
		"properties": {
			"legal":          {"$ref": "#/$defs/refs"},
			"institutional":  {"$ref": "#/$defs/refs"},
			"citations":      {"$ref": "#/$defs/refs"},
			"constitutional": {"$ref": "#/$defs/refs"},
			"scandals": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["name", "keyword", "page"],
					"properties": {
						"name":    {"type": "string"},
						"keyword": {"type": "string"},
						"context": {"type": "string"},
						"amount":  {"type": "string"},
						"page":    {"type": "integer", "minimum": 1}
					}
				}
			}
		},
		"$defs": {
			"refs": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["value", "page"],
					"properties": {
						"value": {"type": "string"},
						"page":  {"type": "integer", "minimum": 1}
					}
				}
			}
		}
	}`,

	ArtifactMetadata: `{
		"type": "object",
		"required": ["source_file", "total_pages", "extraction_date", "file_hash", "file_size", "has_image_streams", "backends"],
		"properties": {
			"source_file":       {"type": "string", "minLength": 1},
			"total_pages":       {"type": "integer", "minimum": 0},
			"extraction_date":   {"type": "string"},
			"file_hash":         {"type": "string", "pattern": "^[0-9a-f]{64}$"},
			"file_size":         {"type": "integer", "minimum": 0},
			"has_image_streams": {"type": "boolean"},
			"backends": {
				"type": "object",
				"required": ["basic", "layout", "render", "ocr"],
				"properties": {
					"basic":  {"type": "boolean"},
					"layout": {"type": "boolean"},
					"render": {"type": "boolean"},
					"ocr":    {"type": "boolean"}
				}
			}
		}
	}`,

	ArtifactStatistics: `{
		"type": "object",
		"required": [
			"total_pages", "total_words", "total_paragraphs",
			"total_monetary_values", "total_scandals",
			"total_constitutional_articles", "chapters_count",
			"figures_count", "tables_count", "extraction_timestamp"
		],
		"properties": {
			"total_pages":                   {"type": "integer", "minimum": 0},
			"total_words":                   {"type": "integer", "minimum": 0},
			"total_paragraphs":              {"type": "integer", "minimum": 0},
			"total_monetary_values":         {"type": "number", "minimum": 0},
			"total_scandals":                {"type": "integer", "minimum": 0},
			"total_constitutional_articles": {"type": "integer", "minimum": 0},
			"chapters_count":                {"type": "integer", "minimum": 0},
			"figures_count":                 {"type": "integer", "minimum": 0},
			"tables_count":                  {"type": "integer", "minimum": 0},
			"extraction_timestamp":          {"type": "string"}
		}
	}`,

	ArtifactQuality: `{
		"type": "object",
		"required": [
			"overall_score", "average_words_per_page",
			"pages_with_tables", "pages_with_figures",
			"table_coverage", "figure_coverage"
		],
		"properties": {
			"overall_score":          {"type": "number", "minimum": 0, "maximum": 1},
			"average_words_per_page": {"type": "number", "minimum": 0},
			"pages_with_tables":      {"type": "integer", "minimum": 0},
			"pages_with_figures":     {"type": "integer", "minimum": 0},
			"table_coverage":         {"type": "number", "minimum": 0, "maximum": 1},
			"figure_coverage":        {"type": "number", "minimum": 0, "maximum": 1}
		}
	}`,
}
