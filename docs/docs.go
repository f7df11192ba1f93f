// Package docs registers the OpenAPI document with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/insights": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Streaks, core values, category tone and reflection patterns for the caller",
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Personal insights",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.InsightsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "model.CalendarDay": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "date": {"type": "string"},
                "intensity": {"type": "integer"}
            }
        },
        "model.CategoryInsight": {
            "type": "object",
            "properties": {
                "avg_depth": {"type": "number"},
                "count": {"type": "integer"},
                "emotional_tone": {"type": "string", "enum": ["positive", "challenging", "balanced"]},
                "percentage": {"type": "number"},
                "reflection_level": {"type": "integer"},
                "total_investment": {"type": "integer"}
            }
        },
        "model.GrowthJourney": {
            "type": "object",
            "properties": {
                "emotional_growth": {"type": "string"},
                "focus_evolution": {"type": "string"},
                "reflection_depth_change": {"type": "string"}
            }
        },
        "model.Insights": {
            "type": "object",
            "properties": {
                "category_insights": {"type": "object", "additionalProperties": {"$ref": "#/definitions/model.CategoryInsight"}},
                "core_values": {"type": "array", "items": {"$ref": "#/definitions/model.ValueScore"}},
                "growth_journey": {"$ref": "#/definitions/model.GrowthJourney"},
                "personal_summary": {"type": "string"},
                "reflection_dna": {"type": "array", "items": {"type": "string"}},
                "reflection_style": {"$ref": "#/definitions/model.ReflectionStyle"},
                "streak_calendar": {"$ref": "#/definitions/model.StreakStats"}
            }
        },
        "model.InsightsResponse": {
            "type": "object",
            "properties": {
                "insights": {"$ref": "#/definitions/model.Insights"},
                "total_reflections": {"type": "integer"}
            }
        },
        "model.ReflectionStyle": {
            "type": "object",
            "properties": {
                "avg_words_per_reflection": {"type": "integer"},
                "consistency": {"type": "string"},
                "depth_level": {"type": "string"},
                "total_words": {"type": "integer"}
            }
        },
        "model.StreakStats": {
            "type": "object",
            "properties": {
                "calendar_data": {"type": "array", "items": {"$ref": "#/definitions/model.CalendarDay"}},
                "current_streak": {"type": "integer"},
                "longest_streak": {"type": "integer"},
                "total_active_days": {"type": "integer"}
            }
        },
        "model.ValueScore": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "strength": {"type": "integer"},
                "value": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Memory Companion Insights API",
	Description:      "Personal insights derived from a user's reflection history",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
