// Package swagger registers the OpenAPI document served under /swagger.
// Keep it in step with the @Router annotations on the feature handlers.
package swagger

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
        "/crafting/evaluate": {
            "post": {
                "description": "Evaluate required-item lines against inline storage pools.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["crafting"],
                "summary": "Evaluate Requirement",
                "parameters": [
                    {
                        "description": "Pools, lines and groups",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/crafting.EvaluateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Evaluation", "schema": {"$ref": "#/definitions/crafting.RecipeReport"}},
                    "400": {"description": "Malformed Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/crafting/players/{player}/recipes": {
            "get": {
                "description": "Craftable state of every recipe of a station for a player.",
                "produces": ["application/json"],
                "tags": ["crafting"],
                "summary": "Recipe Mask",
                "parameters": [
                    {"type": "string", "description": "Player ID", "name": "player", "in": "path", "required": true},
                    {"type": "string", "description": "Station (windmill, cooking)", "name": "station", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Recipe Mask", "schema": {"type": "array", "items": {"$ref": "#/definitions/crafting.RecipeStatus"}}},
                    "400": {"description": "Invalid Station", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/crafting/players/{player}/recipes/{recipe}": {
            "get": {
                "description": "Per-slot storage amounts and craftable state of one recipe.",
                "produces": ["application/json"],
                "tags": ["crafting"],
                "summary": "Recipe Detail",
                "parameters": [
                    {"type": "string", "description": "Player ID", "name": "player", "in": "path", "required": true},
                    {"type": "string", "description": "Recipe ID or name", "name": "recipe", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Recipe Report", "schema": {"$ref": "#/definitions/crafting.RecipeReport"}},
                    "404": {"description": "Recipe Not Found", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity": {
            "get": {
                "description": "Performs all available integrity checks (MasterData, Server).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Run All Integrity Checks",
                "responses": {
                    "200": {"description": "Combined Report", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/integrity/masterdata": {
            "get": {
                "description": "Verify that the group and recipe masters are present and consistent.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Master Data",
                "responses": {
                    "200": {"description": "Master Data Report", "schema": {"$ref": "#/definitions/checks.MasterDataReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity/server": {
            "get": {
                "description": "Checks if the inventory database schema matches the expected model.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Server Schema",
                "responses": {
                    "200": {"description": "Server Check Report", "schema": {"$ref": "#/definitions/checks.ServerReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "checks.MasterDataReport": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"type": "string"}},
                "groups": {"type": "integer"},
                "missing": {"type": "array", "items": {"type": "string"}},
                "recipes": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "checks.ServerReport": {
            "type": "object",
            "properties": {
                "driver": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}},
                "matched": {"type": "boolean"},
                "tables": {"type": "object", "additionalProperties": {"$ref": "#/definitions/checks.TableReport"}}
            }
        },
        "checks.TableReport": {
            "type": "object",
            "properties": {
                "missing_columns": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"},
                "type_mismatches": {"type": "array", "items": {"type": "string"}}
            }
        },
        "crafting.EvaluateRequest": {
            "type": "object",
            "properties": {
                "groups": {"type": "array", "items": {"$ref": "#/definitions/crafting.GroupDefinition"}},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/crafting.RequiredItemLine"}},
                "pools": {"$ref": "#/definitions/crafting.PoolsPayload"}
            }
        },
        "crafting.GroupDefinition": {
            "type": "object",
            "properties": {
                "group_id": {"type": "integer"},
                "member_item_ids": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "crafting.ItemRecord": {
            "type": "object",
            "properties": {
                "category": {"type": "integer"},
                "item_id": {"type": "integer"},
                "stack": {"type": "integer"}
            }
        },
        "crafting.LineReport": {
            "type": "object",
            "properties": {
                "empty": {"type": "boolean"},
                "enough": {"type": "boolean"},
                "in_storage": {"type": "integer"},
                "kind": {"type": "string", "enum": ["item", "category", "group"]},
                "label": {"type": "string"},
                "required": {"type": "integer"},
                "slot": {"type": "integer"},
                "target_id": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "crafting.PoolsPayload": {
            "type": "object",
            "properties": {
                "bag": {"type": "array", "items": {"$ref": "#/definitions/crafting.ItemRecord"}},
                "house": {"type": "array", "items": {"$ref": "#/definitions/crafting.ItemRecord"}},
                "tool": {"type": "array", "items": {"$ref": "#/definitions/crafting.ItemRecord"}}
            }
        },
        "crafting.RecipeReport": {
            "type": "object",
            "properties": {
                "craftable": {"type": "boolean"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/crafting.LineReport"}},
                "name": {"type": "string"},
                "player_id": {"type": "string"},
                "recipe_id": {"type": "integer"},
                "station": {"type": "string"}
            }
        },
        "crafting.RecipeStatus": {
            "type": "object",
            "properties": {
                "craftable": {"type": "boolean"},
                "error": {"type": "string"},
                "name": {"type": "string"},
                "recipe_id": {"type": "integer"}
            }
        },
        "crafting.RequiredItemLine": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["item", "category", "group"]},
                "required_stack": {"type": "integer"},
                "target_id": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds the document metadata.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Craftstore API",
	Description:      "Craft-from-storage evaluation for player inventories.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
