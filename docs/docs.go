// Package docs registers the OpenAPI document served under /docs. It follows
// the layout swag emits so the annotations on the handlers and this template
// can be regenerated with `swag init -g cmd/api/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {"name": "Scoracle"},
        "license": {"name": "MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Returns service name, version, status and the registered actions.",
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "API root info",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/health": {
            "get": {
                "description": "Returns basic health status and timestamp.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/health/dataset": {
            "get": {
                "description": "Loads the results document from the configured candidates and reports the source and its size.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Dataset health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/webhook": {
            "post": {
                "description": "Runs a named action against the tracker's latest message and slots. Returns slot/followup events and bot responses.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["actions"],
                "summary": "Run a custom action",
                "parameters": [{"description": "Action call", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ActionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ActionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/actions": {
            "get": {
                "description": "Returns every action the webhook can run.",
                "produces": ["application/json"],
                "tags": ["actions"],
                "summary": "List actions",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.ActionInfo"}}}}
            }
        },
        "/send_message": {
            "post": {
                "description": "Forwards the form field \"message\" to the dialogue engine and returns its reply list verbatim. Engine failures become a single synthetic reply.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["relay"],
                "summary": "Relay a chat message",
                "parameters": [{"type": "string", "description": "User message", "name": "message", "in": "formData", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.Utterance"}}}}
            }
        },
        "/api/v1/ask": {
            "post": {
                "description": "Runs the sport router (and its follow-up) or a named action on one turn and returns messages and events. The caller applies slot events itself.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["actions"],
                "summary": "Ask a question",
                "parameters": [{"description": "Turn", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AskRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/query.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/api/v1/leagues": {
            "get": {
                "description": "Returns per-league counts of standings rows, matchdays, matches and upcoming matches. Supports If-None-Match.",
                "produces": ["application/json"],
                "tags": ["dataset"],
                "summary": "List leagues",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dataset.LeagueSummary"}}},
                    "304": {"description": "Not Modified"}
                }
            }
        }
    },
    "definitions": {
        "dataset.LeagueSummary": {
            "type": "object",
            "properties": {
                "sport": {"type": "string"},
                "league": {"type": "string"},
                "standings": {"type": "integer"},
                "matchdays": {"type": "integer"},
                "matches": {"type": "integer"},
                "upcoming": {"type": "integer"}
            }
        },
        "handler.ActionInfo": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "handler.ActionRequest": {
            "type": "object",
            "properties": {
                "next_action": {"type": "string"},
                "sender_id": {"type": "string"},
                "tracker": {"$ref": "#/definitions/handler.Tracker"}
            }
        },
        "handler.Tracker": {
            "type": "object",
            "properties": {
                "sender_id": {"type": "string"},
                "slots": {"type": "object", "additionalProperties": true},
                "latest_message": {
                    "type": "object",
                    "properties": {
                        "text": {"type": "string"},
                        "entities": {"type": "array", "items": {"$ref": "#/definitions/query.Entity"}}
                    }
                }
            }
        },
        "handler.ActionResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/query.Event"}},
                "responses": {"type": "array", "items": {"$ref": "#/definitions/handler.Utterance"}}
            }
        },
        "handler.AskRequest": {
            "type": "object",
            "properties": {
                "action": {"type": "string"},
                "text": {"type": "string"},
                "slots": {"$ref": "#/definitions/query.Slots"},
                "entities": {"type": "array", "items": {"$ref": "#/definitions/query.Entity"}}
            }
        },
        "handler.Utterance": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "query.Entity": {
            "type": "object",
            "properties": {"entity": {"type": "string"}, "value": {"type": "string"}}
        },
        "query.Event": {
            "type": "object",
            "properties": {
                "event": {"type": "string", "enum": ["slot", "followup"]},
                "name": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "query.Result": {
            "type": "object",
            "properties": {
                "messages": {"type": "array", "items": {"type": "string"}},
                "events": {"type": "array", "items": {"$ref": "#/definitions/query.Event"}}
            }
        },
        "query.Slots": {
            "type": "object",
            "properties": {
                "sport": {"type": "string"},
                "league": {"type": "string"},
                "team": {"type": "string"},
                "matchday": {"type": "string"}
            }
        },
        "respond.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "detail": {"type": "string"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:5055",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Scoracle Chat Actions API",
	Description:      "Custom-action webhook, local ask endpoint and chat relay for the football and basketball results assistant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
