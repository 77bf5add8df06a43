// Package docs holds the generated swagger specification.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new player account",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user profile",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Update profile fields",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/problems": {
            "get": {
                "produces": ["application/json"],
                "tags": ["problems"],
                "summary": "List design challenges",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/problems/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["problems"],
                "summary": "One challenge with its personas",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/problems/{id}/personas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["problems"],
                "summary": "Personas for a challenge",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/quiz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "List quiz questions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/quiz/submit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Submit quiz answers",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/quiz/skip": {
            "post": {
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Skip the quiz",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/progress": {
            "get": {
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Current quest progress",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/progress/problem": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Bind the run to a problem",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/progress/stages/{stage}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Record a scored stage",
                "parameters": [{"type": "string", "name": "stage", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/progress/reset": {
            "post": {
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Reset the run",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/gemini-score": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["scoring"],
                "summary": "Score a quest stage submission",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/gemini-score-prototype": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["scoring"],
                "summary": "Expert review of a prototype with visuals",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/gemini-chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/event-stream"],
                "tags": ["chat"],
                "summary": "Interview a persona",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/gemini-persona": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Persona reacts to a prototype",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/complete-quest": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quest"],
                "summary": "Complete the quest and claim rewards",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/leaderboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quest"],
                "summary": "Leaderboard for a problem",
                "parameters": [{"type": "integer", "name": "problemId", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/rpm-avatar-proxy": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["avatar"],
                "summary": "Proxy an avatar binary",
                "parameters": [{"type": "string", "name": "url", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/update-avatar": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["avatar"],
                "summary": "Update the user's avatar",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "ThinkQuest Backend API",
	Description:      "Backend server for the ThinkQuest design thinking quest.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
