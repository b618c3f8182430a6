// Package docs registers the OpenAPI description served under /swagger. The path
// list is maintained by hand alongside the handler annotations.
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
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login user", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/refresh": {"post": {"tags": ["auth"], "summary": "Refresh access token", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/logout": {"post": {"tags": ["auth"], "summary": "Logout user", "responses": {"200": {"description": "OK"}}}},
        "/skills": {"get": {"tags": ["skills"], "summary": "List the skill catalog", "responses": {"200": {"description": "OK"}}}},
        "/goals": {"get": {"tags": ["goals"], "summary": "List the career goal catalog", "responses": {"200": {"description": "OK"}}}},
        "/resources": {"get": {"tags": ["resources"], "summary": "List learning resources", "responses": {"200": {"description": "OK"}}}},
        "/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get the authenticated user", "responses": {"200": {"description": "OK"}}}},
        "/me/skills": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["skills"], "summary": "List the authenticated user's skill levels", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["skills"], "summary": "Record self-assessed skill levels", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/me/goals": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["goals"], "summary": "List the authenticated user's goals", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["goals"], "summary": "Add a career goal", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/me/goals/recommendations": {"get": {"security": [{"BearerAuth": []}], "tags": ["goals"], "summary": "Recommend career goals from the user's skills", "responses": {"200": {"description": "OK"}}}},
        "/me/goals/{id}": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["goals"], "summary": "Change the status of one of the user's goals", "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["goals"], "summary": "Remove one of the user's goals", "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/roadmap": {"get": {"security": [{"BearerAuth": []}], "tags": ["roadmap"], "summary": "Show the authenticated user's roadmap", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/roadmap/regenerate": {"post": {"security": [{"BearerAuth": []}], "tags": ["roadmap"], "summary": "Regenerate the authenticated user's roadmap", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/roadmap/tasks/{id}": {"patch": {"security": [{"BearerAuth": []}], "tags": ["roadmap"], "summary": "Update the status of a roadmap task", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/quizzes/{skill_id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["quizzes"], "summary": "Get the quiz of a skill", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["quizzes"], "summary": "Submit quiz answers", "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}}
        },
        "/me/quiz-results": {"get": {"security": [{"BearerAuth": []}], "tags": ["quizzes"], "summary": "List the authenticated user's quiz results", "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Career Path API",
	Description:      "Skill tracking, career goals and personalised learning roadmaps.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
