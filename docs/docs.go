// Package docs registers the OpenAPI description served by gin-swagger.
// The template is maintained by hand alongside internal/app/routes; add a path
// entry here when a route is added there.
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
        "/auth/register": {
            "post": {"tags": ["auth"], "summary": "Register a college", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "User login", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/auth/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current principal", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/courses": {
            "get": {"tags": ["catalog"], "summary": "List courses", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/courses/{courseId}/departments": {
            "get": {"tags": ["catalog"], "summary": "List departments mapped to a course", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/semesters": {
            "get": {"tags": ["catalog"], "summary": "List the semesters of a course", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/colleges/{collegeId}/courses": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["colleges"], "summary": "List courses offered by a college", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/colleges/{collegeId}/course-departments": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["colleges"], "summary": "Offer a course with departments", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}},
            "get": {"security": [{"BearerAuth": []}], "tags": ["colleges"], "summary": "List departments of a college course", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/colleges/{collegeId}/faculty": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["faculty"], "summary": "Register a faculty member", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/colleges/{collegeId}/faculty/import": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["faculty"], "summary": "Import faculty from a spreadsheet", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/colleges/{collegeId}/hods": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["faculty"], "summary": "List HODs", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/colleges/{collegeId}/students": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "Register a student", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}},
            "get": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "List students", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/colleges/{collegeId}/students/import": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "Import students from a spreadsheet", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/faculty/department": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["faculty"], "summary": "List department faculty", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/faculty/{facultyId}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["faculty"], "summary": "Update a faculty member", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["faculty"], "summary": "Delete a faculty member", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/students/{studentId}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "Update a student", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["students"], "summary": "Delete a student", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/subjects": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["subjects"], "summary": "Add subjects", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}},
            "get": {"security": [{"BearerAuth": []}], "tags": ["subjects"], "summary": "List semester subjects", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/subjects/import": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["subjects"], "summary": "Import subjects from a spreadsheet", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/faculty-assignments": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["assignments"], "summary": "Assign a subject to a faculty member", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/faculty-assignments/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["assignments"], "summary": "List my assignments", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/attendance": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["attendance"], "summary": "Mark attendance", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/attendance/students": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["attendance"], "summary": "List students of an assigned subject", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/attendance/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["attendance"], "summary": "My attendance", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/legacy/colleges": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["legacy"], "summary": "Register a legacy college record", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}},
            "get": {"security": [{"BearerAuth": []}], "tags": ["legacy"], "summary": "List legacy college records", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/legacy/colleges/login": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["legacy"], "summary": "Check legacy college credentials", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/legacy/faculty": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["legacy"], "summary": "Register a legacy faculty record", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}},
            "get": {"security": [{"BearerAuth": []}], "tags": ["legacy"], "summary": "List legacy faculty records", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/legacy/faculty/login": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["legacy"], "summary": "Check legacy faculty credentials", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/legacy/students": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["legacy"], "summary": "Register a legacy student record", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}},
            "get": {"security": [{"BearerAuth": []}], "tags": ["legacy"], "summary": "List legacy student records", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/legacy/students/login": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["legacy"], "summary": "Check legacy student credentials", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string"},
                "data": {},
                "timestamp": {"type": "string"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "RES_001"},
                "message": {"type": "string"},
                "field": {"type": "string"},
                "severity": {"type": "string", "example": "ERROR"},
                "details": {}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string"}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Attendance Management System API",
	Description:      "Colleges, departments, faculty, students, subject catalogs and daily attendance.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
