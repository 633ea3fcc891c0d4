// Package docs registers the Swagger 2.0 document served under /swagger.
// It is maintained by hand alongside the @Router annotations in internal/api/handler.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Home page",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.homePage"}}
                }
            }
        },
        "/features/form": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Bug report form page",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.formPage"}}
                }
            }
        },
        "/features/login": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Login page",
                "parameters": [
                    {"type": "string", "description": "Where to return after sign-in", "name": "callbackUrl", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginPage"}}
                }
            }
        },
        "/api/auth/signin/{provider}": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Start sign-in",
                "parameters": [
                    {"type": "string", "example": "google", "description": "Provider id", "name": "provider", "in": "path", "required": true},
                    {"type": "string", "description": "Where to return after sign-in", "name": "callbackUrl", "in": "formData"}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/auth/callback/{provider}": {
            "get": {
                "tags": ["auth"],
                "summary": "OAuth callback",
                "parameters": [
                    {"type": "string", "description": "Provider id", "name": "provider", "in": "path", "required": true},
                    {"type": "string", "description": "OAuth state", "name": "state", "in": "query"},
                    {"type": "string", "description": "Authorization code", "name": "code", "in": "query"},
                    {"type": "string", "description": "Provider error", "name": "error", "in": "query"}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/auth/signout": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Sign out",
                "parameters": [
                    {"type": "string", "description": "Where to go after sign-out", "name": "callbackUrl", "in": "formData"}
                ],
                "responses": {
                    "302": {"description": "Found"}
                }
            }
        },
        "/api/auth/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Session"}}
                }
            }
        },
        "/api/auth/providers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign-in providers",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.providerResponse"}}
                    }
                }
            }
        },
        "/api/bug-report": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bug-report"],
                "summary": "Submit a bug report",
                "parameters": [
                    {"description": "Bug report", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.bugReportRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SubmissionResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/domain.SubmissionResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/domain.SubmissionResult"}}
                }
            }
        },
        "/api/bug-report/validate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bug-report"],
                "summary": "Validate one bug report field",
                "parameters": [
                    {"description": "Field and value", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.fieldValidationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.FieldResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/vitals": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["vitals"],
                "summary": "Ingest a web vital sample",
                "parameters": [
                    {"description": "Web vital", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.webVitalRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handler.webVitalResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/admin/identities/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Get an identity",
                "parameters": [
                    {"type": "string", "description": "Identity id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Identity"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/admin/identities/{id}/role": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Assign an identity role",
                "parameters": [
                    {"type": "string", "description": "Identity id", "name": "id", "in": "path", "required": true},
                    {"description": "Role", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.roleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.roleResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Identity": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "displayName": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string", "enum": ["USER", "ADMIN"]},
                "updated_at": {"type": "string"}
            }
        },
        "domain.SessionUser": {
            "type": "object",
            "properties": {
                "displayName": {"type": "string"},
                "email": {"type": "string"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string", "enum": ["USER", "ADMIN"]}
            }
        },
        "domain.Session": {
            "type": "object",
            "properties": {
                "expires": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.SessionUser"}
            }
        },
        "domain.SubmissionResult": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "domain.FieldResult": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "field": {"type": "string"},
                "valid": {"type": "boolean"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handler.bugReportRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.fieldValidationRequest": {
            "type": "object",
            "required": ["field"],
            "properties": {
                "field": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "handler.webVitalRequest": {
            "type": "object",
            "required": ["id", "name", "value"],
            "properties": {
                "delta": {"type": "number"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "rating": {"type": "string"},
                "timestamp": {"type": "string"},
                "url": {"type": "string"},
                "userAgent": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "handler.webVitalResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "rating": {"type": "string"}
            }
        },
        "handler.roleRequest": {
            "type": "object",
            "required": ["role"],
            "properties": {
                "role": {"type": "string", "enum": ["USER", "ADMIN"]}
            }
        },
        "handler.roleResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handler.providerResponse": {
            "type": "object",
            "properties": {
                "callbackUrl": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "signinUrl": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "handler.featureLink": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "href": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.homePage": {
            "type": "object",
            "properties": {
                "features": {"type": "array", "items": {"$ref": "#/definitions/handler.featureLink"}},
                "title": {"type": "string"}
            }
        },
        "handler.formField": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "maxLength": {"type": "integer"},
                "minLength": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "handler.formPage": {
            "type": "object",
            "properties": {
                "backHref": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/handler.formField"}},
                "submitUrl": {"type": "string"},
                "title": {"type": "string"},
                "validateUrl": {"type": "string"}
            }
        },
        "handler.loginPage": {
            "type": "object",
            "properties": {
                "backHref": {"type": "string"},
                "callbackUrl": {"type": "string"},
                "greeting": {"type": "string"},
                "providers": {"type": "array", "items": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}}}},
                "session": {"$ref": "#/definitions/domain.Session"},
                "signoutUrl": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Portal API",
	Description:      "Session, bug report and web vitals endpoints of the portal boilerplate.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
