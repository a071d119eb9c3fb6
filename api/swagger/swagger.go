package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "CampusHQ Scheduler API",
        "description": "Timetable generation service for university course scheduling",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Timetable", "description": "Timetable proposal generation and export"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/timetable/generate": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Generate a timetable proposal",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateTimetableRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetable/proposals/{id}": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Fetch a stored timetable proposal",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Timetable"],
                "summary": "Discard a stored timetable proposal",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetable/proposals/{id}/export": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Export a stored timetable proposal as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Rendered timetable"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "TimeWindow": {
            "type": "object",
            "required": ["day", "start_time", "end_time"],
            "properties": {
                "day": {"type": "string"},
                "start_time": {"type": "string", "example": "08:00"},
                "end_time": {"type": "string", "example": "12:00"}
            }
        },
        "DayHours": {
            "type": "object",
            "required": ["start", "end"],
            "properties": {
                "start": {"type": "string", "example": "08:00"},
                "end": {"type": "string", "example": "17:00"}
            }
        },
        "GenerateTimetableRequest": {
            "type": "object",
            "required": ["halls", "school_days", "professors", "courses", "days_with_hours", "course_sections_count"],
            "properties": {
                "halls": {"type": "array", "items": {"type": "string"}},
                "school_days": {"type": "array", "items": {"type": "string"}},
                "departments": {"type": "array", "items": {"type": "string"}},
                "professors": {"type": "array", "items": {"type": "string"}},
                "courses": {"type": "array", "items": {"type": "string"}},
                "level_courses": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "department_courses": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "professor_specialties": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "professor_preferred_courses": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "professor_preferred_times": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/TimeWindow"}}},
                "course_preferred_times": {"type": "object", "additionalProperties": {"type": "string", "enum": ["early", "middle", "late"]}},
                "restricted_times": {"type": "array", "items": {"$ref": "#/definitions/TimeWindow"}},
                "days_with_hours": {"type": "object", "additionalProperties": {"$ref": "#/definitions/DayHours"}},
                "course_lecture_durations": {"type": "object", "additionalProperties": {"type": "integer"}},
                "course_sections_count": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "TimetableSection": {
            "type": "object",
            "properties": {
                "course_id": {"type": "string"},
                "section_number": {"type": "integer"},
                "professor_id": {"type": "string"},
                "hall_id": {"type": "string"},
                "day": {"type": "string"},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"}
            }
        },
        "TimetableShortfall": {
            "type": "object",
            "properties": {
                "course_id": {"type": "string"},
                "section_number": {"type": "integer"},
                "reason": {"type": "string"}
            }
        },
        "TimetableStats": {
            "type": "object",
            "properties": {
                "requested_sections": {"type": "integer"},
                "assigned_sections": {"type": "integer"},
                "courses_planned": {"type": "integer"},
                "consolidation_moves": {"type": "integer"}
            }
        },
        "GenerateTimetableResponse": {
            "type": "object",
            "properties": {
                "proposal_id": {"type": "string"},
                "sections": {"type": "array", "items": {"$ref": "#/definitions/TimetableSection"}},
                "shortfalls": {"type": "array", "items": {"$ref": "#/definitions/TimetableShortfall"}},
                "stats": {"$ref": "#/definitions/TimetableStats"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
