// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/bin-to-dec": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bintodec"],
                "summary": "Gera um número binário de 8 bits",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/bintodec.Problem"}
                    },
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/check-answer": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bintodec"],
                "summary": "Corrige o palpite decimal de um binário",
                "parameters": [
                    {
                        "description": "Palpite e problema",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/bintodec.CheckAnswerRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/bintodec.CheckAnswerResult"}
                    },
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/attempts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bintodec"],
                "summary": "Lista as tentativas mais recentes",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Quantidade máxima (padrão 50, máximo 500)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/bintodec.Attempt"}
                        }
                    },
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        }
    },
    "definitions": {
        "bintodec.Problem": {
            "type": "object",
            "properties": {
                "random_binary": {"type": "string", "example": "00001010"},
                "random_decimal": {"type": "integer", "example": 10}
            }
        },
        "bintodec.CheckAnswerRequest": {
            "type": "object",
            "properties": {
                "userGuess": {"type": "string", "example": "10"},
                "correctDecimal": {"type": "integer", "example": 10},
                "randomBinary": {"type": "string", "example": "00001010"}
            }
        },
        "bintodec.CheckAnswerResult": {
            "type": "object",
            "properties": {
                "result": {"type": "string", "enum": ["Correct", "Incorrect"]},
                "correctDecimal": {"type": "integer", "example": 10}
            }
        },
        "bintodec.Attempt": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "random_binary": {"type": "string"},
                "random_decimal": {"type": "integer"},
                "user_guess": {"type": "string"},
                "result": {"type": "string", "enum": ["Correct", "Incorrect"]},
                "created_at": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "netconv API",
	Description:      "Gera problemas de binário para decimal e corrige respostas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
