// Package docs contiene la especificación OpenAPI del painel (formato swag).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/movements/options": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "movements"
                ],
                "summary": "Valores de los selectores",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.OptionsDTO"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/movements/leaderboard": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "movements"
                ],
                "summary": "Top 20 itens mais movimentados",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LeaderboardDTO"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/movements/series": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "movements"
                ],
                "summary": "Serie de cantidades de un material",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Descrição do Material",
                        "name": "item",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "monthly (default) | yearly",
                        "name": "mode",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Lista separada por comas. Default: todos.",
                        "name": "years",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Lista separada por comas (sólo monthly). Default: todos.",
                        "name": "months",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Unidade de Negócio. Vacío = sin filtro.",
                        "name": "business_unit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SeriesResponseDTO"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/movements/report.pdf": {
            "get": {
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "exports"
                ],
                "summary": "Informe PDF de la vista",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Descrição do Material",
                        "name": "item",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "monthly (default) | yearly",
                        "name": "mode",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Lista separada por comas. Default: todos.",
                        "name": "years",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Lista separada por comas (sólo monthly). Default: todos.",
                        "name": "months",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Unidade de Negócio. Vacío = sin filtro.",
                        "name": "business_unit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/movements/export.xlsx": {
            "get": {
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "exports"
                ],
                "summary": "Planilla XLSX de la vista",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Descrição do Material",
                        "name": "item",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "monthly (default) | yearly",
                        "name": "mode",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Lista separada por comas. Default: todos.",
                        "name": "years",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Lista separada por comas (sólo monthly). Default: todos.",
                        "name": "months",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Unidade de Negócio. Vacío = sin filtro.",
                        "name": "business_unit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.LeaderboardEntryDTO": {
            "type": "object",
            "properties": {
                "rank": {
                    "type": "integer"
                },
                "material_description": {
                    "type": "string"
                },
                "quantity": {
                    "type": "string"
                }
            }
        },
        "dto.LeaderboardDTO": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LeaderboardEntryDTO"
                    }
                }
            }
        },
        "dto.SeriesPointDTO": {
            "type": "object",
            "properties": {
                "year": {
                    "type": "integer"
                },
                "month": {
                    "type": "integer"
                },
                "label": {
                    "type": "string"
                },
                "quantity": {
                    "type": "string"
                }
            }
        },
        "dto.SeriesResponseDTO": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "item": {
                    "type": "string"
                },
                "mode": {
                    "type": "string"
                },
                "years": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "months": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "business_unit": {
                    "type": "integer"
                },
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.SeriesPointDTO"
                    }
                },
                "total": {
                    "type": "string"
                }
            }
        },
        "dto.DatasetInfoDTO": {
            "type": "object",
            "properties": {
                "rows": {
                    "type": "integer"
                },
                "raw_rows": {
                    "type": "integer"
                },
                "dropped_excluded": {
                    "type": "integer"
                },
                "dropped_operation_type": {
                    "type": "integer"
                },
                "invalid_dates": {
                    "type": "integer"
                },
                "invalid_quantities": {
                    "type": "integer"
                },
                "missing_descriptions": {
                    "type": "integer"
                },
                "loaded_at": {
                    "type": "string"
                }
            }
        },
        "dto.OptionsDTO": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "modes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "years": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "months": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "business_units": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "dataset": {
                    "$ref": "#/definitions/dto.DatasetInfoDTO"
                }
            }
        }
    },
    "schemes": {{ marshal .Schemes }},
    "host": "{{.Host}}"
}`

// SwaggerInfo metadatos exportados de la API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Painel de Movimentos API",
	Description:      "Painel de movimentação de itens por período: ranking de materiais, série mensal/anual e exportações.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
