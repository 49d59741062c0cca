// Package docs registra a documentação Swagger da API no swag.
//
// Este arquivo é mantido à mão, não pelo swag init. Ao mudar rotas ou
// anotações @Router/@Param dos handlers, atualize docTemplate; docs_test.go
// confere que cada rota do router está documentada.
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
        "/releases": {
            "get": {
                "produces": ["application/json"],
                "tags": ["releases"],
                "summary": "Lista as liberações de material",
                "parameters": [
                    {"type": "string", "description": "Texto de busca", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Release"}}},
                    "503": {"description": "Armazenamento indisponível", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["releases"],
                "summary": "Cria uma liberação de material",
                "parameters": [
                    {"description": "Dados da liberação", "name": "release", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ReleaseInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Release"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "500": {"description": "Falha de escrita", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "503": {"description": "Falha ao consultar a sequência do mês", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/releases/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["releases"],
                "summary": "Atualiza uma liberação",
                "parameters": [
                    {"type": "string", "description": "ID da liberação", "name": "id", "in": "path", "required": true},
                    {"description": "Dados da liberação", "name": "release", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Release"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Release"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Liberação não encontrada", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["releases"],
                "summary": "Exclui uma liberação",
                "parameters": [
                    {"type": "string", "description": "ID da liberação", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Liberação não encontrada", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/fiber-stock": {
            "get": {
                "produces": ["application/json"],
                "tags": ["fiber-stock"],
                "summary": "Lista o estoque de fibras",
                "parameters": [
                    {"type": "string", "description": "Texto de busca", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.FiberStockItem"}}},
                    "503": {"description": "Armazenamento indisponível", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["fiber-stock"],
                "summary": "Cria um item no estoque de fibras",
                "parameters": [
                    {"description": "Dados do item", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.FiberStockInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.FiberStockItem"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "503": {"description": "Falha ao consultar a sequência do mês", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/fiber-stock/import": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["fiber-stock"],
                "summary": "Importa itens em lote",
                "parameters": [
                    {"description": "Linhas a importar", "name": "items", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.FiberStockInput"}}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.FiberStockItem"}}},
                    "400": {"description": "Linha inválida; nada foi gravado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/fiber-stock/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["fiber-stock"],
                "summary": "Atualiza um item do estoque",
                "parameters": [
                    {"type": "string", "description": "ID do item", "name": "id", "in": "path", "required": true},
                    {"description": "Dados do item", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.FiberStockItem"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.FiberStockItem"}},
                    "404": {"description": "Item não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["fiber-stock"],
                "summary": "Exclui um item do estoque",
                "parameters": [
                    {"type": "string", "description": "ID do item", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Item não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/admin/lists": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Retorna as listas administrativas",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.AdminLists"}},
                    "503": {"description": "Armazenamento indisponível", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Substitui as listas administrativas",
                "parameters": [
                    {"description": "Listas completas", "name": "lists", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.AdminLists"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.AdminLists"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Autentica o administrador e retorna um JWT",
                "parameters": [
                    {"description": "Credenciais administrativas", "name": "login", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token JWT emitido", "schema": {"$ref": "#/definitions/domain.LoginResponse"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Credenciais inválidas", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.AdminLists": {
            "type": "object",
            "properties": {
                "locaisDeEntrega": {"type": "array", "items": {"type": "string"}},
                "operadores": {"type": "array", "items": {"type": "string"}},
                "ruas": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.ErrorResponse": {
            "description": "Estrutura padronizada para respostas de erro na API.",
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "NOT_FOUND"},
                "code": {"type": "integer", "example": 404},
                "message": {"type": "string"}
            }
        },
        "domain.FiberStockInput": {
            "type": "object",
            "properties": {
                "lote": {"type": "string"},
                "material": {"type": "string"},
                "prateleira": {"type": "string"},
                "qtd": {"type": "string"},
                "rua": {"type": "string"},
                "sala": {"type": "string"},
                "sm": {"type": "string"},
                "status": {"type": "string", "enum": ["EM ESTOQUE", "MATERIAL PAGO"]}
            }
        },
        "domain.FiberStockItem": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "displayId": {"type": "string", "example": "10.4"},
                "id": {"type": "string"},
                "lote": {"type": "string"},
                "material": {"type": "string"},
                "prateleira": {"type": "string"},
                "qtd": {"type": "string", "example": "12.5"},
                "rua": {"type": "string"},
                "sala": {"type": "string"},
                "sm": {"type": "string"},
                "status": {"type": "string", "enum": ["EM ESTOQUE", "MATERIAL PAGO"]}
            }
        },
        "domain.LoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string", "example": "admin"}
            }
        },
        "domain.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "domain.Release": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "data": {"type": "string", "example": "2026-10-18"},
                "displayId": {"type": "string", "example": "10.1"},
                "id": {"type": "string"},
                "localDeEntrega": {"type": "string"},
                "material": {"type": "string"},
                "operador": {"type": "string"},
                "rua": {"type": "string"},
                "sm": {"type": "string"},
                "status": {"type": "string", "enum": ["MATERIAL ENTREGUE - PENDENTE", "MATERIAL PAGO - FINALIZADO"]}
            }
        },
        "domain.ReleaseInput": {
            "type": "object",
            "properties": {
                "data": {"type": "string", "example": "2026-10-18"},
                "localDeEntrega": {"type": "string"},
                "material": {"type": "string"},
                "operador": {"type": "string"},
                "rua": {"type": "string"},
                "sm": {"type": "string"},
                "status": {"type": "string", "enum": ["MATERIAL ENTREGUE - PENDENTE", "MATERIAL PAGO - FINALIZADO"]}
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

// SwaggerInfo guarda as informações exportadas da documentação.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Controle de Materiais API",
	Description:      "Liberações de material, estoque de fibras e listas administrativas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
