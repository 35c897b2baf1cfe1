package api

import (
	"net/http"

	"github.com/swaggo/swag"
)

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
        "/payments/create": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Create a transaction",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTransactionRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/payments/confirm": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Commit a transaction",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.ConfirmTransactionRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/payments/status/{token}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Read a transaction's status",
                "parameters": [{"in": "path", "name": "token", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/payments/refund": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Refund a transaction",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.RefundTransactionRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/payment/callback": {
            "get": {
                "produces": ["text/html"],
                "summary": "Payment return page",
                "parameters": [{"in": "query", "name": "token_ws", "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/notifications": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Accept a notification",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.NotificationRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        }
    },
    "definitions": {
        "handlers.CreateTransactionRequest": {
            "type": "object",
            "required": ["amount", "buy_order", "return_url", "session_id"],
            "properties": {
                "amount": {"type": "number"},
                "buy_order": {"type": "string", "maxLength": 26},
                "return_url": {"type": "string"},
                "session_id": {"type": "string"}
            }
        },
        "handlers.ConfirmTransactionRequest": {
            "type": "object",
            "required": ["token"],
            "properties": {"token": {"type": "string"}}
        },
        "handlers.RefundTransactionRequest": {
            "type": "object",
            "required": ["amount", "token"],
            "properties": {"amount": {"type": "number"}, "token": {"type": "string"}}
        },
        "handlers.NotificationRequest": {
            "type": "object",
            "required": ["categoria", "mensaje"],
            "properties": {"adicional": {"type": "string"}, "categoria": {"type": "boolean"}, "mensaje": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Webpay Plus Gateway",
	Description:      "HTTP gateway to create, confirm, query and refund Webpay Plus card transactions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// DocsHandler serves the swag document registered under SwaggerInfo.
func DocsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})
}

// RegisterDocsRoutes mounts both API documents on mux.
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.Handle("GET /openapi.json", SpecHandler())
	mux.Handle("GET /swagger/doc.json", DocsHandler())
}
