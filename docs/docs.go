// Package docs registers the OpenAPI description of the eWallet API with swag.
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
        "/status": {
            "post": {
                "produces": ["application/json"],
                "tags": ["public"],
                "summary": "API status",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/user.get": {
            "post": {
                "security": [{"OMGServer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["provider"],
                "summary": "Get a user",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/user.create": {
            "post": {
                "security": [{"OMGServer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["provider"],
                "summary": "Create a user",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/token.all": {
            "post": {
                "security": [{"OMGServer": []}],
                "produces": ["application/json"],
                "tags": ["provider"],
                "summary": "List tokens",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/token.create": {
            "post": {
                "security": [{"OMGServer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["provider"],
                "summary": "Create a token",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/mint": {
            "post": {
                "security": [{"OMGServer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["provider"],
                "summary": "Mint a token",
                "parameters": [{"type": "string", "name": "Idempotency-Token", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/transfer": {
            "post": {
                "security": [{"OMGServer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["provider"],
                "summary": "Transfer funds",
                "parameters": [{"type": "string", "name": "Idempotency-Token", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/wallet.balances": {
            "post": {
                "security": [{"OMGServer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["provider"],
                "summary": "Wallet balances",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/me.get": {
            "post": {
                "security": [{"OMGClient": []}],
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/me.get_wallets": {
            "post": {
                "security": [{"OMGClient": []}],
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Current user's wallets",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/me.get_transactions": {
            "post": {
                "security": [{"OMGClient": []}],
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Current user's transactions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/me.logout": {
            "post": {
                "security": [{"OMGClient": []}],
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Log out",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin.login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["public"],
                "summary": "Admin login",
                "description": "Exchange an admin email and password for an auth token",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin.memberships": {
            "post": {
                "security": [{"OMGClient": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List memberships (Admin)",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        }
    },
    "securityDefinitions": {
        "OMGClient": {
            "description": "OMGClient base64(api_key:auth_token)",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        },
        "OMGServer": {
            "description": "OMGServer base64(access_key:secret_key)",
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "eWallet API",
	Description:      "eWallet provider, client and admin API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
