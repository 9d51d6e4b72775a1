package main

// @title           eWallet API
// @version         1.0
// @description     eWallet provider, client and admin API
// @BasePath        /api
// @securityDefinitions.apikey OMGServer
// @in header
// @name Authorization
// @description "OMGServer" followed by a space and base64(access_key:secret_key)
// @securityDefinitions.apikey OMGClient
// @in header
// @name Authorization
// @description "OMGClient" followed by a space and base64(api_key:auth_token)
func main() {
	Execute()
}
