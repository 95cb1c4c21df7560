package main

import (
	_ "smeta_admin/docs"
	"smeta_admin/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Smeta Admin Gateway API
// @version         1.0
// @description     Admin gateway for the business-management backend: estimate editor sessions, partners, clients, organizations, employees and project teams.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the backend access token.

func main() {
	routes.Run()
}
