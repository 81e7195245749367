package configs

import (
	"undangan.link/configs/configssession"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession mirrors GetDB: route packages depend on configs only.
func SetupSession() *session.Store {
	return configssession.SetupSession()
}
