// file: internals/helpers/auth/actor.go
package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Actor: identitas pelaku aksi, dipakai murni untuk audit stamping.
// Keputusan otorisasi TIDAK diambil di core; middleware auth hanya
// menaruh klaim token ke locals.
type Actor struct {
	UserID   uuid.UUID
	UserName string
	Role     string
}

// GetActor membaca identitas dari locals yang diisi AuthMiddleware.
func GetActor(c *fiber.Ctx) (Actor, error) {
	rawID, _ := c.Locals("user_id").(string)
	id, err := uuid.Parse(rawID)
	if err != nil {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak ditemukan di token")
	}
	name, _ := c.Locals("user_name").(string)
	role, _ := c.Locals("role").(string)
	return Actor{UserID: id, UserName: name, Role: role}, nil
}

// GetActorOrNil: untuk endpoint publik yang tetap ingin mencatat pelaku jika ada.
func GetActorOrNil(c *fiber.Ctx) *Actor {
	a, err := GetActor(c)
	if err != nil {
		return nil
	}
	return &a
}
