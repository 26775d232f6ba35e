package mockstore

import (
	"encoding/json"

	"go-grocer-tab/internal/ws"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the store over the json-server surface: GET (list and by
// id), POST, PATCH and DELETE per collection. No authentication, no
// pagination, no query parameters.
type Handler struct {
	store *Store
	hub   *ws.Hub
}

func NewHandler(store *Store, hub *ws.Hub) *Handler {
	return &Handler{store: store, hub: hub}
}

// RegisterRoutes mounts the collection endpoints at the app root.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	for _, name := range collectionNames {
		col := name
		base := "/" + col
		app.Get(base, func(c *fiber.Ctx) error { return h.list(c, col) })
		app.Get(base+"/:id", func(c *fiber.Ctx) error { return h.get(c, col) })
		app.Post(base, func(c *fiber.Ctx) error { return h.create(c, col) })
		app.Patch(base+"/:id", func(c *fiber.Ctx) error { return h.patch(c, col) })
		app.Delete(base+"/:id", func(c *fiber.Ctx) error { return h.delete(c, col) })
	}
}

func (h *Handler) list(c *fiber.Ctx, col string) error {
	return c.JSON(h.store.List(col))
}

func (h *Handler) get(c *fiber.Ctx, col string) error {
	doc, ok := h.store.Get(col, c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	}
	return c.JSON(doc)
}

func (h *Handler) create(c *fiber.Ctx, col string) error {
	var doc map[string]any
	if err := json.Unmarshal(c.Body(), &doc); err != nil || doc == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.store.Insert(col, doc)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to persist"})
	}

	h.hub.PublishChange(col, "created", docID(created))
	return c.Status(201).JSON(created)
}

func (h *Handler) patch(c *fiber.Ctx, col string) error {
	var patch map[string]any
	if err := json.Unmarshal(c.Body(), &patch); err != nil || patch == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, found, err := h.store.Patch(col, c.Params("id"), patch)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to persist"})
	}
	if !found {
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	}

	h.hub.PublishChange(col, "updated", c.Params("id"))
	return c.JSON(updated)
}

func (h *Handler) delete(c *fiber.Ctx, col string) error {
	found, err := h.store.Delete(col, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to persist"})
	}
	if !found {
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	}

	h.hub.PublishChange(col, "deleted", c.Params("id"))
	return c.JSON(fiber.Map{})
}
