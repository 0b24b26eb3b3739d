package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/princessangelsalon/salon-api/internal/httpresp"
	"github.com/princessangelsalon/salon-api/internal/storage"
)

// Uploads are capped well above what a re-encoded salon photo needs.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	store storage.ImageStore
}

func NewUploadHandler(store storage.ImageStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Image accepts a multipart "image" file, converts it to webp and stores
// it under the folder named in the route. Responds with the public URL.
func (h *UploadHandler) Image(folder string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, _, err := c.Request.FormFile("image")
		if err != nil {
			httpresp.Fail(c, "Image file is required.")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			httpresp.Fail(c, "Failed to read image.")
			return
		}

		url, err := h.store.SaveImage(c.Request.Context(), folder, data)
		if err != nil {
			httpresp.FailErr(c, err, "Failed to store image.")
			return
		}

		httpresp.OK(c, gin.H{"url": url})
	}
}
